package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound          = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists     = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput      = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrUnauthorized      = NewDomainError("UNAUTHORIZED", "Not authorized to perform this action")
	ErrForbidden         = NewDomainError("FORBIDDEN", "Access to this resource is forbidden")
	ErrPermissionDenied  = NewDomainError("PERMISSION_DENIED", "Role is not sufficient for this operation")
	ErrMalformedSnapshot = NewDomainError("MALFORMED_SNAPSHOT", "Snapshot document is missing required keys")
	ErrSourceUnavailable = NewDomainError("SOURCE_UNAVAILABLE", "Workspace or actor could not be resolved")
	ErrStoreFailure      = NewDomainError("STORE_FAILURE", "Storage transaction failed and was rolled back")
	ErrRestoreInProgress = NewDomainError("RESTORE_IN_PROGRESS", "Another restore is already running for this workspace")
)

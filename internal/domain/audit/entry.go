package audit

import (
	"context"
	"time"

	"github.com/shopledger/backend/internal/domain/shared"
)

// OperationType classifies an audited mutation.
type OperationType string

const (
	OperationCreate OperationType = "CREATE"
	OperationUpdate OperationType = "UPDATE"
	OperationDelete OperationType = "DELETE"
	// OperationCover is the wholesale overwrite of a workspace's data by a
	// snapshot restore.
	OperationCover OperationType = "COVER"
)

// EntityTypeWorkspaceData is the entity type recorded for a restore, which
// touches every kind at once rather than a single row.
const EntityTypeWorkspaceData = "workspace_data"

// Entry is one append-only audit-log record. Never mutated after creation.
type Entry struct {
	shared.BaseEntity
	WorkspaceID   int64
	UserID        int64
	Username      string
	OperationType OperationType
	EntityType    string
	EntityID      *int64
	EntityName    string
	OldData       string // JSON
	NewData       string // JSON
	Changes       string // JSON
	OperationTime time.Time
	Note          string
}

// Filter narrows audit-log queries.
type Filter struct {
	OperationType OperationType
	EntityType    string
	StartTime     *time.Time
	EndTime       *time.Time
	Search        string
}

// Repository provides append and query access to the audit log
type Repository interface {
	Append(ctx context.Context, entry *Entry) error
	FindByWorkspace(ctx context.Context, workspaceID int64, filter Filter, page shared.Filter) ([]Entry, int64, error)
}

package record

import (
	"strings"

	"github.com/shopledger/backend/internal/domain/shared"
)

// Supplier is a party the business purchases from.
type Supplier struct {
	shared.WorkspaceEntity
	Name string
	Note string
}

// Customer is a party the business sells to.
type Customer struct {
	shared.WorkspaceEntity
	Name string
	Note string
}

// Employee is a staff member who can handle income and remittance.
type Employee struct {
	shared.WorkspaceEntity
	Name string
	Note string
}

func validatePartyName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_INPUT", "Name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_INPUT", "Name cannot exceed 200 characters")
	}
	return nil
}

// NewSupplier creates a supplier scoped to a workspace
func NewSupplier(workspaceID, userID int64, name, note string) (*Supplier, error) {
	if err := validatePartyName(name); err != nil {
		return nil, err
	}
	return &Supplier{
		WorkspaceEntity: shared.WorkspaceEntity{WorkspaceID: workspaceID, UserID: userID},
		Name:            strings.TrimSpace(name),
		Note:            note,
	}, nil
}

// NewCustomer creates a customer scoped to a workspace
func NewCustomer(workspaceID, userID int64, name, note string) (*Customer, error) {
	if err := validatePartyName(name); err != nil {
		return nil, err
	}
	return &Customer{
		WorkspaceEntity: shared.WorkspaceEntity{WorkspaceID: workspaceID, UserID: userID},
		Name:            strings.TrimSpace(name),
		Note:            note,
	}, nil
}

// NewEmployee creates an employee scoped to a workspace
func NewEmployee(workspaceID, userID int64, name, note string) (*Employee, error) {
	if err := validatePartyName(name); err != nil {
		return nil, err
	}
	return &Employee{
		WorkspaceEntity: shared.WorkspaceEntity{WorkspaceID: workspaceID, UserID: userID},
		Name:            strings.TrimSpace(name),
		Note:            note,
	}, nil
}

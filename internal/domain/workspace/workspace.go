package workspace

import (
	"context"
	"strings"
	"time"

	"github.com/shopledger/backend/internal/domain/shared"
)

// StorageType tells where a workspace's business data physically lives.
type StorageType string

const (
	// StorageLocal marks a workspace backed by the embedded local store.
	StorageLocal StorageType = "local"
	// StorageServer marks a workspace backed by the remote service.
	StorageServer StorageType = "server"
)

// ValidStorageType reports whether the value is a recognized storage type
func ValidStorageType(s StorageType) bool {
	return s == StorageLocal || s == StorageServer
}

// Workspace is the isolation boundary containing one coherent set of
// business entities.
type Workspace struct {
	shared.BaseEntity
	Name        string
	Description string
	OwnerID     int64
	StorageType StorageType
	IsShared    bool
}

// NewWorkspace creates a workspace owned by the given user
func NewWorkspace(ownerID int64, name, description string, storageType StorageType) (*Workspace, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Workspace name cannot be empty")
	}
	if len(name) > 100 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Workspace name cannot exceed 100 characters")
	}
	if storageType == "" {
		storageType = StorageServer
	}
	if !ValidStorageType(storageType) {
		return nil, shared.NewDomainError("INVALID_INPUT", "Storage type must be 'local' or 'server'")
	}
	return &Workspace{
		Name:        name,
		Description: description,
		OwnerID:     ownerID,
		StorageType: storageType,
	}, nil
}

// Rename changes the display name
func (w *Workspace) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_INPUT", "Workspace name cannot be empty")
	}
	w.Name = name
	w.UpdatedAt = time.Now()
	return nil
}

// Repository provides access to workspaces and memberships
type Repository interface {
	FindByID(ctx context.Context, id int64) (*Workspace, error)
	FindByOwner(ctx context.Context, ownerID int64) ([]Workspace, error)
	FindAccessible(ctx context.Context, userID int64) ([]Workspace, error)
	Save(ctx context.Context, ws *Workspace) error
	Delete(ctx context.Context, id int64) error

	FindMembers(ctx context.Context, workspaceID int64) ([]Member, error)
	AddMember(ctx context.Context, member *Member) error
	RemoveMember(ctx context.Context, workspaceID, userID int64) error
	// ResolveRole returns the user's role within the workspace. The owner
	// resolves to RoleOwner even without a membership row. Returns
	// shared.ErrNotFound when the user has no access at all.
	ResolveRole(ctx context.Context, workspaceID, userID int64) (Role, error)
}

package models

import (
	"time"

	"github.com/shopledger/backend/internal/domain/workspace"
)

// WorkspaceModel is the persistence model for the Workspace domain entity.
type WorkspaceModel struct {
	BaseModel
	Name        string                `gorm:"type:varchar(100);not null"`
	Description string                `gorm:"type:text"`
	OwnerID     int64                 `gorm:"not null;index"`
	StorageType workspace.StorageType `gorm:"type:varchar(20);not null;default:'server'"`
	IsShared    bool                  `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (WorkspaceModel) TableName() string {
	return "workspaces"
}

// ToDomain converts the persistence model to a domain Workspace entity.
func (m *WorkspaceModel) ToDomain() *workspace.Workspace {
	return &workspace.Workspace{
		BaseEntity:  m.BaseModel.ToDomain(),
		Name:        m.Name,
		Description: m.Description,
		OwnerID:     m.OwnerID,
		StorageType: m.StorageType,
		IsShared:    m.IsShared,
	}
}

// FromDomain populates the persistence model from a domain Workspace entity.
func (m *WorkspaceModel) FromDomain(w *workspace.Workspace) {
	m.FromDomainBaseEntity(w.BaseEntity)
	m.Name = w.Name
	m.Description = w.Description
	m.OwnerID = w.OwnerID
	m.StorageType = w.StorageType
	m.IsShared = w.IsShared
}

// WorkspaceMemberModel is the persistence model for workspace memberships.
// The owner is implicit via workspaces.owner_id and has no membership row.
type WorkspaceMemberModel struct {
	ID          int64          `gorm:"primaryKey;autoIncrement"`
	WorkspaceID int64          `gorm:"not null;uniqueIndex:idx_member_workspace_user,priority:1"`
	UserID      int64          `gorm:"not null;uniqueIndex:idx_member_workspace_user,priority:2"`
	Role        workspace.Role `gorm:"type:varchar(20);not null"`
	JoinedAt    time.Time      `gorm:"not null"`
}

// TableName returns the table name for GORM
func (WorkspaceMemberModel) TableName() string {
	return "workspace_members"
}

// ToDomain converts the persistence model to a domain Member.
// Username is resolved by the repository via a join, not stored here.
func (m *WorkspaceMemberModel) ToDomain(username string) workspace.Member {
	return workspace.Member{
		ID:          m.ID,
		WorkspaceID: m.WorkspaceID,
		UserID:      m.UserID,
		Username:    username,
		Role:        m.Role,
		JoinedAt:    m.JoinedAt,
	}
}

// FromDomain populates the persistence model from a domain Member.
func (m *WorkspaceMemberModel) FromDomain(mem *workspace.Member) {
	m.ID = mem.ID
	m.WorkspaceID = mem.WorkspaceID
	m.UserID = mem.UserID
	m.Role = mem.Role
	m.JoinedAt = mem.JoinedAt
}

package models

import (
	"time"

	"github.com/shopledger/backend/internal/domain/shared"
)

// BaseModel provides common persistence fields for all models.
// It maps to the domain's BaseEntity. IDs are BIGSERIAL and assigned by the
// database on insert.
type BaseModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// ToDomain converts BaseModel to domain BaseEntity
func (m *BaseModel) ToDomain() shared.BaseEntity {
	return shared.BaseEntity{
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomainBaseEntity populates BaseModel from domain BaseEntity
func (m *BaseModel) FromDomainBaseEntity(e shared.BaseEntity) {
	m.ID = e.ID
	m.CreatedAt = e.CreatedAt
	m.UpdatedAt = e.UpdatedAt
}

// WorkspaceModel provides common persistence fields for workspace-scoped
// records. Every query against these tables must filter on workspace_id.
type WorkspaceScopedModel struct {
	BaseModel
	WorkspaceID int64 `gorm:"not null;index"`
	UserID      int64 `gorm:"not null;index"`
}

// ToDomainWorkspaceEntity converts to the domain WorkspaceEntity
func (m *WorkspaceScopedModel) ToDomainWorkspaceEntity() shared.WorkspaceEntity {
	return shared.WorkspaceEntity{
		BaseEntity:  m.ToDomain(),
		WorkspaceID: m.WorkspaceID,
		UserID:      m.UserID,
	}
}

// FromDomainWorkspaceEntity populates from the domain WorkspaceEntity
func (m *WorkspaceScopedModel) FromDomainWorkspaceEntity(e shared.WorkspaceEntity) {
	m.FromDomainBaseEntity(e.BaseEntity)
	m.WorkspaceID = e.WorkspaceID
	m.UserID = e.UserID
}

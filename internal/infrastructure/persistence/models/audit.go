package models

import (
	"time"

	"github.com/shopledger/backend/internal/domain/audit"
)

// AuditEntryModel is the persistence model for audit log entries.
// Rows are append-only; nothing in the code path updates or deletes them.
type AuditEntryModel struct {
	BaseModel
	WorkspaceID   int64               `gorm:"not null;index:idx_audit_workspace_time,priority:1"`
	UserID        int64               `gorm:"not null;index"`
	Username      string              `gorm:"type:varchar(100);not null"`
	OperationType audit.OperationType `gorm:"type:varchar(20);not null;index"`
	EntityType    string              `gorm:"type:varchar(50);not null;index"`
	EntityID      *int64              `gorm:""`
	EntityName    string              `gorm:"type:varchar(200)"`
	OldData       string              `gorm:"type:jsonb"`
	NewData       string              `gorm:"type:jsonb"`
	Changes       string              `gorm:"type:jsonb"`
	OperationTime time.Time           `gorm:"not null;index:idx_audit_workspace_time,priority:2,sort:desc"`
	Note          string              `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (AuditEntryModel) TableName() string {
	return "audit_entries"
}

// ToDomain converts the persistence model to a domain audit Entry.
func (m *AuditEntryModel) ToDomain() *audit.Entry {
	return &audit.Entry{
		BaseEntity:    m.BaseModel.ToDomain(),
		WorkspaceID:   m.WorkspaceID,
		UserID:        m.UserID,
		Username:      m.Username,
		OperationType: m.OperationType,
		EntityType:    m.EntityType,
		EntityID:      m.EntityID,
		EntityName:    m.EntityName,
		OldData:       m.OldData,
		NewData:       m.NewData,
		Changes:       m.Changes,
		OperationTime: m.OperationTime,
		Note:          m.Note,
	}
}

// FromDomain populates the persistence model from a domain audit Entry.
func (m *AuditEntryModel) FromDomain(e *audit.Entry) {
	m.FromDomainBaseEntity(e.BaseEntity)
	m.WorkspaceID = e.WorkspaceID
	m.UserID = e.UserID
	m.Username = e.Username
	m.OperationType = e.OperationType
	m.EntityType = e.EntityType
	m.EntityID = e.EntityID
	m.EntityName = e.EntityName
	m.OldData = e.OldData
	m.NewData = e.NewData
	m.Changes = e.Changes
	m.OperationTime = e.OperationTime
	m.Note = e.Note
}

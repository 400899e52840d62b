package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/shopledger/backend/internal/domain/audit"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopledger/backend/internal/infrastructure/persistence/models"
)

// GormAuditRepository implements audit.Repository using GORM
type GormAuditRepository struct {
	db *gorm.DB
}

// NewGormAuditRepository creates a new GormAuditRepository
func NewGormAuditRepository(db *gorm.DB) *GormAuditRepository {
	return &GormAuditRepository{db: db}
}

// Append inserts a new audit entry. Entries are never updated.
func (r *GormAuditRepository) Append(ctx context.Context, entry *audit.Entry) error {
	var m models.AuditEntryModel
	m.FromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	entry.ID = m.ID
	return nil
}

// FindByWorkspace lists audit entries for a workspace, newest first
func (r *GormAuditRepository) FindByWorkspace(ctx context.Context, workspaceID int64, filter audit.Filter, page shared.Filter) ([]audit.Entry, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.AuditEntryModel{}).
		Where("workspace_id = ?", workspaceID)

	if filter.OperationType != "" {
		query = query.Where("operation_type = ?", filter.OperationType)
	}
	if filter.EntityType != "" {
		query = query.Where("entity_type = ?", filter.EntityType)
	}
	if filter.StartTime != nil {
		query = query.Where("operation_time >= ?", *filter.StartTime)
	}
	if filter.EndTime != nil {
		query = query.Where("operation_time <= ?", *filter.EndTime)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("entity_name ILIKE ? OR username ILIKE ? OR note ILIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	orderBy := ValidateSortField(page.OrderBy, AuditSortFields, "operation_time")
	orderDir := ValidateSortOrder(page.OrderDir)
	query = query.Order(fmt.Sprintf("%s %s", orderBy, orderDir))

	if page.PageSize > 0 {
		p := page.Page
		if p < 1 {
			p = 1
		}
		query = query.Offset((p - 1) * page.PageSize).Limit(page.PageSize)
	}

	var ms []models.AuditEntryModel
	if err := query.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	entries := make([]audit.Entry, 0, len(ms))
	for i := range ms {
		entries = append(entries, *ms[i].ToDomain())
	}
	return entries, total, nil
}

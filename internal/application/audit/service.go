package audit

import (
	"context"
	"errors"
	"time"

	"github.com/shopledger/backend/internal/domain/audit"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopledger/backend/internal/domain/workspace"
)

// ListQuery narrows and pages an audit-log listing.
type ListQuery struct {
	Page          int    `form:"page"`
	PageSize      int    `form:"pageSize"`
	OperationType string `form:"operationType"`
	EntityType    string `form:"entityType"`
	StartTime     string `form:"startTime"`
	EndTime       string `form:"endTime"`
	Search        string `form:"search"`
}

// EntryResponse is the API shape of one audit entry.
type EntryResponse struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"userId"`
	Username      string    `json:"username"`
	OperationType string    `json:"operationType"`
	EntityType    string    `json:"entityType"`
	EntityID      *int64    `json:"entityId,omitempty"`
	EntityName    string    `json:"entityName,omitempty"`
	OldData       string    `json:"oldData,omitempty"`
	NewData       string    `json:"newData,omitempty"`
	Changes       string    `json:"changes,omitempty"`
	OperationTime time.Time `json:"operationTime"`
	Note          string    `json:"note,omitempty"`
}

// Service exposes read access to the append-only audit log
type Service struct {
	auditRepo     audit.Repository
	workspaceRepo workspace.Repository
}

// NewService creates an audit service
func NewService(auditRepo audit.Repository, workspaceRepo workspace.Repository) *Service {
	return &Service{auditRepo: auditRepo, workspaceRepo: workspaceRepo}
}

// List returns a page of the workspace's audit entries, newest first
func (s *Service) List(ctx context.Context, userID, workspaceID int64, q ListQuery) (*shared.Paginated[EntryResponse], error) {
	if _, err := s.workspaceRepo.ResolveRole(ctx, workspaceID, userID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrPermissionDenied
		}
		return nil, err
	}

	filter := audit.Filter{
		OperationType: audit.OperationType(q.OperationType),
		EntityType:    q.EntityType,
		Search:        q.Search,
	}
	if t, err := time.Parse(time.RFC3339, q.StartTime); err == nil {
		filter.StartTime = &t
	}
	if t, err := time.Parse(time.RFC3339, q.EndTime); err == nil {
		filter.EndTime = &t
	}

	page := shared.DefaultFilter()
	if q.Page > 0 {
		page.Page = q.Page
	}
	if q.PageSize > 0 && q.PageSize <= 200 {
		page.PageSize = q.PageSize
	}
	page.OrderBy = "operation_time"

	entries, total, err := s.auditRepo.FindByWorkspace(ctx, workspaceID, filter, page)
	if err != nil {
		return nil, err
	}

	out := make([]EntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, EntryResponse{
			ID:            e.ID,
			UserID:        e.UserID,
			Username:      e.Username,
			OperationType: string(e.OperationType),
			EntityType:    e.EntityType,
			EntityID:      e.EntityID,
			EntityName:    e.EntityName,
			OldData:       e.OldData,
			NewData:       e.NewData,
			Changes:       e.Changes,
			OperationTime: e.OperationTime,
			Note:          e.Note,
		})
	}
	result := shared.NewPaginated(out, total, page.Page, page.PageSize)
	return &result, nil
}

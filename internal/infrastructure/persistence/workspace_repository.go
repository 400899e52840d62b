package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopledger/backend/internal/domain/workspace"
	"github.com/shopledger/backend/internal/infrastructure/persistence/models"
)

// GormWorkspaceRepository implements workspace.Repository using GORM
type GormWorkspaceRepository struct {
	db *gorm.DB
}

// NewGormWorkspaceRepository creates a new GormWorkspaceRepository
func NewGormWorkspaceRepository(db *gorm.DB) *GormWorkspaceRepository {
	return &GormWorkspaceRepository{db: db}
}

// FindByID finds a workspace by id
func (r *GormWorkspaceRepository) FindByID(ctx context.Context, id int64) (*workspace.Workspace, error) {
	var m models.WorkspaceModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return m.ToDomain(), nil
}

// FindByOwner finds all workspaces owned by a user
func (r *GormWorkspaceRepository) FindByOwner(ctx context.Context, ownerID int64) ([]workspace.Workspace, error) {
	var ms []models.WorkspaceModel
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return toWorkspaces(ms), nil
}

// FindAccessible finds all workspaces a user owns or is a member of
func (r *GormWorkspaceRepository) FindAccessible(ctx context.Context, userID int64) ([]workspace.Workspace, error) {
	var ms []models.WorkspaceModel
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? OR id IN (?)", userID,
			r.db.Model(&models.WorkspaceMemberModel{}).
				Select("workspace_id").
				Where("user_id = ?", userID)).
		Order("created_at ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return toWorkspaces(ms), nil
}

// Save inserts or updates a workspace
func (r *GormWorkspaceRepository) Save(ctx context.Context, ws *workspace.Workspace) error {
	var m models.WorkspaceModel
	m.FromDomain(ws)
	if err := r.db.WithContext(ctx).Save(&m).Error; err != nil {
		return err
	}
	*ws = *m.ToDomain()
	return nil
}

// Delete removes a workspace and its memberships
func (r *GormWorkspaceRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("workspace_id = ?", id).
			Delete(&models.WorkspaceMemberModel{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.WorkspaceModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// FindMembers lists a workspace's members with usernames resolved
func (r *GormWorkspaceRepository) FindMembers(ctx context.Context, workspaceID int64) ([]workspace.Member, error) {
	type memberRow struct {
		ID          int64
		WorkspaceID int64
		UserID      int64
		Username    string
		Role        workspace.Role
		JoinedAt    time.Time
	}
	var rows []memberRow
	if err := r.db.WithContext(ctx).
		Table("workspace_members").
		Select("workspace_members.id, workspace_members.workspace_id, workspace_members.user_id, users.username, workspace_members.role, workspace_members.joined_at").
		Joins("JOIN users ON users.id = workspace_members.user_id").
		Where("workspace_members.workspace_id = ?", workspaceID).
		Order("workspace_members.joined_at ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	members := make([]workspace.Member, 0, len(rows))
	for _, row := range rows {
		members = append(members, workspace.Member{
			ID:          row.ID,
			WorkspaceID: row.WorkspaceID,
			UserID:      row.UserID,
			Username:    row.Username,
			Role:        row.Role,
			JoinedAt:    row.JoinedAt,
		})
	}
	return members, nil
}

// ResolveRole returns the user's role within the workspace. The owner
// resolves to owner without needing a membership row.
func (r *GormWorkspaceRepository) ResolveRole(ctx context.Context, workspaceID, userID int64) (workspace.Role, error) {
	ws, err := r.FindByID(ctx, workspaceID)
	if err != nil {
		return "", err
	}
	if ws.OwnerID == userID {
		return workspace.RoleOwner, nil
	}

	var m models.WorkspaceMemberModel
	if err := r.db.WithContext(ctx).
		Where("workspace_id = ? AND user_id = ?", workspaceID, userID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", shared.ErrNotFound
		}
		return "", err
	}
	return m.Role, nil
}

// AddMember inserts a membership row
func (r *GormWorkspaceRepository) AddMember(ctx context.Context, member *workspace.Member) error {
	var m models.WorkspaceMemberModel
	m.FromDomain(member)
	if m.JoinedAt.IsZero() {
		m.JoinedAt = time.Now()
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	member.ID = m.ID
	member.JoinedAt = m.JoinedAt
	return nil
}

// RemoveMember deletes a membership row
func (r *GormWorkspaceRepository) RemoveMember(ctx context.Context, workspaceID, userID int64) error {
	result := r.db.WithContext(ctx).
		Where("workspace_id = ? AND user_id = ?", workspaceID, userID).
		Delete(&models.WorkspaceMemberModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func toWorkspaces(ms []models.WorkspaceModel) []workspace.Workspace {
	out := make([]workspace.Workspace, 0, len(ms))
	for i := range ms {
		out = append(out, *ms[i].ToDomain())
	}
	return out
}

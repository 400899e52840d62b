package record

import (
	"context"
	"errors"

	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopledger/backend/internal/domain/workspace"
)

// access resolves the actor's role for record operations. Viewers may read;
// editors and above may write.
type access struct {
	workspaceRepo workspace.Repository
}

func (a access) requireMember(ctx context.Context, userID, workspaceID int64) (workspace.Role, error) {
	role, err := a.workspaceRepo.ResolveRole(ctx, workspaceID, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return "", shared.ErrPermissionDenied
		}
		return "", err
	}
	return role, nil
}

func (a access) requireEditor(ctx context.Context, userID, workspaceID int64) error {
	role, err := a.requireMember(ctx, userID, workspaceID)
	if err != nil {
		return err
	}
	if role == workspace.RoleViewer {
		return shared.ErrPermissionDenied
	}
	return nil
}

package workspace

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/shopledger/backend/internal/domain/identity"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopledger/backend/internal/domain/workspace"
)

// Service handles workspace lifecycle and membership operations
type Service struct {
	workspaceRepo workspace.Repository
	userRepo      identity.UserRepository
	logger        *zap.Logger
}

// NewService creates a workspace service
func NewService(workspaceRepo workspace.Repository, userRepo identity.UserRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		workspaceRepo: workspaceRepo,
		userRepo:      userRepo,
		logger:        logger,
	}
}

// Create creates a workspace owned by the requesting user
func (s *Service) Create(ctx context.Context, ownerID int64, req CreateWorkspaceRequest) (*WorkspaceResponse, error) {
	ws, err := workspace.NewWorkspace(ownerID, req.Name, req.Description, workspace.StorageType(req.StorageType))
	if err != nil {
		return nil, err
	}
	if err := s.workspaceRepo.Save(ctx, ws); err != nil {
		return nil, err
	}
	s.logger.Info("workspace created",
		zap.Int64("workspace_id", ws.ID),
		zap.Int64("owner_id", ownerID))
	return toWorkspaceResponse(ws), nil
}

// Get returns a workspace the user has access to
func (s *Service) Get(ctx context.Context, userID, workspaceID int64) (*WorkspaceResponse, error) {
	ws, err := s.workspaceRepo.FindByID(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	if _, err := s.workspaceRepo.ResolveRole(ctx, workspaceID, userID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrPermissionDenied
		}
		return nil, err
	}
	return toWorkspaceResponse(ws), nil
}

// List returns every workspace the user owns or is a member of
func (s *Service) List(ctx context.Context, userID int64) ([]WorkspaceResponse, error) {
	wss, err := s.workspaceRepo.FindAccessible(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]WorkspaceResponse, 0, len(wss))
	for i := range wss {
		out = append(out, *toWorkspaceResponse(&wss[i]))
	}
	return out, nil
}

// Update renames a workspace. Owner only.
func (s *Service) Update(ctx context.Context, userID, workspaceID int64, req UpdateWorkspaceRequest) (*WorkspaceResponse, error) {
	ws, err := s.requireOwner(ctx, userID, workspaceID)
	if err != nil {
		return nil, err
	}
	if err := ws.Rename(req.Name); err != nil {
		return nil, err
	}
	ws.Description = req.Description
	if err := s.workspaceRepo.Save(ctx, ws); err != nil {
		return nil, err
	}
	return toWorkspaceResponse(ws), nil
}

// Delete removes a workspace and everything in it. Owner only.
func (s *Service) Delete(ctx context.Context, userID, workspaceID int64) error {
	if _, err := s.requireOwner(ctx, userID, workspaceID); err != nil {
		return err
	}
	if err := s.workspaceRepo.Delete(ctx, workspaceID); err != nil {
		return err
	}
	s.logger.Info("workspace deleted",
		zap.Int64("workspace_id", workspaceID),
		zap.Int64("user_id", userID))
	return nil
}

// ListMembers returns a workspace's members. Any member may look.
func (s *Service) ListMembers(ctx context.Context, userID, workspaceID int64) ([]MemberResponse, error) {
	if _, err := s.workspaceRepo.ResolveRole(ctx, workspaceID, userID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrPermissionDenied
		}
		return nil, err
	}
	members, err := s.workspaceRepo.FindMembers(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	out := make([]MemberResponse, 0, len(members))
	for _, m := range members {
		out = append(out, toMemberResponse(m))
	}
	return out, nil
}

// AddMember grants a user a role in the workspace. Owner only. The owner
// cannot be added as a member; ownership already outranks every role.
func (s *Service) AddMember(ctx context.Context, userID, workspaceID int64, req AddMemberRequest) (*MemberResponse, error) {
	ws, err := s.requireOwner(ctx, userID, workspaceID)
	if err != nil {
		return nil, err
	}
	role := workspace.Role(req.Role)
	if !workspace.ValidRole(role) || role == workspace.RoleOwner {
		return nil, shared.NewDomainError("INVALID_INPUT", "Role must be admin, editor or viewer")
	}
	if req.UserID == ws.OwnerID {
		return nil, shared.NewDomainError("INVALID_INPUT", "The owner cannot be added as a member")
	}

	user, err := s.userRepo.FindByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	member := &workspace.Member{
		WorkspaceID: workspaceID,
		UserID:      user.ID,
		Username:    user.Username,
		Role:        role,
	}
	if err := s.workspaceRepo.AddMember(ctx, member); err != nil {
		return nil, err
	}

	ws.IsShared = true
	if err := s.workspaceRepo.Save(ctx, ws); err != nil {
		return nil, err
	}

	resp := toMemberResponse(*member)
	return &resp, nil
}

// RemoveMember revokes a user's membership. Owner only.
func (s *Service) RemoveMember(ctx context.Context, userID, workspaceID, memberUserID int64) error {
	if _, err := s.requireOwner(ctx, userID, workspaceID); err != nil {
		return err
	}
	return s.workspaceRepo.RemoveMember(ctx, workspaceID, memberUserID)
}

func (s *Service) requireOwner(ctx context.Context, userID, workspaceID int64) (*workspace.Workspace, error) {
	ws, err := s.workspaceRepo.FindByID(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	if ws.OwnerID != userID {
		return nil, shared.ErrPermissionDenied
	}
	return ws, nil
}

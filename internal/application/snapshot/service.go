package snapshot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/shopledger/backend/internal/domain/identity"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopledger/backend/internal/domain/snapshot"
	"github.com/shopledger/backend/internal/domain/workspace"
	"github.com/shopledger/backend/internal/infrastructure/lock"
)

// Service orchestrates snapshot export and restore. Each call re-resolves
// the actor's role against the destination workspace; nothing is cached
// between the request and the authorization decision.
type Service struct {
	workspaceRepo workspace.Repository
	userRepo      identity.UserRepository
	localStore    snapshot.WorkspaceStore
	remoteStore   snapshot.WorkspaceStore
	restoreLock   lock.RestoreLock
	lockTTL       time.Duration
	version       string
	logger        *zap.Logger
}

// NewService creates a snapshot service
func NewService(
	workspaceRepo workspace.Repository,
	userRepo identity.UserRepository,
	localStore snapshot.WorkspaceStore,
	remoteStore snapshot.WorkspaceStore,
	restoreLock lock.RestoreLock,
	lockTTL time.Duration,
	version string,
	logger *zap.Logger,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if lockTTL <= 0 {
		lockTTL = 5 * time.Minute
	}
	return &Service{
		workspaceRepo: workspaceRepo,
		userRepo:      userRepo,
		localStore:    localStore,
		remoteStore:   remoteStore,
		restoreLock:   restoreLock,
		lockTTL:       lockTTL,
		version:       version,
		logger:        logger,
	}
}

// Export builds a complete snapshot document of the workspace's data with
// producer metadata attached.
func (s *Service) Export(ctx context.Context, userID, workspaceID int64) (*snapshot.Document, error) {
	actor, ws, err := s.resolveActor(ctx, userID, workspaceID)
	if err != nil {
		return nil, err
	}
	if !workspace.CanExport(actor.Role) {
		return nil, shared.ErrPermissionDenied
	}

	store, err := s.storeFor(ws)
	if err != nil {
		return nil, err
	}

	data, err := store.BuildSnapshot(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("build snapshot: %w", err)
	}

	s.logger.Info("workspace exported",
		zap.Int64("workspace_id", workspaceID),
		zap.Int64("user_id", userID))

	return &snapshot.Document{
		ExportInfo: snapshot.ExportInfo{
			Username:      actor.Username,
			WorkspaceName: ws.Name,
			WorkspaceID:   ws.ID,
			ExportTime:    time.Now().UTC(),
			Version:       s.version,
		},
		Data: *data,
	}, nil
}

// Restore atomically replaces the workspace's data with the contents of the
// raw snapshot document. The permission check always runs against a freshly
// resolved role, and only one restore per workspace may run at a time.
func (s *Service) Restore(ctx context.Context, userID, workspaceID int64, raw []byte) (*RestoreResponse, error) {
	actor, ws, err := s.resolveActor(ctx, userID, workspaceID)
	if err != nil {
		return nil, err
	}
	if !workspace.CanRestore(ws.StorageType, actor.Role) {
		s.logger.Warn("restore denied",
			zap.Int64("workspace_id", workspaceID),
			zap.Int64("user_id", userID),
			zap.String("role", string(actor.Role)))
		return nil, shared.ErrPermissionDenied
	}

	doc, err := snapshot.Parse(raw)
	if err != nil {
		return nil, err
	}

	warnings := sourceWarningMessages(doc, ws, actor.Username)

	store, err := s.storeFor(ws)
	if err != nil {
		return nil, err
	}

	acquired, err := s.restoreLock.Acquire(ctx, workspaceID, s.lockTTL)
	if err != nil {
		return nil, fmt.Errorf("acquire restore lock: %w", err)
	}
	if !acquired {
		return nil, shared.ErrRestoreInProgress
	}
	defer func() {
		if err := s.restoreLock.Release(context.WithoutCancel(ctx), workspaceID); err != nil {
			s.logger.Warn("failed to release restore lock",
				zap.Int64("workspace_id", workspaceID),
				zap.Error(err))
		}
	}()

	result, err := store.WipeAndRestore(ctx, actor, doc)
	if err != nil {
		var domainErr *shared.DomainError
		if errors.As(err, &domainErr) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", shared.ErrStoreFailure, err)
	}

	if result.AuditWriteFailed {
		warnings = append(warnings, "The restore succeeded but its audit log entry could not be written.")
	}
	return newRestoreResponse(result, warnings), nil
}

// resolveActor loads the workspace, the user and the user's current role.
// A missing workspace or user maps to SOURCE_UNAVAILABLE; a user with no
// access to the workspace maps to PERMISSION_DENIED.
func (s *Service) resolveActor(ctx context.Context, userID, workspaceID int64) (workspace.ActorContext, *workspace.Workspace, error) {
	ws, err := s.workspaceRepo.FindByID(ctx, workspaceID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return workspace.ActorContext{}, nil, shared.ErrSourceUnavailable
		}
		return workspace.ActorContext{}, nil, err
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return workspace.ActorContext{}, nil, shared.ErrSourceUnavailable
		}
		return workspace.ActorContext{}, nil, err
	}

	role, err := s.workspaceRepo.ResolveRole(ctx, workspaceID, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return workspace.ActorContext{}, nil, shared.ErrPermissionDenied
		}
		return workspace.ActorContext{}, nil, err
	}

	return workspace.ActorContext{
		UserID:      user.ID,
		Username:    user.Username,
		WorkspaceID: ws.ID,
		Role:        role,
	}, ws, nil
}

func (s *Service) storeFor(ws *workspace.Workspace) (snapshot.WorkspaceStore, error) {
	switch ws.StorageType {
	case workspace.StorageLocal:
		return s.localStore, nil
	case workspace.StorageServer:
		if s.remoteStore == nil {
			return nil, shared.ErrSourceUnavailable
		}
		return s.remoteStore, nil
	default:
		return nil, shared.NewDomainError("INVALID_INPUT",
			fmt.Sprintf("Workspace has unknown storage type %q", ws.StorageType))
	}
}

func sourceWarningMessages(doc *snapshot.Document, ws *workspace.Workspace, username string) []string {
	mismatches := snapshot.SourceMismatch(doc, ws.ID, ws.Name, username)
	if len(mismatches) == 0 {
		return nil
	}
	warnings := make([]string, 0, len(mismatches))
	for _, m := range mismatches {
		warnings = append(warnings, fmt.Sprintf(
			"Snapshot %s %q does not match this workspace's %q; the import will overwrite this workspace's data anyway.",
			m.Field, m.Actual, m.Expected))
	}
	return warnings
}

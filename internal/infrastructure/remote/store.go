package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopledger/backend/internal/domain/snapshot"
	"github.com/shopledger/backend/internal/domain/workspace"
	"github.com/shopledger/backend/internal/infrastructure/config"
)

const (
	workspaceDataPath    = "/internal/v1/workspaces/%d/data"
	workspaceRestorePath = "/internal/v1/workspaces/%d/restore"
)

// WorkspaceStore implements snapshot.WorkspaceStore against the remote data
// service. The remote side owns the rows of server-backed workspaces and is
// trusted to apply the same atomic replace semantics as the local store.
type WorkspaceStore struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewWorkspaceStore creates a remote store from configuration
func NewWorkspaceStore(cfg *config.RemoteStoreConfig, logger *zap.Logger) *WorkspaceStore {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WorkspaceStore{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// restoreRequest is the wire form of a restore delegation.
type restoreRequest struct {
	UserID   int64              `json:"userId"`
	Username string             `json:"username"`
	Role     workspace.Role     `json:"role"`
	Document *snapshot.Document `json:"document"`
}

// BuildSnapshot fetches every entity of the workspace from the remote service
func (s *WorkspaceStore) BuildSnapshot(ctx context.Context, workspaceID int64) (*snapshot.Data, error) {
	respBody, err := s.doRequest(ctx, http.MethodGet, fmt.Sprintf(workspaceDataPath, workspaceID), nil)
	if err != nil {
		return nil, err
	}

	var data snapshot.Data
	if err := json.Unmarshal(respBody, &data); err != nil {
		return nil, fmt.Errorf("%w: malformed remote data response: %v", shared.ErrSourceUnavailable, err)
	}
	return &data, nil
}

// WipeAndRestore delegates the atomic replace to the remote service
func (s *WorkspaceStore) WipeAndRestore(ctx context.Context, actor workspace.ActorContext, doc *snapshot.Document) (*snapshot.RestoreResult, error) {
	body, err := json.Marshal(restoreRequest{
		UserID:   actor.UserID,
		Username: actor.Username,
		Role:     actor.Role,
		Document: doc,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal restore request: %w", err)
	}

	respBody, err := s.doRequest(ctx, http.MethodPost, fmt.Sprintf(workspaceRestorePath, actor.WorkspaceID), body)
	if err != nil {
		return nil, err
	}

	var result snapshot.RestoreResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("%w: malformed remote restore response: %v", shared.ErrStoreFailure, err)
	}
	return &result, nil
}

func (s *WorkspaceStore) doRequest(ctx context.Context, method, path string, body []byte) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		reqBody = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create remote store request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read remote response: %v", shared.ErrSourceUnavailable, err)
	}

	if resp.StatusCode >= 400 {
		s.logger.Warn("remote store request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode))
		if resp.StatusCode >= 500 {
			return nil, fmt.Errorf("%w: remote store returned %d", shared.ErrSourceUnavailable, resp.StatusCode)
		}
		return nil, fmt.Errorf("%w: remote store returned %d", shared.ErrStoreFailure, resp.StatusCode)
	}
	return respBody, nil
}

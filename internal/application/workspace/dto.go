package workspace

import (
	"time"

	"github.com/shopledger/backend/internal/domain/workspace"
)

// CreateWorkspaceRequest carries the fields for creating a workspace.
type CreateWorkspaceRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	StorageType string `json:"storageType"`
}

// UpdateWorkspaceRequest carries the mutable workspace fields.
type UpdateWorkspaceRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// AddMemberRequest carries the fields for adding a workspace member.
type AddMemberRequest struct {
	UserID int64  `json:"userId" binding:"required"`
	Role   string `json:"role" binding:"required"`
}

// WorkspaceResponse is the API shape of a workspace.
type WorkspaceResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	OwnerID     int64     `json:"ownerId"`
	StorageType string    `json:"storageType"`
	IsShared    bool      `json:"isShared"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// MemberResponse is the API shape of a workspace member.
type MemberResponse struct {
	ID       int64     `json:"id"`
	UserID   int64     `json:"userId"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joinedAt"`
}

func toWorkspaceResponse(ws *workspace.Workspace) *WorkspaceResponse {
	return &WorkspaceResponse{
		ID:          ws.ID,
		Name:        ws.Name,
		Description: ws.Description,
		OwnerID:     ws.OwnerID,
		StorageType: string(ws.StorageType),
		IsShared:    ws.IsShared,
		CreatedAt:   ws.CreatedAt,
		UpdatedAt:   ws.UpdatedAt,
	}
}

func toMemberResponse(m workspace.Member) MemberResponse {
	return MemberResponse{
		ID:       m.ID,
		UserID:   m.UserID,
		Username: m.Username,
		Role:     string(m.Role),
		JoinedAt: m.JoinedAt,
	}
}

package handler

import (
	"github.com/gin-gonic/gin"

	workspaceapp "github.com/shopledger/backend/internal/application/workspace"
)

// WorkspaceHandler exposes workspace lifecycle and membership endpoints
type WorkspaceHandler struct {
	BaseHandler
	service *workspaceapp.Service
}

// NewWorkspaceHandler creates a workspace handler
func NewWorkspaceHandler(service *workspaceapp.Service) *WorkspaceHandler {
	return &WorkspaceHandler{service: service}
}

// Create handles POST /api/v1/workspaces
func (h *WorkspaceHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, err.Error())
		return
	}
	var req workspaceapp.CreateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	resp, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// List handles GET /api/v1/workspaces
func (h *WorkspaceHandler) List(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, err.Error())
		return
	}
	resp, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Get handles GET /api/v1/workspaces/:workspaceId
func (h *WorkspaceHandler) Get(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, err.Error())
		return
	}
	workspaceID, err := getWorkspaceID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	resp, err := h.service.Get(c.Request.Context(), userID, workspaceID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update handles PUT /api/v1/workspaces/:workspaceId
func (h *WorkspaceHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, err.Error())
		return
	}
	workspaceID, err := getWorkspaceID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	var req workspaceapp.UpdateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	resp, err := h.service.Update(c.Request.Context(), userID, workspaceID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete handles DELETE /api/v1/workspaces/:workspaceId
func (h *WorkspaceHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, err.Error())
		return
	}
	workspaceID, err := getWorkspaceID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if err := h.service.Delete(c.Request.Context(), userID, workspaceID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListMembers handles GET /api/v1/workspaces/:workspaceId/members
func (h *WorkspaceHandler) ListMembers(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, err.Error())
		return
	}
	workspaceID, err := getWorkspaceID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	resp, err := h.service.ListMembers(c.Request.Context(), userID, workspaceID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// AddMember handles POST /api/v1/workspaces/:workspaceId/members
func (h *WorkspaceHandler) AddMember(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, err.Error())
		return
	}
	workspaceID, err := getWorkspaceID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	var req workspaceapp.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	resp, err := h.service.AddMember(c.Request.Context(), userID, workspaceID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// RemoveMember handles DELETE /api/v1/workspaces/:workspaceId/members/:id
func (h *WorkspaceHandler) RemoveMember(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, err.Error())
		return
	}
	workspaceID, err := getWorkspaceID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	memberUserID, err := getPathID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if err := h.service.RemoveMember(c.Request.Context(), userID, workspaceID, memberUserID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

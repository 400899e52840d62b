package handler

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	snapshotapp "github.com/shopledger/backend/internal/application/snapshot"
	"github.com/shopledger/backend/internal/interfaces/http/dto"
)

// SnapshotHandler exposes the snapshot export and import endpoints
type SnapshotHandler struct {
	BaseHandler
	service *snapshotapp.Service
}

// NewSnapshotHandler creates a snapshot handler
func NewSnapshotHandler(service *snapshotapp.Service) *SnapshotHandler {
	return &SnapshotHandler{service: service}
}

// Export handles GET /api/v1/workspaces/:workspaceId/export-data
// The document is returned as a JSON file attachment.
func (h *SnapshotHandler) Export(c *gin.Context) {
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

	doc, err := h.service.Export(c.Request.Context(), userID, workspaceID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	filename := fmt.Sprintf("workspace-%d-%s.json", workspaceID, time.Now().Format("20060102-150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.JSON(http.StatusOK, doc)
}

// Import handles POST /api/v1/workspaces/:workspaceId/import-data
// The body is the raw snapshot document. Validation, permission checks and
// the atomic replace all happen inside the service.
func (h *SnapshotHandler) Import(c *gin.Context) {
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

	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidJSON, "Failed to read request body")
		return
	}
	if len(raw) == 0 {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidJSON, "Request body is empty")
		return
	}

	resp, err := h.service.Restore(c.Request.Context(), userID, workspaceID, raw)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

package handler

import (
	"github.com/gin-gonic/gin"

	auditapp "github.com/shopledger/backend/internal/application/audit"
)

// AuditHandler exposes the workspace audit log
type AuditHandler struct {
	BaseHandler
	service *auditapp.Service
}

// NewAuditHandler creates an audit handler
func NewAuditHandler(service *auditapp.Service) *AuditHandler {
	return &AuditHandler{service: service}
}

// List handles GET /api/v1/workspaces/:workspaceId/audit-logs
func (h *AuditHandler) List(c *gin.Context) {
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

	var q auditapp.ListQuery
	_ = c.ShouldBindQuery(&q)

	page, err := h.service.List(c.Request.Context(), userID, workspaceID, q)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

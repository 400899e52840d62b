package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shopledger/backend/internal/domain/identity"
	"github.com/shopledger/backend/internal/infrastructure/auth"
)

// TokenRequest carries the fields for a token exchange. Credential
// verification happens at the front door before requests reach this
// service, so only the identity is exchanged here.
type TokenRequest struct {
	Username string `json:"username" binding:"required"`
}

// TokenResponse carries an issued access token.
type TokenResponse struct {
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
	UserID      int64     `json:"userId"`
	Username    string    `json:"username"`
}

// AuthHandler exchanges a verified identity for an access token
type AuthHandler struct {
	BaseHandler
	userRepo   identity.UserRepository
	jwtService *auth.JWTService
}

// NewAuthHandler creates an auth handler
func NewAuthHandler(userRepo identity.UserRepository, jwtService *auth.JWTService) *AuthHandler {
	return &AuthHandler{userRepo: userRepo, jwtService: jwtService}
}

// Token issues an access token for a known user
// POST /api/v1/auth/token
func (h *AuthHandler) Token(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "username is required")
		return
	}

	user, err := h.userRepo.FindByUsername(c.Request.Context(), req.Username)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	token, expiresAt, err := h.jwtService.GenerateToken(user.ID, user.Username)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, TokenResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		UserID:      user.ID,
		Username:    user.Username,
	})
}

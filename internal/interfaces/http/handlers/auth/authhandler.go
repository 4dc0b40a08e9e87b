// Package auth exposes the token endpoints. Callers are pre-provisioned API
// clients (gate terminals, the resident app backend, the admin console); the
// service has no user self-registration.
package auth

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	infraauth "portico/internal/infrastructure/auth"
	"portico/internal/shared/config"
	"portico/internal/shared/errors"
	"portico/internal/shared/identity"
	"portico/internal/shared/logger"
	"portico/internal/shared/utils"
)

type LoginRequest struct {
	ClientID uint   `json:"client_id" binding:"required"`
	Secret   string `json:"secret" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

// Handler issues and refreshes JWT token pairs.
type Handler struct {
	jwtService *infraauth.JWTService
	clients    []config.ClientCredential
	logger     logger.Interface
}

func NewHandler(jwtService *infraauth.JWTService, clients []config.ClientCredential, logger logger.Interface) *Handler {
	return &Handler{
		jwtService: jwtService,
		clients:    clients,
		logger:     logger,
	}
}

// Login handles POST /auth/login. It exchanges a configured client secret
// for a token pair.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	client, ok := h.findClient(req.ClientID, req.Secret)
	if !ok {
		h.logger.Warnw("login rejected", "client_id", req.ClientID, "client_ip", c.ClientIP())
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("invalid client credentials"))
		return
	}

	role := identity.Role(client.Role)
	if !role.IsValid() {
		h.logger.Errorw("configured client has unknown role", "client_id", client.ID, "role", client.Role)
		utils.ErrorResponseWithError(c, errors.NewInternalError("client misconfigured"))
		return
	}

	pair, err := h.jwtService.Generate(client.ID, role)
	if err != nil {
		h.logger.Errorw("failed to generate token pair", "client_id", client.ID, "error", err)
		utils.ErrorResponseWithError(c, errors.NewInternalError("failed to issue tokens"))
		return
	}

	h.logger.Infow("client authenticated", "client_id", client.ID, "role", client.Role)
	utils.SuccessResponse(c, http.StatusOK, "", tokenResponse(pair))
}

// Refresh handles POST /auth/refresh. The returned refresh token replaces
// the presented one.
func (h *Handler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	pair, err := h.jwtService.Refresh(req.RefreshToken)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("invalid refresh token"))
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", tokenResponse(pair))
}

func (h *Handler) findClient(id uint, secret string) (config.ClientCredential, bool) {
	for _, client := range h.clients {
		if client.ID != id {
			continue
		}
		if subtle.ConstantTimeCompare([]byte(client.Secret), []byte(secret)) == 1 {
			return client, true
		}
		return config.ClientCredential{}, false
	}
	return config.ClientCredential{}, false
}

func tokenResponse(pair *infraauth.TokenPair) TokenResponse {
	return TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    pair.ExpiresIn,
	}
}

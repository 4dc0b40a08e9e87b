package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"portico/internal/infrastructure/auth"
	"portico/internal/shared/constants"
	"portico/internal/shared/identity"
	"portico/internal/shared/logger"
	"portico/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

// RequireAuth verifies the bearer token and stores the resolved Actor on the
// request context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		if claims.TokenType != auth.TokenTypeAccess {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid token type")
			c.Abort()
			return
		}

		actor, err := identity.NewActor(claims.UserID, claims.Role)
		if err != nil {
			m.logger.Warnw("token carried invalid identity", "user_id", claims.UserID, "role", claims.Role)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid token identity")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyActor, actor)
		c.Set(constants.ContextKeyUserID, actor.UserID)
		c.Set(constants.ContextKeyUserRole, string(actor.Role))

		c.Next()
	}
}

// RequireRole restricts a route to actors holding one of the given roles.
// Must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(roles ...identity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFromContext(c)
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		if !actor.Can(roles...) {
			utils.ErrorResponse(c, http.StatusForbidden, "insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// ActorFromContext retrieves the authenticated actor set by RequireAuth.
func ActorFromContext(c *gin.Context) (identity.Actor, bool) {
	v, exists := c.Get(constants.ContextKeyActor)
	if !exists {
		return identity.Actor{}, false
	}
	actor, ok := v.(identity.Actor)
	if !ok || actor.IsZero() {
		return identity.Actor{}, false
	}
	return actor, true
}

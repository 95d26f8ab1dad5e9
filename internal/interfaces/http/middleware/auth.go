package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"haitch/internal/infrastructure/auth"
	"haitch/internal/shared/constants"
	"haitch/internal/shared/errors"
	"haitch/internal/shared/logger"
	"haitch/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, log logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     log,
	}
}

// RequireAuth verifies the Bearer token and stores the user identity on the
// request context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("missing authorization token"))
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("invalid authorization header format"))
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("invalid or expired token"))
			c.Abort()
			return
		}

		if claims.TokenType != auth.TokenTypeAccess {
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("invalid token type"))
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Set(constants.ContextKeyUserRole, string(claims.Role))

		c.Next()
	}
}

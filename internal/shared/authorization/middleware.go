package authorization

import (
	"github.com/gin-gonic/gin"

	"haitch/internal/shared/constants"
	"haitch/internal/shared/errors"
	"haitch/internal/shared/utils"
)

// RequireAdmin aborts the request unless the authenticated user carries the
// admin role. It expects the auth middleware to have run first.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		roleValue, exists := c.Get(constants.ContextKeyUserRole)
		if !exists {
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("authentication required"))
			c.Abort()
			return
		}

		role, ok := roleValue.(UserRole)
		if !ok {
			role = ParseUserRole(roleValue.(string))
		}

		if !role.IsAdmin() {
			utils.ErrorResponseWithError(c, errors.NewForbiddenError("admin privileges required"))
			c.Abort()
			return
		}

		c.Next()
	}
}

// CanAccessResourceByOwnerID reports whether the current user may access a
// resource owned by ownerID. Admins may access everything.
func CanAccessResourceByOwnerID(c *gin.Context, ownerID uint) bool {
	roleValue, exists := c.Get(constants.ContextKeyUserRole)
	if exists {
		if role, ok := roleValue.(UserRole); ok && role.IsAdmin() {
			return true
		}
		if s, ok := roleValue.(string); ok && ParseUserRole(s).IsAdmin() {
			return true
		}
	}

	userIDValue, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return false
	}
	userID, ok := userIDValue.(uint)
	if !ok {
		return false
	}
	return userID == ownerID
}

package middleware

import (
	"net"
	"os"
	"runtime/debug"
	"strings"

	"github.com/gin-gonic/gin"

	"haitch/internal/shared/errors"
	"haitch/internal/shared/logger"
	"haitch/internal/shared/utils"
)

func Recovery(log logger.Interface) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		if isBrokenConnection(recovered) {
			log.Errorw("connection broken during request",
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
				"error", recovered)
			c.Abort()
			return
		}

		log.Errorw("panic recovered",
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"client_ip", c.ClientIP(),
			"error", recovered,
			"stack", string(debug.Stack()))

		utils.ErrorResponseWithError(c, errors.NewInternalError("internal server error occurred"))
		c.Abort()
	})
}

// isBrokenConnection reports whether the recovered value is a client
// disconnect rather than a real panic.
func isBrokenConnection(err interface{}) bool {
	brokenMessages := []string{
		"connection reset by peer",
		"broken pipe",
		"connection refused",
	}

	ne, ok := err.(*net.OpError)
	if !ok {
		return false
	}
	se, ok := ne.Err.(*os.SyscallError)
	if !ok {
		return false
	}

	errStr := strings.ToLower(se.Error())
	for _, s := range brokenMessages {
		if strings.Contains(errStr, s) {
			return true
		}
	}
	return false
}

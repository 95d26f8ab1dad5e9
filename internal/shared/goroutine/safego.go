// Package goroutine wraps fire-and-forget goroutines with panic recovery.
package goroutine

import (
	"runtime/debug"

	"haitch/internal/shared/logger"
)

// SafeGo runs fn on a new goroutine. A panic in fn is logged with its stack
// under the given name instead of taking the process down; best-effort work
// like post-commit knowledge uploads must never crash the API.
func SafeGo(log logger.Interface, name string, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("goroutine panicked",
					"goroutine", name,
					"panic", r,
					"stack", string(debug.Stack()),
				)
			}
		}()
		fn()
	}()
}

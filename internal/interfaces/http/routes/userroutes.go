package routes

import (
	"github.com/gin-gonic/gin"

	userhandlers "haitch/internal/interfaces/http/handlers/user"
	"haitch/internal/interfaces/http/middleware"
	"haitch/internal/shared/authorization"
)

// UserRouteConfig holds dependencies for authentication and user management routes.
type UserRouteConfig struct {
	UserHandler    *userhandlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupUserRoutes configures authentication and user management routes.
func SetupUserRoutes(engine *gin.Engine, cfg *UserRouteConfig) {
	auth := engine.Group("/auth")
	{
		auth.POST("/login", cfg.UserHandler.Login)
	}

	users := engine.Group("/users")
	users.Use(cfg.AuthMiddleware.RequireAuth())
	{
		// Collection operations (no ID parameter)
		users.POST("", authorization.RequireAdmin(), cfg.UserHandler.Register)
		users.GET("", authorization.RequireAdmin(), cfg.UserHandler.ListUsers)

		// Specific named endpoints (must come BEFORE /:id to avoid conflicts)
		users.GET("/me", cfg.UserHandler.GetCurrentUser)

		// Generic parameterized routes (must come LAST)
		users.GET("/:id", authorization.RequireAdmin(), cfg.UserHandler.GetUser)
		users.PUT("/:id", authorization.RequireAdmin(), cfg.UserHandler.UpdateUser)
		users.DELETE("/:id", authorization.RequireAdmin(), cfg.UserHandler.DeleteUser)
	}
}

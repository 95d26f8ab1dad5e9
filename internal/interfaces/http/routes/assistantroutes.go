package routes

import (
	"github.com/gin-gonic/gin"

	assistanthandlers "haitch/internal/interfaces/http/handlers/assistant"
	"haitch/internal/interfaces/http/middleware"
)

// AssistantRouteConfig holds dependencies for the assistant chat routes.
type AssistantRouteConfig struct {
	AssistantHandler    *assistanthandlers.AssistantHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
}

// SetupAssistantRoutes configures the assistant routes. Both endpoints are
// metered: chat reaches the remote model, and question intake feeds the
// knowledge upload pipeline.
func SetupAssistantRoutes(engine *gin.Engine, cfg *AssistantRouteConfig) {
	assistant := engine.Group("/assistant")
	assistant.Use(cfg.AuthMiddleware.RequireAuth(), cfg.RateLimitMiddleware.Limit())
	{
		assistant.POST("/chat", cfg.AssistantHandler.Chat)
		assistant.POST("/questions", cfg.AssistantHandler.AskQuestion)
	}
}

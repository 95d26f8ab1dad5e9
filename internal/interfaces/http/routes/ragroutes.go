package routes

import (
	"github.com/gin-gonic/gin"

	raghandlers "haitch/internal/interfaces/http/handlers/rag"
	"haitch/internal/interfaces/http/middleware"
	"haitch/internal/shared/authorization"
)

// KnowledgeRouteConfig holds dependencies for the knowledge base routes.
type KnowledgeRouteConfig struct {
	KnowledgeHandler *raghandlers.KnowledgeHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// SetupKnowledgeRoutes configures the knowledge base administration routes.
func SetupKnowledgeRoutes(engine *gin.Engine, cfg *KnowledgeRouteConfig) {
	knowledge := engine.Group("/knowledge")
	knowledge.Use(cfg.AuthMiddleware.RequireAuth(), authorization.RequireAdmin())
	{
		questions := knowledge.Group("/questions")
		{
			questions.POST("", cfg.KnowledgeHandler.CreateQuestion)
			questions.GET("", cfg.KnowledgeHandler.ListQuestions)
			questions.GET("/:id", cfg.KnowledgeHandler.GetQuestion)
			questions.PUT("/:id", cfg.KnowledgeHandler.UpdateQuestion)
			questions.DELETE("/:id", cfg.KnowledgeHandler.DeleteQuestion)
		}

		documents := knowledge.Group("/documents")
		{
			documents.POST("", cfg.KnowledgeHandler.UploadDocument)
			documents.GET("", cfg.KnowledgeHandler.ListDocuments)
			documents.DELETE("/:id", cfg.KnowledgeHandler.DeleteDocument)
		}
	}
}

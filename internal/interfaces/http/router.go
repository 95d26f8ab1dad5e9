package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"haitch/internal/interfaces/http/middleware"
	"haitch/internal/interfaces/http/routes"
)

// SetupRoutes registers global middlewares and all route groups.
func (c *Container) SetupRoutes() {
	c.engine.Use(
		middleware.Logger(c.log),
		middleware.Recovery(c.log),
		middleware.CORS(c.cfg.Server.AllowedOrigins),
	)

	c.engine.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupUserRoutes(c.engine, &routes.UserRouteConfig{
		UserHandler:    c.hdlrs.userHandler,
		AuthMiddleware: c.authMiddleware,
	})

	routes.SetupTicketRoutes(c.engine, &routes.TicketRouteConfig{
		TicketHandler:  c.hdlrs.ticketHandler,
		AuthMiddleware: c.authMiddleware,
	})

	routes.SetupCatalogRoutes(c.engine, &routes.CatalogRouteConfig{
		CatalogHandler: c.hdlrs.catalogHandler,
		AuthMiddleware: c.authMiddleware,
	})

	routes.SetupKnowledgeRoutes(c.engine, &routes.KnowledgeRouteConfig{
		KnowledgeHandler: c.hdlrs.knowledgeHandler,
		AuthMiddleware:   c.authMiddleware,
	})

	routes.SetupSurveyRoutes(c.engine, &routes.SurveyRouteConfig{
		SurveyHandler:  c.hdlrs.surveyHandler,
		AuthMiddleware: c.authMiddleware,
	})

	routes.SetupAssistantRoutes(c.engine, &routes.AssistantRouteConfig{
		AssistantHandler:    c.hdlrs.assistantHandler,
		AuthMiddleware:      c.authMiddleware,
		RateLimitMiddleware: c.rateLimitMiddleware,
	})

	routes.SetupWeChatRoutes(c.engine, &routes.WeChatRouteConfig{
		WeChatHandler: c.hdlrs.wechatHandler,
	})
}

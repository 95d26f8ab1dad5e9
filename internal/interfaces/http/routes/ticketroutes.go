package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "haitch/internal/interfaces/http/handlers/ticket"
	"haitch/internal/interfaces/http/middleware"
	"haitch/internal/shared/authorization"
)

type TicketRouteConfig struct {
	TicketHandler  *tickethandlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, cfg *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(cfg.AuthMiddleware.RequireAuth())
	{
		// Collection operations (no ID parameter)
		tickets.POST("", cfg.TicketHandler.CreateTicket)
		tickets.GET("", cfg.TicketHandler.ListTickets)

		// Specific named endpoints (must come BEFORE /:id to avoid conflicts)
		tickets.GET("/mine", cfg.TicketHandler.ListMyTickets)
		tickets.GET("/search", cfg.TicketHandler.SearchTickets)
		tickets.GET("/attachments/:id", cfg.TicketHandler.DownloadAttachment)

		// Generic parameterized routes (must come LAST)
		tickets.GET("/:id", cfg.TicketHandler.GetTicket)
		tickets.PUT("/:id", cfg.TicketHandler.UpdateTicket)
		tickets.DELETE("/:id", authorization.RequireAdmin(), cfg.TicketHandler.DeleteTicket)
	}
}

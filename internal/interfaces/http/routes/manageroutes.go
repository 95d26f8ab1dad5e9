package routes

import (
	"github.com/gin-gonic/gin"

	managehandlers "haitch/internal/interfaces/http/handlers/manage"
	"haitch/internal/interfaces/http/middleware"
	"haitch/internal/shared/authorization"
)

// CatalogRouteConfig holds dependencies for the device-model and customer catalog routes.
type CatalogRouteConfig struct {
	CatalogHandler *managehandlers.CatalogHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupCatalogRoutes configures the catalog routes. Lists stay readable by any
// authenticated user so the ticket form can offer them; mutations are admin only.
func SetupCatalogRoutes(engine *gin.Engine, cfg *CatalogRouteConfig) {
	manage := engine.Group("/manage")
	manage.Use(cfg.AuthMiddleware.RequireAuth())
	{
		deviceModels := manage.Group("/device-models")
		{
			deviceModels.GET("", cfg.CatalogHandler.ListDeviceModels)
			deviceModels.POST("", authorization.RequireAdmin(), cfg.CatalogHandler.CreateDeviceModel)
			deviceModels.PUT("/:id", authorization.RequireAdmin(), cfg.CatalogHandler.RenameDeviceModel)
			deviceModels.DELETE("/:id", authorization.RequireAdmin(), cfg.CatalogHandler.DeleteDeviceModel)
		}

		customers := manage.Group("/customers")
		{
			customers.GET("", cfg.CatalogHandler.ListCustomers)
			customers.POST("", authorization.RequireAdmin(), cfg.CatalogHandler.CreateCustomer)
			customers.PUT("/:id", authorization.RequireAdmin(), cfg.CatalogHandler.RenameCustomer)
			customers.DELETE("/:id", authorization.RequireAdmin(), cfg.CatalogHandler.DeleteCustomer)
		}
	}
}

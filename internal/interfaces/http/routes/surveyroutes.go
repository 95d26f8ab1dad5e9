package routes

import (
	"github.com/gin-gonic/gin"

	surveyhandlers "haitch/internal/interfaces/http/handlers/survey"
	"haitch/internal/interfaces/http/middleware"
	"haitch/internal/shared/authorization"
)

// SurveyRouteConfig holds dependencies for the survey routes.
type SurveyRouteConfig struct {
	SurveyHandler  *surveyhandlers.SurveyHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupSurveyRoutes configures survey routes. Reading a survey and submitting
// a response stay public so respondents do not need an account; everything
// else is admin only.
func SetupSurveyRoutes(engine *gin.Engine, cfg *SurveyRouteConfig) {
	surveys := engine.Group("/surveys")
	admin := []gin.HandlerFunc{cfg.AuthMiddleware.RequireAuth(), authorization.RequireAdmin()}
	{
		// Collection operations (no ID parameter)
		surveys.POST("", append(admin, cfg.SurveyHandler.CreateSurvey)...)
		surveys.GET("", append(admin, cfg.SurveyHandler.ListSurveys)...)

		// Specific action endpoints (must come BEFORE /:id to avoid conflicts)
		surveys.POST("/:id/publish", append(admin, cfg.SurveyHandler.PublishSurvey)...)
		surveys.POST("/:id/close", append(admin, cfg.SurveyHandler.CloseSurvey)...)
		surveys.POST("/:id/responses", cfg.SurveyHandler.SubmitResponse)
		surveys.GET("/:id/responses", append(admin, cfg.SurveyHandler.ListResponses)...)

		// Generic parameterized routes (must come LAST)
		surveys.GET("/:id", cfg.SurveyHandler.GetSurvey)
		surveys.PUT("/:id", append(admin, cfg.SurveyHandler.UpdateSurvey)...)
		surveys.DELETE("/:id", append(admin, cfg.SurveyHandler.DeleteSurvey)...)
	}
}

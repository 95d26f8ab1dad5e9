package survey

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"haitch/internal/application/survey/usecases"
	"haitch/internal/shared/errors"
	"haitch/internal/shared/logger"
	"haitch/internal/shared/utils"
)

// Use case interfaces for SurveyHandler - enables unit testing with mocks.

type surveyUseCases interface {
	Create(ctx context.Context, cmd usecases.SurveyCommand) (*usecases.SurveyDetail, error)
	Update(ctx context.Context, id uint, cmd usecases.SurveyCommand) (*usecases.SurveyDetail, error)
	Get(ctx context.Context, id uint) (*usecases.SurveyDetail, error)
	List(ctx context.Context, page, pageSize int) (*usecases.ListSurveysResult, error)
	Delete(ctx context.Context, id uint) error
	Publish(ctx context.Context, id uint) (*usecases.SurveyDetail, error)
	Close(ctx context.Context, id uint) (*usecases.SurveyDetail, error)
}

type responseUseCases interface {
	Submit(ctx context.Context, cmd usecases.SubmitResponseCommand) (*usecases.ResponseDetail, error)
	ListBySurvey(ctx context.Context, surveyID uint, page, pageSize int) (*usecases.ListResponsesResult, error)
}

type SurveyHandler struct {
	surveys   surveyUseCases
	responses responseUseCases
	logger    logger.Interface
}

func NewSurveyHandler(surveys surveyUseCases, responses responseUseCases, log logger.Interface) *SurveyHandler {
	return &SurveyHandler{
		surveys:   surveys,
		responses: responses,
		logger:    log,
	}
}

// CreateSurvey handles POST /surveys
func (h *SurveyHandler) CreateSurvey(c *gin.Context) {
	var req SurveyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.surveys.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, result)
}

// UpdateSurvey handles PUT /surveys/:id
func (h *SurveyHandler) UpdateSurvey(c *gin.Context) {
	surveyID, err := parseSurveyID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SurveyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.surveys.Update(c.Request.Context(), surveyID, req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// GetSurvey handles GET /surveys/:id
func (h *SurveyHandler) GetSurvey(c *gin.Context) {
	surveyID, err := parseSurveyID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.surveys.Get(c.Request.Context(), surveyID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// ListSurveys handles GET /surveys
func (h *SurveyHandler) ListSurveys(c *gin.Context) {
	p := utils.GetPagination(c)

	result, err := h.surveys.List(c.Request.Context(), p.Page, p.PageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Surveys, result.Total, p.Page, p.PageSize)
}

// DeleteSurvey handles DELETE /surveys/:id
func (h *SurveyHandler) DeleteSurvey(c *gin.Context) {
	surveyID, err := parseSurveyID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.surveys.Delete(c.Request.Context(), surveyID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponseWithMessage(c, http.StatusOK, "survey deleted", nil)
}

// PublishSurvey handles POST /surveys/:id/publish
func (h *SurveyHandler) PublishSurvey(c *gin.Context) {
	surveyID, err := parseSurveyID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.surveys.Publish(c.Request.Context(), surveyID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// CloseSurvey handles POST /surveys/:id/close
func (h *SurveyHandler) CloseSurvey(c *gin.Context) {
	surveyID, err := parseSurveyID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.surveys.Close(c.Request.Context(), surveyID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// SubmitResponse handles POST /surveys/:id/responses
func (h *SurveyHandler) SubmitResponse(c *gin.Context) {
	surveyID, err := parseSurveyID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SubmitResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.responses.Submit(c.Request.Context(), req.ToCommand(surveyID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, result)
}

// ListResponses handles GET /surveys/:id/responses
func (h *SurveyHandler) ListResponses(c *gin.Context) {
	surveyID, err := parseSurveyID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	p := utils.GetPagination(c)

	result, err := h.responses.ListBySurvey(c.Request.Context(), surveyID, p.Page, p.PageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Responses, result.Total, p.Page, p.PageSize)
}

func parseSurveyID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, errors.NewValidationError("invalid survey id")
	}
	return uint(id), nil
}

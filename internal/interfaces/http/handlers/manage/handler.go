package manage

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"haitch/internal/application/catalog/usecases"
	"haitch/internal/shared/errors"
	"haitch/internal/shared/logger"
	"haitch/internal/shared/utils"
)

// Use case interfaces for CatalogHandler - enables unit testing with mocks.

type deviceModelUseCases interface {
	Create(ctx context.Context, name string) (*usecases.DeviceModelDetail, error)
	Rename(ctx context.Context, id uint, name string) (*usecases.DeviceModelDetail, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*usecases.DeviceModelDetail, error)
}

type customerUseCases interface {
	Create(ctx context.Context, name string) (*usecases.CustomerDetail, error)
	Rename(ctx context.Context, id uint, name string) (*usecases.CustomerDetail, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*usecases.CustomerDetail, error)
}

type NameRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// CatalogHandler manages the device model and customer reference lists used
// when filing tickets.
type CatalogHandler struct {
	deviceModels deviceModelUseCases
	customers    customerUseCases
	logger       logger.Interface
}

func NewCatalogHandler(deviceModels deviceModelUseCases, customers customerUseCases, log logger.Interface) *CatalogHandler {
	return &CatalogHandler{
		deviceModels: deviceModels,
		customers:    customers,
		logger:       log,
	}
}

// CreateDeviceModel handles POST /manage/device-models
func (h *CatalogHandler) CreateDeviceModel(c *gin.Context) {
	var req NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.deviceModels.Create(c.Request.Context(), req.Name)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, result)
}

// RenameDeviceModel handles PUT /manage/device-models/:id
func (h *CatalogHandler) RenameDeviceModel(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.deviceModels.Rename(c.Request.Context(), id, req.Name)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// DeleteDeviceModel handles DELETE /manage/device-models/:id
func (h *CatalogHandler) DeleteDeviceModel(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deviceModels.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponseWithMessage(c, http.StatusOK, "device model deleted", nil)
}

// ListDeviceModels handles GET /manage/device-models
func (h *CatalogHandler) ListDeviceModels(c *gin.Context) {
	result, err := h.deviceModels.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// CreateCustomer handles POST /manage/customers
func (h *CatalogHandler) CreateCustomer(c *gin.Context) {
	var req NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.customers.Create(c.Request.Context(), req.Name)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, result)
}

// RenameCustomer handles PUT /manage/customers/:id
func (h *CatalogHandler) RenameCustomer(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.customers.Rename(c.Request.Context(), id, req.Name)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// DeleteCustomer handles DELETE /manage/customers/:id
func (h *CatalogHandler) DeleteCustomer(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.customers.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponseWithMessage(c, http.StatusOK, "customer deleted", nil)
}

// ListCustomers handles GET /manage/customers
func (h *CatalogHandler) ListCustomers(c *gin.Context) {
	result, err := h.customers.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, errors.NewValidationError("invalid id")
	}
	return uint(id), nil
}

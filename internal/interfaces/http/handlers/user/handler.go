package user

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"haitch/internal/application/user/usecases"
	"haitch/internal/shared/constants"
	"haitch/internal/shared/errors"
	"haitch/internal/shared/logger"
	"haitch/internal/shared/utils"
)

// Use case interfaces for UserHandler - enables unit testing with mocks.

type registerUserExecutor interface {
	Execute(ctx context.Context, cmd usecases.RegisterUserCommand) (*usecases.RegisterUserResult, error)
}

type loginExecutor interface {
	Execute(ctx context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error)
}

type getUserExecutor interface {
	Execute(ctx context.Context, userID uint) (*usecases.UserDetail, error)
}

type listUsersExecutor interface {
	Execute(ctx context.Context, query usecases.ListUsersQuery) (*usecases.ListUsersResult, error)
}

type updateUserExecutor interface {
	Execute(ctx context.Context, cmd usecases.UpdateUserCommand) (*usecases.UserDetail, error)
}

type deleteUserExecutor interface {
	Execute(ctx context.Context, cmd usecases.DeleteUserCommand) error
}

type UserHandler struct {
	registerUC registerUserExecutor
	loginUC    loginExecutor
	getUC      getUserExecutor
	listUC     listUsersExecutor
	updateUC   updateUserExecutor
	deleteUC   deleteUserExecutor
	logger     logger.Interface
}

func NewUserHandler(
	registerUC registerUserExecutor,
	loginUC loginExecutor,
	getUC getUserExecutor,
	listUC listUsersExecutor,
	updateUC updateUserExecutor,
	deleteUC deleteUserExecutor,
	log logger.Interface,
) *UserHandler {
	return &UserHandler{
		registerUC: registerUC,
		loginUC:    loginUC,
		getUC:      getUC,
		listUC:     listUC,
		updateUC:   updateUC,
		deleteUC:   deleteUC,
		logger:     log,
	}
}

// Register handles POST /users
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for register user", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), req.ToCommand(c.GetUint(constants.ContextKeyUserID)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, result)
}

// Login handles POST /users/login
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// GetCurrentUser handles GET /users/me
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	result, err := h.getUC.Execute(c.Request.Context(), c.GetUint(constants.ContextKeyUserID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// GetUser handles GET /users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, err := parseUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	query := parseListUsersQuery(c)

	result, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Users, result.Total, query.Page, query.PageSize)
}

// UpdateUser handles PUT /users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	userID, err := parseUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateUserCommand{
		UserID:     userID,
		Name:       req.Name,
		Phone:      req.Phone,
		Role:       req.Role,
		Password:   req.Password,
		OperatorID: c.GetUint(constants.ContextKeyUserID),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// DeleteUser handles DELETE /users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID, err := parseUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.deleteUC.Execute(c.Request.Context(), usecases.DeleteUserCommand{
		UserID:     userID,
		OperatorID: c.GetUint(constants.ContextKeyUserID),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponseWithMessage(c, http.StatusOK, "user deleted", nil)
}

func parseUserID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, errors.NewValidationError("invalid user id")
	}
	return uint(id), nil
}

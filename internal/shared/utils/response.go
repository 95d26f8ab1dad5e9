package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"haitch/internal/shared/errors"
)

// APIResponse is the envelope used by every JSON endpoint.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

type APIError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ListResponse wraps paginated collections.
type ListResponse struct {
	Items      interface{} `json:"items"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	TotalPages int         `json:"total_pages"`
}

func SuccessResponse(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, APIResponse{
		Success: true,
		Data:    data,
	})
}

func SuccessResponseWithMessage(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, APIResponse{
		Success: true,
		Data:    data,
		Message: message,
	})
}

func ListSuccessResponse(c *gin.Context, items interface{}, total int64, page, pageSize int) {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}
	SuccessResponse(c, http.StatusOK, ListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	})
}

// ErrorResponseWithError maps an application error onto the envelope. Unknown
// error values collapse to a generic 500 so internals never leak.
func ErrorResponseWithError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		c.JSON(http.StatusInternalServerError, APIResponse{
			Success: false,
			Error: &APIError{
				Type:    string(errors.ErrorTypeInternal),
				Message: "internal server error",
			},
		})
		return
	}

	c.JSON(appErr.Code, APIResponse{
		Success: false,
		Error: &APIError{
			Type:    string(appErr.Type),
			Message: appErr.Message,
			Details: appErr.Details,
		},
	})
}

func ErrorResponse(c *gin.Context, statusCode int, errType, message string) {
	c.JSON(statusCode, APIResponse{
		Success: false,
		Error: &APIError{
			Type:    errType,
			Message: message,
		},
	})
}

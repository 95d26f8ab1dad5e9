package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"haitch/internal/shared/constants"
)

// Pagination carries normalized page parameters parsed from the query string.
type Pagination struct {
	Page     int
	PageSize int
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

func (p Pagination) Limit() int {
	return p.PageSize
}

// GetPagination reads page and page_size query parameters, clamping them to
// sane bounds.
func GetPagination(c *gin.Context) Pagination {
	page, err := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(constants.DefaultPage)))
	if err != nil || page < 1 {
		page = constants.DefaultPage
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(constants.DefaultPageSize)))
	if err != nil || pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}

	return Pagination{Page: page, PageSize: pageSize}
}

// NormalizePagination applies the same clamping for non-HTTP callers.
func NormalizePagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = constants.DefaultPage
	}
	if pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}
	return page, pageSize
}

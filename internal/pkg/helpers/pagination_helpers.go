package helpers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/unidash/internal/app/models"
	"github.com/yigit/unidash/internal/pkg/apperrors"
)

// DefaultPage is used when the caller does not ask for one. Pages are 1-based.
const DefaultPage = 1

// Page sizes used when the caller does not ask for one.
const (
	DefaultStudentPageSize      = 20
	DefaultCoursePageSize       = 20
	DefaultAnnouncementPageSize = 10
)

// CalculateSliceIndices returns the [start, end) window of a 1-based page over a
// collection of totalItems elements. A page past the end yields an empty window.
func CalculateSliceIndices(page, size, totalItems int) (start, end int) {
	if page < 1 {
		page = DefaultPage
	}

	start = (page - 1) * size
	end = start + size

	if start >= totalItems {
		return totalItems, totalItems
	}
	if end > totalItems {
		end = totalItems
	}
	return start, end
}

// NewPagination builds the pagination metadata for a page of size items.
func NewPagination(total, page, size int) models.Pagination {
	totalPages := 0
	if size > 0 {
		totalPages = (total + size - 1) / size
	}
	return models.Pagination{
		Page:       page,
		Limit:      size,
		Total:      total,
		TotalPages: totalPages,
	}
}

// Paginate slices items to the requested page. Out-of-range pages return an empty,
// non-nil slice rather than an error.
func Paginate[T any](items []T, page, size int) ([]T, models.Pagination) {
	if page < 1 {
		page = DefaultPage
	}
	if size <= 0 {
		return []T{}, NewPagination(len(items), page, size)
	}
	start, end := CalculateSliceIndices(page, size, len(items))
	out := make([]T, end-start)
	copy(out, items[start:end])
	return out, NewPagination(len(items), page, size)
}

// ParsePaginationParams extracts page and limit from the query string. Missing
// values fall back to page 1 and defaultLimit; any positive limit is honoured as
// given. Non-numeric or non-positive values are rejected rather than replaced.
func ParsePaginationParams(c *gin.Context, defaultLimit int) (page, limit int, err error) {
	page, err = strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(DefaultPage)))
	if err != nil || page < 1 {
		return 0, 0, apperrors.NewBadRequestError("page must be a positive integer")
	}

	limit, err = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < 1 {
		return 0, 0, apperrors.NewBadRequestError("limit must be a positive integer")
	}

	return page, limit, nil
}

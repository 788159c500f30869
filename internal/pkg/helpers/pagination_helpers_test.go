package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/unidash/internal/pkg/apperrors"
)

func TestPaginate(t *testing.T) {
	items := make([]int, 45)
	for i := range items {
		items[i] = i
	}

	tests := []struct {
		name       string
		page, size int
		wantLen    int
		wantFirst  int
		totalPages int
	}{
		{name: "first page", page: 1, size: 20, wantLen: 20, wantFirst: 0, totalPages: 3},
		{name: "last partial page", page: 3, size: 20, wantLen: 5, wantFirst: 40, totalPages: 3},
		{name: "beyond last page", page: 4, size: 20, wantLen: 0, totalPages: 3},
		{name: "exact division", page: 1, size: 15, wantLen: 15, wantFirst: 0, totalPages: 3},
		{name: "page below one", page: 0, size: 10, wantLen: 10, wantFirst: 0, totalPages: 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, p := Paginate(items, tt.page, tt.size)
			assert.NotNil(t, got)
			assert.Len(t, got, tt.wantLen)
			if tt.wantLen > 0 {
				assert.Equal(t, tt.wantFirst, got[0])
			}
			assert.Equal(t, 45, p.Total)
			assert.Equal(t, tt.size, p.Limit)
			assert.Equal(t, tt.totalPages, p.TotalPages)
		})
	}
}

func TestPaginateIsIdempotent(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}
	first, p1 := Paginate(items, 2, 2)
	second, p2 := Paginate(items, 2, 2)
	assert.Equal(t, first, second)
	assert.Equal(t, p1, p2)
	assert.Equal(t, []string{"c", "d"}, first)
}

func TestPaginateEmpty(t *testing.T) {
	got, p := Paginate([]string{}, 1, 10)
	assert.Empty(t, got)
	assert.Equal(t, 0, p.TotalPages)
}

func TestParsePaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		query     string
		wantPage  int
		wantLimit int
		wantErr   bool
	}{
		{query: "", wantPage: 1, wantLimit: 20},
		{query: "?page=3&limit=5", wantPage: 3, wantLimit: 5},
		{query: "?page=1&limit=150", wantPage: 1, wantLimit: 150},
		{query: "?page=0", wantErr: true},
		{query: "?page=-2", wantErr: true},
		{query: "?page=x", wantErr: true},
		{query: "?limit=0", wantErr: true},
		{query: "?limit=ten", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/students"+tt.query, nil)
			page, limit, err := ParsePaginationParams(c, DefaultStudentPageSize)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrBadRequest)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

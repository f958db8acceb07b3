package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeneratePagination(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		total      int64
		want       Pagination
	}{
		{"third of three pages", 3, 10, 25, Pagination{CurrentPage: 3, PageSize: 10, TotalCount: 25, TotalPages: 3, Offset: 20}},
		{"page below one", -2, 10, 25, Pagination{CurrentPage: 1, PageSize: 10, TotalCount: 25, TotalPages: 3, Offset: 0}},
		{"zero size uses default", 1, 0, 25, Pagination{CurrentPage: 1, PageSize: 10, TotalCount: 25, TotalPages: 3, Offset: 0}},
		{"size clamped to max", 1, 500, 250, Pagination{CurrentPage: 1, PageSize: 100, TotalCount: 250, TotalPages: 3, Offset: 0}},
		{"page past the end", 9, 10, 25, Pagination{CurrentPage: 3, PageSize: 10, TotalCount: 25, TotalPages: 3, Offset: 20}},
		{"empty set", 4, 10, 0, Pagination{CurrentPage: 1, PageSize: 10, TotalCount: 0, TotalPages: 0, Offset: 0}},
		{"exact multiple", 2, 5, 10, Pagination{CurrentPage: 2, PageSize: 5, TotalCount: 10, TotalPages: 2, Offset: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GeneratePagination(tt.page, tt.size, tt.total, DefaultPageSize, MaxPageSize))
		})
	}
}

func TestGeneratePagination_FallbackLimits(t *testing.T) {
	p := GeneratePagination(1, 0, 5, 0, 0)
	assert.Equal(t, DefaultPageSize, p.PageSize)
}

func TestCalculateTotalPages(t *testing.T) {
	assert.Equal(t, 0, CalculateTotalPages(10, 0))
	assert.Equal(t, 1, CalculateTotalPages(1, 10))
	assert.Equal(t, 3, CalculateTotalPages(21, 10))
}

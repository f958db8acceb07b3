package utils

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Pagination is the resolved page window for a listing query.
type Pagination struct {
	CurrentPage int
	PageSize    int
	TotalCount  int64
	TotalPages  int
	Offset      int
}

// GeneratePagination resolves page and size against total. Page below 1 is
// treated as 1, size <= 0 falls back to defaultSize, size above maxSize is
// clamped, and the current page never passes the last page.
func GeneratePagination(page, size int, total int64, defaultSize, maxSize int) Pagination {
	if defaultSize <= 0 {
		defaultSize = DefaultPageSize
	}
	if maxSize <= 0 {
		maxSize = MaxPageSize
	}

	if page < 1 {
		page = 1
	}
	if size <= 0 {
		size = defaultSize
	}
	if size > maxSize {
		size = maxSize
	}

	totalPages := CalculateTotalPages(total, size)
	if page > max(1, totalPages) {
		page = max(1, totalPages)
	}

	return Pagination{
		CurrentPage: page,
		PageSize:    size,
		TotalCount:  total,
		TotalPages:  totalPages,
		Offset:      CalculateOffset(page, size),
	}
}

func CalculateTotalPages(total int64, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

func CalculateOffset(page, perPage int) int {
	if page < 1 {
		return 0
	}
	return (page - 1) * perPage
}

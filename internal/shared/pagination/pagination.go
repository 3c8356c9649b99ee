package pagination

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type Meta struct {
	Total       int64 `json:"total"`
	TotalPages  int   `json:"totalPages"`
	Page        int   `json:"page"`
	PageSize    int   `json:"pageSize"`
	HasPrevious bool  `json:"hasPrevious"`
	HasNext     bool  `json:"hasNext"`
}

// Normalize applies the page defaults: page is 1-based and clamped to >= 1,
// size falls back to the default when not positive and is capped.
func Normalize(page, size int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return page, size
}

// Offset returns the row offset for a normalized page.
func Offset(page, size int) int {
	return (page - 1) * size
}

func New(total int64, page, size int) Meta {
	totalPages := 0
	if size > 0 {
		// ceil(total / size)
		totalPages = int((total + int64(size) - 1) / int64(size))
	}

	return Meta{
		Total:       total,
		TotalPages:  totalPages,
		Page:        page,
		PageSize:    size,
		HasPrevious: page > 1,
		HasNext:     page < totalPages,
	}
}

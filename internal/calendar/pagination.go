package calendar

const (
	DefaultPageSize = 20
	MaxPageSize     = 200
)

// Page is one page of items plus the metadata the API returns alongside it.
type Page[T any] struct {
	Items    []T  `json:"-"`
	Page     int  `json:"page"` // 1-based
	PageSize int  `json:"page_size"`
	HasNext  bool `json:"has_next"`
	HasPrev  bool `json:"has_prev"`
	Total    int  `json:"total"`
}

// Paginate slices items for the given page. Out of range values fall back to
// page 1 and DefaultPageSize; pageSize is capped at MaxPageSize.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	total := len(items)

	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	if page <= 0 {
		page = 1
	}

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return Page[T]{
		Items:    items[start:end],
		Page:     page,
		PageSize: pageSize,
		HasNext:  end < total,
		HasPrev:  page > 1,
		Total:    total,
	}
}

package models

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// Pagination is the shared envelope every listing endpoint emits so the
// frontend can reuse one pager component.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// ClampPage normalizes raw page/limit values: page >= 1, limit in [1, 100]
// with a default of 20 when unset.
func ClampPage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return page, limit
}

func NewPagination(page, limit, total int) Pagination {
	page, limit = ClampPage(page, limit)
	pages := 0
	if total > 0 {
		pages = (total + limit - 1) / limit
	}
	return Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}

// Offset returns the row offset for a clamped page/limit pair.
func Offset(page, limit int) int {
	page, limit = ClampPage(page, limit)
	return (page - 1) * limit
}

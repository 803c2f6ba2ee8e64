package dto

const (
	defaultPage  = 1
	defaultLimit = 5
)

// PageQuery is the paging and search envelope shared by the listing and
// reporting endpoints. Pages are 1-indexed.
type PageQuery struct {
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
	Search string `form:"search"`
}

// Normalize clamps the query to sane defaults.
func (q *PageQuery) Normalize() {
	if q.Page < 1 {
		q.Page = defaultPage
	}
	if q.Limit < 1 {
		q.Limit = defaultLimit
	}
}

// Offset returns the row offset for the current page.
func (q *PageQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

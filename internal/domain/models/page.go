package models

// PageSize is the fixed number of rows returned by list endpoints.
const PageSize = 10

// Page is the paginated envelope returned by gallery and post listings.
type Page[T any] struct {
	CurrentPage int `json:"current_page"`
	Data        []T `json:"data"`
	From        int `json:"from"`
	To          int `json:"to"`
	PerPage     int `json:"per_page"`
	LastPage    int `json:"last_page"`
	Total       int `json:"total"`
}

func NewPage[T any](items []T, page, perPage, total int) Page[T] {
	if items == nil {
		items = []T{}
	}

	lastPage := 1
	if total > 0 {
		lastPage = (total + perPage - 1) / perPage
	}

	p := Page[T]{
		CurrentPage: page,
		Data:        items,
		PerPage:     perPage,
		LastPage:    lastPage,
		Total:       total,
	}

	if len(items) > 0 {
		p.From = (page-1)*perPage + 1
		p.To = p.From + len(items) - 1
	}

	return p
}

// Offset returns the row offset for a 1-based page number.
func Offset(page, perPage int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * perPage
}

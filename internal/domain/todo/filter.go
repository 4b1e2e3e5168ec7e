package todo

import (
	"net/url"
	"strings"
)

// Query parameter names understood by GET /todos.
const (
	QueryCategory    = "category"
	QuerySubCategory = "subCategory"
)

// Filter narrows a todo listing. Empty fields match everything; set
// fields must equal the stored value exactly.
type Filter struct {
	Category    string
	SubCategory string
}

// FilterFromQuery reads a Filter from URL query parameters. Values are
// trimmed; blank parameters are ignored.
func FilterFromQuery(q url.Values) Filter {
	return Filter{
		Category:    strings.TrimSpace(q.Get(QueryCategory)),
		SubCategory: strings.TrimSpace(q.Get(QuerySubCategory)),
	}
}

// Query encodes f as URL query parameters, omitting empty fields.
func (f Filter) Query() url.Values {
	q := url.Values{}
	if v := strings.TrimSpace(f.Category); v != "" {
		q.Set(QueryCategory, v)
	}
	if v := strings.TrimSpace(f.SubCategory); v != "" {
		q.Set(QuerySubCategory, v)
	}
	return q
}

// Matches reports whether t passes the filter.
func (f Filter) Matches(t Todo) bool {
	return (f.Category == "" || t.Category == f.Category) &&
		(f.SubCategory == "" || t.SubCategory == f.SubCategory)
}

package dataview

import "strings"

// Direction is a sort order.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// DefaultPageSize matches the smallest page size the console offers.
const DefaultPageSize = 5

// PageSizes lists the page sizes the console offers.
var PageSizes = []int{5, 10, 20}

// Query is the user-controlled view state of one screen. Values are
// immutable: every transition returns a new Query.
type Query struct {
	FilterText    string
	SortField     string
	SortDirection Direction
	PageIndex     int
	PageSize      int
}

// NewQuery starts on page 0 sorted ascending by sortField.
func NewQuery(sortField string) Query {
	return Query{SortField: sortField, SortDirection: Asc, PageSize: DefaultPageSize}
}

// ToggleSort flips the direction when field is already active and selects
// field ascending otherwise.
func (q Query) ToggleSort(field string) Query {
	if q.SortField == field {
		if q.SortDirection == Asc {
			q.SortDirection = Desc
		} else {
			q.SortDirection = Asc
		}
		return q
	}
	q.SortField = field
	q.SortDirection = Asc
	return q
}

// WithFilter sets the filter text and returns to the first page.
func (q Query) WithFilter(text string) Query {
	q.FilterText = strings.TrimSpace(text)
	q.PageIndex = 0
	return q
}

// WithPageSize sets the page size and returns to the first page.
// Non-positive sizes fall back to DefaultPageSize.
func (q Query) WithPageSize(n int) Query {
	if n <= 0 {
		n = DefaultPageSize
	}
	q.PageSize = n
	q.PageIndex = 0
	return q
}

// WithPage moves to page i (negative values clamp to 0).
func (q Query) WithPage(i int) Query {
	if i < 0 {
		i = 0
	}
	q.PageIndex = i
	return q
}

// normalized clamps values Compute cannot work with.
func (q Query) normalized() Query {
	if q.PageSize <= 0 {
		q.PageSize = DefaultPageSize
	}
	if q.PageIndex < 0 {
		q.PageIndex = 0
	}
	if q.SortDirection != Desc {
		q.SortDirection = Asc
	}
	return q
}

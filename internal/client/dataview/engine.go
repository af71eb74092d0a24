package dataview

import "slices"

// ViewResult is the derived state of one screen.
type ViewResult struct {
	// Rows is the visible page in display order.
	Rows []Record
	// MatchedCount counts records passing the filter, independent of
	// sorting and paging.
	MatchedCount int
	// Query is the query Compute actually applied.
	Query Query
}

// PageCount is the number of pages needed for MatchedCount rows.
func (v ViewResult) PageCount() int {
	if v.MatchedCount == 0 || v.Query.PageSize <= 0 {
		return 0
	}
	return (v.MatchedCount-1)/v.Query.PageSize + 1
}

// Offset is the position of Rows[0] within the matched set; used for the
// running row number. Pages past the end start at MatchedCount.
func (v ViewResult) Offset() int {
	return pageStart(v.Query.PageIndex, v.Query.PageSize, v.MatchedCount)
}

// pageStart is index*size clamped to n. Indexes past the last page never
// reach the multiplication, so huge indexes cannot overflow.
func pageStart(index, size, n int) int {
	if size <= 0 || n == 0 || index > (n-1)/size {
		return n
	}
	return index * size
}

// Engine is a screen's filter and ordering configuration.
type Engine struct {
	Filter  Predicate
	Compare Comparator
}

// NewEngine builds an Engine; nil arguments select MatchAll and CompareField.
func NewEngine(filter Predicate, compare Comparator) Engine {
	if filter == nil {
		filter = MatchAll
	}
	if compare == nil {
		compare = CompareField
	}
	return Engine{Filter: filter, Compare: compare}
}

// Compute filters, stable-sorts and paginates records for q.
func (e Engine) Compute(records []Record, q Query) ViewResult {
	q = q.normalized()

	filter, compare := e.Filter, e.Compare
	if filter == nil {
		filter = MatchAll
	}
	if compare == nil {
		compare = CompareField
	}

	matched := make([]Record, 0, len(records))
	for _, r := range records {
		if filter(r, q.FilterText) {
			matched = append(matched, r)
		}
	}

	if q.SortField != "" {
		sign := 1
		if q.SortDirection == Desc {
			sign = -1
		}
		slices.SortStableFunc(matched, func(a, b Record) int {
			return sign * compare(a, b, q.SortField)
		})
	}

	start := pageStart(q.PageIndex, q.PageSize, len(matched))
	end := start + min(q.PageSize, len(matched)-start)

	return ViewResult{
		Rows:         slices.Clip(matched[start:end]),
		MatchedCount: len(matched),
		Query:        q,
	}
}

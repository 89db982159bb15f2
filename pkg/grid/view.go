package grid

// View is everything a presentation layer needs to draw one frame of a table.
type View[T Record] struct {
	Loading    bool
	Rows       []T
	Pagination Pagination
	Selection  SelectionSummary
}

// NoResults reports whether the view should show the "no results" indicator.
func (v View[T]) NoResults() bool {
	return !v.Loading && len(v.Rows) == 0
}

// IDs returns the identities of the visible rows, in display order.
func (v View[T]) IDs() []string {
	ids := make([]string, len(v.Rows))
	for i, r := range v.Rows {
		ids[i] = r.RecordID()
	}
	return ids
}

// Pagination summarizes the current page window. RangeStart and RangeEnd are
// 1-based and inclusive; both are zero when the page holds no rows.
type Pagination struct {
	Page          int `json:"page"`
	ItemsPerPage  int `json:"items_per_page"`
	TotalPages    int `json:"total_pages"`
	TotalFiltered int `json:"total_filtered"`
	RangeStart    int `json:"range_start"`
	RangeEnd      int `json:"range_end"`
}

// Contains reports whether page n exists.
func (p Pagination) Contains(n int) bool {
	return n >= 1 && n <= p.TotalPages
}

// HasPrev reports whether a previous page exists.
func (p Pagination) HasPrev() bool {
	return p.Contains(p.Page - 1)
}

// HasNext reports whether a next page exists.
func (p Pagination) HasNext() bool {
	return p.Contains(p.Page + 1)
}

// Pages lists every page number, 1 through TotalPages.
func (p Pagination) Pages() []int {
	pages := make([]int, p.TotalPages)
	for i := range pages {
		pages[i] = i + 1
	}
	return pages
}

// SelectionSummary drives the selection header: the count of selected ids
// across the whole dataset and the tri-state checkbox of the visible page.
type SelectionSummary struct {
	SelectedCount   int
	AllPageSelected bool
	Indeterminate   bool
}

// totalPages is ceil(n / size) in integer arithmetic. The form avoids
// overflow for sizes near math.MaxInt.
func totalPages(n, size int) int {
	if n <= 0 || size <= 0 {
		return 0
	}
	return (n-1)/size + 1
}

package viewmodel

import "time"

// HumanizedDateFormat is the display format for article and comment dates.
const HumanizedDateFormat = "02.01.2006, 15:04"

// HumanizeDate formats a timestamp for display only; it is never part
// of persisted data.
func HumanizeDate(t time.Time) string {
	return t.Format(HumanizedDateFormat)
}

// Pagination describes the pager under the article feed.
type Pagination struct {
	Page       int
	TotalPages int
	Pages      []int
}

// NewPagination builds the pager for 1-based page over totalPages.
func NewPagination(page, totalPages int) Pagination {
	pages := make([]int, 0, totalPages)
	for i := 1; i <= totalPages; i++ {
		pages = append(pages, i)
	}
	return Pagination{Page: page, TotalPages: totalPages, Pages: pages}
}

package util

// Pagination holds page metadata plus a sliding window of page numbers
// for rendering pager controls.
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalPages int   `json:"total_pages"`
	HasPrev    bool  `json:"has_prev"`
	HasNext    bool  `json:"has_next"`
	PageRange  []int `json:"page_range"`
}

// CalculatePagination computes page metadata for a listing. The page range is
// a window of up to 5 page numbers centered on the current page; near either
// boundary the window slides instead of shrinking, so it always holds
// min(5, total_pages) entries. A page beyond the last page clamps safely.
func CalculatePagination(total int64, page, perPage int) Pagination {
	totalPages := 0
	if total > 0 {
		totalPages = int((total + int64(perPage) - 1) / int64(perPage))
	}

	startPage := page - 2
	if startPage < 1 {
		startPage = 1
	}
	endPage := startPage + 4
	if endPage > totalPages {
		endPage = totalPages
	}
	if endPage-startPage < 4 {
		startPage = endPage - 4
		if startPage < 1 {
			startPage = 1
		}
	}

	pageRange := []int{}
	if totalPages > 0 {
		for p := startPage; p <= endPage; p++ {
			pageRange = append(pageRange, p)
		}
	}

	return Pagination{
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
		PageRange:  pageRange,
	}
}

// Offset returns the row offset for the current page
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PerPage
}

package db

// Pagination describes the window a paged listing covered. NextPage and
// PrevPage are nil at the respective edges so they serialize as JSON null.
type Pagination struct {
	TotalRecords int  `json:"total_records"`
	CurrentPage  int  `json:"current_page"`
	TotalPages   int  `json:"total_pages"`
	NextPage     *int `json:"next_page"`
	PrevPage     *int `json:"prev_page"`
}

// NewPagination computes the pagination block for a listing. Pages are
// 1-indexed. A page beyond the last still produces a well-formed block:
// NextPage is nil whenever page >= total pages, PrevPage whenever page
// is the first.
func NewPagination(totalRecords, page, pageSize int) Pagination {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (totalRecords + pageSize - 1) / pageSize
	}
	p := Pagination{
		TotalRecords: totalRecords,
		CurrentPage:  page,
		TotalPages:   totalPages,
	}
	if page < totalPages {
		next := page + 1
		p.NextPage = &next
	}
	if page > 1 {
		prev := page - 1
		p.PrevPage = &prev
	}
	return p
}

package feed

// ItemsPerPage is the number of cards on one results page.
const ItemsPerPage = 35

// Pagination follows the envelope the results page and JSON clients share.
type Pagination struct {
	CurrentPage     int   `json:"currentPage"`
	TotalPages      int   `json:"totalPages"`
	TotalItems      int64 `json:"totalItems"`
	ItemsPerPage    int   `json:"itemsPerPage"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
}

// NewPagination clamps current into [1, TotalPages]. An empty result still has one page.
func NewPagination(current int, totalItems int64, perPage int) Pagination {
	if perPage < 1 {
		perPage = ItemsPerPage
	}
	totalPages := int((totalItems + int64(perPage) - 1) / int64(perPage))
	if totalPages < 1 {
		totalPages = 1
	}
	if current < 1 {
		current = 1
	}
	if current > totalPages {
		current = totalPages
	}
	return Pagination{
		CurrentPage:     current,
		TotalPages:      totalPages,
		TotalItems:      totalItems,
		ItemsPerPage:    perPage,
		HasNextPage:     current < totalPages,
		HasPreviousPage: current > 1,
	}
}

func (p Pagination) Prev() int {
	if p.CurrentPage <= 1 {
		return 1
	}
	return p.CurrentPage - 1
}

func (p Pagination) Next() int {
	if p.CurrentPage >= p.TotalPages {
		return p.TotalPages
	}
	return p.CurrentPage + 1
}

// Pages lists every page number for the pager links.
func (p Pagination) Pages() []int {
	pages := make([]int, p.TotalPages)
	for i := range pages {
		pages[i] = i + 1
	}
	return pages
}

package domain

// Page describes one slice of a filtered product listing
type Page struct {
	CurrentPage   int  `json:"currentPage"`
	TotalPages    int  `json:"totalPages"`
	TotalProducts int  `json:"totalProducts"`
	HasNext       bool `json:"hasNext"`
	HasPrev       bool `json:"hasPrev"`
	Limit         int  `json:"limit"`
}

// NewPage computes the pagination envelope for a listing. totalPages is
// ceil(total/limit) and zero exactly when total is zero.
func NewPage(page, limit, total int) Page {
	if page < 1 {
		page = 1
	}
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Page{
		CurrentPage:   page,
		TotalPages:    totalPages,
		TotalProducts: total,
		HasNext:       page < totalPages,
		HasPrev:       page > 1,
		Limit:         limit,
	}
}

package request

// PaginatedRequest carries the page and per_page query parameters.
type PaginatedRequest struct {
	Page    int `json:"page" validate:"min=1"`
	PerPage int `json:"per_page" validate:"min=1,max=100"`
}

func (p PaginatedRequest) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PerPage
}

// Limit clamps per_page into [1, 100] with a default of 10.
func (p PaginatedRequest) Limit() int {
	switch {
	case p.PerPage < 1:
		return 10
	case p.PerPage > 100:
		return 100
	default:
		return p.PerPage
	}
}

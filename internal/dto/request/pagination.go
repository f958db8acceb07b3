package request

type PaginatedRequest struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
}

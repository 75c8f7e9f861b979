package dto

import "castingfy/internal/models"

// SearchUsersRequest mirrors the directory query parameters. Results
// are capped by a flat limit; there is no cursor or ranking.
type SearchUsersRequest struct {
	Query    string          `form:"q" json:"q"`
	Role     models.UserRole `form:"role" json:"role" validate:"omitempty,is-user-role"`
	Gender   string          `form:"gender" json:"gender" validate:"is-gender"`
	Skills   string          `form:"skills" json:"skills"` // comma-separated
	Location string          `form:"location" json:"location"`
	Limit    int             `form:"limit" json:"limit" validate:"omitempty,min=1,max=50"`
}

type SearchUsersResponse struct {
	Results []PublicUserResponse `json:"results"`
	Total   int                  `json:"total"`
}

package dto

import "castingfy/internal/models"

type CreateReviewRequest struct {
	TalentID string `json:"talent_id" validate:"required"`
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Comment  string `json:"comment" validate:"max=2000"`
}

type ReviewListResponse struct {
	Reviews []models.Review `json:"reviews"`
	Total   int64           `json:"total"`
}

type RatingResponse struct {
	TalentID      string  `json:"talent_id"`
	AverageRating float64 `json:"average_rating"`
	TotalReviews  int64   `json:"total_reviews"`
}

package dto

import "castingfy/internal/models"

type UserResponse struct {
	ID              string                  `json:"id"`
	Email           string                  `json:"email,omitempty"`
	Role            models.UserRole         `json:"role"`
	Status          models.UserStatus       `json:"status,omitempty"`
	IsVerified      bool                    `json:"is_verified"`
	TalentProfile   *models.TalentProfile   `json:"talent_profile,omitempty"`
	ProducerProfile *models.ProducerProfile `json:"producer_profile,omitempty"`
}

// PublicUserResponse is the read-only projection served on public
// profile pages. Email and account status stay private.
type PublicUserResponse struct {
	ID              string                  `json:"id"`
	Role            models.UserRole         `json:"role"`
	TalentProfile   *models.TalentProfile   `json:"talent_profile,omitempty"`
	ProducerProfile *models.ProducerProfile `json:"producer_profile,omitempty"`
	Rating          float64                 `json:"rating"`
	ReviewCount     int64                   `json:"review_count"`
	GalleryCount    int64                   `json:"gallery_count"`
}

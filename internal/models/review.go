package models

// Review of a talent by another user. One review per reviewer+talent
// pair, DB-enforced.
type Review struct {
	BaseModel
	TalentID   string `gorm:"not null;uniqueIndex:idx_review_once" json:"talent_id"`
	ReviewerID string `gorm:"not null;uniqueIndex:idx_review_once" json:"reviewer_id"`
	Rating     int    `gorm:"not null" json:"rating"`
	Comment    string `json:"comment"`
}

package models

// Favorite bookmarks a talent for a user. One row per pair.
type Favorite struct {
	BaseModel
	UserID   string `gorm:"not null;uniqueIndex:idx_favorite_once" json:"user_id"`
	TalentID string `gorm:"not null;uniqueIndex:idx_favorite_once" json:"talent_id"`
}

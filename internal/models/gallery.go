package models

type GalleryImage struct {
	BaseModel
	UserID      string `gorm:"not null;index" json:"user_id"`
	URL         string `gorm:"not null" json:"url"`
	StoragePath string `gorm:"not null" json:"-"`
	ContentType string `json:"content_type"`
	Caption     string `json:"caption"`
	Position    int    `gorm:"default:0" json:"position"`
}

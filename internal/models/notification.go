package models

import "gorm.io/datatypes"

type Notification struct {
	BaseModel
	UserID  string           `gorm:"not null;index" json:"user_id"`
	Type    NotificationType `gorm:"type:varchar(40);not null" json:"type"`
	Payload datatypes.JSON   `gorm:"type:jsonb" json:"payload,omitempty"`
	IsRead  bool             `gorm:"default:false" json:"is_read"`
}

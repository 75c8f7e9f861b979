package models

import "gorm.io/datatypes"

// TalentProfile is the 1:1 performer profile created after role
// selection. Free-form descriptive fields; skills and languages are
// JSONB string arrays.
type TalentProfile struct {
	BaseModel
	UserID          string         `gorm:"uniqueIndex;not null" json:"user_id"`
	DisplayName     string         `gorm:"not null" json:"display_name"`
	Bio             string         `json:"bio"`
	Location        string         `json:"location"`
	Gender          string         `gorm:"type:varchar(20)" json:"gender"`
	Skills          datatypes.JSON `gorm:"type:jsonb" json:"skills"`
	Languages       datatypes.JSON `gorm:"type:jsonb" json:"languages"`
	AvatarURL       string         `json:"avatar_url"`
	InstagramHandle string         `json:"instagram_handle"`
	Rating          float64        `gorm:"default:0" json:"rating"`
}

type ProducerProfile struct {
	BaseModel
	UserID      string `gorm:"uniqueIndex;not null" json:"user_id"`
	CompanyName string `json:"company_name"`
	DisplayName string `gorm:"not null" json:"display_name"`
	Bio         string `json:"bio"`
	Location    string `json:"location"`
	Website     string `json:"website"`
	AvatarURL   string `json:"avatar_url"`
}

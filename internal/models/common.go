package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel is embedded by every persisted entity. IDs are uuid
// strings assigned in BeforeCreate so the schema works on both
// Postgres and the sqlite test database.
type BaseModel struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// SortPair returns the two ids in lexical order. Connection and
// Conversation rows store the normalized pair so an unordered user
// pair maps to exactly one row.
func SortPair(a, b string) (lo, hi string) {
	if a < b {
		return a, b
	}
	return b, a
}

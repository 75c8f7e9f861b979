package models

import "gorm.io/datatypes"

// Project is the producer-owned casting aggregate authored by the
// wizard. Roles, compensation and prescreen questions live in child
// tables with real foreign keys and uniqueness constraints; the
// aggregate is saved durably after every wizard step, so partially
// filled projects persist as drafts.
type Project struct {
	BaseModel
	ProducerID  string        `gorm:"not null;index" json:"producer_id"`
	Title       string        `gorm:"not null" json:"title"`
	Description string        `json:"description"`
	Category    string        `json:"category"`
	Location    string        `json:"location"`
	Status      ProjectStatus `gorm:"type:varchar(20);default:'draft'" json:"status"`
	Step        ProjectStep   `gorm:"type:varchar(20);default:'details'" json:"step"`

	Roles      []ProjectRole       `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"roles"`
	Prescreens []PrescreenQuestion `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"prescreens"`
}

// ProjectRole is an open role within a project. The wizard sends
// client-generated temp ids while editing; a server uuid replaces
// them on first persist.
type ProjectRole struct {
	BaseModel
	ProjectID   string `gorm:"not null;index" json:"project_id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	Gender      string `gorm:"type:varchar(20)" json:"gender"`
	AgeMin      *int   `json:"age_min"`
	AgeMax      *int   `json:"age_max"`
	Quantity    int    `gorm:"default:1" json:"quantity"`

	Compensation *RoleCompensation `gorm:"foreignKey:RoleID;constraint:OnDelete:CASCADE" json:"compensation,omitempty"`
}

// RoleCompensation holds at most one compensation record per role,
// enforced by the unique index on RoleID.
type RoleCompensation struct {
	BaseModel
	ProjectID string           `gorm:"not null;index" json:"project_id"`
	RoleID    string           `gorm:"not null;uniqueIndex" json:"role_id"`
	Kind      CompensationKind `gorm:"type:varchar(20);not null" json:"kind"`
	Amount    float64          `json:"amount"`
	Currency  string           `gorm:"type:varchar(10)" json:"currency"`
	Notes     string           `json:"notes"`
}

type PrescreenQuestion struct {
	BaseModel
	ProjectID string         `gorm:"not null;index" json:"project_id"`
	RoleID    *string        `gorm:"index" json:"role_id,omitempty"`
	Prompt    string         `gorm:"not null" json:"prompt"`
	Kind      PrescreenKind  `gorm:"type:varchar(20);default:'text'" json:"kind"`
	Options   datatypes.JSON `gorm:"type:jsonb" json:"options,omitempty"`
	Required  bool           `gorm:"default:false" json:"required"`
}

package dto

import "castingfy/internal/models"

type CreateProjectRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"max=5000"`
	Category    string `json:"category" validate:"max=100"`
	Location    string `json:"location" validate:"max=200"`
}

type ProjectDetailsRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"max=5000"`
	Category    string `json:"category" validate:"max=100"`
	Location    string `json:"location" validate:"max=200"`
}

// RoleInput carries one role from the wizard. ClientID is the
// client-generated temp id used while editing; the server assigns the
// durable id and echoes the mapping back.
type RoleInput struct {
	ClientID    string `json:"client_id"`
	ID          string `json:"id"`
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"max=2000"`
	Gender      string `json:"gender" validate:"is-gender"`
	AgeMin      *int   `json:"age_min" validate:"omitempty,min=0,max=120"`
	AgeMax      *int   `json:"age_max" validate:"omitempty,min=0,max=120"`
	Quantity    int    `json:"quantity" validate:"omitempty,min=1,max=100"`
}

type ProjectRolesRequest struct {
	Roles []RoleInput `json:"roles" validate:"required,min=1,dive"`
}

type CompensationInput struct {
	RoleID   string  `json:"role_id" validate:"required"`
	Kind     string  `json:"kind" validate:"required,is-compensation-kind"`
	Amount   float64 `json:"amount" validate:"omitempty,min=0"`
	Currency string  `json:"currency" validate:"omitempty,len=3"`
	Notes    string  `json:"notes" validate:"max=1000"`
}

type ProjectCompensationRequest struct {
	Compensation []CompensationInput `json:"compensation" validate:"required,min=1,dive"`
}

type PrescreenInput struct {
	RoleID   *string  `json:"role_id"`
	Prompt   string   `json:"prompt" validate:"required,min=1,max=1000"`
	Kind     string   `json:"kind" validate:"omitempty,is-prescreen-kind"`
	Options  []string `json:"options" validate:"max=20"`
	Required bool     `json:"required"`
}

type ProjectPrescreensRequest struct {
	Prescreens []PrescreenInput `json:"prescreens" validate:"dive"`
}

// RoleIDMapping reports which server id replaced a client temp id.
type RoleIDMapping struct {
	ClientID string `json:"client_id"`
	ServerID string `json:"server_id"`
}

type ProjectResponse struct {
	Project     *models.Project `json:"project"`
	RoleMapping []RoleIDMapping `json:"role_mapping,omitempty"`
}

package dto

type UpdateTalentProfileRequest struct {
	DisplayName     string   `json:"display_name" validate:"required,min=2,max=100"`
	Bio             string   `json:"bio" validate:"max=2000"`
	Location        string   `json:"location" validate:"max=200"`
	Gender          string   `json:"gender" validate:"is-gender"`
	Skills          []string `json:"skills" validate:"max=50"`
	Languages       []string `json:"languages" validate:"max=20"`
	AvatarURL       string   `json:"avatar_url" validate:"omitempty,url"`
	InstagramHandle string   `json:"instagram_handle" validate:"max=100"`
}

type UpdateProducerProfileRequest struct {
	CompanyName string `json:"company_name" validate:"max=200"`
	DisplayName string `json:"display_name" validate:"required,min=2,max=100"`
	Bio         string `json:"bio" validate:"max=2000"`
	Location    string `json:"location" validate:"max=200"`
	Website     string `json:"website" validate:"omitempty,url"`
	AvatarURL   string `json:"avatar_url" validate:"omitempty,url"`
}

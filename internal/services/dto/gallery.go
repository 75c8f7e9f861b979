package dto

import "castingfy/internal/models"

type UpdateImageRequest struct {
	Caption  string `json:"caption" validate:"max=500"`
	Position int    `json:"position" validate:"min=0,max=100"`
}

type GalleryResponse struct {
	Images []models.GalleryImage `json:"images"`
	Total  int64                 `json:"total"`
}

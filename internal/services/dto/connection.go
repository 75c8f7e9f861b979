package dto

import "castingfy/internal/models"

type CreateConnectionRequest struct {
	RecipientID string `json:"recipient_id" validate:"required"`
}

type ConnectionResponse struct {
	ID          string                  `json:"id"`
	RequesterID string                  `json:"requester_id"`
	RecipientID string                  `json:"recipient_id"`
	Status      models.ConnectionStatus `json:"status"`
	Peer        *PublicUserResponse     `json:"peer,omitempty"`
}

package dto

import (
	"time"

	"castingfy/internal/models"
)

type OpenConversationRequest struct {
	PeerID string `json:"peer_id" validate:"required"`
}

type SendMessageRequest struct {
	Body string `json:"body" validate:"required,min=1,max=5000"`
}

type ConversationResponse struct {
	ID          string          `json:"id"`
	PeerID      string          `json:"peer_id"`
	LastMessage *models.Message `json:"last_message,omitempty"`
	UnreadCount int64           `json:"unread_count"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type MessageListResponse struct {
	ConversationID string           `json:"conversation_id"`
	Messages       []models.Message `json:"messages"`
}

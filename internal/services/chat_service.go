package services

import (
	"encoding/json"
	"errors"

	"castingfy/internal/models"
	"castingfy/internal/repositories"
	"castingfy/internal/services/dto"
	"castingfy/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const defaultMessageLimit = 100

type ChatService interface {
	OpenConversation(db *gorm.DB, userID string, req *dto.OpenConversationRequest) (*dto.ConversationResponse, error)
	ListConversations(db *gorm.DB, userID string) ([]dto.ConversationResponse, error)
	GetMessages(db *gorm.DB, userID, conversationID string, limit int) (*dto.MessageListResponse, error)
	SendMessage(db *gorm.DB, userID, conversationID string, req *dto.SendMessageRequest) (*models.Message, error)
}

type chatService struct {
	chatRepo  repositories.ChatRepository
	userRepo  repositories.UserRepository
	notifRepo repositories.NotificationRepository
}

func NewChatService(
	chatRepo repositories.ChatRepository,
	userRepo repositories.UserRepository,
	notifRepo repositories.NotificationRepository,
) ChatService {
	return &chatService{
		chatRepo:  chatRepo,
		userRepo:  userRepo,
		notifRepo: notifRepo,
	}
}

// OpenConversation returns the one conversation for the user pair,
// creating it on first use. Calling it twice, from either side,
// yields the same conversation.
func (s *chatService) OpenConversation(db *gorm.DB, userID string, req *dto.OpenConversationRequest) (*dto.ConversationResponse, error) {
	if req.PeerID == userID {
		return nil, apperrors.ErrInvalidOperation("chat", "You cannot open a conversation with yourself")
	}

	if _, err := s.userRepo.FindByID(db, req.PeerID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	conv, err := s.chatRepo.GetOrCreateConversation(db, userID, req.PeerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := s.toConversationResponse(db, conv, userID)
	return &resp, nil
}

func (s *chatService) ListConversations(db *gorm.DB, userID string) ([]dto.ConversationResponse, error) {
	convs, err := s.chatRepo.ListConversations(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.ConversationResponse, 0, len(convs))
	for i := range convs {
		responses = append(responses, s.toConversationResponse(db, &convs[i], userID))
	}
	return responses, nil
}

// GetMessages returns the conversation history oldest-first and marks
// the peer's messages as read.
func (s *chatService) GetMessages(db *gorm.DB, userID, conversationID string, limit int) (*dto.MessageListResponse, error) {
	conv, err := s.loadMemberConversation(db, userID, conversationID)
	if err != nil {
		return nil, err
	}

	if limit <= 0 || limit > defaultMessageLimit {
		limit = defaultMessageLimit
	}

	messages, err := s.chatRepo.ListMessages(db, conv.ID, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if messages == nil {
		messages = []models.Message{}
	}

	if err := s.chatRepo.MarkRead(db, conv.ID, userID); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.MessageListResponse{
		ConversationID: conv.ID,
		Messages:       messages,
	}, nil
}

func (s *chatService) SendMessage(db *gorm.DB, userID, conversationID string, req *dto.SendMessageRequest) (*models.Message, error) {
	conv, err := s.loadMemberConversation(db, userID, conversationID)
	if err != nil {
		return nil, err
	}

	msg := &models.Message{
		ConversationID: conv.ID,
		SenderID:       userID,
		Body:           req.Body,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.chatRepo.CreateMessage(tx, msg); err != nil {
			return err
		}

		payload, _ := json.Marshal(map[string]string{
			"conversation_id": conv.ID,
			"sender_id":       userID,
		})
		return s.notifRepo.Create(tx, &models.Notification{
			UserID:  conv.PeerOf(userID),
			Type:    models.NotificationNewMessage,
			Payload: datatypes.JSON(payload),
		})
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return msg, nil
}

func (s *chatService) loadMemberConversation(db *gorm.DB, userID, conversationID string) (*models.Conversation, error) {
	conv, err := s.chatRepo.FindConversationByID(db, conversationID)
	if err != nil {
		if errors.Is(err, repositories.ErrConversationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if !conv.Involves(userID) {
		return nil, apperrors.NewForbiddenError("You are not part of this conversation")
	}
	return conv, nil
}

func (s *chatService) toConversationResponse(db *gorm.DB, conv *models.Conversation, userID string) dto.ConversationResponse {
	resp := dto.ConversationResponse{
		ID:        conv.ID,
		PeerID:    conv.PeerOf(userID),
		UpdatedAt: conv.UpdatedAt,
	}

	if last, err := s.chatRepo.LastMessage(db, conv.ID); err == nil {
		resp.LastMessage = last
	}
	if unread, err := s.chatRepo.CountUnread(db, conv.ID, userID); err == nil {
		resp.UnreadCount = unread
	}
	return resp
}

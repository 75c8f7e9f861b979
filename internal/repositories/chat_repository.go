package repositories

import (
	"errors"

	"castingfy/internal/models"

	"gorm.io/gorm"
)

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrMessageNotFound      = errors.New("message not found")
)

type ChatRepository interface {
	// GetOrCreateConversation resolves the single conversation for an
	// unordered user pair, creating it when absent. Idempotent across
	// (A,B) and (B,A).
	GetOrCreateConversation(db *gorm.DB, userA, userB string) (*models.Conversation, error)
	FindConversationByID(db *gorm.DB, id string) (*models.Conversation, error)
	ListConversations(db *gorm.DB, userID string) ([]models.Conversation, error)

	CreateMessage(db *gorm.DB, msg *models.Message) error
	ListMessages(db *gorm.DB, conversationID string, limit int) ([]models.Message, error)
	LastMessage(db *gorm.DB, conversationID string) (*models.Message, error)
	CountUnread(db *gorm.DB, conversationID, receiverID string) (int64, error)
	// MarkRead bulk-flips the read flag on every message in the
	// conversation not sent by the reader.
	MarkRead(db *gorm.DB, conversationID, readerID string) error
}

type ChatRepositoryImpl struct{}

func NewChatRepository() ChatRepository {
	return &ChatRepositoryImpl{}
}

func (r *ChatRepositoryImpl) GetOrCreateConversation(db *gorm.DB, userA, userB string) (*models.Conversation, error) {
	lo, hi := models.SortPair(userA, userB)

	var conv models.Conversation
	err := db.Where("user1_id = ? AND user2_id = ?", lo, hi).First(&conv).Error
	if err == nil {
		return &conv, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	conv = models.Conversation{User1ID: lo, User2ID: hi}
	if err := db.Create(&conv).Error; err != nil {
		// Lost the race: another request inserted the pair first.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			var winner models.Conversation
			if ferr := db.Where("user1_id = ? AND user2_id = ?", lo, hi).First(&winner).Error; ferr == nil {
				return &winner, nil
			}
		}
		return nil, err
	}
	return &conv, nil
}

func (r *ChatRepositoryImpl) FindConversationByID(db *gorm.DB, id string) (*models.Conversation, error) {
	var conv models.Conversation
	err := db.First(&conv, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConversationNotFound
		}
		return nil, err
	}
	return &conv, nil
}

func (r *ChatRepositoryImpl) ListConversations(db *gorm.DB, userID string) ([]models.Conversation, error) {
	var convs []models.Conversation
	err := db.Where("user1_id = ? OR user2_id = ?", userID, userID).
		Order("updated_at DESC").
		Find(&convs).Error
	return convs, err
}

func (r *ChatRepositoryImpl) CreateMessage(db *gorm.DB, msg *models.Message) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(msg).Error; err != nil {
			return err
		}
		// Bump the conversation so the list sorts by recency.
		return tx.Model(&models.Conversation{}).
			Where("id = ?", msg.ConversationID).
			Update("updated_at", msg.CreatedAt).Error
	})
}

func (r *ChatRepositoryImpl) ListMessages(db *gorm.DB, conversationID string, limit int) ([]models.Message, error) {
	var messages []models.Message
	err := db.Where("conversation_id = ?", conversationID).
		Order("created_at ASC").
		Limit(limit).
		Find(&messages).Error
	return messages, err
}

func (r *ChatRepositoryImpl) LastMessage(db *gorm.DB, conversationID string) (*models.Message, error) {
	var msg models.Message
	err := db.Where("conversation_id = ?", conversationID).
		Order("created_at DESC").
		First(&msg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, err
	}
	return &msg, nil
}

func (r *ChatRepositoryImpl) CountUnread(db *gorm.DB, conversationID, receiverID string) (int64, error) {
	var count int64
	err := db.Model(&models.Message{}).
		Where("conversation_id = ? AND sender_id <> ? AND is_read = ?", conversationID, receiverID, false).
		Count(&count).Error
	return count, err
}

func (r *ChatRepositoryImpl) MarkRead(db *gorm.DB, conversationID, readerID string) error {
	return db.Model(&models.Message{}).
		Where("conversation_id = ? AND sender_id <> ? AND is_read = ?", conversationID, readerID, false).
		Update("is_read", true).Error
}

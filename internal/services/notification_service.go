package services

import (
	"errors"

	"castingfy/internal/models"
	"castingfy/internal/repositories"
	"castingfy/internal/services/dto"
	"castingfy/pkg/apperrors"

	"gorm.io/gorm"
)

const defaultNotificationLimit = 50

type NotificationService interface {
	ListNotifications(db *gorm.DB, userID string, limit int) (*dto.NotificationListResponse, error)
	MarkRead(db *gorm.DB, userID, notificationID string) error
	MarkAllRead(db *gorm.DB, userID string) error
}

type notificationService struct {
	notifRepo repositories.NotificationRepository
}

func NewNotificationService(notifRepo repositories.NotificationRepository) NotificationService {
	return &notificationService{notifRepo: notifRepo}
}

// ListNotifications is the polling endpoint: recent notifications plus
// the unread counter for the badge.
func (s *notificationService) ListNotifications(db *gorm.DB, userID string, limit int) (*dto.NotificationListResponse, error) {
	if limit <= 0 || limit > defaultNotificationLimit {
		limit = defaultNotificationLimit
	}

	notifications, err := s.notifRepo.ListByUser(db, userID, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if notifications == nil {
		notifications = []models.Notification{}
	}

	unread, err := s.notifRepo.CountUnread(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.NotificationListResponse{
		Notifications: notifications,
		UnreadCount:   unread,
	}, nil
}

func (s *notificationService) MarkRead(db *gorm.DB, userID, notificationID string) error {
	if err := s.notifRepo.MarkRead(db, notificationID, userID); err != nil {
		if errors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *notificationService) MarkAllRead(db *gorm.DB, userID string) error {
	if err := s.notifRepo.MarkAllRead(db, userID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

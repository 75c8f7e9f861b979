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

type ConnectionService interface {
	RequestConnection(db *gorm.DB, requesterID string, req *dto.CreateConnectionRequest) (*dto.ConnectionResponse, error)
	AcceptConnection(db *gorm.DB, userID, connectionID string) (*dto.ConnectionResponse, error)
	RejectConnection(db *gorm.DB, userID, connectionID string) (*dto.ConnectionResponse, error)
	ListConnections(db *gorm.DB, userID string, status models.ConnectionStatus) ([]dto.ConnectionResponse, error)
	RemoveConnection(db *gorm.DB, userID, connectionID string) error
}

type connectionService struct {
	connRepo  repositories.ConnectionRepository
	userRepo  repositories.UserRepository
	notifRepo repositories.NotificationRepository
}

func NewConnectionService(
	connRepo repositories.ConnectionRepository,
	userRepo repositories.UserRepository,
	notifRepo repositories.NotificationRepository,
) ConnectionService {
	return &connectionService{
		connRepo:  connRepo,
		userRepo:  userRepo,
		notifRepo: notifRepo,
	}
}

// RequestConnection creates a pending request. At most one connection
// exists per user pair regardless of direction.
func (s *connectionService) RequestConnection(db *gorm.DB, requesterID string, req *dto.CreateConnectionRequest) (*dto.ConnectionResponse, error) {
	if req.RecipientID == requesterID {
		return nil, apperrors.ErrInvalidOperation("connection", "You cannot connect with yourself")
	}

	if _, err := s.userRepo.FindByID(db, req.RecipientID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	conn := &models.Connection{
		RequesterID: requesterID,
		RecipientID: req.RecipientID,
		Status:      models.ConnectionStatusPending,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := s.connRepo.Create(tx, conn); err != nil {
			return err
		}
		return s.notify(tx, req.RecipientID, models.NotificationConnectionRequest, map[string]string{
			"connection_id": conn.ID,
			"requester_id":  requesterID,
		})
	})
	if err != nil {
		if errors.Is(err, repositories.ErrConnectionExists) {
			return nil, apperrors.ErrConflict(err, "connection", "A connection already exists between these users")
		}
		return nil, apperrors.InternalError(err)
	}

	resp := toConnectionResponse(conn)
	return &resp, nil
}

func (s *connectionService) AcceptConnection(db *gorm.DB, userID, connectionID string) (*dto.ConnectionResponse, error) {
	return s.respond(db, userID, connectionID, models.ConnectionStatusAccepted)
}

func (s *connectionService) RejectConnection(db *gorm.DB, userID, connectionID string) (*dto.ConnectionResponse, error) {
	return s.respond(db, userID, connectionID, models.ConnectionStatusRejected)
}

// respond lets the recipient settle a pending request. Requests
// already settled cannot change again.
func (s *connectionService) respond(db *gorm.DB, userID, connectionID string, status models.ConnectionStatus) (*dto.ConnectionResponse, error) {
	conn, err := s.connRepo.FindByID(db, connectionID)
	if err != nil {
		if errors.Is(err, repositories.ErrConnectionNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if conn.RecipientID != userID {
		return nil, apperrors.NewForbiddenError("Only the recipient can respond to a connection request")
	}
	if conn.Status != models.ConnectionStatusPending {
		return nil, apperrors.ErrInvalidStatus("connection", "Connection request is already settled")
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.connRepo.UpdateStatus(tx, connectionID, status); err != nil {
			return err
		}
		if status == models.ConnectionStatusAccepted {
			return s.notify(tx, conn.RequesterID, models.NotificationConnectionAccepted, map[string]string{
				"connection_id": conn.ID,
				"recipient_id":  conn.RecipientID,
			})
		}
		return nil
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	conn.Status = status
	resp := toConnectionResponse(conn)
	return &resp, nil
}

// ListConnections returns the user's connections with the peer's
// public profile attached.
func (s *connectionService) ListConnections(db *gorm.DB, userID string, status models.ConnectionStatus) ([]dto.ConnectionResponse, error) {
	conns, err := s.connRepo.ListForUser(db, userID, status)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.ConnectionResponse, 0, len(conns))
	for i := range conns {
		resp := toConnectionResponse(&conns[i])

		peerID := conns[i].PeerOf(userID)
		if peer, err := s.userRepo.FindByID(db, peerID); err == nil {
			public := toPublicUserResponse(peer)
			resp.Peer = &public
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

func (s *connectionService) RemoveConnection(db *gorm.DB, userID, connectionID string) error {
	conn, err := s.connRepo.FindByID(db, connectionID)
	if err != nil {
		if errors.Is(err, repositories.ErrConnectionNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	if !conn.Involves(userID) {
		return apperrors.NewForbiddenError("You are not part of this connection")
	}

	if err := s.connRepo.Delete(db, connectionID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *connectionService) notify(db *gorm.DB, userID string, kind models.NotificationType, payload map[string]string) error {
	b, _ := json.Marshal(payload)
	return s.notifRepo.Create(db, &models.Notification{
		UserID:  userID,
		Type:    kind,
		Payload: datatypes.JSON(b),
	})
}

func toConnectionResponse(conn *models.Connection) dto.ConnectionResponse {
	return dto.ConnectionResponse{
		ID:          conn.ID,
		RequesterID: conn.RequesterID,
		RecipientID: conn.RecipientID,
		Status:      conn.Status,
	}
}

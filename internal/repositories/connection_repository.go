package repositories

import (
	"errors"

	"castingfy/internal/models"

	"gorm.io/gorm"
)

var (
	ErrConnectionNotFound = errors.New("connection not found")
	ErrConnectionExists   = errors.New("connection already exists for this pair")
)

type ConnectionRepository interface {
	Create(db *gorm.DB, conn *models.Connection) error
	FindByID(db *gorm.DB, id string) (*models.Connection, error)
	ListForUser(db *gorm.DB, userID string, status models.ConnectionStatus) ([]models.Connection, error)
	UpdateStatus(db *gorm.DB, id string, status models.ConnectionStatus) error
	Delete(db *gorm.DB, id string) error
}

type ConnectionRepositoryImpl struct{}

func NewConnectionRepository() ConnectionRepository {
	return &ConnectionRepositoryImpl{}
}

// Create inserts a pending connection. The friendly existence check
// covers both directions; the unique index on the sorted pair closes
// the concurrent window the check alone cannot.
func (r *ConnectionRepositoryImpl) Create(db *gorm.DB, conn *models.Connection) error {
	conn.NormalizePair()

	var existing models.Connection
	err := db.Where("user_lo = ? AND user_hi = ?", conn.UserLo, conn.UserHi).First(&existing).Error
	if err == nil {
		return ErrConnectionExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if err := db.Create(conn).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrConnectionExists
		}
		return err
	}
	return nil
}

func (r *ConnectionRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Connection, error) {
	var conn models.Connection
	err := db.First(&conn, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConnectionNotFound
		}
		return nil, err
	}
	return &conn, nil
}

func (r *ConnectionRepositoryImpl) ListForUser(db *gorm.DB, userID string, status models.ConnectionStatus) ([]models.Connection, error) {
	query := db.Where("requester_id = ? OR recipient_id = ?", userID, userID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var conns []models.Connection
	err := query.Order("created_at DESC").Find(&conns).Error
	return conns, err
}

func (r *ConnectionRepositoryImpl) UpdateStatus(db *gorm.DB, id string, status models.ConnectionStatus) error {
	result := db.Model(&models.Connection{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrConnectionNotFound
	}
	return nil
}

func (r *ConnectionRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Connection{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrConnectionNotFound
	}
	return nil
}

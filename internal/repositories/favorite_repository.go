package repositories

import (
	"errors"

	"castingfy/internal/models"

	"gorm.io/gorm"
)

var (
	ErrFavoriteNotFound = errors.New("favorite not found")
	ErrFavoriteExists   = errors.New("talent is already in favorites")
)

type FavoriteRepository interface {
	Create(db *gorm.DB, fav *models.Favorite) error
	Delete(db *gorm.DB, userID, talentID string) error
	ListByUser(db *gorm.DB, userID string) ([]models.Favorite, error)
	Exists(db *gorm.DB, userID, talentID string) (bool, error)
}

type FavoriteRepositoryImpl struct{}

func NewFavoriteRepository() FavoriteRepository {
	return &FavoriteRepositoryImpl{}
}

func (r *FavoriteRepositoryImpl) Create(db *gorm.DB, fav *models.Favorite) error {
	var existing models.Favorite
	err := db.Where("user_id = ? AND talent_id = ?", fav.UserID, fav.TalentID).First(&existing).Error
	if err == nil {
		return ErrFavoriteExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if err := db.Create(fav).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrFavoriteExists
		}
		return err
	}
	return nil
}

func (r *FavoriteRepositoryImpl) Delete(db *gorm.DB, userID, talentID string) error {
	result := db.Where("user_id = ? AND talent_id = ?", userID, talentID).Delete(&models.Favorite{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}

func (r *FavoriteRepositoryImpl) ListByUser(db *gorm.DB, userID string) ([]models.Favorite, error) {
	var favs []models.Favorite
	err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&favs).Error
	return favs, err
}

func (r *FavoriteRepositoryImpl) Exists(db *gorm.DB, userID, talentID string) (bool, error) {
	var count int64
	err := db.Model(&models.Favorite{}).
		Where("user_id = ? AND talent_id = ?", userID, talentID).
		Count(&count).Error
	return count > 0, err
}

package repositories

import (
	"errors"

	"castingfy/internal/models"

	"gorm.io/gorm"
)

var ErrGalleryImageNotFound = errors.New("gallery image not found")

type GalleryRepository interface {
	Create(db *gorm.DB, image *models.GalleryImage) error
	FindByID(db *gorm.DB, id string) (*models.GalleryImage, error)
	ListByUser(db *gorm.DB, userID string) ([]models.GalleryImage, error)
	CountByUser(db *gorm.DB, userID string) (int64, error)
	Update(db *gorm.DB, image *models.GalleryImage) error
	Delete(db *gorm.DB, id string) error
}

type GalleryRepositoryImpl struct{}

func NewGalleryRepository() GalleryRepository {
	return &GalleryRepositoryImpl{}
}

func (r *GalleryRepositoryImpl) Create(db *gorm.DB, image *models.GalleryImage) error {
	return db.Create(image).Error
}

func (r *GalleryRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.GalleryImage, error) {
	var image models.GalleryImage
	err := db.First(&image, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGalleryImageNotFound
		}
		return nil, err
	}
	return &image, nil
}

func (r *GalleryRepositoryImpl) ListByUser(db *gorm.DB, userID string) ([]models.GalleryImage, error) {
	var images []models.GalleryImage
	err := db.Where("user_id = ?", userID).
		Order("position ASC, created_at ASC").
		Find(&images).Error
	return images, err
}

func (r *GalleryRepositoryImpl) CountByUser(db *gorm.DB, userID string) (int64, error) {
	var count int64
	err := db.Model(&models.GalleryImage{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *GalleryRepositoryImpl) Update(db *gorm.DB, image *models.GalleryImage) error {
	result := db.Model(&models.GalleryImage{}).Where("id = ?", image.ID).Updates(map[string]interface{}{
		"caption":  image.Caption,
		"position": image.Position,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGalleryImageNotFound
	}
	return nil
}

func (r *GalleryRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.GalleryImage{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGalleryImageNotFound
	}
	return nil
}

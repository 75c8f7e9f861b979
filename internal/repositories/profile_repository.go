package repositories

import (
	"errors"

	"castingfy/internal/models"

	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepository interface {
	CreateTalent(db *gorm.DB, profile *models.TalentProfile) error
	CreateProducer(db *gorm.DB, profile *models.ProducerProfile) error
	FindTalentByUserID(db *gorm.DB, userID string) (*models.TalentProfile, error)
	FindProducerByUserID(db *gorm.DB, userID string) (*models.ProducerProfile, error)
	UpdateTalent(db *gorm.DB, profile *models.TalentProfile) error
	UpdateProducer(db *gorm.DB, profile *models.ProducerProfile) error
	UpdateTalentRating(db *gorm.DB, userID string, rating float64) error
}

type ProfileRepositoryImpl struct{}

func NewProfileRepository() ProfileRepository {
	return &ProfileRepositoryImpl{}
}

func (r *ProfileRepositoryImpl) CreateTalent(db *gorm.DB, profile *models.TalentProfile) error {
	return db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) CreateProducer(db *gorm.DB, profile *models.ProducerProfile) error {
	return db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindTalentByUserID(db *gorm.DB, userID string) (*models.TalentProfile, error) {
	var profile models.TalentProfile
	err := db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindProducerByUserID(db *gorm.DB, userID string) (*models.ProducerProfile, error) {
	var profile models.ProducerProfile
	err := db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) UpdateTalent(db *gorm.DB, profile *models.TalentProfile) error {
	result := db.Model(&models.TalentProfile{}).Where("user_id = ?", profile.UserID).Updates(map[string]interface{}{
		"display_name":     profile.DisplayName,
		"bio":              profile.Bio,
		"location":         profile.Location,
		"gender":           profile.Gender,
		"skills":           profile.Skills,
		"languages":        profile.Languages,
		"avatar_url":       profile.AvatarURL,
		"instagram_handle": profile.InstagramHandle,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepositoryImpl) UpdateProducer(db *gorm.DB, profile *models.ProducerProfile) error {
	result := db.Model(&models.ProducerProfile{}).Where("user_id = ?", profile.UserID).Updates(map[string]interface{}{
		"company_name": profile.CompanyName,
		"display_name": profile.DisplayName,
		"bio":          profile.Bio,
		"location":     profile.Location,
		"website":      profile.Website,
		"avatar_url":   profile.AvatarURL,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepositoryImpl) UpdateTalentRating(db *gorm.DB, userID string, rating float64) error {
	return db.Model(&models.TalentProfile{}).
		Where("user_id = ?", userID).
		Update("rating", rating).Error
}

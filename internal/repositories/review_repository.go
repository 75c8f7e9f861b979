package repositories

import (
	"errors"

	"castingfy/internal/models"

	"gorm.io/gorm"
)

var (
	ErrReviewNotFound      = errors.New("review not found")
	ErrReviewAlreadyExists = errors.New("review already exists for this talent")
)

type ReviewRepository interface {
	Create(db *gorm.DB, review *models.Review) error
	FindByID(db *gorm.DB, id string) (*models.Review, error)
	FindByReviewerAndTalent(db *gorm.DB, reviewerID, talentID string) (*models.Review, error)
	ListByTalent(db *gorm.DB, talentID string) ([]models.Review, error)
	AverageRating(db *gorm.DB, talentID string) (float64, int64, error)
	Delete(db *gorm.DB, id string) error
}

type ReviewRepositoryImpl struct{}

func NewReviewRepository() ReviewRepository {
	return &ReviewRepositoryImpl{}
}

func (r *ReviewRepositoryImpl) Create(db *gorm.DB, review *models.Review) error {
	var existing models.Review
	err := db.Where("reviewer_id = ? AND talent_id = ?", review.ReviewerID, review.TalentID).
		First(&existing).Error
	if err == nil {
		return ErrReviewAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if err := db.Create(review).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrReviewAlreadyExists
		}
		return err
	}
	return nil
}

func (r *ReviewRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Review, error) {
	var review models.Review
	err := db.First(&review, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepositoryImpl) FindByReviewerAndTalent(db *gorm.DB, reviewerID, talentID string) (*models.Review, error) {
	var review models.Review
	err := db.Where("reviewer_id = ? AND talent_id = ?", reviewerID, talentID).First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepositoryImpl) ListByTalent(db *gorm.DB, talentID string) ([]models.Review, error) {
	var reviews []models.Review
	err := db.Where("talent_id = ?", talentID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepositoryImpl) AverageRating(db *gorm.DB, talentID string) (float64, int64, error) {
	var count int64
	if err := db.Model(&models.Review{}).Where("talent_id = ?", talentID).Count(&count).Error; err != nil {
		return 0, 0, err
	}
	if count == 0 {
		return 0, 0, nil
	}

	var avg float64
	err := db.Model(&models.Review{}).
		Where("talent_id = ?", talentID).
		Select("AVG(rating)").
		Scan(&avg).Error
	return avg, count, err
}

func (r *ReviewRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Review{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReviewNotFound
	}
	return nil
}

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

type ReviewService interface {
	CreateReview(db *gorm.DB, reviewerID string, req *dto.CreateReviewRequest) (*models.Review, error)
	ListReviews(db *gorm.DB, talentID string) (*dto.ReviewListResponse, error)
	GetRating(db *gorm.DB, talentID string) (*dto.RatingResponse, error)
	DeleteReview(db *gorm.DB, userID, reviewID string) error
}

type reviewService struct {
	reviewRepo  repositories.ReviewRepository
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
	notifRepo   repositories.NotificationRepository
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	notifRepo repositories.NotificationRepository,
) ReviewService {
	return &reviewService{
		reviewRepo:  reviewRepo,
		userRepo:    userRepo,
		profileRepo: profileRepo,
		notifRepo:   notifRepo,
	}
}

// CreateReview leaves one review per reviewer per talent. The talent
// profile's cached rating is recomputed in the same transaction.
func (s *reviewService) CreateReview(db *gorm.DB, reviewerID string, req *dto.CreateReviewRequest) (*models.Review, error) {
	if req.TalentID == reviewerID {
		return nil, apperrors.ErrInvalidOperation("review", "You cannot review yourself")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, apperrors.ErrInvalidOperation("review", "Rating must be between 1 and 5")
	}

	talent, err := s.userRepo.FindByID(db, req.TalentID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if talent.Role != models.UserRoleTalent {
		return nil, apperrors.ErrInvalidOperation("review", "Reviews can only be left for talent")
	}

	review := &models.Review{
		TalentID:   req.TalentID,
		ReviewerID: reviewerID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.reviewRepo.Create(tx, review); err != nil {
			return err
		}
		if err := s.recomputeRating(tx, req.TalentID); err != nil {
			return err
		}

		payload, _ := json.Marshal(map[string]string{
			"review_id":   review.ID,
			"reviewer_id": reviewerID,
		})
		return s.notifRepo.Create(tx, &models.Notification{
			UserID:  req.TalentID,
			Type:    models.NotificationNewReview,
			Payload: datatypes.JSON(payload),
		})
	})
	if err != nil {
		if errors.Is(err, repositories.ErrReviewAlreadyExists) {
			return nil, apperrors.ErrConflict(err, "review", "You have already reviewed this talent")
		}
		return nil, apperrors.InternalError(err)
	}

	return review, nil
}

func (s *reviewService) ListReviews(db *gorm.DB, talentID string) (*dto.ReviewListResponse, error) {
	reviews, err := s.reviewRepo.ListByTalent(db, talentID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	return &dto.ReviewListResponse{
		Reviews: reviews,
		Total:   int64(len(reviews)),
	}, nil
}

func (s *reviewService) GetRating(db *gorm.DB, talentID string) (*dto.RatingResponse, error) {
	avg, count, err := s.reviewRepo.AverageRating(db, talentID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.RatingResponse{
		TalentID:      talentID,
		AverageRating: avg,
		TotalReviews:  count,
	}, nil
}

func (s *reviewService) DeleteReview(db *gorm.DB, userID, reviewID string) error {
	review, err := s.reviewRepo.FindByID(db, reviewID)
	if err != nil {
		if errors.Is(err, repositories.ErrReviewNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	if review.ReviewerID != userID {
		return apperrors.NewForbiddenError("Only the author can delete a review")
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.reviewRepo.Delete(tx, reviewID); err != nil {
			return err
		}
		return s.recomputeRating(tx, review.TalentID)
	})
	if err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *reviewService) recomputeRating(db *gorm.DB, talentID string) error {
	avg, _, err := s.reviewRepo.AverageRating(db, talentID)
	if err != nil {
		return err
	}
	return s.profileRepo.UpdateTalentRating(db, talentID, avg)
}

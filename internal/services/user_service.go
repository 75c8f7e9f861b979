package services

import (
	"errors"

	"castingfy/internal/models"
	"castingfy/internal/repositories"
	"castingfy/internal/services/dto"
	"castingfy/pkg/apperrors"

	"gorm.io/gorm"
)

type UserService interface {
	GetMe(db *gorm.DB, userID string) (*dto.UserResponse, error)
	GetPublicProfile(db *gorm.DB, userID string) (*dto.PublicUserResponse, error)
	DeactivateAccount(db *gorm.DB, userID string) error
}

type userService struct {
	userRepo    repositories.UserRepository
	reviewRepo  repositories.ReviewRepository
	galleryRepo repositories.GalleryRepository
	tokenRepo   repositories.TokenRepository
}

func NewUserService(
	userRepo repositories.UserRepository,
	reviewRepo repositories.ReviewRepository,
	galleryRepo repositories.GalleryRepository,
	tokenRepo repositories.TokenRepository,
) UserService {
	return &userService{
		userRepo:    userRepo,
		reviewRepo:  reviewRepo,
		galleryRepo: galleryRepo,
		tokenRepo:   tokenRepo,
	}
}

func (s *userService) GetMe(db *gorm.DB, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return toUserResponse(user), nil
}

// GetPublicProfile assembles the read-only profile page: profile data
// plus rating aggregate and gallery size. Email and status stay out.
func (s *userService) GetPublicProfile(db *gorm.DB, userID string) (*dto.PublicUserResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.PublicUserResponse{
		ID:              user.ID,
		Role:            user.Role,
		TalentProfile:   user.TalentProfile,
		ProducerProfile: user.ProducerProfile,
	}

	if user.Role == models.UserRoleTalent {
		avg, count, err := s.reviewRepo.AverageRating(db, user.ID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		resp.Rating = avg
		resp.ReviewCount = count

		galleryCount, err := s.galleryRepo.CountByUser(db, user.ID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		resp.GalleryCount = galleryCount
	}

	return resp, nil
}

// DeactivateAccount suspends the account and revokes its refresh
// tokens. User rows are never removed; profiles, projects, reviews
// and conversations keep valid references.
func (s *userService) DeactivateAccount(db *gorm.DB, userID string) error {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	user.Status = models.UserStatusSuspended
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.Update(tx, user); err != nil {
			return err
		}
		return s.tokenRepo.DeleteByUser(tx, userID)
	})
	if err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func toUserResponse(user *models.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:              user.ID,
		Email:           user.Email,
		Role:            user.Role,
		Status:          user.Status,
		IsVerified:      user.IsVerified,
		TalentProfile:   user.TalentProfile,
		ProducerProfile: user.ProducerProfile,
	}
}

func toPublicUserResponse(user *models.User) dto.PublicUserResponse {
	resp := dto.PublicUserResponse{
		ID:              user.ID,
		Role:            user.Role,
		TalentProfile:   user.TalentProfile,
		ProducerProfile: user.ProducerProfile,
	}
	if user.TalentProfile != nil {
		resp.Rating = user.TalentProfile.Rating
	}
	return resp
}

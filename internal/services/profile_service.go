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

type ProfileService interface {
	UpdateTalentProfile(db *gorm.DB, userID string, req *dto.UpdateTalentProfileRequest) (*models.TalentProfile, error)
	UpdateProducerProfile(db *gorm.DB, userID string, req *dto.UpdateProducerProfileRequest) (*models.ProducerProfile, error)
}

type profileService struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
}

func NewProfileService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
) ProfileService {
	return &profileService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

func (s *profileService) UpdateTalentProfile(db *gorm.DB, userID string, req *dto.UpdateTalentProfileRequest) (*models.TalentProfile, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if user.Role != models.UserRoleTalent {
		return nil, apperrors.ErrInvalidUserRole
	}

	profile := &models.TalentProfile{
		UserID:          userID,
		DisplayName:     req.DisplayName,
		Bio:             req.Bio,
		Location:        req.Location,
		Gender:          req.Gender,
		Skills:          toJSONArray(req.Skills),
		Languages:       toJSONArray(req.Languages),
		AvatarURL:       req.AvatarURL,
		InstagramHandle: req.InstagramHandle,
	}

	if err := s.profileRepo.UpdateTalent(db, profile); err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	return s.profileRepo.FindTalentByUserID(db, userID)
}

func (s *profileService) UpdateProducerProfile(db *gorm.DB, userID string, req *dto.UpdateProducerProfileRequest) (*models.ProducerProfile, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if user.Role != models.UserRoleProducer {
		return nil, apperrors.ErrInvalidUserRole
	}

	profile := &models.ProducerProfile{
		UserID:      userID,
		CompanyName: req.CompanyName,
		DisplayName: req.DisplayName,
		Bio:         req.Bio,
		Location:    req.Location,
		Website:     req.Website,
		AvatarURL:   req.AvatarURL,
	}

	if err := s.profileRepo.UpdateProducer(db, profile); err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	return s.profileRepo.FindProducerByUserID(db, userID)
}

// toJSONArray stores a string slice as a JSON array, never null.
func toJSONArray(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	b, _ := json.Marshal(values)
	return datatypes.JSON(b)
}

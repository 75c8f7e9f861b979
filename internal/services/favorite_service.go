package services

import (
	"errors"

	"castingfy/internal/models"
	"castingfy/internal/repositories"
	"castingfy/internal/services/dto"
	"castingfy/pkg/apperrors"

	"gorm.io/gorm"
)

type FavoriteService interface {
	AddFavorite(db *gorm.DB, userID, talentID string) error
	RemoveFavorite(db *gorm.DB, userID, talentID string) error
	ListFavorites(db *gorm.DB, userID string) ([]dto.PublicUserResponse, error)
}

type favoriteService struct {
	favoriteRepo repositories.FavoriteRepository
	userRepo     repositories.UserRepository
}

func NewFavoriteService(
	favoriteRepo repositories.FavoriteRepository,
	userRepo repositories.UserRepository,
) FavoriteService {
	return &favoriteService{
		favoriteRepo: favoriteRepo,
		userRepo:     userRepo,
	}
}

func (s *favoriteService) AddFavorite(db *gorm.DB, userID, talentID string) error {
	if userID == talentID {
		return apperrors.ErrInvalidOperation("favorite", "You cannot favorite yourself")
	}

	talent, err := s.userRepo.FindByID(db, talentID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	if talent.Role != models.UserRoleTalent {
		return apperrors.ErrInvalidOperation("favorite", "Only talent can be added to favorites")
	}

	if err := s.favoriteRepo.Create(db, &models.Favorite{UserID: userID, TalentID: talentID}); err != nil {
		if errors.Is(err, repositories.ErrFavoriteExists) {
			return apperrors.ErrConflict(err, "favorite", "Talent is already in your favorites")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *favoriteService) RemoveFavorite(db *gorm.DB, userID, talentID string) error {
	if err := s.favoriteRepo.Delete(db, userID, talentID); err != nil {
		if errors.Is(err, repositories.ErrFavoriteNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *favoriteService) ListFavorites(db *gorm.DB, userID string) ([]dto.PublicUserResponse, error) {
	favs, err := s.favoriteRepo.ListByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	results := make([]dto.PublicUserResponse, 0, len(favs))
	for _, fav := range favs {
		talent, err := s.userRepo.FindByID(db, fav.TalentID)
		if err != nil {
			// Favorited account was deleted; skip the dangling row.
			continue
		}
		results = append(results, toPublicUserResponse(talent))
	}
	return results, nil
}

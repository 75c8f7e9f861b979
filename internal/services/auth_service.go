package services

import (
	"errors"
	"time"

	"castingfy/internal/auth"
	"castingfy/internal/email"
	"castingfy/internal/models"
	"castingfy/internal/repositories"
	"castingfy/internal/services/dto"
	"castingfy/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const refreshTokenTTL = 30 * 24 * time.Hour

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(db *gorm.DB, refreshToken string) (*dto.LoginResponse, error)
	Logout(db *gorm.DB, refreshToken string) error
	VerifyEmail(db *gorm.DB, token string) (*dto.UserResponse, error)
	ChangePassword(db *gorm.DB, userID string, req *dto.ChangePasswordRequest) error
}

type authService struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
	tokenRepo   repositories.TokenRepository
	emailSvc    *email.Service
}

func NewAuthService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	tokenRepo repositories.TokenRepository,
	emailSvc *email.Service,
) AuthService {
	return &authService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		tokenRepo:   tokenRepo,
		emailSvc:    emailSvc,
	}
}

// Register creates the account and its role-matched empty profile in
// one transaction, then emails the verification token. Admin accounts
// cannot self-register.
func (s *authService) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	if req.Role != models.UserRoleTalent && req.Role != models.UserRoleProducer {
		return nil, apperrors.ErrInvalidUserRole
	}
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:             req.Email,
		PasswordHash:      hash,
		Role:              req.Role,
		Status:            models.UserStatusPending,
		VerificationToken: uuid.NewString(),
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.Create(tx, user); err != nil {
			return err
		}

		switch req.Role {
		case models.UserRoleTalent:
			profile := &models.TalentProfile{
				UserID:      user.ID,
				DisplayName: req.DisplayName,
			}
			if err := s.profileRepo.CreateTalent(tx, profile); err != nil {
				return err
			}
			user.TalentProfile = profile
		case models.UserRoleProducer:
			profile := &models.ProducerProfile{
				UserID:      user.ID,
				DisplayName: req.DisplayName,
				CompanyName: req.CompanyName,
			}
			if err := s.profileRepo.CreateProducer(tx, profile); err != nil {
				return err
			}
			user.ProducerProfile = profile
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	s.emailSvc.SendVerificationEmail(user.Email, req.DisplayName, user.VerificationToken)

	return toUserResponse(user), nil
}

func (s *authService) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if user.Status == models.UserStatusSuspended {
		return nil, apperrors.ErrAccountSuspended
	}

	return s.issueTokens(db, user)
}

// Refresh rotates the refresh token: the presented token is consumed
// and a fresh pair is issued.
func (s *authService) Refresh(db *gorm.DB, refreshToken string) (*dto.LoginResponse, error) {
	stored, err := s.tokenRepo.FindByToken(db, refreshToken)
	if err != nil {
		if errors.Is(err, repositories.ErrRefreshTokenNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.InternalError(err)
	}

	if time.Now().After(stored.ExpiresAt) {
		_ = s.tokenRepo.Delete(db, refreshToken)
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(db, stored.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	if user.Status == models.UserStatusSuspended {
		return nil, apperrors.ErrAccountSuspended
	}

	if err := s.tokenRepo.Delete(db, refreshToken); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.issueTokens(db, user)
}

func (s *authService) Logout(db *gorm.DB, refreshToken string) error {
	err := s.tokenRepo.Delete(db, refreshToken)
	if err != nil && !errors.Is(err, repositories.ErrRefreshTokenNotFound) {
		return apperrors.InternalError(err)
	}
	return nil
}

// VerifyEmail flips the account to active. The token is single-use.
func (s *authService) VerifyEmail(db *gorm.DB, token string) (*dto.UserResponse, error) {
	if token == "" {
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByVerificationToken(db, token)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.InternalError(err)
	}

	user.IsVerified = true
	user.Status = models.UserStatusActive
	user.VerificationToken = ""
	if err := s.userRepo.Update(db, user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	displayName := user.Email
	if profile, perr := s.profileRepo.FindTalentByUserID(db, user.ID); perr == nil {
		displayName = profile.DisplayName
	} else if profile, perr := s.profileRepo.FindProducerByUserID(db, user.ID); perr == nil {
		displayName = profile.DisplayName
	}
	s.emailSvc.SendWelcomeEmail(user.Email, displayName)

	return toUserResponse(user), nil
}

// ChangePassword verifies the current password, stores the new hash
// and revokes every refresh token of the user.
func (s *authService) ChangePassword(db *gorm.DB, userID string, req *dto.ChangePasswordRequest) error {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		return apperrors.ErrInvalidCredentials
	}
	if err := auth.ValidatePassword(req.NewPassword); err != nil {
		return apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	user.PasswordHash = hash
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

func (s *authService) issueTokens(db *gorm.DB, user *models.User) (*dto.LoginResponse, error) {
	accessToken, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refresh := &models.RefreshToken{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}
	if err := s.tokenRepo.Create(db, refresh); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refresh.Token,
		User:         toUserResponse(user),
	}, nil
}

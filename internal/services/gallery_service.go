package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"castingfy/internal/config"
	"castingfy/internal/logger"
	"castingfy/internal/models"
	"castingfy/internal/repositories"
	"castingfy/internal/services/dto"
	"castingfy/internal/storage"
	"castingfy/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const maxGallerySize = 30

type GalleryService interface {
	UploadImage(ctx context.Context, db *gorm.DB, userID string, upload *ImageUpload) (*models.GalleryImage, error)
	ListGallery(db *gorm.DB, userID string) (*dto.GalleryResponse, error)
	UpdateImage(db *gorm.DB, userID, imageID string, req *dto.UpdateImageRequest) (*models.GalleryImage, error)
	DeleteImage(ctx context.Context, db *gorm.DB, userID, imageID string) error
}

// ImageUpload carries one incoming file from the multipart form.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
	Caption     string
}

type galleryService struct {
	galleryRepo repositories.GalleryRepository
	store       storage.Storage
}

func NewGalleryService(galleryRepo repositories.GalleryRepository, store storage.Storage) GalleryService {
	return &galleryService{
		galleryRepo: galleryRepo,
		store:       store,
	}
}

// UploadImage validates the file, writes it to storage and records it
// at the end of the user's gallery.
func (s *galleryService) UploadImage(ctx context.Context, db *gorm.DB, userID string, upload *ImageUpload) (*models.GalleryImage, error) {
	cfg := config.GetConfig()

	if upload.Size > cfg.Upload.MaxSize {
		return nil, apperrors.ErrInvalidOperation("gallery",
			fmt.Sprintf("File exceeds the %d byte limit", cfg.Upload.MaxSize))
	}
	if !allowedContentType(upload.ContentType, cfg.Upload.AllowedTypes) {
		return nil, apperrors.ErrInvalidOperation("gallery", "Unsupported file type")
	}

	count, err := s.galleryRepo.CountByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if count >= maxGallerySize {
		return nil, apperrors.ErrInvalidOperation("gallery", "Gallery is full")
	}

	key := fmt.Sprintf("gallery/%s/%s%s", userID, uuid.NewString(), extensionFor(upload))
	url, err := s.store.Save(ctx, key, upload.Reader, upload.ContentType)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeExternalServiceError, "gallery",
			"Failed to store the uploaded file", 502)
	}

	image := &models.GalleryImage{
		UserID:      userID,
		URL:         url,
		StoragePath: key,
		ContentType: upload.ContentType,
		Caption:     upload.Caption,
		Position:    int(count),
	}
	if err := s.galleryRepo.Create(db, image); err != nil {
		// The DB row failed after the object landed; drop the orphan.
		if derr := s.store.Delete(ctx, key); derr != nil {
			logger.Error("gallery: failed to clean up orphaned object", "error", derr.Error(), "key", key)
		}
		return nil, apperrors.InternalError(err)
	}

	return image, nil
}

func (s *galleryService) ListGallery(db *gorm.DB, userID string) (*dto.GalleryResponse, error) {
	images, err := s.galleryRepo.ListByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if images == nil {
		images = []models.GalleryImage{}
	}
	return &dto.GalleryResponse{
		Images: images,
		Total:  int64(len(images)),
	}, nil
}

func (s *galleryService) UpdateImage(db *gorm.DB, userID, imageID string, req *dto.UpdateImageRequest) (*models.GalleryImage, error) {
	image, err := s.loadOwnedImage(db, userID, imageID)
	if err != nil {
		return nil, err
	}

	image.Caption = req.Caption
	image.Position = req.Position
	if err := s.galleryRepo.Update(db, image); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return image, nil
}

func (s *galleryService) DeleteImage(ctx context.Context, db *gorm.DB, userID, imageID string) error {
	image, err := s.loadOwnedImage(db, userID, imageID)
	if err != nil {
		return err
	}

	if err := s.galleryRepo.Delete(db, imageID); err != nil {
		return apperrors.InternalError(err)
	}

	// Object cleanup is best effort once the record is gone.
	if err := s.store.Delete(ctx, image.StoragePath); err != nil {
		logger.Error("gallery: failed to delete stored object", "error", err.Error(), "key", image.StoragePath)
	}
	return nil
}

func (s *galleryService) loadOwnedImage(db *gorm.DB, userID, imageID string) (*models.GalleryImage, error) {
	image, err := s.galleryRepo.FindByID(db, imageID)
	if err != nil {
		if errors.Is(err, repositories.ErrGalleryImageNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if image.UserID != userID {
		return nil, apperrors.NewForbiddenError("You do not own this image")
	}
	return image, nil
}

func allowedContentType(contentType string, allowed []string) bool {
	for _, a := range allowed {
		if strings.EqualFold(contentType, a) {
			return true
		}
	}
	return false
}

func extensionFor(upload *ImageUpload) string {
	if ext := path.Ext(upload.Filename); ext != "" {
		return strings.ToLower(ext)
	}
	switch upload.ContentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	}
	return ""
}

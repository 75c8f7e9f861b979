package services

import (
	"context"

	"castingfy/internal/services/dto"
	"castingfy/internal/social"
)

const instagramFeedSize = 12

type SocialService interface {
	GetInstagramFeed(ctx context.Context, handle string) *dto.SocialFeedResponse
}

type socialService struct {
	instagram *social.InstagramClient
}

func NewSocialService(instagram *social.InstagramClient) SocialService {
	return &socialService{instagram: instagram}
}

// GetInstagramFeed is best effort by contract: scrape failures return
// an empty image list, never an error.
func (s *socialService) GetInstagramFeed(ctx context.Context, handle string) *dto.SocialFeedResponse {
	images := s.instagram.FetchRecentImages(ctx, handle, instagramFeedSize)
	return &dto.SocialFeedResponse{
		Handle: handle,
		Images: images,
	}
}

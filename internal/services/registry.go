package services

import (
	"castingfy/internal/email"
	"castingfy/internal/repositories"
	"castingfy/internal/social"
	"castingfy/internal/storage"
)

// ServiceContainer aggregates every service for handler wiring.
type ServiceContainer struct {
	Auth         AuthService
	User         UserService
	Profile      ProfileService
	Project      ProjectService
	Search       SearchService
	Connection   ConnectionService
	Chat         ChatService
	Review       ReviewService
	Gallery      GalleryService
	Favorite     FavoriteService
	Notification NotificationService
	Social       SocialService
}

// NewServiceContainer wires repositories and infrastructure into the
// full service set.
func NewServiceContainer(emailSvc *email.Service, store storage.Storage, instagram *social.InstagramClient) *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	profileRepo := repositories.NewProfileRepository()
	tokenRepo := repositories.NewTokenRepository()
	projectRepo := repositories.NewProjectRepository()
	connRepo := repositories.NewConnectionRepository()
	chatRepo := repositories.NewChatRepository()
	reviewRepo := repositories.NewReviewRepository()
	galleryRepo := repositories.NewGalleryRepository()
	favoriteRepo := repositories.NewFavoriteRepository()
	notifRepo := repositories.NewNotificationRepository()

	return &ServiceContainer{
		Auth:         NewAuthService(userRepo, profileRepo, tokenRepo, emailSvc),
		User:         NewUserService(userRepo, reviewRepo, galleryRepo, tokenRepo),
		Profile:      NewProfileService(userRepo, profileRepo),
		Project:      NewProjectService(projectRepo),
		Search:       NewSearchService(userRepo, profileRepo),
		Connection:   NewConnectionService(connRepo, userRepo, notifRepo),
		Chat:         NewChatService(chatRepo, userRepo, notifRepo),
		Review:       NewReviewService(reviewRepo, userRepo, profileRepo, notifRepo),
		Gallery:      NewGalleryService(galleryRepo, store),
		Favorite:     NewFavoriteService(favoriteRepo, userRepo),
		Notification: NewNotificationService(notifRepo),
		Social:       NewSocialService(instagram),
	}
}

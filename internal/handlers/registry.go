package handlers

import "castingfy/internal/services"

// AppHandlers aggregates every feature handler for route wiring.
type AppHandlers struct {
	Auth         *AuthHandler
	User         *UserHandler
	Project      *ProjectHandler
	Search       *SearchHandler
	Connection   *ConnectionHandler
	Chat         *ChatHandler
	Review       *ReviewHandler
	Gallery      *GalleryHandler
	Favorite     *FavoriteHandler
	Notification *NotificationHandler
	Social       *SocialHandler
}

func NewAppHandlers(container *services.ServiceContainer) *AppHandlers {
	base := NewBaseHandler()

	return &AppHandlers{
		Auth:         NewAuthHandler(base, container.Auth),
		User:         NewUserHandler(base, container.User, container.Profile),
		Project:      NewProjectHandler(base, container.Project),
		Search:       NewSearchHandler(base, container.Search),
		Connection:   NewConnectionHandler(base, container.Connection),
		Chat:         NewChatHandler(base, container.Chat),
		Review:       NewReviewHandler(base, container.Review),
		Gallery:      NewGalleryHandler(base, container.Gallery),
		Favorite:     NewFavoriteHandler(base, container.Favorite),
		Notification: NewNotificationHandler(base, container.Notification),
		Social:       NewSocialHandler(base, container.Social),
	}
}

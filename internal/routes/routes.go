package routes

import (
	"net/http"

	"castingfy/internal/handlers"
	"castingfy/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the full API under /api/v1. Each handler
// receives a public and an authenticated group and decides where its
// endpoints belong.
func RegisterRoutes(router *gin.Engine, h *handlers.AppHandlers) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	public := v1.Group("")
	protected := v1.Group("", middleware.AuthMiddleware())

	h.Auth.RegisterRoutes(public, protected)
	h.User.RegisterRoutes(public, protected)
	h.Project.RegisterRoutes(public, protected)
	h.Search.RegisterRoutes(public, protected)
	h.Connection.RegisterRoutes(public, protected)
	h.Chat.RegisterRoutes(public, protected)
	h.Review.RegisterRoutes(public, protected)
	h.Gallery.RegisterRoutes(public, protected)
	h.Favorite.RegisterRoutes(public, protected)
	h.Notification.RegisterRoutes(public, protected)
	h.Social.RegisterRoutes(public, protected)
}

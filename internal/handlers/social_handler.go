package handlers

import (
	"castingfy/internal/services"

	"github.com/gin-gonic/gin"
)

type SocialHandler struct {
	*BaseHandler
	socialService services.SocialService
}

func NewSocialHandler(base *BaseHandler, socialService services.SocialService) *SocialHandler {
	return &SocialHandler{
		BaseHandler:   base,
		socialService: socialService,
	}
}

func (h *SocialHandler) RegisterRoutes(public, _ *gin.RouterGroup) {
	public.GET("/social/instagram/:handle", h.GetInstagramFeed)
}

// GetInstagramFeed proxies a best-effort scrape of the handle's
// public images. Always 200; failures show as an empty list.
func (h *SocialHandler) GetInstagramFeed(c *gin.Context) {
	resp := h.socialService.GetInstagramFeed(c.Request.Context(), c.Param("handle"))
	h.OK(c, resp)
}

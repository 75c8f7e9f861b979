package handlers

import (
	"castingfy/internal/services"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	*BaseHandler
	favoriteService services.FavoriteService
}

func NewFavoriteHandler(base *BaseHandler, favoriteService services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{
		BaseHandler:     base,
		favoriteService: favoriteService,
	}
}

func (h *FavoriteHandler) RegisterRoutes(_, protected *gin.RouterGroup) {
	favs := protected.Group("/favorites")
	{
		favs.GET("", h.ListFavorites)
		favs.POST("/:talentID", h.AddFavorite)
		favs.DELETE("/:talentID", h.RemoveFavorite)
	}
}

func (h *FavoriteHandler) AddFavorite(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	if err := h.favoriteService.AddFavorite(h.GetDB(c), userID, c.Param("talentID")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.NoContent(c)
}

func (h *FavoriteHandler) RemoveFavorite(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	if err := h.favoriteService.RemoveFavorite(h.GetDB(c), userID, c.Param("talentID")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.NoContent(c)
}

func (h *FavoriteHandler) ListFavorites(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	favs, err := h.favoriteService.ListFavorites(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"favorites": favs})
}

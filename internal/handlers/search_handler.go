package handlers

import (
	"castingfy/internal/services"
	"castingfy/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	*BaseHandler
	searchService services.SearchService
}

func NewSearchHandler(base *BaseHandler, searchService services.SearchService) *SearchHandler {
	return &SearchHandler{
		BaseHandler:   base,
		searchService: searchService,
	}
}

func (h *SearchHandler) RegisterRoutes(_, protected *gin.RouterGroup) {
	protected.GET("/search/users", h.SearchUsers)
}

// SearchUsers runs the talent/producer directory query.
func (h *SearchHandler) SearchUsers(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.SearchUsersRequest
	if !h.BindAndValidateQuery(c, &req) {
		return
	}

	resp, err := h.searchService.SearchUsers(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, resp)
}

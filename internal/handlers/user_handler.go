package handlers

import (
	"castingfy/internal/services"
	"castingfy/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService    services.UserService
	profileService services.ProfileService
}

func NewUserHandler(base *BaseHandler, userService services.UserService, profileService services.ProfileService) *UserHandler {
	return &UserHandler{
		BaseHandler:    base,
		userService:    userService,
		profileService: profileService,
	}
}

func (h *UserHandler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.GET("/users/:id", h.GetPublicProfile)

	protected.GET("/users/me", h.GetMe)
	protected.DELETE("/users/me", h.DeactivateAccount)
	protected.PUT("/profiles/talent", h.UpdateTalentProfile)
	protected.PUT("/profiles/producer", h.UpdateProducerProfile)
}

func (h *UserHandler) GetMe(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetMe(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, user)
}

// GetPublicProfile serves the public profile page for any user.
func (h *UserHandler) GetPublicProfile(c *gin.Context) {
	profile, err := h.userService.GetPublicProfile(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, profile)
}

// DeactivateAccount suspends the caller's account. The row stays so
// existing reviews, messages and projects keep resolving.
func (h *UserHandler) DeactivateAccount(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	if err := h.userService.DeactivateAccount(h.GetDB(c), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.NoContent(c)
}

func (h *UserHandler) UpdateTalentProfile(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateTalentProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	profile, err := h.profileService.UpdateTalentProfile(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, profile)
}

func (h *UserHandler) UpdateProducerProfile(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProducerProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	profile, err := h.profileService.UpdateProducerProfile(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, profile)
}

package handlers

import (
	"castingfy/internal/services"
	"castingfy/internal/services/dto"
	"castingfy/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type GalleryHandler struct {
	*BaseHandler
	galleryService services.GalleryService
}

func NewGalleryHandler(base *BaseHandler, galleryService services.GalleryService) *GalleryHandler {
	return &GalleryHandler{
		BaseHandler:    base,
		galleryService: galleryService,
	}
}

func (h *GalleryHandler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.GET("/users/:id/gallery", h.GetUserGallery)

	gallery := protected.Group("/gallery")
	{
		gallery.POST("", h.UploadImage)
		gallery.GET("", h.GetMyGallery)
		gallery.PUT("/:id", h.UpdateImage)
		gallery.DELETE("/:id", h.DeleteImage)
	}
}

// UploadImage accepts a multipart form with a "file" part and an
// optional "caption" field.
func (h *GalleryHandler) UploadImage(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Missing file upload"))
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		h.HandleServiceError(c, apperrors.InternalError(err))
		return
	}
	defer f.Close()

	upload := &services.ImageUpload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Reader:      f,
		Caption:     c.PostForm("caption"),
	}

	image, err := h.galleryService.UploadImage(c.Request.Context(), h.GetDB(c), userID, upload)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, image)
}

func (h *GalleryHandler) GetMyGallery(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	resp, err := h.galleryService.ListGallery(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *GalleryHandler) GetUserGallery(c *gin.Context) {
	resp, err := h.galleryService.ListGallery(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *GalleryHandler) UpdateImage(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateImageRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	image, err := h.galleryService.UpdateImage(h.GetDB(c), userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, image)
}

func (h *GalleryHandler) DeleteImage(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	if err := h.galleryService.DeleteImage(c.Request.Context(), h.GetDB(c), userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.NoContent(c)
}

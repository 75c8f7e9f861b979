package handlers

import (
	"strconv"

	"castingfy/internal/middleware"
	"castingfy/internal/models"
	"castingfy/internal/services"
	"castingfy/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	*BaseHandler
	projectService services.ProjectService
}

func NewProjectHandler(base *BaseHandler, projectService services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		BaseHandler:    base,
		projectService: projectService,
	}
}

func (h *ProjectHandler) RegisterRoutes(public, protected *gin.RouterGroup) {
	// The public board lists published castings only.
	public.GET("/castings", h.ListCastings)

	protected.GET("/projects/:id", h.GetProject)

	producer := protected.Group("/projects", middleware.RoleMiddleware(models.UserRoleProducer))
	{
		producer.POST("", h.CreateProject)
		producer.GET("", h.ListMyProjects)
		producer.PUT("/:id/details", h.SaveDetails)
		producer.PUT("/:id/roles", h.SaveRoles)
		producer.PUT("/:id/compensation", h.SaveCompensation)
		producer.PUT("/:id/prescreens", h.SavePrescreens)
		producer.POST("/:id/publish", h.Publish)
		producer.DELETE("/:id", h.DeleteProject)
	}
}

// CreateProject opens a new draft at the first wizard step.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateProjectRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.projectService.CreateProject(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, resp)
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	resp, err := h.projectService.GetProject(h.GetDB(c), userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *ProjectHandler) ListMyProjects(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	projects, err := h.projectService.ListMyProjects(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"projects": projects})
}

func (h *ProjectHandler) ListCastings(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	projects, err := h.projectService.ListCastings(h.GetDB(c), limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"castings": projects})
}

func (h *ProjectHandler) SaveDetails(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.ProjectDetailsRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.projectService.SaveDetails(h.GetDB(c), userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *ProjectHandler) SaveRoles(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.ProjectRolesRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.projectService.SaveRoles(h.GetDB(c), userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *ProjectHandler) SaveCompensation(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.ProjectCompensationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.projectService.SaveCompensation(h.GetDB(c), userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *ProjectHandler) SavePrescreens(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.ProjectPrescreensRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.projectService.SavePrescreens(h.GetDB(c), userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *ProjectHandler) Publish(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	resp, err := h.projectService.Publish(h.GetDB(c), userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	if err := h.projectService.DeleteProject(h.GetDB(c), userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.NoContent(c)
}

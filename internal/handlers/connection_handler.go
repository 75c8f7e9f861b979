package handlers

import (
	"castingfy/internal/models"
	"castingfy/internal/services"
	"castingfy/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ConnectionHandler struct {
	*BaseHandler
	connectionService services.ConnectionService
}

func NewConnectionHandler(base *BaseHandler, connectionService services.ConnectionService) *ConnectionHandler {
	return &ConnectionHandler{
		BaseHandler:       base,
		connectionService: connectionService,
	}
}

func (h *ConnectionHandler) RegisterRoutes(_, protected *gin.RouterGroup) {
	conns := protected.Group("/connections")
	{
		conns.POST("", h.RequestConnection)
		conns.GET("", h.ListConnections)
		conns.POST("/:id/accept", h.AcceptConnection)
		conns.POST("/:id/reject", h.RejectConnection)
		conns.DELETE("/:id", h.RemoveConnection)
	}
}

func (h *ConnectionHandler) RequestConnection(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateConnectionRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.connectionService.RequestConnection(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, resp)
}

func (h *ConnectionHandler) ListConnections(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	status := models.ConnectionStatus(c.Query("status"))
	conns, err := h.connectionService.ListConnections(h.GetDB(c), userID, status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"connections": conns})
}

func (h *ConnectionHandler) AcceptConnection(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	resp, err := h.connectionService.AcceptConnection(h.GetDB(c), userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *ConnectionHandler) RejectConnection(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	resp, err := h.connectionService.RejectConnection(h.GetDB(c), userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *ConnectionHandler) RemoveConnection(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	if err := h.connectionService.RemoveConnection(h.GetDB(c), userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.NoContent(c)
}

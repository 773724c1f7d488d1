package handler

import (
	"net/http"
	"strconv"

	"storyhive/internal/http-api/dto"
	"storyhive/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type InteractionHandler struct {
	svc service.InteractionService
}

func NewInteractionHandler(svc service.InteractionService) *InteractionHandler {
	return &InteractionHandler{svc: svc}
}

func (h *InteractionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/interactions", h.Create)
	rg.DELETE("/interactions/:id", h.Delete)
}

// Create handles POST /api/interactions. A repeat of an existing
// (user, content, episode, type) tuple answers 200 with the record
// that already exists; a genuine creation answers 201.
func (h *InteractionHandler) Create(c *gin.Context) {
	var in dto.CreateInteractionDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	interaction, created := h.svc.Create(in.ToModel())
	if !created {
		c.JSON(http.StatusOK, interaction)
		return
	}
	c.JSON(http.StatusCreated, interaction)
}

func (h *InteractionHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid interaction id"})
		return
	}

	if !h.svc.Delete(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "interaction not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

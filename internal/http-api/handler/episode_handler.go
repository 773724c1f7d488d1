package handler

import (
	"net/http"
	"strconv"

	"storyhive/internal/http-api/dto"
	"storyhive/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type EpisodeHandler struct {
	svc service.EpisodeService
}

func NewEpisodeHandler(svc service.EpisodeService) *EpisodeHandler {
	return &EpisodeHandler{svc: svc}
}

func (h *EpisodeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/content/:id/episodes", h.ListByContent)
	rg.GET("/episodes/:id", h.Get)
	rg.POST("/episodes", h.Create)
	rg.PATCH("/episodes/:id", h.Update)
	rg.DELETE("/episodes/:id", h.Delete)
}

// ListByContent handles GET /api/content/:id/episodes, ordered by
// episode number.
func (h *EpisodeHandler) ListByContent(c *gin.Context) {
	contentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid content id"})
		return
	}
	c.JSON(http.StatusOK, h.svc.ByContentID(contentID))
}

func (h *EpisodeHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid episode id"})
		return
	}

	episode, ok := h.svc.GetByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "episode not found"})
		return
	}
	c.JSON(http.StatusOK, episode)
}

func (h *EpisodeHandler) Create(c *gin.Context) {
	var in dto.CreateEpisodeDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, h.svc.Create(in.ToModel()))
}

func (h *EpisodeHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid episode id"})
		return
	}

	var in dto.UpdateEpisodeDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	episode, ok := h.svc.Update(id, in.ToPatch())
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "episode not found"})
		return
	}
	c.JSON(http.StatusOK, episode)
}

func (h *EpisodeHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid episode id"})
		return
	}

	if !h.svc.Delete(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "episode not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

package handler

import (
	"net/http"
	"strconv"

	"storyhive/internal/http-api/dto"
	"storyhive/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	svc service.ContentService
}

func NewContentHandler(svc service.ContentService) *ContentHandler {
	return &ContentHandler{svc: svc}
}

func (h *ContentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/content", h.List)
	rg.GET("/content/:id", h.Get)
	rg.POST("/content", h.Create)
	rg.PATCH("/content/:id", h.Update)
	rg.DELETE("/content/:id", h.Delete)
}

// List handles GET /api/content. Exactly one filter applies, checked
// in this order: trending, genre, userId, search; with no query
// parameters it returns everything.
func (h *ContentHandler) List(c *gin.Context) {
	if trending := c.Query("trending"); trending != "" {
		limit, err := strconv.Atoi(trending)
		if err != nil || limit <= 0 {
			limit = 10
		}
		c.JSON(http.StatusOK, h.svc.Trending(limit))
		return
	}
	if genre := c.Query("genre"); genre != "" {
		c.JSON(http.StatusOK, h.svc.ByGenre(genre))
		return
	}
	if userID := c.Query("userId"); userID != "" {
		id, err := strconv.ParseInt(userID, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
			return
		}
		c.JSON(http.StatusOK, h.svc.ByUserID(id))
		return
	}
	if search := c.Query("search"); search != "" {
		c.JSON(http.StatusOK, h.svc.Search(search))
		return
	}
	c.JSON(http.StatusOK, h.svc.List())
}

func (h *ContentHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid content id"})
		return
	}

	content, ok := h.svc.GetByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "content not found"})
		return
	}
	c.JSON(http.StatusOK, content)
}

func (h *ContentHandler) Create(c *gin.Context) {
	var in dto.CreateContentDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, h.svc.Create(in.ToModel()))
}

func (h *ContentHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid content id"})
		return
	}

	var in dto.UpdateContentDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	content, ok := h.svc.Update(id, in.ToPatch())
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "content not found"})
		return
	}
	c.JSON(http.StatusOK, content)
}

func (h *ContentHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid content id"})
		return
	}

	if !h.svc.Delete(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "content not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

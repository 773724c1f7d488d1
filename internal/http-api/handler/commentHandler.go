package handler

import (
	"net/http"
	"strconv"

	"storyhive/internal/http-api/dto"
	"storyhive/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

func (h *CommentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/content/:id/comments", h.ListByContent)
	rg.GET("/episodes/:id/comments", h.ListByEpisode)
	rg.GET("/comments/:id", h.Get)
	rg.POST("/comments", h.Create)
	rg.PATCH("/comments/:id", h.Update)
	rg.DELETE("/comments/:id", h.Delete)
}

// ListByContent handles GET /api/content/:id/comments, most recent
// first.
func (h *CommentHandler) ListByContent(c *gin.Context) {
	contentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid content id"})
		return
	}
	c.JSON(http.StatusOK, h.commentService.ByContentID(contentID))
}

// ListByEpisode handles GET /api/episodes/:id/comments, most recent
// first.
func (h *CommentHandler) ListByEpisode(c *gin.Context) {
	episodeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid episode id"})
		return
	}
	c.JSON(http.StatusOK, h.commentService.ByEpisodeID(episodeID))
}

func (h *CommentHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid comment id"})
		return
	}

	comment, ok := h.commentService.GetByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "comment not found"})
		return
	}
	c.JSON(http.StatusOK, comment)
}

func (h *CommentHandler) Create(c *gin.Context) {
	var in dto.CreateCommentDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, h.commentService.Create(in.ToModel()))
}

// Update handles PATCH /api/comments/:id; only the text is editable.
func (h *CommentHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid comment id"})
		return
	}

	var in dto.UpdateCommentDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, ok := h.commentService.UpdateText(id, in.Text)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "comment not found"})
		return
	}
	c.JSON(http.StatusOK, comment)
}

// Delete removes the comment and every reply beneath it.
func (h *CommentHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid comment id"})
		return
	}

	if !h.commentService.Delete(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "comment not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

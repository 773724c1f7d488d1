package handler

import (
	"net/http"
	"strconv"

	"storyhive/internal/http-api/dto"
	"storyhive/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type SubscriptionTierHandler struct {
	svc service.SubscriptionTierService
}

func NewSubscriptionTierHandler(svc service.SubscriptionTierService) *SubscriptionTierHandler {
	return &SubscriptionTierHandler{svc: svc}
}

func (h *SubscriptionTierHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/subscription-tiers/:id", h.Get)
	rg.POST("/subscription-tiers", h.Create)
	rg.PATCH("/subscription-tiers/:id", h.Update)
	rg.DELETE("/subscription-tiers/:id", h.Delete)
}

func (h *SubscriptionTierHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid subscription tier id"})
		return
	}

	tier, ok := h.svc.GetByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "subscription tier not found"})
		return
	}
	c.JSON(http.StatusOK, tier)
}

func (h *SubscriptionTierHandler) Create(c *gin.Context) {
	var in dto.CreateSubscriptionTierDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, h.svc.Create(in.ToModel()))
}

func (h *SubscriptionTierHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid subscription tier id"})
		return
	}

	var in dto.UpdateSubscriptionTierDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tier, ok := h.svc.Update(id, in.ToPatch())
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "subscription tier not found"})
		return
	}
	c.JSON(http.StatusOK, tier)
}

func (h *SubscriptionTierHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid subscription tier id"})
		return
	}

	if !h.svc.Delete(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "subscription tier not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

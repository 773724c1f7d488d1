package handler

import (
	"net/http"
	"strconv"

	"storyhive/internal/http-api/dto"
	"storyhive/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService service.UserService
	tierService service.SubscriptionTierService
}

func NewUserHandler(userService service.UserService, tierService service.SubscriptionTierService) *UserHandler {
	return &UserHandler{userService: userService, tierService: tierService}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/users/:id", h.Get)
	rg.PATCH("/users/:id", h.Update)
	rg.GET("/users/:id/subscription-tiers", h.ListSubscriptionTiers)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	user, ok := h.userService.GetByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, dto.FromUserModel(user))
}

func (h *UserHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	var in dto.UpdateUserDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, ok, err := h.userService.Update(id, in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error updating user"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, dto.FromUserModel(user))
}

// ListSubscriptionTiers handles GET /api/users/:id/subscription-tiers
func (h *UserHandler) ListSubscriptionTiers(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	c.JSON(http.StatusOK, h.tierService.ByUserID(id))
}

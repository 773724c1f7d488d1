package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"storyhive/internal/config"
	"storyhive/internal/http-api/handler"
	"storyhive/internal/http-api/middleware"
	"storyhive/internal/http-api/service"
	"storyhive/internal/store"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// One store instance for the process; handlers share it through
	// their services.
	st := store.New()

	authService := service.NewAuthService(st)
	userService := service.NewUserService(st)
	contentService := service.NewContentService(st)
	episodeService := service.NewEpisodeService(st)
	interactionService := service.NewInteractionService(st)
	commentService := service.NewCommentService(st)
	tierService := service.NewSubscriptionTierService(st)

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS(cfg.CORSOrigins))

	r.GET("/check-conn", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"message": "API is alive"})
	})

	api := r.Group("/api")
	handler.NewAuthHandler(authService).RegisterRoutes(api)
	handler.NewUserHandler(userService, tierService).RegisterRoutes(api)
	handler.NewContentHandler(contentService).RegisterRoutes(api)
	handler.NewEpisodeHandler(episodeService).RegisterRoutes(api)
	handler.NewInteractionHandler(interactionService).RegisterRoutes(api)
	handler.NewCommentHandler(commentService).RegisterRoutes(api)
	handler.NewSubscriptionTierHandler(tierService).RegisterRoutes(api)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	log.Printf("server running at %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

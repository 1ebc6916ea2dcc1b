package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/savormap/savormap-api/internal/ai"
	"github.com/savormap/savormap-api/internal/config"
	"github.com/savormap/savormap-api/internal/handlers"
	"github.com/savormap/savormap-api/internal/logger"
	"github.com/savormap/savormap-api/internal/middleware"
	"github.com/savormap/savormap-api/internal/repository"
	"github.com/savormap/savormap-api/internal/s3"
	"github.com/savormap/savormap-api/internal/service"
	"gorm.io/gorm"
)

// SetupRouter sets up the Gin router.
func SetupRouter(cfg *config.Config, database *gorm.DB) *gin.Engine {
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "X-Request-ID")
	r.Use(cors.New(corsConfig))

	r.Use(logger.RequestIDMiddleware())
	r.Use(middleware.SecurityHeaders())

	// Ping route for testing
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	restaurantRepo := repository.NewRestaurantRepository(database)

	// Classifier backend is selected by config; both SDKs share the same
	// prompts.
	var classifier ai.Classifier
	if cfg.EnvVars.ClassifierProvider == "anthropic" {
		classifier = ai.NewAnthropicVisionClassifier(cfg.EnvVars.AnthropicAPIKey, cfg.Prompts)
	} else {
		classifier = ai.NewOpenAIVisionClassifier(cfg.EnvVars.OpenAIAPIKey, cfg.Prompts)
	}

	// Image archival is opt-in via S3_BUCKET.
	var archiver service.ImageArchiver
	if cfg.EnvVars.S3Bucket != "" {
		archiver = s3.NewImageArchive(cfg)
	}

	restaurantService := service.NewRestaurantService(cfg, restaurantRepo)
	restaurantHandler := handlers.NewRestaurantHandler(restaurantService)

	searchService := service.NewSearchService(cfg, restaurantRepo, classifier, archiver)
	searchHandler := handlers.NewSearchHandler(searchService)

	api := r.Group("/v1")
	{
		api.Use(middleware.RateLimitByIP(20, 5*time.Minute, 15*time.Minute))

		// Catalog routes
		api.GET("/restaurants", restaurantHandler.ListRestaurants)
		api.GET("/restaurants/nearby", searchHandler.SearchNearby)
		api.GET("/restaurants/search", searchHandler.SearchByCuisine)
		api.GET("/restaurants/:restaurant_id", restaurantHandler.GetRestaurant)

		// Image search costs a vision call per request, so it carries its
		// own tighter limit on top of the group limit.
		api.POST("/restaurants/search/image",
			middleware.RateLimitByIP(2, 5*time.Minute, 15*time.Minute),
			searchHandler.SearchByImage)
	}

	return r
}

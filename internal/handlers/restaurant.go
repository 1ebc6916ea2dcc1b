package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/savormap/savormap-api/internal/logger"
	"github.com/savormap/savormap-api/internal/service"
	"go.uber.org/zap"
)

// RestaurantHandler is the handler for catalog listing and lookup requests.
type RestaurantHandler struct {
	Service *service.RestaurantService
}

// NewRestaurantHandler creates a new RestaurantHandler.
func NewRestaurantHandler(restaurantService *service.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{Service: restaurantService}
}

// ListRestaurants handles GET /v1/restaurants?page=&page_size=
func (h *RestaurantHandler) ListRestaurants(c *gin.Context) {
	page, pageSize := parsePagination(c)

	result, err := h.Service.ListRestaurants(c.Request.Context(), page, pageSize)
	if err != nil {
		logger.Get().Error("failed to list restaurants", zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":      result.Items,
		"totalPages": result.TotalPages,
	})
}

// GetRestaurant handles GET /v1/restaurants/:restaurant_id
func (h *RestaurantHandler) GetRestaurant(c *gin.Context) {
	restaurantID, err := parseUintParam(c.Param("restaurant_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid restaurant ID"})
		return
	}

	restaurant, err := h.Service.GetRestaurant(c.Request.Context(), restaurantID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

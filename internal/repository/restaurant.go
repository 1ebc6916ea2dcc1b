package repository

import (
	"context"
	"errors"

	"github.com/savormap/savormap-api/internal/logger"
	"github.com/savormap/savormap-api/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RestaurantRepository is a repository for interacting with the restaurant catalog.
type RestaurantRepository struct {
	DB *gorm.DB
}

// NewRestaurantRepository creates a new RestaurantRepository.
func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

// GetAllRestaurants retrieves the full catalog in ID order.
func (r *RestaurantRepository) GetAllRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant

	err := r.DB.WithContext(ctx).Order("id ASC").Find(&restaurants).Error
	if err != nil {
		logger.Get().Error("failed to fetch restaurant catalog", zap.Error(err))
		return nil, err
	}

	return restaurants, nil
}

// GetRestaurantByID retrieves a single restaurant by its ID.
func (r *RestaurantRepository) GetRestaurantByID(ctx context.Context, restaurantID uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant

	err := r.DB.WithContext(ctx).First(&restaurant, restaurantID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundError{message: "Restaurant not found"}
		}
		logger.Get().Error("failed to fetch restaurant", zap.Uint("restaurant_id", restaurantID), zap.Error(err))
		return nil, err
	}

	return &restaurant, nil
}

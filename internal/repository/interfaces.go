package repository

import (
	"context"

	"github.com/savormap/savormap-api/internal/models"
)

// RestaurantRepo is the interface for restaurant catalog operations.
// The catalog is read-only from the API's perspective: one bulk read for
// search (filtering happens in-process, not in the database) and one
// lookup by ID.
type RestaurantRepo interface {
	GetAllRestaurants(ctx context.Context) ([]models.Restaurant, error)
	GetRestaurantByID(ctx context.Context, restaurantID uint) (*models.Restaurant, error)
}

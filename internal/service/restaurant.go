package service

import (
	"context"
	"errors"

	"github.com/savormap/savormap-api/internal/config"
	"github.com/savormap/savormap-api/internal/models"
	"github.com/savormap/savormap-api/internal/repository"
	"github.com/savormap/savormap-api/internal/search"
)

// RestaurantService handles catalog listing and lookup.
type RestaurantService struct {
	Cfg  *config.Config
	Repo repository.RestaurantRepo
}

// NewRestaurantService creates a new RestaurantService.
func NewRestaurantService(cfg *config.Config, repo repository.RestaurantRepo) *RestaurantService {
	return &RestaurantService{Cfg: cfg, Repo: repo}
}

// ListRestaurants returns one page of the full catalog in source order.
func (s *RestaurantService) ListRestaurants(ctx context.Context, page, pageSize int) (search.PageResult[models.Restaurant], error) {
	ctx, cancel := context.WithTimeout(ctx, storageReadTimeout)
	defer cancel()

	restaurants, err := s.Repo.GetAllRestaurants(ctx)
	if err != nil {
		return search.PageResult[models.Restaurant]{}, StorageError{err: err}
	}

	return search.Paginate(restaurants, page, pageSize), nil
}

// GetRestaurant returns a single restaurant by ID. A repository
// NotFoundError passes through untouched so the handler can map it to 404.
func (s *RestaurantService) GetRestaurant(ctx context.Context, restaurantID uint) (*models.Restaurant, error) {
	ctx, cancel := context.WithTimeout(ctx, storageReadTimeout)
	defer cancel()

	restaurant, err := s.Repo.GetRestaurantByID(ctx, restaurantID)
	if err != nil {
		var notFound repository.NotFoundError
		if errors.As(err, &notFound) {
			return nil, err
		}
		return nil, StorageError{err: err}
	}

	return restaurant, nil
}

package testutil

import (
	"context"
	"fmt"
	"sort"

	"github.com/savormap/savormap-api/internal/models"
	"github.com/savormap/savormap-api/internal/repository"
)

// --- MockRestaurantRepo ---

// MockRestaurantRepo is an in-memory implementation of repository.RestaurantRepo.
// Set FetchErr to simulate a storage failure on the bulk read.
type MockRestaurantRepo struct {
	Restaurants map[uint]*models.Restaurant
	FetchErr    error
	GetAllCalls int
}

// NewMockRestaurantRepo creates an empty MockRestaurantRepo.
func NewMockRestaurantRepo() *MockRestaurantRepo {
	return &MockRestaurantRepo{Restaurants: make(map[uint]*models.Restaurant)}
}

// GetAllRestaurants returns all stored restaurants in ID order, mirroring
// the catalog query's ORDER BY.
func (m *MockRestaurantRepo) GetAllRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	m.GetAllCalls++
	if m.FetchErr != nil {
		return nil, m.FetchErr
	}

	ids := make([]uint, 0, len(m.Restaurants))
	for id := range m.Restaurants {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	restaurants := make([]models.Restaurant, 0, len(ids))
	for _, id := range ids {
		restaurants = append(restaurants, *m.Restaurants[id])
	}
	return restaurants, nil
}

// GetRestaurantByID returns a stored restaurant or a NotFoundError.
func (m *MockRestaurantRepo) GetRestaurantByID(ctx context.Context, restaurantID uint) (*models.Restaurant, error) {
	if m.FetchErr != nil {
		return nil, m.FetchErr
	}
	if r, ok := m.Restaurants[restaurantID]; ok {
		copied := *r
		return &copied, nil
	}
	return nil, repository.NewNotFoundError("Restaurant not found")
}

// --- MockClassifier ---

// MockClassifier is a mock implementation of ai.Classifier.
type MockClassifier struct {
	ClassifyCuisineFunc func(ctx context.Context, imageData []byte, mimeType string) (string, error)
	Calls               int
}

func (m *MockClassifier) ClassifyCuisine(ctx context.Context, imageData []byte, mimeType string) (string, error) {
	m.Calls++
	if m.ClassifyCuisineFunc != nil {
		return m.ClassifyCuisineFunc(ctx, imageData, mimeType)
	}
	return "", fmt.Errorf("ClassifyCuisine not configured")
}

// --- MockImageArchiver ---

// MockImageArchiver records archived images.
type MockImageArchiver struct {
	ArchiveSearchImageFunc func(ctx context.Context, imageData []byte, mimeType string) (string, error)
	Calls                  int
}

func (m *MockImageArchiver) ArchiveSearchImage(ctx context.Context, imageData []byte, mimeType string) (string, error) {
	m.Calls++
	if m.ArchiveSearchImageFunc != nil {
		return m.ArchiveSearchImageFunc(ctx, imageData, mimeType)
	}
	return "https://example.com/archived.jpg", nil
}

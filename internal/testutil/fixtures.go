package testutil

import "github.com/savormap/savormap-api/internal/models"

// TestRestaurants returns a small catalog with known coordinates and
// cuisines. Record 1 sits at the origin; record 2 is ~1565 km away.
func TestRestaurants() []*models.Restaurant {
	return []*models.Restaurant{
		{
			ID:        1,
			Name:      "Trattoria Zero",
			Address:   "1 Null Island Way",
			Cuisine:   "Italian",
			Latitude:  0,
			Longitude: 0,
		},
		{
			ID:        2,
			Name:      "Golden Wok",
			Address:   "10 Tenth Parallel",
			Cuisine:   "Chinese",
			Latitude:  10,
			Longitude: 10,
		},
		{
			ID:        3,
			Name:      "Spice Route",
			Address:   "3 Masala Lane",
			Cuisine:   "North Indian, Italian",
			Latitude:  0.01,
			Longitude: 0.01,
		},
	}
}

// SeedRepo loads the standard fixtures into a mock repository.
func SeedRepo(repo *MockRestaurantRepo) {
	for _, r := range TestRestaurants() {
		repo.Restaurants[r.ID] = r
	}
}

// TestImagePNG is a minimal payload carrying the PNG magic bytes, enough
// for media-type sniffing without a real image decoder.
func TestImagePNG() []byte {
	return []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
}

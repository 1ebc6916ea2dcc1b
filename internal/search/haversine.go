package search

import (
	"math"

	"github.com/savormap/savormap-api/internal/models"
)

// earthRadiusKm is the mean radius of the Earth in kilometers.
const earthRadiusKm = 6371

// HaversineKm returns the great-circle distance in kilometers between two
// coordinates given in signed decimal degrees.
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	rLat1 := toRadians(lat1)
	rLat2 := toRadians(lat2)
	dLat := rLat2 - rLat1
	dLng := toRadians(lng2) - toRadians(lng1)

	a := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Pow(math.Sin(dLng/2), 2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// WithinRadius returns the subsequence of restaurants whose haversine
// distance from the origin is at most radiusKm (inclusive). Order is
// preserved. The origin must already be validated as numeric by the caller.
func WithinRadius(restaurants []models.Restaurant, originLat, originLng, radiusKm float64) []models.Restaurant {
	matched := []models.Restaurant{}
	for _, r := range restaurants {
		if HaversineKm(originLat, originLng, r.Latitude, r.Longitude) <= radiusKm {
			matched = append(matched, r)
		}
	}
	return matched
}

func toRadians(deg float64) float64 {
	return deg * (math.Pi / 180)
}

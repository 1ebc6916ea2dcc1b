package search

import (
	"math"
	"testing"

	"github.com/savormap/savormap-api/internal/models"
)

func TestHaversineKm_SamePoint(t *testing.T) {
	d := HaversineKm(40.7128, -74.0060, 40.7128, -74.0060)
	if d != 0 {
		t.Errorf("distance = %f, want 0", d)
	}
}

func TestHaversineKm_KnownDistance(t *testing.T) {
	// New York to Los Angeles, roughly 3936 km great-circle.
	d := HaversineKm(40.7128, -74.0060, 34.0522, -118.2437)
	if d < 3900 || d > 3970 {
		t.Errorf("NY-LA distance = %f, want ~3936", d)
	}
}

func TestHaversineKm_PoleToPole(t *testing.T) {
	// Half the Earth's circumference: pi * R.
	d := HaversineKm(90, 0, -90, 0)
	want := math.Pi * 6371
	if math.Abs(d-want) > 1 {
		t.Errorf("pole-to-pole distance = %f, want %f", d, want)
	}
}

func TestHaversineKm_AcrossDateLine(t *testing.T) {
	// Two points straddling the 180th meridian at the equator, 2 degrees
	// of longitude apart. One degree of longitude at the equator is ~111.19 km.
	d := HaversineKm(0, 179, 0, -179)
	if d < 220 || d > 225 {
		t.Errorf("date-line distance = %f, want ~222", d)
	}
}

func TestWithinRadius_InclusiveBoundary(t *testing.T) {
	origin := models.Restaurant{ID: 1, Latitude: 0, Longitude: 0}
	other := models.Restaurant{ID: 2, Latitude: 0, Longitude: 1}
	records := []models.Restaurant{origin, other}

	exact := HaversineKm(0, 0, 0, 1)

	within := WithinRadius(records, 0, 0, exact)
	if len(within) != 2 {
		t.Errorf("record exactly at radius should be included, got %d records", len(within))
	}

	within = WithinRadius(records, 0, 0, exact-0.001)
	if len(within) != 1 || within[0].ID != 1 {
		t.Errorf("record past radius should be excluded, got %v", within)
	}
}

func TestWithinRadius_OrderPreservedAndPure(t *testing.T) {
	records := []models.Restaurant{
		{ID: 3, Latitude: 0.01, Longitude: 0},
		{ID: 1, Latitude: 0, Longitude: 0.01},
		{ID: 2, Latitude: 50, Longitude: 50},
	}

	first := WithinRadius(records, 0, 0, 5)
	second := WithinRadius(records, 0, 0, 5)

	if len(first) != 2 || first[0].ID != 3 || first[1].ID != 1 {
		t.Fatalf("WithinRadius = %v, want records 3 then 1", first)
	}
	if len(second) != len(first) {
		t.Errorf("repeated call returned %d records, want %d", len(second), len(first))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("repeated call diverged at index %d", i)
		}
	}
}

func TestWithinRadius_NoMatches(t *testing.T) {
	records := []models.Restaurant{{ID: 1, Latitude: 10, Longitude: 10}}

	within := WithinRadius(records, 0, 0, 5)
	if len(within) != 0 {
		t.Errorf("got %d records, want 0", len(within))
	}
}

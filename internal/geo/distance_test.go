package geo

import (
	"math"
	"testing"
)

type point struct {
	name string
	lat  float64
	lon  float64
}

func (p point) Coordinate() Coordinate {
	return Coordinate{Latitude: p.lat, Longitude: p.lon}
}

func TestDistanceKm_ZeroForSamePoint(t *testing.T) {
	if d := DistanceKm(48.8566, 2.3522, 48.8566, 2.3522); d != 0 {
		t.Fatalf("expected 0, got %v", d)
	}
}

func TestDistanceKm_Symmetric(t *testing.T) {
	pairs := [][4]float64{
		{48.8566, 2.3522, 40.7128, -74.0060},
		{90, 0, -90, 0},
		{10, 179.9, 10, -179.9},
		{0, 0, 0, 180},
	}
	for _, p := range pairs {
		ab := DistanceKm(p[0], p[1], p[2], p[3])
		ba := DistanceKm(p[2], p[3], p[0], p[1])
		if ab != ba {
			t.Fatalf("distance not symmetric for %v: %v != %v", p, ab, ba)
		}
		if math.IsNaN(ab) || math.IsInf(ab, 0) {
			t.Fatalf("distance not finite for %v: %v", p, ab)
		}
	}
}

func TestDistanceKm_ParisLandmarks(t *testing.T) {
	// Louvre area to Arc de Triomphe, ~4.1 km apart.
	d := DistanceKm(48.8606, 2.3376, 48.8738, 2.2950)
	if d != 4.1 {
		t.Fatalf("expected 4.1 km, got %v", d)
	}
}

func TestDistanceKm_Poles(t *testing.T) {
	d := DistanceKm(90, 0, -90, 0)
	// half the Earth's circumference for R=6371
	if d < 20014 || d > 20016 {
		t.Fatalf("pole-to-pole distance out of range: %v", d)
	}
}

func TestNearby_FiltersAndSorts(t *testing.T) {
	origin := Coordinate{Latitude: 48.8606, Longitude: 2.3376}
	candidates := []point{
		{name: "far", lat: 45.7640, lon: 4.8357},   // Lyon, hundreds of km
		{name: "near", lat: 48.8738, lon: 2.2950},  // ~4.1 km
		{name: "close", lat: 48.8566, lon: 2.3522}, // ~1.2 km
	}

	matches := Nearby(origin, 10, candidates)
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	if matches[0].Item.name != "close" || matches[1].Item.name != "near" {
		t.Fatalf("unexpected order: %s, %s", matches[0].Item.name, matches[1].Item.name)
	}
	for _, m := range matches {
		if m.DistanceKm > 10 {
			t.Fatalf("match beyond radius: %v", m.DistanceKm)
		}
	}
	if !sortedAscending(matches) {
		t.Fatalf("matches not sorted ascending")
	}
}

func TestNearby_InclusiveBoundaryAndTinyRadius(t *testing.T) {
	origin := Coordinate{Latitude: 48.8606, Longitude: 2.3376}
	near := []point{{name: "near", lat: 48.8738, lon: 2.2950}}

	// radius 1: the ~4.1 km neighbour disappears
	if got := Nearby(origin, 1, near); len(got) != 0 {
		t.Fatalf("expected no matches within 1 km, got %d", len(got))
	}
	// boundary is inclusive
	if got := Nearby(origin, 4.1, near); len(got) != 1 {
		t.Fatalf("expected a match exactly on the radius, got %d", len(got))
	}
}

func TestNearby_StableTieOrder(t *testing.T) {
	origin := Coordinate{}
	same := []point{
		{name: "first", lat: 0.01, lon: 0},
		{name: "second", lat: -0.01, lon: 0},
	}
	matches := Nearby(origin, 5, same)
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	if matches[0].Item.name != "first" || matches[1].Item.name != "second" {
		t.Fatalf("tie order not stable: %s, %s", matches[0].Item.name, matches[1].Item.name)
	}
}

func sortedAscending[T Located](ms []Match[T]) bool {
	for i := 1; i < len(ms); i++ {
		if ms[i].DistanceKm < ms[i-1].DistanceKm {
			return false
		}
	}
	return true
}

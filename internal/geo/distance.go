package geo

import (
	"math"
	"sort"
)

// Coordinate is a WGS84 point in decimal degrees.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// Located is anything that can report its position.
type Located interface {
	Coordinate() Coordinate
}

// Match pairs a candidate with its distance from the query origin.
type Match[T Located] struct {
	Item       T
	DistanceKm float64
}

const earthRadiusKm = 6371

// DistanceKm computes the great-circle distance between two points using the
// haversine formula, rounded to one decimal place. It is symmetric, returns 0
// for identical points and never fails on degenerate input (poles, points on
// opposite sides of the antimeridian).
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return math.Round(earthRadiusKm*c*10) / 10
}

// Distance is DistanceKm over Coordinate values.
func Distance(a, b Coordinate) float64 {
	return DistanceKm(a.Latitude, a.Longitude, b.Latitude, b.Longitude)
}

// Nearby computes the distance from origin to every candidate, keeps the ones
// within radiusKm (inclusive) and returns them sorted nearest first. Ties keep
// the input order.
func Nearby[T Located](origin Coordinate, radiusKm float64, candidates []T) []Match[T] {
	matches := make([]Match[T], 0, len(candidates))
	for _, c := range candidates {
		d := Distance(origin, c.Coordinate())
		if d <= radiusKm {
			matches = append(matches, Match[T]{Item: c, DistanceKm: d})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].DistanceKm < matches[j].DistanceKm
	})

	return matches
}

func toRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

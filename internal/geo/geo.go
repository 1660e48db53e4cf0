// Package geo estimates delivery distance and time from two coordinates.
// Both functions are pure and safe to call once per position update.
package geo

import (
	"math"

	"centrodrinks/internal/domain"
)

const (
	earthRadiusKm = 6371

	// Assumed courier speed in km per minute (18 km/h). A placeholder
	// policy, not a routing engine.
	speedKmPerMin = 0.3
)

// HaversineKm returns the great-circle distance between a and b in km.
func HaversineKm(a, b domain.Coordinate) float64 {
	dLat := toRad(b.Latitude - a.Latitude)
	dLon := toRad(b.Longitude - a.Longitude)

	h := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(toRad(a.Latitude))*math.Cos(toRad(b.Latitude))*math.Pow(math.Sin(dLon/2), 2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKm * c
}

// EtaMinutes converts a distance into a naive arrival estimate.
func EtaMinutes(distanceKm float64) int {
	return int(math.Round(distanceKm / speedKmPerMin * 60))
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}

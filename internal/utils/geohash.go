package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"

	"github.com/musafir-app/musafir/internal/pkg/models"
)

// DestinationGeohashPrecision gives roughly city-level cells, enough to
// group travellers heading to the same place in event payloads and
// diagnostics.
const DestinationGeohashPrecision uint = 5

// EncodeCoordinates converts resolved destination coordinates to a geohash.
func EncodeCoordinates(coords models.Coordinates, precision uint) string {
	return geohash.EncodeWithPrecision(coords.Latitude, coords.Longitude, precision)
}

// DecodeGeohash converts a geohash string back to coordinates.
func DecodeGeohash(hash string) models.Coordinates {
	lat, lon := geohash.Decode(hash)
	return models.Coordinates{Latitude: lat, Longitude: lon}
}

// CalculateDistance returns the great-circle distance between two points in
// kilometers using the Haversine formula.
func CalculateDistance(a, b models.Coordinates) float64 {
	const earthRadius = 6371.0

	lat1 := a.Latitude * math.Pi / 180.0
	lon1 := a.Longitude * math.Pi / 180.0
	lat2 := b.Latitude * math.Pi / 180.0
	lon2 := b.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	h := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadius * c
}

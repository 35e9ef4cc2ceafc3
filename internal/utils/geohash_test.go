package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/musafir-app/musafir/internal/pkg/models"
)

func TestEncodeCoordinates(t *testing.T) {
	bali := models.Coordinates{Latitude: -8.4095, Longitude: 115.1889}

	hash := EncodeCoordinates(bali, DestinationGeohashPrecision)
	assert.Len(t, hash, int(DestinationGeohashPrecision))

	decoded := DecodeGeohash(hash)
	assert.InDelta(t, bali.Latitude, decoded.Latitude, 0.1)
	assert.InDelta(t, bali.Longitude, decoded.Longitude, 0.1)
}

func TestCalculateDistance(t *testing.T) {
	jakarta := models.Coordinates{Latitude: -6.2088, Longitude: 106.8456}
	denpasar := models.Coordinates{Latitude: -8.6705, Longitude: 115.2126}

	distance := CalculateDistance(jakarta, denpasar)
	assert.InDelta(t, 955, distance, 30, "Jakarta to Denpasar is roughly 955 km")

	assert.Zero(t, CalculateDistance(jakarta, jakarta))
}

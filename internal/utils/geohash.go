package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
	"github.com/piresc/ridebook/internal/pkg/models"
)

// LocationGeohashPrecision gives cells of roughly 150m
const LocationGeohashPrecision = 7

// EncodeSample converts a location sample to a geohash string
func EncodeSample(sample models.LocationSample, precision uint) string {
	return geohash.EncodeWithPrecision(sample.Lat, sample.Lng, precision)
}

// CalculateDistance calculates the distance between two samples in kilometers using the Haversine formula
func CalculateDistance(a, b models.LocationSample) float64 {
	const earthRadius = 6371.0

	lat1 := a.Lat * math.Pi / 180.0
	lon1 := a.Lng * math.Pi / 180.0
	lat2 := b.Lat * math.Pi / 180.0
	lon2 := b.Lng * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	h := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadius * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

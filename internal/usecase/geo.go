package usecase

import (
	"math"

	"github.com/homespice/backend/internal/domain"
)

// earthRadiusKm is the mean radius used by the haversine formula
const earthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance between two coordinate pairs
// in kilometers. The second return value is false when either pair is
// missing, which callers must treat as "distance unknown", not zero.
func DistanceKm(a, b *domain.Coordinates) (float64, bool) {
	if a == nil || b == nil {
		return 0, false
	}

	dLat := radians(b.Latitude - a.Latitude)
	dLon := radians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(a.Latitude))*math.Cos(radians(b.Latitude))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h)), true
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

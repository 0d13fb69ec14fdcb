package geo

import (
	"math"

	"github.com/mmcloughlin/geohash"
	"github.com/piresc/saferoute/internal/pkg/models"
)

// EarthRadiusKm is the mean Earth radius used by the haversine formula
const EarthRadiusKm = 6371.0

// DefaultCellPrecision is the geohash length used for fleet board cells
// (about 150m x 150m)
const DefaultCellPrecision uint = 7

// DistanceKm returns the great-circle distance between a and b in kilometers
// using the haversine formula
func DistanceKm(a, b models.Coordinates) float64 {
	lat1 := a.Lat * math.Pi / 180.0
	lon1 := a.Lng * math.Pi / 180.0
	lat2 := b.Lat * math.Pi / 180.0
	lon2 := b.Lng * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	h := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

// BearingDeg returns the initial bearing from a to b in degrees clockwise
// from north, in [0, 360)
func BearingDeg(a, b models.Coordinates) float64 {
	lat1 := a.Lat * math.Pi / 180.0
	lat2 := b.Lat * math.Pi / 180.0
	dLon := (b.Lng - a.Lng) * math.Pi / 180.0

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)
	deg := math.Atan2(y, x) * 180.0 / math.Pi

	return math.Mod(deg+360, 360)
}

// Cell encodes coordinates as a geohash of the given precision
func Cell(c models.Coordinates, precision uint) string {
	return geohash.EncodeWithPrecision(c.Lat, c.Lng, precision)
}

package geo

import (
	"errors"
	"fmt"
	"math"
)

const earthRadiusMeters = 6371000.0

var ErrInvalidBounds = errors.New("invalid bounding box")

// BoundingBox is a latitude/longitude rectangle in decimal degrees.
type BoundingBox struct {
	MinLat float64 `toml:"min-lat"`
	MaxLat float64 `toml:"max-lat"`
	MinLon float64 `toml:"min-lon"`
	MaxLon float64 `toml:"max-lon"`
}

// Leicester is the area the generated lots are scattered over.
var Leicester = BoundingBox{
	MinLat: 52.572279,
	MaxLat: 52.693644,
	MinLon: -1.226669,
	MaxLon: -1.039133,
}

// Source supplies uniform draws in [0, 1).
type Source interface {
	Float64() float64
}

// Validate checks that each minimum does not exceed its maximum.
func (b BoundingBox) Validate() error {
	if b.MinLat > b.MaxLat {
		return fmt.Errorf("%w: min-lat %v > max-lat %v", ErrInvalidBounds, b.MinLat, b.MaxLat)
	}
	if b.MinLon > b.MaxLon {
		return fmt.Errorf("%w: min-lon %v > max-lon %v", ErrInvalidBounds, b.MinLon, b.MaxLon)
	}
	return nil
}

// Contains reports whether the point lies inside the box, edges included.
func (b BoundingBox) Contains(lat, lon float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lon >= b.MinLon && lon <= b.MaxLon
}

// Sample draws a point uniformly from the box. Latitude is drawn first.
func (b BoundingBox) Sample(r Source) (lat, lon float64) {
	lat = b.MinLat + r.Float64()*(b.MaxLat-b.MinLat)
	lon = b.MinLon + r.Float64()*(b.MaxLon-b.MinLon)
	return lat, lon
}

// DistanceMeters returns the haversine distance between two points.
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * (math.Pi / 180.0)
	dLon := (lon2 - lon1) * (math.Pi / 180.0)

	lat1 = lat1 * (math.Pi / 180.0)
	lat2 = lat2 * (math.Pi / 180.0)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1)*math.Cos(lat2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

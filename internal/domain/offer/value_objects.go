package offer

import (
	"errors"
	"math"
	"strings"
)

var (
	ErrInvalidCoordinate = errors.New("coordinate out of range")
	ErrNegativePrice     = errors.New("price cannot be negative")
	ErrNegativeStock     = errors.New("stock cannot be negative")
	ErrEmptyName         = errors.New("offer name cannot be empty")
)

const earthRadiusKm = 6371.0

type Coordinate struct {
	lat float64
	lng float64
}

func NewCoordinate(lat, lng float64) (Coordinate, error) {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return Coordinate{}, ErrInvalidCoordinate
	}
	return Coordinate{lat: lat, lng: lng}, nil
}

func (c Coordinate) Lat() float64 { return c.lat }
func (c Coordinate) Lng() float64 { return c.lng }

// DistanceKm is the great-circle (haversine) distance to other. Kept in
// full double precision; display rounding is the caller's concern.
func (c Coordinate) DistanceKm(other Coordinate) float64 {
	toRad := func(v float64) float64 { return v * math.Pi / 180 }
	dLat := toRad(other.lat - c.lat)
	dLng := toRad(other.lng - c.lng)
	a := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(toRad(c.lat))*math.Cos(toRad(other.lat))*math.Pow(math.Sin(dLng/2), 2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

type Price struct {
	cents int64
}

func NewPrice(cents int64) (Price, error) {
	if cents < 0 {
		return Price{}, ErrNegativePrice
	}
	return Price{cents: cents}, nil
}

func (p Price) Cents() int64 { return p.cents }

type Categories []string

// NewCategories normalizes a tag list: trimmed, empties dropped.
func NewCategories(tags []string) Categories {
	out := make(Categories, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

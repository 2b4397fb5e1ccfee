package route

import (
	"fmt"
	"math"
)

// EarthRadius is the mean Earth radius in meters.
const EarthRadius = 6371008.8

// Coordinate is a WGS84 position in decimal degrees.
type Coordinate struct {
	Latitude  float64 `yaml:"lat" json:"lat" validate:"gte=-90,lte=90"`
	Longitude float64 `yaml:"lon" json:"lon" validate:"gte=-180,lte=180"`
}

// String formats c as "49.4300°N, 8.4200°E".
func (c Coordinate) String() string {
	ns, ew := 'N', 'E'
	if c.Latitude < 0 {
		ns = 'S'
	}
	if c.Longitude < 0 {
		ew = 'W'
	}

	return fmt.Sprintf("%.4f°%c, %.4f°%c", math.Abs(c.Latitude), ns, math.Abs(c.Longitude), ew)
}

// Haversine returns the great-circle distance between a and b in meters.
func Haversine(a, b Coordinate) float64 {
	const rad = math.Pi / 180
	φ1, φ2 := a.Latitude*rad, b.Latitude*rad
	dφ := (b.Latitude - a.Latitude) * rad
	dλ := (b.Longitude - a.Longitude) * rad

	h := math.Sin(dφ/2)*math.Sin(dφ/2) + math.Cos(φ1)*math.Cos(φ2)*math.Sin(dλ/2)*math.Sin(dλ/2)

	return 2 * EarthRadius * math.Asin(math.Min(1, math.Sqrt(h)))
}

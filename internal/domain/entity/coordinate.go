// Package entity contains the core business objects of the project.
package entity

import (
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// ErrCoordinateOutOfRange is returned when a latitude or longitude falls
// outside the valid decimal-degree ranges.
var ErrCoordinateOutOfRange = errors.New("coordinate out of range")

// Coordinate is an immutable latitude/longitude pair in decimal degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NewCoordinate builds a Coordinate, rejecting out-of-range values.
// Valid ranges are [-90, 90] for latitude and [-180, 180] for longitude.
func NewCoordinate(lat, lng float64) (Coordinate, error) {
	coord := Coordinate{Latitude: lat, Longitude: lng}
	if err := coord.Validate(); err != nil {
		return Coordinate{}, err
	}

	return coord, nil
}

// Validate checks the coordinate against the valid decimal-degree ranges.
func (c Coordinate) Validate() error {
	if c.Latitude < -90 || c.Latitude > 90 {
		return errors.Wrapf(ErrCoordinateOutOfRange, "latitude %f must be between -90 and 90", c.Latitude)
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return errors.Wrapf(ErrCoordinateOutOfRange, "longitude %f must be between -180 and 180", c.Longitude)
	}

	return nil
}

// Point converts the coordinate to an orb.Point (lng, lat order).
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

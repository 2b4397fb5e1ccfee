package route

import "github.com/google/uuid"

// Waypoint is a location the tour must visit.
type Waypoint struct {
	ID         uuid.UUID
	Coordinate Coordinate
	// Label is a resolved place name; empty until a Geocoder answers.
	Label string
}

// NewWaypoint returns a waypoint at c with a fresh random ID.
func NewWaypoint(c Coordinate) Waypoint {
	return Waypoint{ID: uuid.New(), Coordinate: c}
}

// Name is the label, or the formatted coordinate when no label is known.
func (w Waypoint) Name() string {
	if w.Label != "" {
		return w.Label
	}

	return w.Coordinate.String()
}

func (w Waypoint) String() string { return "Waypoint(" + w.Name() + ")" }

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/waytour/route"
)

// Waypoint is one entry of a waypoint file.
type Waypoint struct {
	Label            string `yaml:"label"`
	route.Coordinate `yaml:",inline"`
}

// WaypointFile lists the waypoints of a tour; the first one is the start.
type WaypointFile struct {
	Waypoints []Waypoint `yaml:"waypoints" validate:"min=2,dive"`
}

// LoadWaypoints reads a waypoint file.
func LoadWaypoints(path string) ([]route.Waypoint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	return ParseWaypoints(data)
}

// ParseWaypoints decodes and validates a waypoint list.
func ParseWaypoints(data []byte) ([]route.Waypoint, error) {
	var f WaypointFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("config: decode waypoints: %w", err)
	}
	if err := validate.Struct(f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	out := make([]route.Waypoint, 0, len(f.Waypoints))
	for _, w := range f.Waypoints {
		wp := route.NewWaypoint(w.Coordinate)
		wp.Label = w.Label
		out = append(out, wp)
	}

	return out, nil
}

package route

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownValue is returned when parsing an unknown mode or policy name.
var ErrUnknownValue = errors.New("route: unknown value")

// TransportMode selects how a provider travels between waypoints.
type TransportMode int

const (
	Automobile TransportMode = iota
	Walking
	Transit
	AnyMode
)

var modeNames = [...]string{"automobile", "walking", "transit", "any"}

func (m TransportMode) String() string {
	if m >= 0 && int(m) < len(modeNames) {
		return modeNames[m]
	}

	return fmt.Sprintf("mode(%d)", int(m))
}

// ParseTransportMode is the inverse of TransportMode.String. Case is ignored.
func ParseTransportMode(s string) (TransportMode, error) {
	for i, name := range modeNames {
		if strings.EqualFold(s, name) {
			return TransportMode(i), nil
		}
	}

	return Automobile, fmt.Errorf("%w: transport mode %q", ErrUnknownValue, s)
}

// CostPolicy selects which route attribute is used as edge weight.
type CostPolicy int

const (
	// Distance weighs routes by meters.
	Distance CostPolicy = iota
	// TravelTime weighs routes by seconds.
	TravelTime
)

func (p CostPolicy) String() string {
	switch p {
	case Distance:
		return "distance"
	case TravelTime:
		return "travel_time"
	}

	return fmt.Sprintf("policy(%d)", int(p))
}

// ParseCostPolicy is the inverse of CostPolicy.String. "time" is accepted as
// an alias of travel_time.
func ParseCostPolicy(s string) (CostPolicy, error) {
	switch strings.ToLower(s) {
	case "distance":
		return Distance, nil
	case "travel_time", "time":
		return TravelTime, nil
	}

	return Distance, fmt.Errorf("%w: cost policy %q", ErrUnknownValue, s)
}

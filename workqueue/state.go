package workqueue

import (
	"fmt"
	"time"
)

// Kind enumerates scheduler states.
type Kind int

const (
	Idle Kind = iota
	Working
	Pausing
)

func (k Kind) String() string {
	switch k {
	case Idle:
		return "idle"
	case Working:
		return "working"
	case Pausing:
		return "pausing"
	}

	return fmt.Sprintf("kind(%d)", int(k))
}

// State is the observable scheduler state. Until is set only for Pausing.
type State struct {
	Kind  Kind
	Until time.Time
}

// Equal reports whether two states are the same transition target.
func (s State) Equal(o State) bool {
	return s.Kind == o.Kind && s.Until.Equal(o.Until)
}

func (s State) String() string {
	if s.Kind == Pausing {
		return fmt.Sprintf("pausing(until %s)", s.Until.Format(time.RFC3339Nano))
	}

	return s.Kind.String()
}

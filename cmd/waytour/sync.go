package main

import (
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/waytour/route"
)

// waypointSink is the part of the planner a waypointSync drives.
type waypointSink interface {
	AddWaypoint(w route.Waypoint) (route.Waypoint, error)
	RemoveWaypoint(id uuid.UUID) error
	SetStart(id uuid.UUID) error
}

// waypointSync mirrors a waypoint file into a planner. Entries are matched by
// label and coordinate so unchanged waypoints keep their routes.
type waypointSync struct {
	sink waypointSink

	mu    sync.Mutex
	ids   map[string]uuid.UUID
	start uuid.UUID
}

func newWaypointSync(sink waypointSink) *waypointSync {
	return &waypointSync{sink: sink, ids: make(map[string]uuid.UUID)}
}

func syncKey(w route.Waypoint) string {
	return w.Label + "@" + w.Coordinate.String()
}

// apply removes waypoints missing from wps, adds new ones and moves the
// start to the first entry.
func (s *waypointSync) apply(wps []route.Waypoint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	want := make(map[string]struct{}, len(wps))
	for _, w := range wps {
		want[syncKey(w)] = struct{}{}
	}
	for key, id := range s.ids {
		if _, ok := want[key]; ok {
			continue
		}
		if err := s.sink.RemoveWaypoint(id); err != nil {
			return err
		}
		delete(s.ids, key)
	}
	for _, w := range wps {
		key := syncKey(w)
		if _, ok := s.ids[key]; ok {
			continue
		}
		added, err := s.sink.AddWaypoint(w)
		if err != nil {
			return err
		}
		s.ids[key] = added.ID
	}
	if len(wps) == 0 {
		return nil
	}
	first := s.ids[syncKey(wps[0])]
	if first != s.start {
		if err := s.sink.SetStart(first); err != nil {
			return err
		}
		s.start = first
	}

	return nil
}

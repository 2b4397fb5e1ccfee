package builder

import "github.com/katalvlaran/waytour/weight"

// Arc is a plain directed edge value. Two arcs with the same endpoints and cost
// are the same edge; Tag distinguishes deliberate parallel duplicates.
type Arc[V comparable, W weight.Number] struct {
	From V
	To   V
	Cost W
	Tag  int
}

// Source implements core.Edge.
func (a Arc[V, W]) Source() V { return a.From }

// Destination implements core.Edge.
func (a Arc[V, W]) Destination() V { return a.To }

// Weight implements core.Edge.
func (a Arc[V, W]) Weight() W { return a.Cost }

// Reversed returns the arc pointing the other way with the same cost and tag.
func (a Arc[V, W]) Reversed() Arc[V, W] {
	return Arc[V, W]{From: a.To, To: a.From, Cost: a.Cost, Tag: a.Tag}
}

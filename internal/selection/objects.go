package selection

import (
	"math"

	"github.com/athete/axoplot/internal/scouting"
)

// ObjectCut is a per-object kinematic selection. MaxAbsEta<=0 disables
// the eta bound.
type ObjectCut struct {
	MinPt     float64
	MaxAbsEta float64
}

// Pass reports whether a single object survives the cut. Both bounds
// combine with AND.
func (c ObjectCut) Pass(obj scouting.Object) bool {
	if obj.Pt <= c.MinPt {
		return false
	}
	if c.MaxAbsEta > 0 && math.Abs(obj.Eta) >= c.MaxAbsEta {
		return false
	}
	return true
}

// Apply filters a collection, preserving order.
func (c ObjectCut) Apply(objs []scouting.Object) []scouting.Object {
	var out []scouting.Object
	for _, obj := range objs {
		if c.Pass(obj) {
			out = append(out, obj)
		}
	}
	return out
}

// InTime keeps only objects from the triggering bunch crossing. L1
// collections carry out-of-time candidates; scouting collections do not.
func InTime(objs []scouting.Object) []scouting.Object {
	var out []scouting.Object
	for _, obj := range objs {
		if obj.Bx == 0 {
			out = append(out, obj)
		}
	}
	return out
}

package hists

import (
	"errors"
	"fmt"
	"sort"

	"go-hep.org/x/hep/hbook"
)

var (
	// ErrUnknownObservable marks a requested histogram name outside the
	// observable catalog.
	ErrUnknownObservable = errors.New("hists: unknown observable")

	// ErrDuplicateBooking marks a histogram name booked twice.
	ErrDuplicateBooking = errors.New("hists: duplicate booking")
)

// Cell identifies one category slot of a histogram: the trigger label
// and, for object-scoped histograms, the object-type label.
type Cell struct {
	Trigger string
	Object  string
}

// H is one named histogram: a fixed observable binning replicated over
// category cells that materialize on first fill.
type H struct {
	name      string
	axis      Axis
	perObject bool
	cells     map[Cell]*hbook.H1D
}

// Name returns the histogram name.
func (h *H) Name() string { return h.name }

// Axis returns the observable binning.
func (h *H) Axis() Axis { return h.axis }

// PerObject reports whether the histogram carries an object-type axis.
func (h *H) PerObject() bool { return h.perObject }

// Fill adds weight-1 entries for every value in xs under the given cell.
// Scalar histograms ignore the object label.
func (h *H) Fill(trigger, object string, xs ...float64) {
	if !h.perObject {
		object = ""
	}
	key := Cell{Trigger: trigger, Object: object}
	hist, ok := h.cells[key]
	if !ok {
		hist = h.axis.NewH1D()
		h.cells[key] = hist
	}
	for _, x := range xs {
		hist.Fill(x, 1)
	}
}

// Cell returns the histogram for a category slot, or nil if that slot
// was never filled.
func (h *H) Cell(trigger, object string) *hbook.H1D {
	if !h.perObject {
		object = ""
	}
	return h.cells[Cell{Trigger: trigger, Object: object}]
}

// Cells returns the filled category slots in deterministic order.
func (h *H) Cells() []Cell {
	keys := make([]Cell, 0, len(h.cells))
	for k := range h.cells {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Trigger != keys[j].Trigger {
			return keys[i].Trigger < keys[j].Trigger
		}
		return keys[i].Object < keys[j].Object
	})
	return keys
}

// Set is a collection of named histograms. Its keys are exactly the
// observables requested at booking time.
type Set struct {
	hs    map[string]*H
	order []string
}

// NewSet returns an empty histogram set.
func NewSet() *Set {
	return &Set{hs: make(map[string]*H)}
}

// Book registers a histogram under name with the given binning.
func (s *Set) Book(name string, axis Axis, perObject bool) error {
	if _, dup := s.hs[name]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateBooking, name)
	}
	s.hs[name] = &H{
		name:      name,
		axis:      axis,
		perObject: perObject,
		cells:     make(map[Cell]*hbook.H1D),
	}
	s.order = append(s.order, name)
	return nil
}

// Get returns the histogram booked under name.
func (s *Set) Get(name string) (*H, bool) {
	h, ok := s.hs[name]
	return h, ok
}

// Names returns the booked histogram names in booking order.
func (s *Set) Names() []string {
	return append([]string(nil), s.order...)
}

// Len returns the number of booked histograms.
func (s *Set) Len() int { return len(s.hs) }

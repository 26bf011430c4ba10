package processor

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/athete/axoplot/internal/config"
	"github.com/athete/axoplot/internal/scouting"
	"github.com/athete/axoplot/internal/selection"
)

// Rates counts trigger overlaps over quality-passing events: accepts
// per path, pure accepts (only that path of the studied set), plus the
// all-fired and none-fired tallies.
type Rates struct {
	triggers []string
	quality  selection.Quality
	log      *zap.Logger

	total   int64
	kept    int64
	all     int64
	none    int64
	accepts map[string]int64
	pure    map[string]int64
}

// NewRates builds an overlap counter for the configured trigger set.
func NewRates(cfg *config.Config, opts ...Option) (*Rates, error) {
	o := applyOptions(opts)
	if len(cfg.Triggers) < 2 {
		return nil, fmt.Errorf("rates: need at least two triggers, have %d", len(cfg.Triggers))
	}
	return &Rates{
		triggers: append([]string(nil), cfg.Triggers...),
		quality: selection.Quality{
			MaxL1JetPt: cfg.Quality.MaxL1JetPt,
			MaxL1MET:   cfg.Quality.MaxL1MET,
		},
		log:     o.log,
		accepts: make(map[string]int64, len(cfg.Triggers)),
		pure:    make(map[string]int64, len(cfg.Triggers)),
	}, nil
}

// Triggers returns the trigger paths under study.
func (r *Rates) Triggers() []string {
	return append([]string(nil), r.triggers...)
}

// Process tallies one event.
func (r *Rates) Process(ev *scouting.Event) {
	r.total++
	if !r.quality.Pass(ev) {
		return
	}
	r.kept++

	var fired []string
	for _, trig := range r.triggers {
		if ev.Pass(trig) {
			r.accepts[trig]++
			fired = append(fired, trig)
		}
	}

	switch len(fired) {
	case 0:
		r.none++
	case 1:
		r.pure[fired[0]]++
	case len(r.triggers):
		r.all++
	}
}

// Summary holds the final overlap counts.
type Summary struct {
	Total   int64
	Kept    int64
	All     int64
	None    int64
	Accepts map[string]int64
	Pure    map[string]int64
}

// Summary returns a copy of the accumulated counts.
func (r *Rates) Summary() Summary {
	accepts := make(map[string]int64, len(r.accepts))
	pure := make(map[string]int64, len(r.pure))
	for _, trig := range r.triggers {
		accepts[trig] = r.accepts[trig]
		pure[trig] = r.pure[trig]
	}
	if r.log != nil {
		r.log.Debug("overlap summary",
			zap.Int64("total", r.total),
			zap.Int64("kept", r.kept),
			zap.Int64("all", r.all),
			zap.Int64("none", r.none),
		)
	}
	return Summary{
		Total:   r.total,
		Kept:    r.kept,
		All:     r.all,
		None:    r.none,
		Accepts: accepts,
		Pure:    pure,
	}
}

// Report renders the counts as a fixed-width table.
func (r *Rates) Report() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-40s %12d\n", "events", r.total)
	fmt.Fprintf(&b, "%-40s %12d\n", "events passing quality", r.kept)
	for _, trig := range r.triggers {
		fmt.Fprintf(&b, "%-40s %12d\n", TriggerLabel(trig), r.accepts[trig])
	}
	for _, trig := range r.triggers {
		fmt.Fprintf(&b, "%-40s %12d\n", TriggerLabel(trig)+" (pure)", r.pure[trig])
	}
	fmt.Fprintf(&b, "%-40s %12d\n", "all fired", r.all)
	fmt.Fprintf(&b, "%-40s %12d\n", "none fired", r.none)
	return b.String()
}

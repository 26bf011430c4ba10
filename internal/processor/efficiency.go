package processor

import (
	"fmt"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/athete/axoplot/internal/config"
	"github.com/athete/axoplot/internal/hists"
	"github.com/athete/axoplot/internal/scouting"
	"github.com/athete/axoplot/internal/selection"
)

// effConfidence is the confidence level of the efficiency intervals
// (one-sigma equivalent).
const effConfidence = 0.6827

// Efficiency accumulates numerator/denominator H_T histogram pairs for
// a set of L1 seeds against an unbiased reference trigger.
type Efficiency struct {
	ref      string
	refLabel string
	seeds    []string
	jetCut   selection.ObjectCut
	set      *hists.Set
	flow     *selection.Cutflow
	log      *zap.Logger
}

// NewEfficiency builds an efficiency accumulator from cfg. The
// denominator is booked under the reference trigger's label; each seed
// numerator is booked under the full seed name.
func NewEfficiency(cfg *config.Config, opts ...Option) (*Efficiency, error) {
	o := applyOptions(opts)

	if cfg.ReferenceTrigger == "" {
		return nil, fmt.Errorf("efficiency: no reference trigger configured")
	}
	if len(cfg.L1Seeds) == 0 {
		return nil, fmt.Errorf("efficiency: no L1 seeds configured")
	}
	seen := make(map[string]bool, len(cfg.L1Seeds))
	for _, seed := range cfg.L1Seeds {
		if seed == cfg.ReferenceTrigger {
			return nil, fmt.Errorf("efficiency: seed %q equals the reference trigger", seed)
		}
		if seen[seed] {
			return nil, fmt.Errorf("efficiency: duplicate seed %q", seed)
		}
		seen[seed] = true
	}

	set := hists.NewSet()
	if err := set.Book("den", hists.EffHtAxis, false); err != nil {
		return nil, err
	}
	if err := set.Book("num", hists.EffHtAxis, false); err != nil {
		return nil, err
	}

	return &Efficiency{
		ref:      cfg.ReferenceTrigger,
		refLabel: TriggerLabel(cfg.ReferenceTrigger),
		seeds:    append([]string(nil), cfg.L1Seeds...),
		jetCut: selection.ObjectCut{
			MinPt:     cfg.JetSelection.MinPt,
			MaxAbsEta: cfg.JetSelection.MaxAbsEta,
		},
		set:  set,
		flow: selection.NewCutflow(),
		log:  o.log,
	}, nil
}

// Reference returns the reference trigger path.
func (e *Efficiency) Reference() string { return e.ref }

// Seeds returns the seeds under test.
func (e *Efficiency) Seeds() []string {
	return append([]string(nil), e.seeds...)
}

// Triggers returns every trigger branch the input must provide.
func (e *Efficiency) Triggers() []string {
	return append([]string{e.ref}, e.seeds...)
}

// Hists returns the num/den histogram pair set.
func (e *Efficiency) Hists() *hists.Set { return e.set }

// Cutflow returns the ordered selection counts.
func (e *Efficiency) Cutflow() *selection.Cutflow { return e.flow }

// Process accumulates one event. The event enters the denominator when
// it has at least one selected jet and fires the reference trigger, and
// a seed's numerator when it additionally fires that seed.
func (e *Efficiency) Process(ev *scouting.Event) {
	e.flow.Pass("begin")

	jets := e.jetCut.Apply(ev.ScoutingPFJet)
	if len(jets) == 0 {
		return
	}
	e.flow.Pass("jet")

	if !ev.Pass(e.ref) {
		return
	}
	e.flow.Pass(e.refLabel)

	ht := ptSum(jets)

	den, _ := e.set.Get("den")
	den.Fill(e.refLabel, "", ht)

	num, _ := e.set.Get("num")
	for _, seed := range e.seeds {
		if ev.Pass(seed) {
			num.Fill(seed, "", ht)
		}
	}
}

// EffPoint is one bin of an efficiency curve. ErrLo and ErrHi are the
// downward and upward interval half-widths.
type EffPoint struct {
	X     float64
	XErr  float64
	Eff   float64
	ErrLo float64
	ErrHi float64
}

// Curve returns the per-bin efficiency of one seed with
// Clopper-Pearson intervals. Bins with an empty denominator are
// skipped.
func (e *Efficiency) Curve(seed string) ([]EffPoint, error) {
	den, _ := e.set.Get("den")
	num, _ := e.set.Get("num")

	denH := den.Cell(e.refLabel, "")
	if denH == nil {
		return nil, fmt.Errorf("efficiency: empty denominator for reference %q", e.ref)
	}
	numH := num.Cell(seed, "")
	if numH == nil {
		known := false
		for _, s := range e.seeds {
			if s == seed {
				known = true
				break
			}
		}
		if !known {
			return nil, fmt.Errorf("efficiency: seed %q not configured", seed)
		}
		// Configured but never fired: every denominator bin reads zero.
		numH = hists.EffHtAxis.NewH1D()
	}

	var points []EffPoint
	for i, denBin := range denH.Binning.Bins {
		n := denBin.SumW()
		if n <= 0 {
			continue
		}
		k := numH.Binning.Bins[i].SumW()
		eff := k / n
		lo, hi := clopperPearson(k, n, effConfidence)
		points = append(points, EffPoint{
			X:     denBin.XMid(),
			XErr:  denBin.XWidth() / 2,
			Eff:   eff,
			ErrLo: eff - lo,
			ErrHi: hi - eff,
		})
	}
	if e.log != nil {
		e.log.Debug("efficiency curve",
			zap.String("seed", seed),
			zap.Int("points", len(points)),
		)
	}
	return points, nil
}

// clopperPearson returns the exact binomial interval bounds for k
// successes in n trials at confidence level cl.
func clopperPearson(k, n, cl float64) (lo, hi float64) {
	alpha := 1 - cl
	lo, hi = 0, 1
	if k > 0 {
		lo = distuv.Beta{Alpha: k, Beta: n - k + 1}.Quantile(alpha / 2)
	}
	if k < n {
		hi = distuv.Beta{Alpha: k + 1, Beta: n - k}.Quantile(1 - alpha/2)
	}
	return lo, hi
}

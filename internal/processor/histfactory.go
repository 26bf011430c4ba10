// Package processor implements the event loops of the scouting trigger
// studies: the per-trigger histogram factory, the L1-seed efficiency
// accumulator, and the trigger overlap counter.
package processor

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/athete/axoplot/internal/config"
	"github.com/athete/axoplot/internal/hists"
	"github.com/athete/axoplot/internal/scouting"
	"github.com/athete/axoplot/internal/selection"
	"github.com/athete/axoplot/pkg/metrics"
)

// TriggerLabel returns the category label of a trigger path: the last
// underscore-separated token, e.g. AXONominal for
// DST_PFScouting_AXONominal.
func TriggerLabel(path string) string {
	i := strings.LastIndex(path, "_")
	return path[i+1:]
}

type objectConfig struct {
	name string
	cut  selection.ObjectCut
	l1   bool
}

// HistFactory books one histogram per requested observable and fills
// them per trigger path, after the event-quality cuts.
type HistFactory struct {
	triggers []string
	objects  []objectConfig
	quality  selection.Quality
	set      *hists.Set
	log      *zap.Logger

	read int64
	kept int64
}

// NewHistFactory books the histograms requested by cfg. Observable
// names outside the catalog are an error.
func NewHistFactory(cfg *config.Config, opts ...Option) (*HistFactory, error) {
	o := applyOptions(opts)

	set := hists.NewSet()
	for _, name := range cfg.ScalarHists {
		axis, err := hists.ScalarAxis(name)
		if err != nil {
			return nil, err
		}
		if err := set.Book(name, axis, false); err != nil {
			return nil, err
		}
	}
	for _, name := range cfg.ObjectHists {
		axis, err := hists.ObjectAxis(name)
		if err != nil {
			return nil, err
		}
		if err := set.Book(name+"_obj", axis, true); err != nil {
			return nil, err
		}
	}

	objects := make([]objectConfig, 0, len(cfg.Objects))
	for name, cut := range cfg.Objects {
		objects = append(objects, objectConfig{
			name: name,
			cut:  selection.ObjectCut{MinPt: cut.MinPt, MaxAbsEta: cut.MaxAbsEta},
			l1:   strings.HasPrefix(name, "L1"),
		})
	}
	sort.Slice(objects, func(i, j int) bool { return objects[i].name < objects[j].name })

	if len(cfg.Triggers) == 0 {
		return nil, fmt.Errorf("histfactory: no triggers configured")
	}

	return &HistFactory{
		triggers: append([]string(nil), cfg.Triggers...),
		objects:  objects,
		quality: selection.Quality{
			MaxL1JetPt: cfg.Quality.MaxL1JetPt,
			MaxL1MET:   cfg.Quality.MaxL1MET,
		},
		set: set,
		log: o.log,
	}, nil
}

// Triggers returns the trigger paths under study.
func (p *HistFactory) Triggers() []string {
	return append([]string(nil), p.triggers...)
}

// Hists returns the booked histogram set.
func (p *HistFactory) Hists() *hists.Set { return p.set }

// EventsRead returns the number of events seen.
func (p *HistFactory) EventsRead() int64 { return p.read }

// EventsKept returns the number of events surviving the quality cuts.
func (p *HistFactory) EventsKept() int64 { return p.kept }

// Process accumulates one event into the booked histograms and reports
// whether it survived the quality cuts.
func (p *HistFactory) Process(ev *scouting.Event) bool {
	p.read++
	metrics.RecordEventRead()

	if !p.quality.Pass(ev) {
		return false
	}
	p.kept++
	metrics.RecordEventKept()

	for _, trig := range p.triggers {
		if !ev.Pass(trig) {
			continue
		}
		metrics.RecordTriggerAccept(trig)
		label := TriggerLabel(trig)
		fills := p.fillScalars(ev, label)
		fills += p.fillObjects(ev, label)
		metrics.RecordHistFills(fills)
	}
	return true
}

func (p *HistFactory) fillScalars(ev *scouting.Event, label string) int {
	n := 0
	fill := func(name string, xs ...float64) {
		if h, ok := p.set.Get(name); ok {
			h.Fill(label, "", xs...)
			n += len(xs)
		}
	}

	for _, sum := range ev.L1EtSum {
		if sum.Bx != 0 {
			continue
		}
		switch sum.Type {
		case scouting.EtSumTotalHt:
			fill("l1ht", sum.Pt)
		case scouting.EtSumMissingEt:
			fill("l1met", sum.Pt)
		}
	}

	l1Jets := selection.InTime(ev.L1Jet)
	l1EGs := selection.InTime(ev.L1EG)
	l1Mus := selection.InTime(ev.L1Mu)
	fill("total_l1mult", float64(len(l1Jets)+len(l1EGs)+len(l1Mus)))
	fill("total_l1pt", ptSum(l1Jets)+ptSum(l1EGs)+ptSum(l1Mus))

	fill("scoutinght", ptSum(ev.ScoutingPFJet))
	fill("scoutingmet", ev.ScoutingMET)
	fill("total_scoutingmult", float64(len(ev.ScoutingPFJet)+
		len(ev.ScoutingElectron)+len(ev.ScoutingMuonVtx)+len(ev.ScoutingPhoton)))
	fill("total_scoutingpt", ptSum(ev.ScoutingPFJet)+ptSum(ev.ScoutingElectron)+
		ptSum(ev.ScoutingMuonVtx)+ptSum(ev.ScoutingPhoton))
	fill("npv", float64(ev.NPV))

	return n
}

func (p *HistFactory) fillObjects(ev *scouting.Event, label string) int {
	n := 0
	for _, oc := range p.objects {
		objs, ok := ev.Collection(oc.name)
		if !ok {
			if p.log != nil {
				p.log.Warn("unknown object collection", zap.String("object", oc.name))
			}
			continue
		}
		if oc.l1 {
			objs = selection.InTime(objs)
		}
		objs = oc.cut.Apply(objs)

		fill := func(name string, xs ...float64) {
			if h, ok := p.set.Get(name); ok {
				h.Fill(label, oc.name, xs...)
				n += len(xs)
			}
		}

		fill("n_obj", float64(len(objs)))
		if len(objs) > 0 {
			fill("pt0_obj", objs[0].Pt)
		}
		if len(objs) > 1 {
			fill("pt1_obj", objs[1].Pt)
		}
		for _, obj := range objs {
			fill("pt_obj", obj.Pt)
			fill("eta_obj", obj.Eta)
			fill("phi_obj", obj.Phi)
		}
	}
	return n
}

func ptSum(objs []scouting.Object) float64 {
	sum := 0.0
	for _, obj := range objs {
		sum += obj.Pt
	}
	return sum
}

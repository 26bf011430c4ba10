// Package selection holds the data-quality and kinematic cuts applied
// before histograms are filled, and an ordered cutflow counter.
package selection

import "github.com/athete/axoplot/internal/scouting"

// Quality rejects events with saturated trigger quantities.
type Quality struct {
	// MaxL1JetPt rejects events with any L1 jet at or above this pt.
	MaxL1JetPt float64
	// MaxL1MET rejects events whose in-time L1 missing-ET is at or
	// above this value.
	MaxL1MET float64
}

// DefaultQuality returns the saturation thresholds of the trigger study.
func DefaultQuality() Quality {
	return Quality{MaxL1JetPt: 1000, MaxL1MET: 1040}
}

// Pass reports whether the event survives the saturation cuts. Events
// with no in-time L1 missing-ET candidate pass the MET cut.
func (q Quality) Pass(ev *scouting.Event) bool {
	for _, jet := range ev.L1Jet {
		if jet.Pt >= q.MaxL1JetPt {
			return false
		}
	}
	for _, sum := range ev.L1EtSum {
		if sum.Type == scouting.EtSumMissingEt && sum.Bx == 0 && sum.Pt >= q.MaxL1MET {
			return false
		}
	}
	return true
}

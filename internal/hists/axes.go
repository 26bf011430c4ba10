// Package hists books and fills named histograms with growable
// {trigger, object} category cells over fixed-binning observables.
package hists

import (
	"fmt"

	"go-hep.org/x/hep/hbook"
)

// Axis is a fixed-width binning for one physical observable.
type Axis struct {
	Name  string
	Label string
	Bins  int
	Lo    float64
	Hi    float64
}

// NewH1D books an empty histogram with this binning.
func (a Axis) NewH1D() *hbook.H1D {
	return hbook.NewH1D(a.Bins, a.Lo, a.Hi)
}

// Standard axes for the scouting trigger studies.
var (
	PtAxis   = Axis{Name: "pt", Label: "p_T [GeV]", Bins: 500, Lo: 0, Hi: 5000}
	HtAxis   = Axis{Name: "ht", Label: "H_T [GeV]", Bins: 70, Lo: 0, Hi: 2000}
	MetAxis  = Axis{Name: "met", Label: "p_T^miss [GeV]", Bins: 250, Lo: 0, Hi: 2500}
	EtaAxis  = Axis{Name: "eta", Label: "eta", Bins: 150, Lo: -5, Hi: 5}
	PhiAxis  = Axis{Name: "phi", Label: "phi", Bins: 30, Lo: -4, Hi: 4}
	MultAxis = Axis{Name: "mult", Label: "N_obj", Bins: 200, Lo: 0, Hi: 201}

	// EffHtAxis is the coarser H_T binning used by the efficiency study.
	EffHtAxis = Axis{Name: "ht", Label: "H_T [GeV]", Bins: 100, Lo: 0, Hi: 2000}
)

// ScalarObservables maps per-event observable names to their axes.
var ScalarObservables = map[string]Axis{
	"l1ht":               HtAxis,
	"l1met":              MetAxis,
	"total_l1mult":       MultAxis,
	"total_l1pt":         PtAxis,
	"scoutinght":         HtAxis,
	"scoutingmet":        MetAxis,
	"total_scoutingmult": MultAxis,
	"total_scoutingpt":   PtAxis,
	"npv":                MultAxis,
}

// ObjectObservables maps per-object observable names to their axes.
// These histograms carry the extra object-type category axis.
var ObjectObservables = map[string]Axis{
	"n":   MultAxis,
	"pt":  PtAxis,
	"pt0": PtAxis,
	"pt1": PtAxis,
	"eta": EtaAxis,
	"phi": PhiAxis,
}

// ScalarAxis resolves a per-event observable name.
func ScalarAxis(name string) (Axis, error) {
	a, ok := ScalarObservables[name]
	if !ok {
		return Axis{}, fmt.Errorf("%w: scalar observable %q", ErrUnknownObservable, name)
	}
	return a, nil
}

// ObjectAxis resolves a per-object observable name.
func ObjectAxis(name string) (Axis, error) {
	a, ok := ObjectObservables[name]
	if !ok {
		return Axis{}, fmt.Errorf("%w: object observable %q", ErrUnknownObservable, name)
	}
	return a, nil
}

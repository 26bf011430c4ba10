package scouting

import (
	"context"
	"errors"
	"fmt"

	"go-hep.org/x/hep/groot"
	"go-hep.org/x/hep/groot/rtree"
)

// DefaultTree is the events tree name in scouting NanoAOD files.
const DefaultTree = "Events"

// ErrUnknownTrigger marks a requested trigger path with no matching
// branch in the input tree.
var ErrUnknownTrigger = errors.New("scouting: unknown trigger path")

// rawEvent mirrors the NanoAOD branches we read. Counts for the sliced
// branches come from the tree metadata.
type rawEvent struct {
	L1JetPt  []float32 `groot:"L1Jet_pt"`
	L1JetEta []float32 `groot:"L1Jet_eta"`
	L1JetPhi []float32 `groot:"L1Jet_phi"`
	L1JetBx  []int32   `groot:"L1Jet_bx"`

	L1EGPt  []float32 `groot:"L1EG_pt"`
	L1EGEta []float32 `groot:"L1EG_eta"`
	L1EGPhi []float32 `groot:"L1EG_phi"`
	L1EGBx  []int32   `groot:"L1EG_bx"`

	L1MuPt  []float32 `groot:"L1Mu_pt"`
	L1MuEta []float32 `groot:"L1Mu_eta"`
	L1MuPhi []float32 `groot:"L1Mu_phi"`
	L1MuBx  []int32   `groot:"L1Mu_bx"`

	L1EtSumPt   []float32 `groot:"L1EtSum_pt"`
	L1EtSumType []int32   `groot:"L1EtSum_etSumType"`
	L1EtSumBx   []int32   `groot:"L1EtSum_bx"`

	JetPt  []float32 `groot:"ScoutingPFJet_pt"`
	JetEta []float32 `groot:"ScoutingPFJet_eta"`
	JetPhi []float32 `groot:"ScoutingPFJet_phi"`

	ElePt  []float32 `groot:"ScoutingElectron_pt"`
	EleEta []float32 `groot:"ScoutingElectron_eta"`
	ElePhi []float32 `groot:"ScoutingElectron_phi"`

	MuPt  []float32 `groot:"ScoutingMuonVtx_pt"`
	MuEta []float32 `groot:"ScoutingMuonVtx_eta"`
	MuPhi []float32 `groot:"ScoutingMuonVtx_phi"`

	PhoPt  []float32 `groot:"ScoutingPhoton_pt"`
	PhoEta []float32 `groot:"ScoutingPhoton_eta"`
	PhoPhi []float32 `groot:"ScoutingPhoton_phi"`

	METPt float32 `groot:"ScoutingMET_pt"`
	NPV   int32   `groot:"nScoutingPrimaryVertex"`
}

// ScanFile opens a NanoAOD file and invokes fn for every event in its
// Events tree, decoding the scouting collections plus the accept bits of
// the given trigger paths. It returns the number of events scanned.
func ScanFile(ctx context.Context, path string, triggers []string, fn func(ev *Event) error) (int64, error) {
	f, err := groot.Open(path)
	if err != nil {
		return 0, fmt.Errorf("scouting: open %q: %w", path, err)
	}
	defer f.Close()

	obj, err := f.Get(DefaultTree)
	if err != nil {
		return 0, fmt.Errorf("scouting: get tree %q from %q: %w", DefaultTree, path, err)
	}
	tree, ok := obj.(rtree.Tree)
	if !ok {
		return 0, fmt.Errorf("scouting: object %q in %q is not a tree", DefaultTree, path)
	}

	var raw rawEvent
	rvars := rtree.ReadVarsFromStruct(&raw)

	bits := make([]bool, len(triggers))
	for i, trig := range triggers {
		if tree.Branch(trig) == nil {
			return 0, fmt.Errorf("%w: %q not in tree %q", ErrUnknownTrigger, trig, DefaultTree)
		}
		rvars = append(rvars, rtree.ReadVar{Name: trig, Value: &bits[i]})
	}

	r, err := rtree.NewReader(tree, rvars)
	if err != nil {
		return 0, fmt.Errorf("scouting: reader for %q: %w", path, err)
	}
	defer r.Close()

	var n int64
	err = r.Read(func(rctx rtree.RCtx) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		ev := raw.event()
		ev.Triggers = make(map[string]bool, len(triggers))
		for i, trig := range triggers {
			ev.Triggers[trig] = bits[i]
		}
		n++
		return fn(ev)
	})
	if err != nil {
		return n, fmt.Errorf("scouting: scan %q: %w", path, err)
	}
	return n, nil
}

func (raw *rawEvent) event() *Event {
	return &Event{
		L1Jet:            l1Objects(raw.L1JetPt, raw.L1JetEta, raw.L1JetPhi, raw.L1JetBx),
		L1EG:             l1Objects(raw.L1EGPt, raw.L1EGEta, raw.L1EGPhi, raw.L1EGBx),
		L1Mu:             l1Objects(raw.L1MuPt, raw.L1MuEta, raw.L1MuPhi, raw.L1MuBx),
		L1EtSum:          etSums(raw.L1EtSumPt, raw.L1EtSumType, raw.L1EtSumBx),
		ScoutingPFJet:    objects(raw.JetPt, raw.JetEta, raw.JetPhi),
		ScoutingElectron: objects(raw.ElePt, raw.EleEta, raw.ElePhi),
		ScoutingMuonVtx:  objects(raw.MuPt, raw.MuEta, raw.MuPhi),
		ScoutingPhoton:   objects(raw.PhoPt, raw.PhoEta, raw.PhoPhi),
		ScoutingMET:      float64(raw.METPt),
		NPV:              int(raw.NPV),
	}
}

func objects(pt, eta, phi []float32) []Object {
	if len(pt) == 0 {
		return nil
	}
	objs := make([]Object, len(pt))
	for i := range pt {
		objs[i] = Object{Pt: float64(pt[i]), Eta: float64(eta[i]), Phi: float64(phi[i])}
	}
	return objs
}

func l1Objects(pt, eta, phi []float32, bx []int32) []Object {
	objs := objects(pt, eta, phi)
	for i := range objs {
		objs[i].Bx = bx[i]
	}
	return objs
}

func etSums(pt []float32, typ, bx []int32) []EtSum {
	if len(pt) == 0 {
		return nil
	}
	sums := make([]EtSum, len(pt))
	for i := range pt {
		sums[i] = EtSum{Pt: float64(pt[i]), Type: typ[i], Bx: bx[i]}
	}
	return sums
}

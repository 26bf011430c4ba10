// Package scouting defines the in-memory model of a CMS Scouting
// NanoAOD collision event and a ROOT-tree reader that produces it.
package scouting

// L1 EtSum type codes as written by the uGT emulator.
const (
	EtSumTotalEt   = 0
	EtSumTotalHt   = 1
	EtSumMissingEt = 2
)

// Object is one physics object candidate. L1 collections carry the
// bunch-crossing index in Bx; scouting collections leave it zero.
type Object struct {
	Pt  float64
	Eta float64
	Phi float64
	Bx  int32
}

// EtSum is one L1 energy-sum candidate.
type EtSum struct {
	Pt   float64
	Type int32
	Bx   int32
}

// Event is a single collision event. Collection fields are named after
// their NanoAOD branch prefixes.
type Event struct {
	L1Jet   []Object
	L1EG    []Object
	L1Mu    []Object
	L1EtSum []EtSum

	ScoutingPFJet    []Object
	ScoutingElectron []Object
	ScoutingMuonVtx  []Object
	ScoutingPhoton   []Object

	ScoutingMET float64
	NPV         int

	// Triggers maps full trigger path names (e.g.
	// DST_PFScouting_AXONominal) to their accept bits.
	Triggers map[string]bool
}

// Pass reports whether the named trigger path fired. Unknown paths read
// as false.
func (e *Event) Pass(path string) bool {
	return e.Triggers[path]
}

// Collection returns the object collection with the given NanoAOD
// prefix, and whether the name is known.
func (e *Event) Collection(name string) ([]Object, bool) {
	switch name {
	case "L1Jet":
		return e.L1Jet, true
	case "L1EG":
		return e.L1EG, true
	case "L1Mu":
		return e.L1Mu, true
	case "ScoutingPFJet":
		return e.ScoutingPFJet, true
	case "ScoutingElectron":
		return e.ScoutingElectron, true
	case "ScoutingMuonVtx":
		return e.ScoutingMuonVtx, true
	case "ScoutingPhoton":
		return e.ScoutingPhoton, true
	}
	return nil, false
}

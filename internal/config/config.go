// Package config defines the analysis configuration: which triggers to
// study, which histograms to book, and which cuts to apply. Defaults
// live in New; Load layers a YAML file and AXOPLOT_ environment
// variables on top.
package config

// ObjectCut configures the kinematic selection of one object type.
type ObjectCut struct {
	// MinPt keeps objects strictly above this transverse momentum.
	MinPt float64 `koanf:"min_pt"`

	// MaxAbsEta keeps objects strictly inside this |eta| bound.
	// Zero disables the bound.
	MaxAbsEta float64 `koanf:"max_abs_eta"`
}

// Quality configures the trigger saturation cuts.
type Quality struct {
	MaxL1JetPt float64 `koanf:"max_l1jet_pt"`
	MaxL1MET   float64 `koanf:"max_l1met"`
}

// Config is the full analysis configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// MetricsAddr, when non-empty, serves Prometheus metrics during
	// the run, e.g. ":9090".
	MetricsAddr string `koanf:"metrics_addr"`

	// Triggers lists the full trigger path branch names under study.
	Triggers []string `koanf:"triggers"`

	// ScalarHists and ObjectHists select which histograms to book.
	ScalarHists []string `koanf:"scalar_hists"`
	ObjectHists []string `koanf:"object_hists"`

	// Objects maps object collection names to their cuts.
	Objects map[string]ObjectCut `koanf:"objects"`

	// Quality holds the event-level saturation cuts.
	Quality Quality `koanf:"quality"`

	// ReferenceTrigger is the unbiased trigger the efficiency study
	// normalizes to.
	ReferenceTrigger string `koanf:"reference_trigger"`

	// L1Seeds lists the seeds whose efficiency is measured.
	L1Seeds []string `koanf:"l1_seeds"`

	// JetSelection is the jet cut defining the efficiency phase space.
	JetSelection ObjectCut `koanf:"jet_selection"`
}

// New returns the default configuration of the AXO scouting studies.
func New() *Config {
	return &Config{
		LogLevel: "info",
		Triggers: []string{
			"DST_PFScouting_AXONominal",
			"DST_PFScouting_AXOTight",
			"DST_PFScouting_JetHT",
		},
		ScalarHists: []string{
			"l1ht", "l1met",
			"total_l1mult", "total_l1pt",
			"scoutinght", "scoutingmet",
			"total_scoutingmult", "total_scoutingpt",
			"npv",
		},
		ObjectHists: []string{"n", "pt", "pt0", "pt1", "eta", "phi"},
		Objects: map[string]ObjectCut{
			"ScoutingPFJet":    {MinPt: 30},
			"ScoutingElectron": {MinPt: 10},
			"ScoutingMuonVtx":  {MinPt: 3},
			"ScoutingPhoton":   {MinPt: 10},
			"L1Jet":            {MinPt: 0.1},
			"L1EG":             {MinPt: 0.1},
			"L1Mu":             {MinPt: 0.1},
		},
		Quality: Quality{
			MaxL1JetPt: 1000,
			MaxL1MET:   1040,
		},
		ReferenceTrigger: "L1_ZeroBias",
		L1Seeds:          []string{"L1_AXO_Nominal", "L1_AXO_Tight"},
		JetSelection:     ObjectCut{MinPt: 30, MaxAbsEta: 2.3},
	}
}

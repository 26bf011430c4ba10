package processor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/athete/axoplot/internal/config"
	"github.com/athete/axoplot/internal/processor"
	"github.com/athete/axoplot/internal/scouting"
)

const (
	axoNominal = "DST_PFScouting_AXONominal"
	jetHT      = "DST_PFScouting_JetHT"
)

func testConfig() *config.Config {
	cfg := config.New()
	cfg.Triggers = []string{axoNominal, jetHT}
	return cfg
}

// cleanEvent returns an event passing the quality cuts with both test
// triggers fired.
func cleanEvent() *scouting.Event {
	return &scouting.Event{
		Triggers: map[string]bool{axoNominal: true, jetHT: true},
	}
}

func TestTriggerLabel(t *testing.T) {
	assert.Equal(t, "AXONominal", processor.TriggerLabel(axoNominal))
	assert.Equal(t, "ZeroBias", processor.TriggerLabel("L1_ZeroBias"))
	assert.Equal(t, "bare", processor.TriggerLabel("bare"))
}

func TestNewHistFactory(t *testing.T) {
	t.Run("books exactly the requested histograms", func(t *testing.T) {
		cfg := testConfig()
		cfg.ScalarHists = []string{"scoutinght", "npv"}
		cfg.ObjectHists = []string{"pt", "eta"}

		proc, err := processor.NewHistFactory(cfg)
		require.NoError(t, err)
		assert.Equal(t, []string{"scoutinght", "npv", "pt_obj", "eta_obj"}, proc.Hists().Names())
	})

	t.Run("unknown observable fails", func(t *testing.T) {
		cfg := testConfig()
		cfg.ScalarHists = []string{"nosuch"}
		_, err := processor.NewHistFactory(cfg)
		assert.Error(t, err)
	})

	t.Run("empty trigger list fails", func(t *testing.T) {
		cfg := testConfig()
		cfg.Triggers = nil
		_, err := processor.NewHistFactory(cfg)
		assert.Error(t, err)
	})
}

func TestHistFactoryQuality(t *testing.T) {
	cfg := testConfig()
	proc, err := processor.NewHistFactory(cfg)
	require.NoError(t, err)

	ev := cleanEvent()
	ev.L1Jet = []scouting.Object{{Pt: 1200}}
	assert.False(t, proc.Process(ev))

	assert.True(t, proc.Process(cleanEvent()))
	assert.EqualValues(t, 2, proc.EventsRead())
	assert.EqualValues(t, 1, proc.EventsKept())
}

func TestHistFactoryScalarFills(t *testing.T) {
	cfg := testConfig()
	cfg.ObjectHists = nil

	proc, err := processor.NewHistFactory(cfg)
	require.NoError(t, err)

	ev := cleanEvent()
	ev.Triggers[jetHT] = false
	ev.L1EtSum = []scouting.EtSum{
		{Pt: 350, Type: scouting.EtSumTotalHt, Bx: 0},
		{Pt: 80, Type: scouting.EtSumMissingEt, Bx: 0},
		{Pt: 999, Type: scouting.EtSumTotalHt, Bx: 1}, // out of time
	}
	ev.L1Jet = []scouting.Object{{Pt: 100, Bx: 0}, {Pt: 60, Bx: -1}}
	ev.L1EG = []scouting.Object{{Pt: 40, Bx: 0}}
	ev.ScoutingPFJet = []scouting.Object{{Pt: 200}, {Pt: 150}}
	ev.ScoutingElectron = []scouting.Object{{Pt: 20}}
	ev.ScoutingMET = 65
	ev.NPV = 31

	require.True(t, proc.Process(ev))

	set := proc.Hists()
	get := func(name string) interface {
		Entries() int64
		XMean() float64
	} {
		h, ok := set.Get(name)
		require.True(t, ok, name)
		cell := h.Cell("AXONominal", "")
		require.NotNil(t, cell, name)
		return cell
	}

	l1ht := get("l1ht")
	assert.EqualValues(t, 1, l1ht.Entries())
	assert.InDelta(t, 350, l1ht.XMean(), 1e-9)

	l1met := get("l1met")
	assert.EqualValues(t, 1, l1met.Entries())
	assert.InDelta(t, 80, l1met.XMean(), 1e-9)

	// Only in-time L1 objects count: one jet and one EG.
	assert.InDelta(t, 2, get("total_l1mult").XMean(), 1e-9)
	assert.InDelta(t, 140, get("total_l1pt").XMean(), 1e-9)

	assert.InDelta(t, 350, get("scoutinght").XMean(), 1e-9)
	assert.InDelta(t, 65, get("scoutingmet").XMean(), 1e-9)
	assert.InDelta(t, 3, get("total_scoutingmult").XMean(), 1e-9)
	assert.InDelta(t, 370, get("total_scoutingpt").XMean(), 1e-9)
	assert.InDelta(t, 31, get("npv").XMean(), 1e-9)

	// The JetHT bit was off: no JetHT cells anywhere.
	for _, name := range set.Names() {
		h, _ := set.Get(name)
		assert.Nil(t, h.Cell("JetHT", ""), name)
	}
}

func TestHistFactoryObjectFills(t *testing.T) {
	cfg := testConfig()
	cfg.ScalarHists = nil
	cfg.Objects = map[string]config.ObjectCut{
		"ScoutingPFJet": {MinPt: 30},
		"L1Jet":         {MinPt: 0.1},
	}

	proc, err := processor.NewHistFactory(cfg)
	require.NoError(t, err)

	ev := cleanEvent()
	ev.Triggers[jetHT] = false
	ev.ScoutingPFJet = []scouting.Object{
		{Pt: 180, Eta: 0.2, Phi: 1.0},
		{Pt: 90, Eta: -1.1, Phi: -2.0},
		{Pt: 10, Eta: 0.5, Phi: 0.3}, // below cut
	}
	ev.L1Jet = []scouting.Object{
		{Pt: 50, Bx: 0},
		{Pt: 70, Bx: -1}, // out of time
	}

	require.True(t, proc.Process(ev))
	set := proc.Hists()

	nObj, _ := set.Get("n_obj")
	jets := nObj.Cell("AXONominal", "ScoutingPFJet")
	require.NotNil(t, jets)
	assert.InDelta(t, 2, jets.XMean(), 1e-9)

	l1 := nObj.Cell("AXONominal", "L1Jet")
	require.NotNil(t, l1)
	assert.InDelta(t, 1, l1.XMean(), 1e-9)

	ptObj, _ := set.Get("pt_obj")
	assert.EqualValues(t, 2, ptObj.Cell("AXONominal", "ScoutingPFJet").Entries())

	pt0, _ := set.Get("pt0_obj")
	assert.InDelta(t, 180, pt0.Cell("AXONominal", "ScoutingPFJet").XMean(), 1e-9)

	pt1, _ := set.Get("pt1_obj")
	assert.InDelta(t, 90, pt1.Cell("AXONominal", "ScoutingPFJet").XMean(), 1e-9)

	// A single surviving L1 jet has no subleading entry.
	assert.Nil(t, pt1.Cell("AXONominal", "L1Jet"))

	etaObj, _ := set.Get("eta_obj")
	assert.EqualValues(t, 2, etaObj.Cell("AXONominal", "ScoutingPFJet").Entries())
	phiObj, _ := set.Get("phi_obj")
	assert.EqualValues(t, 2, phiObj.Cell("AXONominal", "ScoutingPFJet").Entries())
}

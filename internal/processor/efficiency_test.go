package processor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/athete/axoplot/internal/config"
	"github.com/athete/axoplot/internal/processor"
	"github.com/athete/axoplot/internal/scouting"
)

const (
	zeroBias   = "L1_ZeroBias"
	axoSeed    = "L1_AXO_Nominal"
	secondSeed = "L1_AXO_Tight"
)

func effConfig() *config.Config {
	cfg := config.New()
	cfg.ReferenceTrigger = zeroBias
	cfg.L1Seeds = []string{axoSeed, secondSeed}
	return cfg
}

// effEvent returns an event with one selected jet of the given pt and
// the given trigger bits.
func effEvent(jetPt float64, ref, seed bool) *scouting.Event {
	return &scouting.Event{
		ScoutingPFJet: []scouting.Object{{Pt: jetPt, Eta: 0.5}},
		Triggers: map[string]bool{
			zeroBias: ref,
			axoSeed:  seed,
		},
	}
}

func TestNewEfficiency(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		proc, err := processor.NewEfficiency(effConfig())
		require.NoError(t, err)
		assert.Equal(t, zeroBias, proc.Reference())
		assert.Equal(t, []string{axoSeed, secondSeed}, proc.Seeds())
		assert.Equal(t, []string{zeroBias, axoSeed, secondSeed}, proc.Triggers())
	})

	t.Run("no seeds fails", func(t *testing.T) {
		cfg := effConfig()
		cfg.L1Seeds = nil
		_, err := processor.NewEfficiency(cfg)
		assert.Error(t, err)
	})

	t.Run("duplicate seed fails", func(t *testing.T) {
		cfg := effConfig()
		cfg.L1Seeds = []string{axoSeed, axoSeed}
		_, err := processor.NewEfficiency(cfg)
		assert.Error(t, err)
	})

	t.Run("seed equal to reference fails", func(t *testing.T) {
		cfg := effConfig()
		cfg.L1Seeds = []string{zeroBias}
		_, err := processor.NewEfficiency(cfg)
		assert.Error(t, err)
	})
}

func TestEfficiencyProcess(t *testing.T) {
	proc, err := processor.NewEfficiency(effConfig())
	require.NoError(t, err)

	proc.Process(effEvent(100, true, true))
	proc.Process(effEvent(100, true, false))
	proc.Process(effEvent(100, true, false))
	proc.Process(effEvent(100, false, true)) // no reference: ignored
	proc.Process(effEvent(5, true, true))    // no selected jet: ignored
	proc.Process(&scouting.Event{ // jet outside eta acceptance
		ScoutingPFJet: []scouting.Object{{Pt: 100, Eta: 3.0}},
		Triggers:      map[string]bool{zeroBias: true, axoSeed: true},
	})

	flow := proc.Cutflow()
	assert.Equal(t, []string{"begin", "jet", "ZeroBias"}, flow.Names())
	assert.EqualValues(t, 6, flow.Count("begin"))
	assert.EqualValues(t, 4, flow.Count("jet"))
	assert.EqualValues(t, 3, flow.Count("ZeroBias"))

	den, _ := proc.Hists().Get("den")
	require.NotNil(t, den.Cell("ZeroBias", ""))
	assert.EqualValues(t, 3, den.Cell("ZeroBias", "").Entries())

	num, _ := proc.Hists().Get("num")
	require.NotNil(t, num.Cell(axoSeed, ""))
	assert.EqualValues(t, 1, num.Cell(axoSeed, "").Entries())
}

func TestEfficiencyCurve(t *testing.T) {
	proc, err := processor.NewEfficiency(effConfig())
	require.NoError(t, err)

	// 4 reference events at H_T=100, one of which fires the seed.
	proc.Process(effEvent(100, true, true))
	for range 3 {
		proc.Process(effEvent(100, true, false))
	}

	t.Run("single filled bin", func(t *testing.T) {
		points, err := proc.Curve(axoSeed)
		require.NoError(t, err)
		require.Len(t, points, 1)

		pt := points[0]
		assert.InDelta(t, 110, pt.X, 1e-9) // bin [100,120) of the 20 GeV binning
		assert.InDelta(t, 10, pt.XErr, 1e-9)
		assert.InDelta(t, 0.25, pt.Eff, 1e-9)
		assert.Greater(t, pt.ErrLo, 0.0)
		assert.Greater(t, pt.ErrHi, 0.0)
		assert.GreaterOrEqual(t, pt.Eff-pt.ErrLo, 0.0)
		assert.LessOrEqual(t, pt.Eff+pt.ErrHi, 1.0)
	})

	t.Run("seed that never fired reads zero", func(t *testing.T) {
		points, err := proc.Curve(secondSeed)
		require.NoError(t, err)
		require.Len(t, points, 1)
		assert.Zero(t, points[0].Eff)
		assert.Zero(t, points[0].ErrLo)
		assert.Greater(t, points[0].ErrHi, 0.0)
	})

	t.Run("unconfigured seed fails", func(t *testing.T) {
		_, err := proc.Curve("L1_SingleMu22")
		assert.Error(t, err)
	})
}

func TestEfficiencyCurveEmptyDenominator(t *testing.T) {
	proc, err := processor.NewEfficiency(effConfig())
	require.NoError(t, err)

	_, err = proc.Curve(axoSeed)
	assert.Error(t, err)
}

func TestEfficiencyCurveLogs(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	proc, err := processor.NewEfficiency(effConfig(), processor.WithLogger(zap.New(core)))
	require.NoError(t, err)

	proc.Process(effEvent(110, true, true))
	_, err = proc.Curve(axoSeed)
	require.NoError(t, err)

	entries := logs.FilterMessage("efficiency curve").All()
	require.Len(t, entries, 1)
	assert.Equal(t, axoSeed, entries[0].ContextMap()["seed"])
	assert.EqualValues(t, 1, entries[0].ContextMap()["points"])
}

package processor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/athete/axoplot/internal/processor"
	"github.com/athete/axoplot/internal/scouting"
)

func ratesEvent(nominal, jetht bool) *scouting.Event {
	return &scouting.Event{
		Triggers: map[string]bool{axoNominal: nominal, jetHT: jetht},
	}
}

func TestNewRates(t *testing.T) {
	cfg := testConfig()
	cfg.Triggers = []string{axoNominal}
	_, err := processor.NewRates(cfg)
	assert.Error(t, err)
}

func TestRatesProcess(t *testing.T) {
	proc, err := processor.NewRates(testConfig())
	require.NoError(t, err)

	proc.Process(ratesEvent(true, true))
	proc.Process(ratesEvent(true, false))
	proc.Process(ratesEvent(true, false))
	proc.Process(ratesEvent(false, true))
	proc.Process(ratesEvent(false, false))

	// Fails quality, never counted past the total.
	bad := ratesEvent(true, true)
	bad.L1Jet = []scouting.Object{{Pt: 5000}}
	proc.Process(bad)

	s := proc.Summary()
	assert.EqualValues(t, 6, s.Total)
	assert.EqualValues(t, 5, s.Kept)
	assert.EqualValues(t, 1, s.All)
	assert.EqualValues(t, 1, s.None)
	assert.EqualValues(t, 3, s.Accepts[axoNominal])
	assert.EqualValues(t, 2, s.Accepts[jetHT])
	assert.EqualValues(t, 2, s.Pure[axoNominal])
	assert.EqualValues(t, 1, s.Pure[jetHT])

	report := proc.Report()
	assert.Contains(t, report, "AXONominal")
	assert.Contains(t, report, "JetHT (pure)")
	assert.Contains(t, report, "all fired")
}

func TestRatesSummaryLogs(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	proc, err := processor.NewRates(testConfig(), processor.WithLogger(zap.New(core)))
	require.NoError(t, err)

	proc.Process(ratesEvent(true, true))
	proc.Process(ratesEvent(false, false))
	proc.Summary()

	entries := logs.FilterMessage("overlap summary").All()
	require.Len(t, entries, 1)
	assert.EqualValues(t, 2, entries[0].ContextMap()["total"])
	assert.EqualValues(t, 1, entries[0].ContextMap()["all"])
	assert.EqualValues(t, 1, entries[0].ContextMap()["none"])
}

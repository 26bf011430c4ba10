package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerCounters(t *testing.T) {
	m := NewManager(WithRegistry(prometheus.NewRegistry()))

	m.eventsRead.Inc()
	m.eventsRead.Inc()
	m.eventsKept.Inc()
	m.triggerAccepts.WithLabelValues("DST_PFScouting_AXONominal").Inc()
	m.histFills.Add(42)
	m.filesProcessed.Inc()
	m.fileDuration.Observe(1.5)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.eventsRead))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.eventsKept))
	assert.Equal(t, 1.0, testutil.ToFloat64(
		m.triggerAccepts.WithLabelValues("DST_PFScouting_AXONominal")))
	assert.Equal(t, 42.0, testutil.ToFloat64(m.histFills))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.filesProcessed))
}

func TestPackageHelpers(t *testing.T) {
	before := testutil.ToFloat64(globalManager.eventsRead)

	RecordEventRead()
	RecordEventKept()
	RecordTriggerAccept("DST_PFScouting_JetHT")
	RecordHistFills(7)
	RecordFileProcessed(0.25)

	assert.Equal(t, before+1, testutil.ToFloat64(globalManager.eventsRead))
}

func TestHandler(t *testing.T) {
	RecordEventRead()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "axoplot_processor_events_read_total")
}

func TestOptions(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewManager(
		WithRegistry(reg),
		WithNamespace("test"),
		WithSubsystem("unit"),
	)
	m.eventsRead.Inc()

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, fam := range families {
		names = append(names, fam.GetName())
	}
	assert.Contains(t, names, "test_unit_events_read_total")
}

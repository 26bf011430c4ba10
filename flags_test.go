package axoplot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/athete/axoplot"
)

func TestFloatArrayFlags(t *testing.T) {
	t.Run("defaults dropped on first set", func(t *testing.T) {
		f := axoplot.FloatArrayFlags{Array: []float64{1, 2, 3}}
		require.NoError(t, f.Set("4.5"))
		require.NoError(t, f.Set("6"))
		assert.Equal(t, []float64{4.5, 6}, f.Array)
	})

	t.Run("rejects non-numeric input", func(t *testing.T) {
		var f axoplot.FloatArrayFlags
		assert.Error(t, f.Set("not-a-number"))
	})

	t.Run("string form", func(t *testing.T) {
		f := axoplot.FloatArrayFlags{Array: []float64{1, 2}}
		assert.Equal(t, "[1 2]", f.String())
	})
}

func TestStringArrayFlags(t *testing.T) {
	t.Run("defaults dropped on first set", func(t *testing.T) {
		f := axoplot.StringArrayFlags{Array: []string{"DST_PFScouting_JetHT"}}
		require.NoError(t, f.Set("DST_PFScouting_AXONominal"))
		require.NoError(t, f.Set("DST_PFScouting_AXOTight"))
		assert.Equal(t,
			[]string{"DST_PFScouting_AXONominal", "DST_PFScouting_AXOTight"},
			f.Array,
		)
	})
}

func TestPreciseTicks(t *testing.T) {
	ticks := axoplot.PreciseTicks{NSuggestedTicks: 5}.Ticks(0, 2000)

	require.NotEmpty(t, ticks)
	labeled := 0
	for _, tick := range ticks {
		assert.GreaterOrEqual(t, tick.Value, 0.0)
		assert.LessOrEqual(t, tick.Value, 2000.0)
		if tick.Label != "" {
			labeled++
		}
	}
	assert.GreaterOrEqual(t, labeled, 2)

	t.Run("illegal range panics", func(t *testing.T) {
		assert.Panics(t, func() {
			axoplot.PreciseTicks{}.Ticks(1, 1)
		})
	})
}

package output

import (
	"fmt"
	"image/color"

	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot/vg"

	"github.com/athete/axoplot"
	"github.com/athete/axoplot/internal/hists"
)

// palette cycles line colors across category cells.
var palette = []color.RGBA{
	{A: 255},
	{G: 255, A: 255},
	{B: 255, A: 255},
	{R: 255, B: 127, G: 127, A: 255},
	{R: 255, A: 255},
	{R: 127, G: 127, B: 255, A: 255},
}

// HistPlot overlays every filled cell of one histogram.
func HistPlot(h *hists.H, title string) *hplot.Plot {
	p := hplot.New()
	p.Title.Text = title
	p.X.Label.Text = h.Axis().Label
	p.Y.Label.Text = "events"
	p.X.Tick.Marker = axoplot.PreciseTicks{NSuggestedTicks: 5}
	p.Y.Tick.Marker = axoplot.PreciseTicks{NSuggestedTicks: 5}

	for i, cell := range h.Cells() {
		hh := hplot.NewH1D(h.Cell(cell.Trigger, cell.Object))
		hh.FillColor = nil
		hh.LineStyle.Color = palette[i%len(palette)]
		hh.Infos.Style = hplot.HInfoNone
		p.Add(hh)

		label := cell.Trigger
		if h.PerObject() {
			label += " " + cell.Object
		}
		p.Legend.Add(label, hh)
	}
	return p
}

// SavePlots writes one image per histogram, named
// <prefix>_<hist>.<ext>.
func SavePlots(prefix, ext, title string, set *hists.Set) error {
	for _, name := range set.Names() {
		h, _ := set.Get(name)
		if len(h.Cells()) == 0 {
			continue
		}
		p := HistPlot(h, title)
		out := fmt.Sprintf("%s_%s.%s", prefix, name, ext)
		if err := p.Save(6*vg.Inch, 4*vg.Inch, out); err != nil {
			return fmt.Errorf("output: save %q: %w", out, err)
		}
	}
	return nil
}

package output

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/athete/axoplot"
	"github.com/athete/axoplot/internal/processor"
)

// Curve is one labeled efficiency curve.
type Curve struct {
	Label  string
	Points []processor.EffPoint
}

// EfficiencyPlot draws efficiency curves with binomial error bars.
func EfficiencyPlot(title, xLabel string, curves []Curve) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = "efficiency"
	p.X.Tick.Marker = axoplot.PreciseTicks{NSuggestedTicks: 5}
	p.Y.Tick.Marker = axoplot.PreciseTicks{NSuggestedTicks: 5}
	p.Y.Min = 0
	p.Y.Max = 1.05

	for i, curve := range curves {
		points := make(plotter.XYs, len(curve.Points))
		xErrors := make(plotter.XErrors, len(curve.Points))
		yErrors := make(plotter.YErrors, len(curve.Points))
		for j, pt := range curve.Points {
			points[j].X = pt.X
			points[j].Y = pt.Eff
			xErrors[j].Low = pt.XErr
			xErrors[j].High = pt.XErr
			yErrors[j].Low = pt.ErrLo
			yErrors[j].High = pt.ErrHi
		}
		errPoints := plotutil.ErrorPoints{
			XYs:     points,
			XErrors: xErrors,
			YErrors: yErrors,
		}

		xerr, err := plotter.NewXErrorBars(errPoints)
		if err != nil {
			return nil, fmt.Errorf("output: x error bars for %q: %w", curve.Label, err)
		}
		yerr, err := plotter.NewYErrorBars(errPoints)
		if err != nil {
			return nil, fmt.Errorf("output: y error bars for %q: %w", curve.Label, err)
		}
		scatter, err := plotter.NewScatter(points)
		if err != nil {
			return nil, fmt.Errorf("output: scatter for %q: %w", curve.Label, err)
		}

		pointColor := palette[i%len(palette)]
		xerr.LineStyle.Color = pointColor
		yerr.LineStyle.Color = pointColor
		scatter.GlyphStyle.Color = pointColor

		p.Add(xerr, yerr, scatter)
		p.Legend.Add(curve.Label, scatter)
	}
	return p, nil
}

// SaveEfficiencyPlot writes the curves to <prefix>.<ext>.
func SaveEfficiencyPlot(prefix, ext, title, xLabel string, curves []Curve) error {
	p, err := EfficiencyPlot(title, xLabel, curves)
	if err != nil {
		return err
	}
	out := prefix + "." + ext
	if err := p.Save(6*vg.Inch, 4*vg.Inch, out); err != nil {
		return fmt.Errorf("output: save %q: %w", out, err)
	}
	return nil
}

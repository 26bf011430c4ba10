// Command axoeff accumulates numerator/denominator H_T histogram pairs
// for a set of L1 seeds against an unbiased reference trigger, and
// renders the resulting efficiency curves.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/athete/axoplot"
	"github.com/athete/axoplot/internal/config"
	"github.com/athete/axoplot/internal/hists"
	"github.com/athete/axoplot/internal/output"
	"github.com/athete/axoplot/internal/processor"
	"github.com/athete/axoplot/internal/scouting"
	"github.com/athete/axoplot/pkg/metrics"
)

var (
	configPath = flag.String("config", "", "path to the YAML analysis config (defaults to $AXOPLOT_CONFIG)")
	title      = flag.String("title", "", "plot title")
	prefix     = flag.String("prefix", "eff", "output file prefix")
	plotExt    = flag.String("format", "png", "plot image format")
	seeds      axoplot.StringArrayFlags
	jetSel     axoplot.FloatArrayFlags
)

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: %s [options] <nanoaod-input-files>...

options:
`,
		os.Args[0],
	)
	flag.PrintDefaults()
}

func main() {
	flag.Var(&seeds, "seed", "L1 seed to measure (repeatable, overrides config)")
	flag.Var(&jetSel, "jetsel", "jet selection override: min pt, then max |eta| (repeat to give both)")
	flag.Usage = printUsage
	flag.Parse()
	if flag.NArg() < 1 {
		printUsage()
		log.Fatal("Invalid arguments")
	}

	ctx := context.Background()

	cfg, err := config.Load(ctx, *configPath)
	if err != nil {
		log.Fatal(err)
	}
	if len(seeds.Array) > 0 {
		cfg.L1Seeds = seeds.Array
	}
	if len(jetSel.Array) > 0 {
		cfg.JetSelection.MinPt = jetSel.Array[0]
		if len(jetSel.Array) > 1 {
			cfg.JetSelection.MaxAbsEta = jetSel.Array[1]
		}
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()
	logger = logger.With(zap.String("run", uuid.NewString()))

	proc, err := processor.NewEfficiency(cfg, processor.WithLogger(logger))
	if err != nil {
		logger.Fatal("building efficiency accumulator", zap.Error(err))
	}
	logger.Info("measuring seed efficiencies",
		zap.String("reference", proc.Reference()),
		zap.Strings("seeds", proc.Seeds()),
	)

	for _, filename := range flag.Args() {
		start := time.Now()
		n, err := scouting.ScanFile(ctx, filename, proc.Triggers(), func(ev *scouting.Event) error {
			proc.Process(ev)
			return nil
		})
		if err != nil {
			logger.Fatal("scanning input", zap.String("file", filename), zap.Error(err))
		}
		metrics.RecordFileProcessed(time.Since(start).Seconds())
		logger.Info("scanned file",
			zap.String("file", filename),
			zap.Int64("events", n),
			zap.Duration("took", time.Since(start)),
		)
	}

	if err := output.SaveYODA(*prefix+".yoda", proc.Hists()); err != nil {
		logger.Fatal("writing histograms", zap.Error(err))
	}

	cutflowPath := *prefix + "_cutflow.txt"
	if err := os.WriteFile(cutflowPath, []byte(proc.Cutflow().String()), 0o644); err != nil {
		logger.Fatal("writing cutflow", zap.String("file", cutflowPath), zap.Error(err))
	}

	var curves []output.Curve
	for _, seed := range proc.Seeds() {
		points, err := proc.Curve(seed)
		if err != nil {
			logger.Fatal("computing efficiency", zap.String("seed", seed), zap.Error(err))
		}
		curves = append(curves, output.Curve{Label: seed, Points: points})
	}
	if err := output.SaveEfficiencyPlot(*prefix, *plotExt, *title, hists.EffHtAxis.Label, curves); err != nil {
		logger.Fatal("rendering efficiency plot", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	return cfg.Build()
}

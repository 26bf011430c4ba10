// Command axohist fills per-trigger histograms of L1 and scouting
// observables from scouting NanoAOD files, writing the result as YODA
// histograms and optional overlay plots.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/profile"
	"go.uber.org/zap"

	"github.com/athete/axoplot"
	"github.com/athete/axoplot/internal/config"
	"github.com/athete/axoplot/internal/output"
	"github.com/athete/axoplot/internal/processor"
	"github.com/athete/axoplot/internal/scouting"
	"github.com/athete/axoplot/pkg/metrics"
)

var (
	configPath = flag.String("config", "", "path to the YAML analysis config (defaults to $AXOPLOT_CONFIG)")
	title      = flag.String("title", "", "plot title")
	prefix     = flag.String("prefix", "out", "output file prefix")
	plotExt    = flag.String("format", "png", "plot image format")
	doPlots    = flag.Bool("plots", true, "render per-histogram plots")
	doProfile  = flag.Bool("profile", false, "write a CPU profile")
	triggers   axoplot.StringArrayFlags
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
	flag.Var(&triggers, "trigger", "trigger path to study (repeatable, overrides config)")
	flag.Usage = printUsage
	flag.Parse()
	if flag.NArg() < 1 {
		printUsage()
		log.Fatal("Invalid arguments")
	}

	if *doProfile {
		defer profile.Start().Stop()
	}

	ctx := context.Background()

	cfg, err := config.Load(ctx, *configPath)
	if err != nil {
		log.Fatal(err)
	}
	if len(triggers.Array) > 0 {
		cfg.Triggers = triggers.Array
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()
	logger = logger.With(zap.String("run", uuid.NewString()))

	if cfg.MetricsAddr != "" {
		go serveMetrics(cfg.MetricsAddr, logger)
	}

	proc, err := processor.NewHistFactory(cfg, processor.WithLogger(logger))
	if err != nil {
		logger.Fatal("booking histograms", zap.Error(err))
	}
	logger.Info("histograms booked",
		zap.Strings("triggers", cfg.Triggers),
		zap.Int("histograms", proc.Hists().Len()),
	)

	for _, filename := range flag.Args() {
		start := time.Now()
		n, err := scouting.ScanFile(ctx, filename, cfg.Triggers, func(ev *scouting.Event) error {
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

	logger.Info("event totals",
		zap.Int64("read", proc.EventsRead()),
		zap.Int64("kept", proc.EventsKept()),
	)

	if err := output.SaveYODA(*prefix+".yoda", proc.Hists()); err != nil {
		logger.Fatal("writing histograms", zap.Error(err))
	}
	if *doPlots {
		if err := output.SavePlots(*prefix, *plotExt, *title, proc.Hists()); err != nil {
			logger.Fatal("rendering plots", zap.Error(err))
		}
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

func serveMetrics(addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Warn("metrics server stopped", zap.Error(err))
	}
}

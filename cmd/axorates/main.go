// Command axorates counts trigger overlaps over scouting NanoAOD
// events: per-path accepts, pure accepts, and the all/none tallies.
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
	"github.com/athete/axoplot/internal/processor"
	"github.com/athete/axoplot/internal/scouting"
	"github.com/athete/axoplot/pkg/metrics"
)

var (
	configPath = flag.String("config", "", "path to the YAML analysis config (defaults to $AXOPLOT_CONFIG)")
	prefix     = flag.String("prefix", "rates", "output file prefix")
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
	flag.Var(&triggers, "trigger", "trigger path to count (repeatable, overrides config)")
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
	if len(triggers.Array) > 0 {
		cfg.Triggers = triggers.Array
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()
	logger = logger.With(zap.String("run", uuid.NewString()))

	proc, err := processor.NewRates(cfg, processor.WithLogger(logger))
	if err != nil {
		logger.Fatal("building overlap counter", zap.Error(err))
	}

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

	summary := proc.Summary()
	logger.Info("overlap totals",
		zap.Int64("events", summary.Total),
		zap.Int64("kept", summary.Kept),
		zap.Int64("all", summary.All),
		zap.Int64("none", summary.None),
	)

	reportPath := *prefix + "_rates.txt"
	if err := os.WriteFile(reportPath, []byte(proc.Report()), 0o644); err != nil {
		logger.Fatal("writing report", zap.String("file", reportPath), zap.Error(err))
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

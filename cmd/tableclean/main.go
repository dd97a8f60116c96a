package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/leengari/tableclean/internal/config"
	"github.com/leengari/tableclean/internal/demo"
	"github.com/leengari/tableclean/internal/logging"
	"github.com/leengari/tableclean/internal/render"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger, closeFn := logging.SetupLogger(os.Stderr, logging.Options{
		Level:  cfg.Level(),
		SeqURL: cfg.SeqURL,
	})
	defer closeFn()

	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	table, err := demo.SampleTable()
	if err != nil {
		slog.Error("failed to build sample table", "error", err)
		closeFn()
		os.Exit(1)
	}

	steps := demo.Steps()
	if cfg.Describe {
		steps = append(steps, demo.DescribeStep())
	}

	runner := demo.NewRunner(render.Options{MaxDecimals: cfg.MaxDecimals})
	runner.AddObserver(demo.NewLoggingObserver())

	r, err := runner.Run(ctx, table, steps, os.Stdout)
	if err != nil {
		slog.Error("demonstration failed", "error", err)
		closeFn()
		os.Exit(1)
	}

	for _, m := range r.Mutations {
		slog.Debug("applied mutation", "run_id", r.ID, "kind", m.Kind, "column", m.Column, "changed", m.Changed)
	}
}

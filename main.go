package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/artie-labs/datautils/config"
	"github.com/artie-labs/datautils/destinations/jsonl"
	"github.com/artie-labs/datautils/lib/iterator"
	"github.com/artie-labs/datautils/lib/logger"
	"github.com/artie-labs/datautils/lib/mtr"
	"github.com/artie-labs/datautils/lib/writer"
)

func setUpMetrics(cfg *config.Metrics) (mtr.Client, error) {
	if cfg == nil {
		return nil, nil
	}

	slog.Info("Creating metrics client")
	return mtr.New(cfg.Namespace, cfg.Tags, 0.5)
}

// run groups the lines of the input file and writes every group to the output file.
func run(ctx context.Context, cfg config.Settings, statsD mtr.Client) (int, error) {
	file, err := os.Open(cfg.Input)
	if err != nil {
		return 0, fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	groups, err := iterator.LazyGroupsOf(iterator.FromLines(file), cfg.GroupSize)
	if err != nil {
		return 0, err
	}

	slog.Info("Writing batches",
		slog.String("input", cfg.Input),
		slog.String("output", cfg.OutputPath()),
		slog.Int("groupSize", cfg.GroupSize),
	)
	destination := jsonl.NewDestination[string](cfg.OutputPath())
	if err = destination.Reset(); err != nil {
		return 0, err
	}

	w := writer.New[string](destination, statsD, true)
	return w.Write(ctx, groups)
}

func main() {
	var configFilePath string
	flag.StringVar(&configFilePath, "config", "", "path to config file")
	flag.Parse()

	cfg, err := config.ReadConfig(configFilePath)
	if err != nil {
		logger.Fatal("Failed to read config file", slog.Any("err", err))
	}

	_logger, cleanUpHandlers := logger.NewLogger(cfg)
	defer cleanUpHandlers()
	slog.SetDefault(_logger.With(slog.String("runID", uuid.NewString())))

	statsD, err := setUpMetrics(cfg.Metrics)
	if err != nil {
		logger.Fatal("Failed to set up metrics", slog.Any("err", err))
	}
	if statsD != nil {
		defer statsD.Flush()
	}

	if _, err = run(context.Background(), *cfg, statsD); err != nil {
		logger.Fatal("Failed to write batches", slog.Any("err", err))
	}
}

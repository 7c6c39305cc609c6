package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/rvcosta/txledger/internal/config"
	"github.com/rvcosta/txledger/internal/csvio"
	"github.com/rvcosta/txledger/internal/engine"
	"github.com/rvcosta/txledger/internal/export"
	"github.com/rvcosta/txledger/internal/metrics/memory"
	"github.com/rvcosta/txledger/internal/service"
	"github.com/rvcosta/txledger/internal/store"
)

func main() {
	output := flag.String("o", "-", "Output path for account snapshots (- for stdout)")
	flag.Parse()

	input := "transactions.csv"
	if flag.NArg() > 0 {
		input = flag.Arg(0)
	}

	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Set up slog logger with configured level. Logs go to stderr so the
	// snapshot CSV can go to stdout unmixed.
	var logLevel slog.Level
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	logger = logger.With(slog.String("run_id", uuid.NewString()))
	slog.SetDefault(logger)

	if err := run(cfg, logger, input, *output); err != nil {
		logger.Error("run failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger, input, output string) error {
	in, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	// Stores, engine, processor.
	accounts := store.NewAccountStore()
	transactions := store.NewTransactionStore()
	recorder := memory.New()
	ledger := engine.NewLedger(accounts, transactions, logger, recorder)
	processor := service.NewProcessor(ledger, logger, cfg.Strict)

	sum, err := processor.Run(csvio.NewReader(in))
	if err != nil {
		return err
	}

	out := os.Stdout
	if output != "-" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := csvio.WriteSnapshots(out, export.Accounts(accounts)); err != nil {
		return fmt.Errorf("write snapshots: %w", err)
	}

	for reason, n := range recorder.RejectedByReason() {
		logger.Debug("rejections", slog.String("reason", reason), slog.Int64("count", n))
	}
	logger.Info("run complete",
		slog.Int64("applied", sum.Applied),
		slog.Int64("rejected", sum.Rejected),
		slog.Int64("malformed", sum.Malformed),
		slog.Int("accounts", accounts.Len()),
	)
	return nil
}

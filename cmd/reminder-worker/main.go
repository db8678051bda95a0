package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"fintrack/internal/amqp"
	"fintrack/internal/config"
	"fintrack/internal/core"
	applog "fintrack/internal/log"
	"fintrack/internal/services"
	"fintrack/internal/storage"
	"fintrack/internal/worker"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := applog.New(applog.Config{
		Level:     applog.ParseLevel(os.Getenv("LOG_LEVEL")),
		Component: applog.ComponentWorker,
	})
	applog.SetDefault(logger)

	logger.Info("Starting reminder-worker")

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.Backend(), logger.Logger)
	if err != nil {
		logger.Error("Failed to open storage backend", "error", err, "backend", cfg.DataBackend)
		os.Exit(1)
	}
	defer store.Close()

	ledger := services.NewLedger(store, core.NewConverter())
	if err := ledger.Load(context.Background()); err != nil {
		logger.Warn("Ledger load degraded", "error", err)
	}

	amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", "error", err)
		os.Exit(1)
	}
	defer amqpClient.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	scanner := worker.NewReminderScanner(ledger, amqpClient, cfg.ScanLimit)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return scanner.Run(gctx, cfg.ScanInterval)
	})

	g.Go(func() error {
		return amqpClient.ConsumeReminderDue(gctx, func(msg *amqp.ReminderDueMessage) error {
			logger.Info("Reminder due",
				"reminder_id", msg.ReminderID,
				"title", msg.Title,
				"amount", msg.Amount,
				"due_date", msg.DueDate,
				"type", msg.Type,
				"overdue", msg.Overdue)
			return nil
		})
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Worker stopped with error", "error", err)
		os.Exit(1)
	}

	logger.Info("Worker shutdown complete")
}

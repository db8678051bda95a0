package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"fintrack/internal/config"
	"fintrack/internal/core"
	applog "fintrack/internal/log"
	"fintrack/internal/services"
	"fintrack/internal/storage"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := applog.New(applog.Config{
		Level:     applog.ParseLevel(os.Getenv("LOG_LEVEL")),
		Component: applog.ComponentApp,
	})
	applog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	currency, err := core.ParseCurrency(cfg.DefaultCurrency)
	if err != nil {
		logger.Error("Invalid default currency", "error", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.Backend(), logger.Logger)
	if err != nil {
		logger.Error("Failed to open storage backend", "error", err, "backend", cfg.DataBackend)
		os.Exit(1)
	}
	defer store.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())
		cancel()
	}()

	converter := core.NewConverter()
	accounts := services.NewAccounts(store)
	loans := services.NewLoans(store)
	ledger := services.NewLedger(store, converter)

	if err := accounts.Load(ctx); err != nil {
		logger.Warn("Account load degraded", "error", err)
	}
	if err := loans.Load(ctx); err != nil {
		logger.Warn("Loan load degraded", "error", err)
	}
	if err := ledger.Load(ctx); err != nil {
		logger.Warn("Ledger load degraded", "error", err)
	}

	dashboard := services.NewDashboard(accounts, loans, ledger, converter)
	summary := dashboard.Summarize(currency)

	logger.Info("Portfolio summary",
		"currency", summary.Currency,
		"bank_balance", core.RoundCents(summary.BankBalance),
		"loan_outstanding", core.RoundCents(summary.LoanOutstanding),
		"net_worth", core.RoundCents(summary.NetWorth),
		"lifetime_income", core.RoundCents(summary.LifetimeIncome),
		"lifetime_expense", core.RoundCents(summary.LifetimeExpense),
		"accounts", accounts.Len())

	for _, reminder := range summary.UpcomingReminders {
		logger.Info("Upcoming reminder",
			"title", reminder.Title,
			"amount", reminder.Amount,
			"due_date", reminder.DueDate,
			"type", reminder.Type)
	}

	for _, status := range dashboard.BudgetStatuses() {
		logger.Info("Budget status",
			"category", status.Budget.Category,
			"limit", status.Budget.Limit,
			"spent", core.RoundCents(status.Budget.Spent),
			"remaining", core.RoundCents(status.Remaining),
			"over", status.Over)
	}

	logger.Info("Done", "backend", cfg.DataBackend)
}

package services

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"fintrack/internal/cache"
	"fintrack/internal/core"
	"fintrack/internal/storage"
)

// UpcomingRemindersLimit caps how many reminders the upcoming query
// returns.
const UpcomingRemindersLimit = 3

// ledgerStorage is the slice of the persistence surface the ledger needs.
type ledgerStorage interface {
	storage.TransactionStore
	storage.BudgetStore
	storage.ReminderStore
}

// Ledger owns the transaction, budget and reminder collections. The three
// collections have independent identity spaces. Analytics that scan the
// whole transaction history are memoized in an LRU and invalidated on any
// transaction mutation.
//
// AddReminder goes through the Scheduler: the mutation is visible only
// after the scheduler has run it, never synchronously in the calling
// goroutine (unless the scheduler itself is immediate).
type Ledger struct {
	mu           sync.Mutex
	store        ledgerStorage
	converter    *core.Converter
	scheduler    Scheduler
	now          func() time.Time
	analytics    *cache.LRU[float64]
	transactions []core.Transaction
	budgets      []core.Budget
	reminders    []core.Reminder
}

// LedgerOption customizes a Ledger.
type LedgerOption func(*Ledger)

// WithClock overrides the ledger's clock.
func WithClock(now func() time.Time) LedgerOption {
	return func(l *Ledger) { l.now = now }
}

// WithScheduler overrides the scheduler used by AddReminder.
func WithScheduler(s Scheduler) LedgerOption {
	return func(l *Ledger) { l.scheduler = s }
}

func NewLedger(store ledgerStorage, converter *core.Converter, opts ...LedgerOption) *Ledger {
	l := &Ledger{
		store:     store,
		converter: converter,
		scheduler: ImmediateScheduler{},
		now:       time.Now,
		analytics: cache.NewLRU[float64](32, 5*time.Minute),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads all three collections; each degrades to empty independently.
func (l *Ledger) Load(ctx context.Context) error {
	txs, err := l.store.LoadTransactions(ctx)
	if err != nil {
		slog.WarnContext(ctx, "Failed to load transactions, starting empty", "error", err)
		txs = nil
	}
	budgets, err := l.store.LoadBudgets(ctx)
	if err != nil {
		slog.WarnContext(ctx, "Failed to load budgets, starting empty", "error", err)
		budgets = nil
	}
	reminders, err := l.store.LoadReminders(ctx)
	if err != nil {
		slog.WarnContext(ctx, "Failed to load reminders, starting empty", "error", err)
		reminders = nil
	}

	l.mu.Lock()
	l.transactions = txs
	l.budgets = budgets
	l.reminders = reminders
	l.mu.Unlock()
	l.analytics.Purge()
	return nil
}

// --- transactions ---

// AddTransaction appends the record as-is. The amount parameter is a
// guard the caller keeps consistent with tx.Amount; a non-positive guard
// rejects the whole operation with no mutation.
func (l *Ledger) AddTransaction(ctx context.Context, amount float64, tx core.Transaction) bool {
	if amount <= 0 {
		slog.WarnContext(ctx, "Rejected transaction with non-positive amount", "amount", amount)
		return false
	}

	l.mu.Lock()
	l.transactions = append(l.transactions, tx)
	l.mu.Unlock()

	l.analytics.Purge()
	l.persistTransactions(ctx)
	return true
}

// UpdateTransaction replaces the record with a matching id. Unknown ids
// are a silent no-op.
func (l *Ledger) UpdateTransaction(ctx context.Context, tx core.Transaction) {
	l.mu.Lock()
	found := false
	for i := range l.transactions {
		if l.transactions[i].ID == tx.ID {
			l.transactions[i] = tx
			found = true
			break
		}
	}
	l.mu.Unlock()

	if !found {
		return
	}
	l.analytics.Purge()
	l.persistTransactions(ctx)
}

// DeleteTransaction removes by id. Unknown ids are a silent no-op.
func (l *Ledger) DeleteTransaction(ctx context.Context, id string) {
	l.mu.Lock()
	found := false
	for i := range l.transactions {
		if l.transactions[i].ID == id {
			l.transactions = append(l.transactions[:i], l.transactions[i+1:]...)
			found = true
			break
		}
	}
	l.mu.Unlock()

	if !found {
		return
	}
	l.analytics.Purge()
	l.persistTransactions(ctx)
}

func (l *Ledger) Transactions() []core.Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]core.Transaction(nil), l.transactions...)
}

func (l *Ledger) persistTransactions(ctx context.Context) {
	l.mu.Lock()
	snapshot := append([]core.Transaction(nil), l.transactions...)
	l.mu.Unlock()
	if err := l.store.SaveTransactions(ctx, snapshot); err != nil {
		slog.ErrorContext(ctx, "Failed to persist transactions", "error", err, "count", len(snapshot))
	}
}

// --- budgets ---

func (l *Ledger) AddBudget(ctx context.Context, b core.Budget) error {
	if err := b.Validate(); err != nil {
		return err
	}
	l.mu.Lock()
	l.budgets = append(l.budgets, b)
	l.mu.Unlock()
	l.persistBudgets(ctx)
	return nil
}

func (l *Ledger) DeleteBudget(ctx context.Context, id string) {
	l.mu.Lock()
	found := false
	for i := range l.budgets {
		if l.budgets[i].ID == id {
			l.budgets = append(l.budgets[:i], l.budgets[i+1:]...)
			found = true
			break
		}
	}
	l.mu.Unlock()

	if !found {
		return
	}
	l.persistBudgets(ctx)
}

func (l *Ledger) Budgets() []core.Budget {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]core.Budget(nil), l.budgets...)
}

func (l *Ledger) persistBudgets(ctx context.Context) {
	l.mu.Lock()
	snapshot := append([]core.Budget(nil), l.budgets...)
	l.mu.Unlock()
	if err := l.store.SaveBudgets(ctx, snapshot); err != nil {
		slog.ErrorContext(ctx, "Failed to persist budgets", "error", err, "count", len(snapshot))
	}
}

// recordSpend adds a converted amount to the FIRST budget matching the
// category. First match wins when several budgets share a category.
// Returns false when no budget matches; the caller treats that as fine.
func (l *Ledger) recordSpend(ctx context.Context, category core.Category, amount float64, from core.Currency) bool {
	l.mu.Lock()
	matched := false
	for i := range l.budgets {
		if l.budgets[i].Category == category {
			converted := l.converter.Convert(amount, from, l.budgets[i].Currency)
			l.budgets[i].Spent += converted
			slog.InfoContext(ctx, "Budget spend recorded",
				"budget_id", l.budgets[i].ID,
				"category", category,
				"added", core.RoundCents(converted),
				"spent", core.RoundCents(l.budgets[i].Spent),
				"over_budget", l.budgets[i].IsOverBudget())
			matched = true
			break
		}
	}
	l.mu.Unlock()

	if matched {
		l.persistBudgets(ctx)
	}
	return matched
}

// --- reminders ---

// AddReminder schedules the append on the ledger's scheduler. Callers
// must not assume the reminder is visible before the scheduler's next
// cycle has run.
func (l *Ledger) AddReminder(ctx context.Context, r core.Reminder) {
	l.scheduler.Schedule(func() {
		l.mu.Lock()
		l.reminders = append(l.reminders, r)
		l.mu.Unlock()
		slog.InfoContext(ctx, "Reminder added", "id", r.ID, "title", r.Title, "due", r.DueDate)
		l.persistReminders(ctx)
	})
}

func (l *Ledger) DeleteReminder(ctx context.Context, id string) {
	l.mu.Lock()
	found := false
	for i := range l.reminders {
		if l.reminders[i].ID == id {
			l.reminders = append(l.reminders[:i], l.reminders[i+1:]...)
			found = true
			break
		}
	}
	l.mu.Unlock()

	if !found {
		return
	}
	l.persistReminders(ctx)
}

// ToggleReminder flips the completion flag by id. Unknown ids are a
// silent no-op.
func (l *Ledger) ToggleReminder(ctx context.Context, id string) {
	l.mu.Lock()
	found := false
	for i := range l.reminders {
		if l.reminders[i].ID == id {
			l.reminders[i].Completed = !l.reminders[i].Completed
			found = true
			break
		}
	}
	l.mu.Unlock()

	if !found {
		return
	}
	l.persistReminders(ctx)
}

func (l *Ledger) Reminders() []core.Reminder {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]core.Reminder(nil), l.reminders...)
}

func (l *Ledger) persistReminders(ctx context.Context) {
	l.mu.Lock()
	snapshot := append([]core.Reminder(nil), l.reminders...)
	l.mu.Unlock()
	if err := l.store.SaveReminders(ctx, snapshot); err != nil {
		slog.ErrorContext(ctx, "Failed to persist reminders", "error", err, "count", len(snapshot))
	}
}

// UpcomingReminders returns at most three incomplete reminders due within
// the next week, soonest first.
func (l *Ledger) UpcomingReminders() []core.Reminder {
	now := l.now()

	l.mu.Lock()
	var upcoming []core.Reminder
	for _, r := range l.reminders {
		if r.IsDueSoon(now) {
			upcoming = append(upcoming, r)
		}
	}
	l.mu.Unlock()

	sort.Slice(upcoming, func(i, j int) bool {
		return upcoming[i].DueDate.Before(upcoming[j].DueDate)
	})
	if len(upcoming) > UpcomingRemindersLimit {
		upcoming = upcoming[:UpcomingRemindersLimit]
	}
	return upcoming
}

// --- analytics ---

// SpentAmount sums non-income transactions of the category falling in
// the current calendar instance of the period, converted into the
// requested currency. It is a pure query: Budget.Spent is untouched and
// may diverge from this number, since it only tracks the withdrawal flow.
func (l *Ledger) SpentAmount(category core.Category, period core.Period, currency core.Currency) float64 {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()
	var total float64
	for _, tx := range l.transactions {
		if tx.Category != category || tx.IsIncome() {
			continue
		}
		if !core.InCurrentPeriod(tx.Date, period, now) {
			continue
		}
		total += l.converter.Convert(tx.Amount, tx.Currency, currency)
	}
	return total
}

// IncomeAmount sums every income transaction over all time, converted.
func (l *Ledger) IncomeAmount(currency core.Currency) float64 {
	return l.sumCached("income:"+string(currency), currency, true)
}

// ExpenseAmount sums every non-income transaction over all time,
// converted.
func (l *Ledger) ExpenseAmount(currency core.Currency) float64 {
	return l.sumCached("expense:"+string(currency), currency, false)
}

// TotalBalance is lifetime income minus lifetime expenses in the target
// currency. Distinct from SpentAmount, which is budget-period scoped.
func (l *Ledger) TotalBalance(currency core.Currency) float64 {
	return l.IncomeAmount(currency) - l.ExpenseAmount(currency)
}

func (l *Ledger) sumCached(key string, currency core.Currency, income bool) float64 {
	if v, ok := l.analytics.Get(key); ok {
		return v
	}

	l.mu.Lock()
	var total float64
	for _, tx := range l.transactions {
		if tx.IsIncome() != income {
			continue
		}
		total += l.converter.Convert(tx.Amount, tx.Currency, currency)
	}
	l.mu.Unlock()

	l.analytics.Set(key, total)
	return total
}

package services

import (
	"fintrack/internal/core"
)

// Dashboard composes the stores and the converter into read-only
// aggregates. Every method is a pure query over current store state.
type Dashboard struct {
	accounts  *Accounts
	loans     *Loans
	ledger    *Ledger
	converter *core.Converter
}

func NewDashboard(accounts *Accounts, loans *Loans, ledger *Ledger, converter *core.Converter) *Dashboard {
	return &Dashboard{accounts: accounts, loans: loans, ledger: ledger, converter: converter}
}

// TotalBankBalance sums every account balance converted into the target
// currency.
func (d *Dashboard) TotalBankBalance(currency core.Currency) float64 {
	var total float64
	for _, account := range d.accounts.All() {
		total += d.converter.Convert(account.Balance, account.Currency, currency)
	}
	return total
}

// TotalOutstandingLoans sums the remaining repayment obligation of every
// loan converted into the target currency.
func (d *Dashboard) TotalOutstandingLoans(currency core.Currency) float64 {
	var total float64
	for _, loan := range d.loans.All() {
		total += d.converter.Convert(loan.Outstanding(), loan.Currency, currency)
	}
	return total
}

// NetWorth is bank balances minus loan obligations in the target
// currency.
func (d *Dashboard) NetWorth(currency core.Currency) float64 {
	return d.TotalBankBalance(currency) - d.TotalOutstandingLoans(currency)
}

// BudgetStatus is a snapshot of one budget for display.
type BudgetStatus struct {
	Budget    core.Budget
	Remaining float64
	Over      bool
}

// BudgetStatuses snapshots every budget in insertion order.
func (d *Dashboard) BudgetStatuses() []BudgetStatus {
	budgets := d.ledger.Budgets()
	statuses := make([]BudgetStatus, len(budgets))
	for i, b := range budgets {
		statuses[i] = BudgetStatus{
			Budget:    b,
			Remaining: b.Remaining(),
			Over:      b.IsOverBudget(),
		}
	}
	return statuses
}

// Summary is the headline numbers for the dashboard screen.
type Summary struct {
	Currency          core.Currency
	BankBalance       float64
	LoanOutstanding   float64
	NetWorth          float64
	LifetimeIncome    float64
	LifetimeExpense   float64
	UpcomingReminders []core.Reminder
}

// Summarize builds the dashboard headline in the target currency.
func (d *Dashboard) Summarize(currency core.Currency) Summary {
	return Summary{
		Currency:          currency,
		BankBalance:       d.TotalBankBalance(currency),
		LoanOutstanding:   d.TotalOutstandingLoans(currency),
		NetWorth:          d.NetWorth(currency),
		LifetimeIncome:    d.ledger.IncomeAmount(currency),
		LifetimeExpense:   d.ledger.ExpenseAmount(currency),
		UpcomingReminders: d.ledger.UpcomingReminders(),
	}
}

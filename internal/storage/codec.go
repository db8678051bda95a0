package storage

import (
	"encoding/json"
	"time"

	"fintrack/internal/core"
)

// Wire documents. Field names are the stable on-disk representation and
// must not change, or existing data files stop decoding.

type accountDoc struct {
	AccountID string  `json:"accountId"`
	BankName  string  `json:"bankName"`
	Currency  string  `json:"currency"`
	Amount    float64 `json:"amount"`
}

type loanDoc struct {
	AccountID           string  `json:"accountId"`
	BankName            string  `json:"bankName"`
	Currency            string  `json:"currency"`
	Amount              float64 `json:"amount"`
	LoanAmount          float64 `json:"loanAmount"`
	InterestRate        float64 `json:"interestRate"`
	TenureMonths        int     `json:"tenureMonths"`
	EMIPaidCount        int     `json:"emiPaidCount"`
	LinkedBankAccountID string  `json:"linkedBankAccountId,omitempty"`
}

type transactionDoc struct {
	ID          string    `json:"id"`
	Amount      float64   `json:"amount"`
	Currency    string    `json:"currency"`
	Date        time.Time `json:"date"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
}

type budgetDoc struct {
	ID       string     `json:"id"`
	Category string     `json:"category"`
	Limit    float64    `json:"limit"`
	Currency string     `json:"currency"`
	Period   string     `json:"period"`
	DueDate  *time.Time `json:"dueDate,omitempty"`
	Spent    float64    `json:"spent"`
}

type reminderDoc struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Amount       float64   `json:"amount,omitempty"`
	DueDate      time.Time `json:"dueDate"`
	IsCompleted  bool      `json:"isCompleted"`
	ReminderType string    `json:"reminderType"`
}

func encodeAccounts(accounts []core.Account) ([]byte, error) {
	docs := make([]accountDoc, len(accounts))
	for i, a := range accounts {
		docs[i] = accountDoc{
			AccountID: a.ID,
			BankName:  a.BankName,
			Currency:  string(a.Currency),
			Amount:    a.Balance,
		}
	}
	return json.Marshal(docs)
}

// decodeAccounts decodes best-effort: any failure yields an empty
// collection, never an error.
func decodeAccounts(data []byte) []core.Account {
	var docs []accountDoc
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil
	}
	accounts := make([]core.Account, len(docs))
	for i, d := range docs {
		accounts[i] = core.Account{
			ID:       d.AccountID,
			BankName: d.BankName,
			Currency: core.Currency(d.Currency),
			Balance:  d.Amount,
		}
	}
	return accounts
}

func encodeLoans(loans []core.Loan) ([]byte, error) {
	docs := make([]loanDoc, len(loans))
	for i, l := range loans {
		docs[i] = loanDoc{
			AccountID:           l.ID,
			BankName:            l.BankName,
			Currency:            string(l.Currency),
			Amount:              l.Principal,
			LoanAmount:          l.Principal,
			InterestRate:        l.InterestRate,
			TenureMonths:        l.TenureMonths,
			EMIPaidCount:        l.EMIsPaid,
			LinkedBankAccountID: l.LinkedAccountID,
		}
	}
	return json.Marshal(docs)
}

func decodeLoans(data []byte) []core.Loan {
	var docs []loanDoc
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil
	}
	loans := make([]core.Loan, len(docs))
	for i, d := range docs {
		principal := d.LoanAmount
		if principal == 0 {
			// Older records carried the principal only in the amount field.
			principal = d.Amount
		}
		loans[i] = core.Loan{
			ID:              d.AccountID,
			BankName:        d.BankName,
			Currency:        core.Currency(d.Currency),
			Principal:       principal,
			InterestRate:    d.InterestRate,
			TenureMonths:    d.TenureMonths,
			EMIsPaid:        d.EMIPaidCount,
			LinkedAccountID: d.LinkedBankAccountID,
		}
	}
	return loans
}

func encodeTransactions(txs []core.Transaction) ([]byte, error) {
	docs := make([]transactionDoc, len(txs))
	for i, t := range txs {
		docs[i] = transactionDoc{
			ID:          t.ID,
			Amount:      t.Amount,
			Currency:    string(t.Currency),
			Date:        t.Date,
			Category:    string(t.Category),
			Description: t.Description,
		}
	}
	return json.Marshal(docs)
}

func decodeTransactions(data []byte) []core.Transaction {
	var docs []transactionDoc
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil
	}
	txs := make([]core.Transaction, len(docs))
	for i, d := range docs {
		txs[i] = core.Transaction{
			ID:          d.ID,
			Amount:      d.Amount,
			Currency:    core.Currency(d.Currency),
			Date:        d.Date,
			Category:    core.Category(d.Category),
			Description: d.Description,
		}
	}
	return txs
}

func encodeBudgets(budgets []core.Budget) ([]byte, error) {
	docs := make([]budgetDoc, len(budgets))
	for i, b := range budgets {
		doc := budgetDoc{
			ID:       b.ID,
			Category: string(b.Category),
			Limit:    b.Limit,
			Currency: string(b.Currency),
			Period:   string(b.Period),
			Spent:    b.Spent,
		}
		if !b.DueDate.IsZero() {
			due := b.DueDate
			doc.DueDate = &due
		}
		docs[i] = doc
	}
	return json.Marshal(docs)
}

func decodeBudgets(data []byte) []core.Budget {
	var docs []budgetDoc
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil
	}
	budgets := make([]core.Budget, len(docs))
	for i, d := range docs {
		b := core.Budget{
			ID:       d.ID,
			Category: core.Category(d.Category),
			Limit:    d.Limit,
			Currency: core.Currency(d.Currency),
			Period:   core.Period(d.Period),
			Spent:    d.Spent,
		}
		if d.DueDate != nil {
			b.DueDate = *d.DueDate
		}
		budgets[i] = b
	}
	return budgets
}

func encodeReminders(reminders []core.Reminder) ([]byte, error) {
	docs := make([]reminderDoc, len(reminders))
	for i, r := range reminders {
		docs[i] = reminderDoc{
			ID:           r.ID,
			Title:        r.Title,
			Amount:       r.Amount,
			DueDate:      r.DueDate,
			IsCompleted:  r.Completed,
			ReminderType: string(r.Type),
		}
	}
	return json.Marshal(docs)
}

func decodeReminders(data []byte) []core.Reminder {
	var docs []reminderDoc
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil
	}
	reminders := make([]core.Reminder, len(docs))
	for i, d := range docs {
		reminders[i] = core.Reminder{
			ID:        d.ID,
			Title:     d.Title,
			Amount:    d.Amount,
			DueDate:   d.DueDate,
			Completed: d.IsCompleted,
			Type:      core.ReminderType(d.ReminderType),
		}
	}
	return reminders
}

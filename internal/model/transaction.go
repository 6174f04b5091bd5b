package model

import (
	"time"

	"github.com/google/uuid"
)

// Transaction is a single economic event pushed into the ledger.
// Positive amounts are income; zero and negative amounts are expenses.
type Transaction struct {
	Timestamp   time.Time
	ID          string
	Category    string
	Description string
	Amount      float64
}

// NewTransaction builds a transaction stamped with the given sim time.
func NewTransaction(at time.Time, amount float64, category, description string) Transaction {
	return Transaction{
		ID:          uuid.NewString(),
		Timestamp:   at,
		Amount:      amount,
		Category:    category,
		Description: description,
	}
}

// IsIncome reports whether the transaction counts toward daily income.
func (t Transaction) IsIncome() bool {
	return t.Amount > 0
}

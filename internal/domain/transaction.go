// internal/domain/transaction.go
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal" // For precise monetary calculations
)

// TransactionType defines the direction of a transaction.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "INCOME"
	TransactionTypeExpense TransactionType = "EXPENSE"
)

// Transaction represents an entry in the recent transactions list.
type Transaction struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`    // e.g. "Market Alışverişi"
	Category        string          `json:"category"` // e.g. "shopping"
	Amount          decimal.Decimal `json:"amount"`   // Signed; expenses are negative
	Currency        string          `json:"currency"`
	Type            TransactionType `json:"type"`
	TransactionTime time.Time       `json:"transaction_time"`
}

// NewTransaction creates a new Transaction with a fresh id.
// The type is derived from the sign of amount.
func NewTransaction(title, category string, amount decimal.Decimal, currency string, at time.Time) *Transaction {
	txType := TransactionTypeIncome
	if amount.IsNegative() {
		txType = TransactionTypeExpense
	}
	return &Transaction{
		ID:              uuid.New().String(),
		Title:           title,
		Category:        category,
		Amount:          amount,
		Currency:        currency,
		Type:            txType,
		TransactionTime: at.UTC(),
	}
}

// internal/domain/wallet.go
package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal" // For precise monetary calculations
)

// CurrencyTRY is the only currency the wallet displays.
const CurrencyTRY = "TRY"

// Wallet represents the user's balance summary shown on the home screen.
type Wallet struct {
	Currency       string          `json:"currency"`
	Balance        decimal.Decimal `json:"balance"`         // Total balance
	MonthlyIncome  decimal.Decimal `json:"monthly_income"`  // Income this month
	MonthlyExpense decimal.Decimal `json:"monthly_expense"` // Spending this month
	UpdatedAt      time.Time       `json:"updated_at"`
}

// NewWallet creates a new Wallet instance.
func NewWallet(currency string, balance, income, expense decimal.Decimal) *Wallet {
	return &Wallet{
		Currency:       currency,
		Balance:        balance,
		MonthlyIncome:  income,
		MonthlyExpense: expense,
		UpdatedAt:      time.Now().UTC(),
	}
}

// FormatTRY renders an amount the way tr-TR formats Turkish lira: ₺12.500,75.
// Negative amounts get a leading minus before the symbol.
func FormatTRY(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Abs()
	}

	fixed := amount.StringFixed(2)
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	return sign + "₺" + b.String() + "," + fracPart
}

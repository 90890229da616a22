// internal/form/add_card.go
package form

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"cardwallet/internal/store"
	"cardwallet/internal/util"
)

const (
	cardNumberLength  = 16
	minCardholderName = 3
	expiryFieldLength = 2
	cvvLength         = 3
)

// AddCard is the add-card form as submitted by the user.
type AddCard struct {
	CardNumber     string `json:"card_number"`
	CardholderName string `json:"cardholder_name"`
	ExpiryMonth    string `json:"expiry_month"`
	ExpiryYear     string `json:"expiry_year"`
	CVV            string `json:"cvv"`
}

// Normalize strips whitespace from the card number and trims the other fields.
func (f AddCard) Normalize() AddCard {
	f.CardNumber = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, f.CardNumber)
	f.CardholderName = strings.TrimSpace(f.CardholderName)
	f.ExpiryMonth = strings.TrimSpace(f.ExpiryMonth)
	f.ExpiryYear = strings.TrimSpace(f.ExpiryYear)
	f.CVV = strings.TrimSpace(f.CVV)
	return f
}

// Validate reports the first invalid field. The returned error wraps
// util.ErrInvalidInput. Validate expects a normalized form.
func (f AddCard) Validate() error {
	switch {
	case !isDigits(f.CardNumber, cardNumberLength):
		return fmt.Errorf("%w: card number must be %d digits", util.ErrInvalidInput, cardNumberLength)
	case utf8.RuneCountInString(f.CardholderName) < minCardholderName:
		return fmt.Errorf("%w: cardholder name must be at least %d characters", util.ErrInvalidInput, minCardholderName)
	case !isDigits(f.ExpiryMonth, expiryFieldLength):
		return fmt.Errorf("%w: expiry month must be %d digits", util.ErrInvalidInput, expiryFieldLength)
	case !isDigits(f.ExpiryYear, expiryFieldLength):
		return fmt.Errorf("%w: expiry year must be %d digits", util.ErrInvalidInput, expiryFieldLength)
	case !isDigits(f.CVV, cvvLength):
		return fmt.Errorf("%w: security code must be %d digits", util.ErrInvalidInput, cvvLength)
	}
	return nil
}

// Valid reports whether Validate passes, for enabling a submit control.
func (f AddCard) Valid() bool {
	return f.Validate() == nil
}

// Input converts the form into store input. The security code is dropped.
func (f AddCard) Input() store.AddCardInput {
	return store.AddCardInput{
		Number:         f.CardNumber,
		CardholderName: f.CardholderName,
		ExpiryMonth:    f.ExpiryMonth,
		ExpiryYear:     f.ExpiryYear,
	}
}

// FormatCardNumber groups the digits of s in blocks of four, e.g. "4242 4242 4242 4242".
func FormatCardNumber(s string) string {
	cleaned := AddCard{CardNumber: s}.Normalize().CardNumber

	var b strings.Builder
	for i, r := range []rune(cleaned) {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isDigits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

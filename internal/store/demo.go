// internal/store/demo.go
package store

import "cardwallet/internal/domain"

// DemoCards returns the two sample cards the card screen starts with in demo mode.
func DemoCards(gen IDGenerator) []domain.Card {
	if gen == nil {
		gen = NewULIDGenerator()
	}
	visa := domain.NewCard(gen(), domain.NewCardParams{
		Number:         "4242",
		CardholderName: "Hasan Gönen",
		ExpiryMonth:    "12",
		ExpiryYear:     "25",
		Type:           domain.CardTypeCredit,
		Scheme:         domain.CardSchemeVisa,
	})
	mastercard := domain.NewCard(gen(), domain.NewCardParams{
		Number:         "8372",
		CardholderName: "Hasan Gönen",
		ExpiryMonth:    "09",
		ExpiryYear:     "24",
		Type:           domain.CardTypeDebit,
		Scheme:         domain.CardSchemeMastercard,
	})
	return []domain.Card{visa.WithDefault(true), mastercard}
}

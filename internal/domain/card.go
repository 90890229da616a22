// internal/domain/card.go
package domain

import "strings"

// CardID is the opaque identifier of a card. The empty CardID means "no card".
type CardID string

// CardType defines the product type of a payment card.
type CardType string

const (
	CardTypeCredit  CardType = "credit"
	CardTypeDebit   CardType = "debit"
	CardTypePrepaid CardType = "prepaid"
)

// Label returns the display label shown on the card list.
func (t CardType) Label() string {
	switch t {
	case CardTypeDebit:
		return "Banka Kartı"
	case CardTypePrepaid:
		return "Ön Ödemeli Kart"
	default:
		return "Kredi Kartı"
	}
}

// CardScheme defines the card network.
type CardScheme string

const (
	CardSchemeVisa       CardScheme = "visa"
	CardSchemeMastercard CardScheme = "mastercard"
	CardSchemeTroy       CardScheme = "troy"
	CardSchemeAmex       CardScheme = "amex"
)

// maskPrefix is prepended to the last four digits to build MaskedNumber.
const maskPrefix = "•••• •••• •••• "

// Card represents a payment card held in the wallet.
// The full card number is never kept; only the last four digits survive construction.
type Card struct {
	ID             CardID     `json:"id"`
	LastFourDigits string     `json:"last_four_digits"`
	ExpiryMonth    string     `json:"expiry_month"`    // Two digits, e.g. "09"
	ExpiryYear     string     `json:"expiry_year"`     // Two digits, e.g. "25"
	CardholderName string     `json:"cardholder_name"` // Stored upper-cased
	Type           CardType   `json:"type"`
	Scheme         CardScheme `json:"scheme"`
	IsDefault      bool       `json:"is_default"`
	IsActive       bool       `json:"is_active"`
	MaskedNumber   string     `json:"masked_number"` // Derived once at creation
}

// NewCardParams carries the raw values a card is built from.
type NewCardParams struct {
	Number         string
	CardholderName string
	ExpiryMonth    string
	ExpiryYear     string
	Type           CardType   // Defaults to credit when empty
	Scheme         CardScheme // Defaults to visa when empty
}

// NewCard creates a new active, non-default Card from the given params.
func NewCard(id CardID, p NewCardParams) Card {
	last4 := LastFour(p.Number)
	cardType := p.Type
	if cardType == "" {
		cardType = CardTypeCredit
	}
	scheme := p.Scheme
	if scheme == "" {
		scheme = CardSchemeVisa
	}
	return Card{
		ID:             id,
		LastFourDigits: last4,
		ExpiryMonth:    p.ExpiryMonth,
		ExpiryYear:     p.ExpiryYear,
		CardholderName: strings.ToUpper(p.CardholderName),
		Type:           cardType,
		Scheme:         scheme,
		IsDefault:      false,
		IsActive:       true,
		MaskedNumber:   MaskNumber(last4),
	}
}

// LastFour returns the last four characters of number, or all of it when shorter.
func LastFour(number string) string {
	if len(number) <= 4 {
		return number
	}
	return number[len(number)-4:]
}

// MaskNumber builds the display form of a card number from its last four digits.
func MaskNumber(lastFour string) string {
	return maskPrefix + lastFour
}

// WithDefault returns a copy of the card with IsDefault set.
func (c Card) WithDefault(isDefault bool) Card {
	c.IsDefault = isDefault
	return c
}

// WithActive returns a copy of the card with IsActive set.
func (c Card) WithActive(isActive bool) Card {
	c.IsActive = isActive
	return c
}

// Expiry returns the expiry date as MM/YY.
func (c Card) Expiry() string {
	return c.ExpiryMonth + "/" + c.ExpiryYear
}

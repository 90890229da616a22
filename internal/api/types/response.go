// internal/api/types/response.go
package types

import (
	"cardwallet/internal/domain"
	"cardwallet/internal/store"
)

// CardCollectionResponse is the JSON shape of the card list screen state.
// The expanded and selected ids are null when nothing is expanded or selected.
type CardCollectionResponse struct {
	Data           []domain.Card    `json:"data"`
	ExpandedCardID *domain.CardID   `json:"expanded_card_id"`
	SelectedCardID *domain.CardID   `json:"selected_card_id"`
	Stats          domain.CardStats `json:"stats"`
}

// NewCardCollectionResponse converts a store snapshot into its response form.
func NewCardCollectionResponse(snap store.Snapshot) CardCollectionResponse {
	data := snap.Cards
	if data == nil {
		data = []domain.Card{}
	}
	return CardCollectionResponse{
		Data:           data,
		ExpandedCardID: optionalID(snap.ExpandedCardID),
		SelectedCardID: optionalID(snap.SelectedCardID),
		Stats:          snap.Stats,
	}
}

// DashboardResponse is the home screen payload with display-formatted amounts.
type DashboardResponse struct {
	*domain.Dashboard
	Formatted FormattedAmounts `json:"formatted"`
}

// FormattedAmounts carries the tr-TR renderings of the wallet figures.
type FormattedAmounts struct {
	Balance        string `json:"balance"`
	MonthlyIncome  string `json:"monthly_income"`
	MonthlyExpense string `json:"monthly_expense"`
}

// NewDashboardResponse wraps a dashboard with its formatted amounts.
func NewDashboardResponse(d *domain.Dashboard) DashboardResponse {
	return DashboardResponse{
		Dashboard: d,
		Formatted: FormattedAmounts{
			Balance:        domain.FormatTRY(d.Wallet.Balance),
			MonthlyIncome:  domain.FormatTRY(d.Wallet.MonthlyIncome),
			MonthlyExpense: domain.FormatTRY(d.Wallet.MonthlyExpense),
		},
	}
}

func optionalID(id domain.CardID) *domain.CardID {
	if id == "" {
		return nil
	}
	return &id
}

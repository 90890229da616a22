// internal/service/dashboard_service.go
package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"cardwallet/internal/domain"
)

// DashboardService defines the interface for the home screen summary.
type DashboardService interface {
	GetDashboard(ctx context.Context) (*domain.Dashboard, error)
}

// dashboardService implements the DashboardService interface.
type dashboardService struct {
	cards        CardService
	user         *domain.User
	wallet       *domain.Wallet
	transactions []*domain.Transaction
}

// NewDashboardService creates a DashboardService with the demo wallet figures.
// Card data is read live from cards on every call.
func NewDashboardService(cards CardService, userName string, now time.Time) DashboardService {
	wallet := domain.NewWallet(
		domain.CurrencyTRY,
		decimal.RequireFromString("12500.75"),
		decimal.NewFromInt(3450),
		decimal.NewFromInt(1280),
	)

	spent := decimal.RequireFromString("-156.50")
	transactions := make([]*domain.Transaction, 0, 3)
	for i := 0; i < 3; i++ {
		at := now.Add(-time.Duration(i) * 24 * time.Hour)
		transactions = append(transactions, domain.NewTransaction("Market Alışverişi", "shopping", spent, domain.CurrencyTRY, at))
	}

	return &dashboardService{
		cards:        cards,
		user:         domain.NewUser(userName),
		wallet:       wallet,
		transactions: transactions,
	}
}

// GetDashboard returns the wallet summary together with the live card state.
func (s *dashboardService) GetDashboard(ctx context.Context) (*domain.Dashboard, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snap := s.cards.Snapshot(ctx)
	dashboard := &domain.Dashboard{
		User:               s.user,
		Wallet:             s.wallet,
		RecentTransactions: s.transactions,
		CardStats:          snap.Stats,
	}
	if card, ok := s.cards.DefaultCard(ctx); ok {
		dashboard.DefaultCard = card
	}
	return dashboard, nil
}

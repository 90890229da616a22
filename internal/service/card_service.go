// internal/service/card_service.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"cardwallet/internal/domain"
	"cardwallet/internal/form"
	"cardwallet/internal/store"
	"cardwallet/internal/util"
)

// CardStore is the set of store operations the card service relies on.
// *store.CardCollectionStore implements it.
type CardStore interface {
	AddCard(in store.AddCardInput) domain.Card
	DeleteCard(id domain.CardID)
	SetDefaultCard(id domain.CardID)
	SetCardActive(id domain.CardID, active bool)
	ToggleExpanded(id domain.CardID)
	SelectCard(id domain.CardID)
	Card(id domain.CardID) (domain.Card, bool)
	DefaultCard() (domain.Card, bool)
	Snapshot() store.Snapshot
}

var _ CardStore = (*store.CardCollectionStore)(nil)

// CardService defines the interface for card-management business logic.
type CardService interface {
	Snapshot(ctx context.Context) store.Snapshot
	Card(ctx context.Context, id domain.CardID) (*domain.Card, error)
	DefaultCard(ctx context.Context) (*domain.Card, bool)
	AddCard(ctx context.Context, f form.AddCard) (*domain.Card, error)
	DeleteCard(ctx context.Context, id domain.CardID) store.Snapshot
	SetDefaultCard(ctx context.Context, id domain.CardID) store.Snapshot
	SetCardActive(ctx context.Context, id domain.CardID, active bool) store.Snapshot
	ToggleExpanded(ctx context.Context, id domain.CardID) store.Snapshot
	SelectCard(ctx context.Context, id domain.CardID) store.Snapshot
}

// cardService implements the CardService interface.
// mu makes the service the single owner of the store: every operation runs
// to completion before the next one observes state.
type cardService struct {
	mu     sync.Mutex
	store  CardStore
	logger *slog.Logger
}

// NewCardService creates a new instance of CardService.
func NewCardService(s CardStore, logger *slog.Logger) CardService {
	if logger == nil {
		logger = util.GetLogger()
	}
	return &cardService{
		store:  s,
		logger: logger,
	}
}

// Snapshot returns the current cards, selection state, and counts.
func (s *cardService) Snapshot(ctx context.Context) store.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Snapshot()
}

// Card looks up a single card.
func (s *cardService) Card(ctx context.Context, id domain.CardID) (*domain.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	card, ok := s.store.Card(id)
	if !ok {
		return nil, fmt.Errorf("get card %s: %w", id, util.ErrCardNotFound)
	}
	return &card, nil
}

// DefaultCard returns the current default card, if any.
func (s *cardService) DefaultCard(ctx context.Context) (*domain.Card, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	card, ok := s.store.DefaultCard()
	if !ok {
		return nil, false
	}
	return &card, true
}

// AddCard validates the form and adds the card. Invalid forms never reach the store.
func (s *cardService) AddCard(ctx context.Context, f form.AddCard) (*domain.Card, error) {
	f = f.Normalize()
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("add card: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	card := s.store.AddCard(f.Input())
	s.logger.InfoContext(ctx, "Card added", "card_id", card.ID, "last_four", card.LastFourDigits, "is_default", card.IsDefault)
	return &card, nil
}

// DeleteCard removes a card. Deleting an unknown card is not an error.
func (s *cardService) DeleteCard(ctx context.Context, id domain.CardID) store.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.store.DeleteCard(id)
	snap := s.store.Snapshot()
	s.logger.InfoContext(ctx, "Card deleted", "card_id", id, "total", snap.Stats.Total)
	return snap
}

// SetDefaultCard makes the given card the only default card.
func (s *cardService) SetDefaultCard(ctx context.Context, id domain.CardID) store.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.store.SetDefaultCard(id)
	s.logger.InfoContext(ctx, "Default card set", "card_id", id)
	return s.store.Snapshot()
}

// SetCardActive activates or deactivates a card.
func (s *cardService) SetCardActive(ctx context.Context, id domain.CardID, active bool) store.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.store.SetCardActive(id, active)
	s.logger.InfoContext(ctx, "Card active flag set", "card_id", id, "active", active)
	return s.store.Snapshot()
}

// ToggleExpanded expands or collapses a card in the list.
func (s *cardService) ToggleExpanded(ctx context.Context, id domain.CardID) store.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.store.ToggleExpanded(id)
	s.logger.DebugContext(ctx, "Card expansion toggled", "card_id", id)
	return s.store.Snapshot()
}

// SelectCard overwrites the current selection.
func (s *cardService) SelectCard(ctx context.Context, id domain.CardID) store.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.store.SelectCard(id)
	s.logger.DebugContext(ctx, "Card selected", "card_id", id)
	return s.store.Snapshot()
}

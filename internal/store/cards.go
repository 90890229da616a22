// internal/store/cards.go
package store

import (
	"slices"

	"cardwallet/internal/domain"
)

// AddCardInput holds the already-validated values for a new card.
type AddCardInput struct {
	Number         string // Raw digit string; only the last four digits are kept
	CardholderName string
	ExpiryMonth    string
	ExpiryYear     string
}

// Snapshot is a consistent view of the store at one point in time.
type Snapshot struct {
	Cards          []domain.Card
	ExpandedCardID domain.CardID // Empty when no card is expanded
	SelectedCardID domain.CardID // Empty when no card is selected
	Stats          domain.CardStats
}

// CardCollectionStore owns the ordered card list and the transient
// expanded/selected UI state.
//
// The store has a single logical owner and does no locking; callers that
// share it across goroutines must serialise access themselves.
type CardCollectionStore struct {
	cards    []domain.Card
	expanded domain.CardID
	selected domain.CardID

	issued         map[domain.CardID]struct{} // Every id ever held, including deleted cards
	newID          IDGenerator
	promoteDefault bool
}

// New creates an empty CardCollectionStore.
func New(opts ...Option) *CardCollectionStore {
	s := &CardCollectionStore{
		newID: NewULIDGenerator(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.issued = make(map[domain.CardID]struct{}, len(s.cards))
	for _, c := range s.cards {
		s.issued[c.ID] = struct{}{}
	}
	return s
}

// AddCard appends a new card built from in. The card becomes the default iff
// the collection was empty.
func (s *CardCollectionStore) AddCard(in AddCardInput) domain.Card {
	card := domain.NewCard(s.freshID(), domain.NewCardParams{
		Number:         in.Number,
		CardholderName: in.CardholderName,
		ExpiryMonth:    in.ExpiryMonth,
		ExpiryYear:     in.ExpiryYear,
	})
	card = card.WithDefault(len(s.cards) == 0)

	next := make([]domain.Card, 0, len(s.cards)+1)
	next = append(next, s.cards...)
	s.cards = append(next, card)
	return card
}

// DeleteCard removes the card with the given id. Unknown ids are ignored.
func (s *CardCollectionStore) DeleteCard(id domain.CardID) {
	idx := s.indexOf(id)
	if idx < 0 {
		return
	}
	removed := s.cards[idx]

	next := make([]domain.Card, 0, len(s.cards)-1)
	next = append(next, s.cards[:idx]...)
	next = append(next, s.cards[idx+1:]...)

	if s.promoteDefault && removed.IsDefault && len(next) > 0 {
		next[0] = next[0].WithDefault(true)
	}
	s.cards = next
}

// SetDefaultCard makes id the only default card. Unknown ids are ignored.
func (s *CardCollectionStore) SetDefaultCard(id domain.CardID) {
	if s.indexOf(id) < 0 {
		return
	}
	next := make([]domain.Card, len(s.cards))
	for i, c := range s.cards {
		next[i] = c.WithDefault(c.ID == id)
	}
	s.cards = next
}

// SetCardActive rewrites the active flag of the card with the given id.
// Unknown ids are ignored.
func (s *CardCollectionStore) SetCardActive(id domain.CardID, active bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return
	}
	next := slices.Clone(s.cards)
	next[idx] = next[idx].WithActive(active)
	s.cards = next
}

// ToggleExpanded collapses id if it is the expanded card, otherwise expands it.
func (s *CardCollectionStore) ToggleExpanded(id domain.CardID) {
	if s.expanded == id {
		s.expanded = ""
		return
	}
	s.expanded = id
}

// SelectCard overwrites the selection. The id is not checked against the
// collection; the empty id clears the selection.
func (s *CardCollectionStore) SelectCard(id domain.CardID) {
	s.selected = id
}

// Cards returns a copy of the cards in display order.
func (s *CardCollectionStore) Cards() []domain.Card {
	return slices.Clone(s.cards)
}

// Card returns the card with the given id.
func (s *CardCollectionStore) Card(id domain.CardID) (domain.Card, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return domain.Card{}, false
	}
	return s.cards[idx], true
}

// DefaultCard returns the current default card, if any.
func (s *CardCollectionStore) DefaultCard() (domain.Card, bool) {
	for _, c := range s.cards {
		if c.IsDefault {
			return c, true
		}
	}
	return domain.Card{}, false
}

// ExpandedCardID returns the expanded card id, if any.
func (s *CardCollectionStore) ExpandedCardID() (domain.CardID, bool) {
	return s.expanded, s.expanded != ""
}

// SelectedCardID returns the selected card id, if any.
func (s *CardCollectionStore) SelectedCardID() (domain.CardID, bool) {
	return s.selected, s.selected != ""
}

// TotalCount returns the number of cards.
func (s *CardCollectionStore) TotalCount() int {
	return len(s.cards)
}

// ActiveCount returns the number of active cards.
func (s *CardCollectionStore) ActiveCount() int {
	n := 0
	for _, c := range s.cards {
		if c.IsActive {
			n++
		}
	}
	return n
}

// DisabledCount returns the number of inactive cards.
func (s *CardCollectionStore) DisabledCount() int {
	n := 0
	for _, c := range s.cards {
		if !c.IsActive {
			n++
		}
	}
	return n
}

// Stats returns all derived counts.
func (s *CardCollectionStore) Stats() domain.CardStats {
	return domain.CardStats{
		Total:    s.TotalCount(),
		Active:   s.ActiveCount(),
		Disabled: s.DisabledCount(),
	}
}

// Snapshot returns the cards, selection state, and counts together.
func (s *CardCollectionStore) Snapshot() Snapshot {
	return Snapshot{
		Cards:          s.Cards(),
		ExpandedCardID: s.expanded,
		SelectedCardID: s.selected,
		Stats:          s.Stats(),
	}
}

func (s *CardCollectionStore) indexOf(id domain.CardID) int {
	if id == "" {
		return -1
	}
	return slices.IndexFunc(s.cards, func(c domain.Card) bool { return c.ID == id })
}

// freshID draws ids until one has never been issued by this store.
func (s *CardCollectionStore) freshID() domain.CardID {
	for {
		id := s.newID()
		if _, used := s.issued[id]; id == "" || used {
			continue
		}
		s.issued[id] = struct{}{}
		return id
	}
}

// internal/store/options.go
package store

import "cardwallet/internal/domain"

// Option configures a CardCollectionStore.
type Option func(*CardCollectionStore)

// WithIDGenerator overrides the default ULID generator.
func WithIDGenerator(gen IDGenerator) Option {
	return func(s *CardCollectionStore) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// WithDefaultPromotion makes DeleteCard promote the first remaining card to
// default when the deleted card was the default. Without it a delete never
// reassigns the default, and the collection can be left with none.
func WithDefaultPromotion() Option {
	return func(s *CardCollectionStore) {
		s.promoteDefault = true
	}
}

// WithCards seeds the store with prebuilt cards in the given order.
// Cards with an empty or repeated id are dropped, and only the first card
// flagged as default keeps the flag.
func WithCards(cards ...domain.Card) Option {
	return func(s *CardCollectionStore) {
		seen := make(map[domain.CardID]struct{}, len(s.cards)+len(cards))
		hasDefault := false
		for _, c := range s.cards {
			seen[c.ID] = struct{}{}
			hasDefault = hasDefault || c.IsDefault
		}
		for _, c := range cards {
			if c.ID == "" {
				continue
			}
			if _, dup := seen[c.ID]; dup {
				continue
			}
			seen[c.ID] = struct{}{}
			if c.IsDefault {
				if hasDefault {
					c = c.WithDefault(false)
				}
				hasDefault = true
			}
			s.cards = append(s.cards, c)
		}
	}
}

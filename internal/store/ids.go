// internal/store/ids.go
package store

import (
	"crypto/rand"

	"github.com/oklog/ulid/v2"

	"cardwallet/internal/domain"
)

// IDGenerator produces a fresh CardID on every call.
type IDGenerator func() domain.CardID

// NewULIDGenerator returns an IDGenerator backed by monotonic ULIDs with
// crypto/rand entropy. IDs are strictly increasing within the process, even
// within one millisecond, so a deleted card's id is never handed out again.
// The returned generator is not safe for concurrent use.
func NewULIDGenerator() IDGenerator {
	entropy := ulid.Monotonic(rand.Reader, 0)
	return func() domain.CardID {
		return domain.CardID(ulid.MustNew(ulid.Now(), entropy).String())
	}
}

package coinfolio

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DateFormat is the format used to represent record dates.
const DateFormat = "2006-01-02"

// idLength is the number of characters kept from a freshly generated UUID.
// 8 hex-ish characters give 32 bits of entropy, plenty for a personal record
// book; collisions are never checked. The length is part of the stored id
// format and must not change.
const idLength = 8

// newID returns a short unique identifier for a new record.
func newID() string {
	return uuid.New().String()[:idLength]
}

// normalizeCoin returns the canonical (upper-case) form of a coin symbol.
func normalizeCoin(coin string) string {
	return strings.ToUpper(coin)
}

// resolveDate returns the given date, or today's date when empty.
func resolveDate(date string) string {
	if date == "" {
		return time.Now().Format(DateFormat)
	}
	return date
}

// Record is the common behaviour of all record kinds. It enables the
// generic helpers in the store.
type Record interface {
	GetID() string
}

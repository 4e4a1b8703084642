package coinfolio

import (
	"fmt"
	"regexp"
	"time"
)

// Boundary validation helpers.
//
// The core trusts its callers: constructors and the Portfolio service never
// inspect values, and stored data is never rewritten. These checks exist
// for interactive callers (the CLI) to reject obvious typos before they are
// persisted.

const maxCoinSymbolLength = 10
const maxNotesLength = 500

var coinSymbolRe = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// ValidateCoinSymbol rejects empty, oversized, or non-alphanumeric symbols.
func ValidateCoinSymbol(coin string) error {
	if coin == "" {
		return fmt.Errorf("coin symbol cannot be empty (example: BTC)")
	}
	if len(coin) > maxCoinSymbolLength {
		return fmt.Errorf("coin symbol too long (max %d characters)", maxCoinSymbolLength)
	}
	if !coinSymbolRe.MatchString(coin) {
		return fmt.Errorf("coin symbol must contain only letters and numbers (example: BTC, USDT)")
	}
	return nil
}

// ValidateAmount rejects zero and negative amounts.
func ValidateAmount(amount float64) error {
	if amount <= 0 {
		return fmt.Errorf("amount must be positive (got %g)", amount)
	}
	return nil
}

// ValidatePrice rejects negative prices. Zero is fine (airdrops).
func ValidatePrice(price float64) error {
	if price < 0 {
		return fmt.Errorf("price cannot be negative (got %g)", price)
	}
	return nil
}

// ValidateDate accepts an empty date (defaults to today) or a real
// YYYY-MM-DD calendar date.
func ValidateDate(date string) error {
	if date == "" {
		return nil
	}
	if _, err := time.Parse(DateFormat, date); err != nil {
		return fmt.Errorf("date must be a valid YYYY-MM-DD date (got %q)", date)
	}
	return nil
}

// ValidateNotes caps the notes length.
func ValidateNotes(notes string) error {
	if len(notes) > maxNotesLength {
		return fmt.Errorf("notes too long (max %d characters, got %d)", maxNotesLength, len(notes))
	}
	return nil
}

package coinfolio

// Holding represents a coin purchase.
type Holding struct {
	ID               string  `json:"id"`
	Coin             string  `json:"coin"`
	Amount           float64 `json:"amount"`
	PurchasePriceUSD float64 `json:"purchase_price_usd"`
	Date             string  `json:"date"`
	Platform         string  `json:"platform,omitempty"`
	Notes            string  `json:"notes,omitempty"`
}

// NewHolding creates a holding with a generated id and a resolved date.
// The coin symbol is stored upper-case. An empty date defaults to today.
func NewHolding(coin string, amount, purchasePriceUSD float64, platform, notes, date string) Holding {
	return Holding{
		ID:               newID(),
		Coin:             normalizeCoin(coin),
		Amount:           amount,
		PurchasePriceUSD: purchasePriceUSD,
		Date:             resolveDate(date),
		Platform:         platform,
		Notes:            notes,
	}
}

// GetID returns the holding's id.
func (h Holding) GetID() string { return h.ID }

// TotalValueUSD is the value of the holding at its purchase price.
// It is derived on demand and never stored.
func (h Holding) TotalValueUSD() float64 {
	return h.Amount * h.PurchasePriceUSD
}

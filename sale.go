package coinfolio

// Sale represents a coin disposal.
type Sale struct {
	ID           string  `json:"id"`
	Coin         string  `json:"coin"`
	Amount       float64 `json:"amount"`
	SellPriceUSD float64 `json:"sell_price_usd"`
	Date         string  `json:"date"`
	Platform     string  `json:"platform,omitempty"`
	Notes        string  `json:"notes,omitempty"`
}

// NewSale creates a sale with a generated id and a resolved date.
func NewSale(coin string, amount, sellPriceUSD float64, platform, notes, date string) Sale {
	return Sale{
		ID:           newID(),
		Coin:         normalizeCoin(coin),
		Amount:       amount,
		SellPriceUSD: sellPriceUSD,
		Date:         resolveDate(date),
		Platform:     platform,
		Notes:        notes,
	}
}

// GetID returns the sale's id.
func (s Sale) GetID() string { return s.ID }

// TotalValueUSD is the value of the sale at its sell price.
func (s Sale) TotalValueUSD() float64 {
	return s.Amount * s.SellPriceUSD
}

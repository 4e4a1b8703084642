package coinfolio

// Stake represents coins locked on a platform to earn yield.
type Stake struct {
	ID       string   `json:"id"`
	Coin     string   `json:"coin"`
	Amount   float64  `json:"amount"`
	Platform string   `json:"platform"`
	Date     string   `json:"date"`
	APY      *float64 `json:"apy,omitempty"` // annual percentage yield
	Notes    string   `json:"notes,omitempty"`
}

// NewStake creates a stake with a generated id and a resolved date.
func NewStake(coin string, amount float64, platform string, apy *float64, notes, date string) Stake {
	return Stake{
		ID:       newID(),
		Coin:     normalizeCoin(coin),
		Amount:   amount,
		Platform: platform,
		Date:     resolveDate(date),
		APY:      apy,
		Notes:    notes,
	}
}

// GetID returns the stake's id.
func (s Stake) GetID() string { return s.ID }

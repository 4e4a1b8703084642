package coinfolio

// Loan represents coins borrowed against a platform. Unlike holdings, the
// platform identifies the counterparty and is therefore mandatory.
type Loan struct {
	ID           string   `json:"id"`
	Coin         string   `json:"coin"`
	Amount       float64  `json:"amount"`
	Platform     string   `json:"platform"`
	Date         string   `json:"date"`
	InterestRate *float64 `json:"interest_rate,omitempty"` // annual percentage
	Notes        string   `json:"notes,omitempty"`
}

// NewLoan creates a loan with a generated id and a resolved date.
func NewLoan(coin string, amount float64, platform string, interestRate *float64, notes, date string) Loan {
	return Loan{
		ID:           newID(),
		Coin:         normalizeCoin(coin),
		Amount:       amount,
		Platform:     platform,
		Date:         resolveDate(date),
		InterestRate: interestRate,
		Notes:        notes,
	}
}

// GetID returns the loan's id.
func (l Loan) GetID() string { return l.ID }

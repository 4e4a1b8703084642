package coinfolio

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Snapshot is a point-in-time valuation of the portfolio at caller-supplied
// prices.
type Snapshot struct {
	ID            string                  `json:"id"`
	Timestamp     time.Time               `json:"timestamp"`
	HoldingsValue float64                 `json:"holdings_value"`
	LoansValue    float64                 `json:"loans_value"`
	NetValue      float64                 `json:"net_value"`
	TotalInvested float64                 `json:"total_invested"`
	TotalSold     float64                 `json:"total_sold"`
	ProfitLoss    float64                 `json:"profit_loss"`
	ProfitPercent float64                 `json:"profit_percent"`
	CoinValues    map[string]CoinSnapshot `json:"coin_values"`
	Note          string                  `json:"note,omitempty"`
}

// CoinSnapshot is one coin's amount, price and value at snapshot time.
type CoinSnapshot struct {
	Amount float64 `json:"amount"`
	Price  float64 `json:"price"`
	Value  float64 `json:"value"`
}

// CreateSnapshot values the portfolio at the given per-coin USD prices.
// Holdings are valued at their current balance (purchases minus sales), so
// sold coins contribute only their realized proceeds. Every coin with a
// current balance or a loan must have a price; the snapshot is not
// persisted here, callers hand it to a SnapshotStore.
func (p *Portfolio) CreateSnapshot(prices map[string]float64, note string) (Snapshot, error) {
	summary, err := p.GetSummary()
	if err != nil {
		return Snapshot{}, err
	}
	current, err := p.GetCurrentByCoin()
	if err != nil {
		return Snapshot{}, err
	}
	sold, err := p.GetTotalSoldUSD()
	if err != nil {
		return Snapshot{}, err
	}

	// Fully-sold coins have a zero balance and need no price.
	need := make(map[string]struct{}, len(current)+len(summary.LoansByCoin))
	for coin, amount := range current {
		if amount != 0 {
			need[coin] = struct{}{}
		}
	}
	for coin := range summary.LoansByCoin {
		need[coin] = struct{}{}
	}
	var missing []string
	for coin := range need {
		if _, ok := prices[coin]; !ok {
			missing = append(missing, coin)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return Snapshot{}, fmt.Errorf("missing prices for coins: %v", missing)
	}

	coinValues := make(map[string]CoinSnapshot, len(current))
	holdingsValue := decimal.Zero
	for coin, amount := range current {
		if amount == 0 {
			continue
		}
		value := decimal.NewFromFloat(amount).Mul(decimal.NewFromFloat(prices[coin]))
		holdingsValue = holdingsValue.Add(value)
		v, _ := value.Float64()
		coinValues[coin] = CoinSnapshot{Amount: amount, Price: prices[coin], Value: v}
	}

	loansValue := decimal.Zero
	for coin, amount := range summary.LoansByCoin {
		loansValue = loansValue.Add(decimal.NewFromFloat(amount).Mul(decimal.NewFromFloat(prices[coin])))
	}

	netValue := holdingsValue.Sub(loansValue)
	profitLoss := netValue.Sub(decimal.NewFromFloat(summary.TotalInvestedUSD)).Add(decimal.NewFromFloat(sold))

	var profitPercent float64
	if summary.TotalInvestedUSD > 0 {
		pct := profitLoss.Div(decimal.NewFromFloat(summary.TotalInvestedUSD)).Mul(decimal.NewFromInt(100))
		profitPercent, _ = pct.Float64()
	}

	hv, _ := holdingsValue.Float64()
	lv, _ := loansValue.Float64()
	nv, _ := netValue.Float64()
	pl, _ := profitLoss.Float64()

	return Snapshot{
		ID:            newID(),
		Timestamp:     time.Now(),
		HoldingsValue: hv,
		LoansValue:    lv,
		NetValue:      nv,
		TotalInvested: summary.TotalInvestedUSD,
		TotalSold:     sold,
		ProfitLoss:    pl,
		ProfitPercent: profitPercent,
		CoinValues:    coinValues,
		Note:          note,
	}, nil
}

// SnapshotComparison is the difference between two snapshots.
type SnapshotComparison struct {
	Older            Snapshot
	Newer            Snapshot
	NetValueChange   float64
	NetValuePercent  float64
	ProfitLossChange float64
	CoinChanges      map[string]CoinChange
}

// CoinChange is the change in a single coin between two snapshots.
type CoinChange struct {
	OldAmount   float64
	NewAmount   float64
	OldPrice    float64
	NewPrice    float64
	OldValue    float64
	NewValue    float64
	ValueChange float64
}

// CompareSnapshots returns the per-coin and net differences from older to
// newer. Coins present in either snapshot appear in the result.
func CompareSnapshots(older, newer Snapshot) SnapshotComparison {
	c := SnapshotComparison{
		Older:            older,
		Newer:            newer,
		NetValueChange:   newer.NetValue - older.NetValue,
		ProfitLossChange: newer.ProfitLoss - older.ProfitLoss,
		CoinChanges:      make(map[string]CoinChange),
	}
	if older.NetValue > 0 {
		c.NetValuePercent = c.NetValueChange / older.NetValue * 100
	}

	coins := make(map[string]struct{})
	for coin := range older.CoinValues {
		coins[coin] = struct{}{}
	}
	for coin := range newer.CoinValues {
		coins[coin] = struct{}{}
	}

	for coin := range coins {
		o := older.CoinValues[coin]
		n := newer.CoinValues[coin]
		c.CoinChanges[coin] = CoinChange{
			OldAmount:   o.Amount,
			NewAmount:   n.Amount,
			OldPrice:    o.Price,
			NewPrice:    n.Price,
			OldValue:    o.Value,
			NewValue:    n.Value,
			ValueChange: n.Value - o.Value,
		}
	}
	return c
}

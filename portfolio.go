package coinfolio

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Portfolio is the application-level API over the store. It owns no state;
// every call goes straight to the document.
//
// The service performs no business validation: amounts and dates are
// trusted as given, and removing records that leave a negative net balance
// is permitted. Callers that want guard rails validate at their boundary.
type Portfolio struct {
	store *Store
}

// NewPortfolio creates a portfolio service over the given store.
func NewPortfolio(store *Store) *Portfolio {
	return &Portfolio{store: store}
}

// Holdings

// AddHolding records a new coin purchase and returns the created record.
func (p *Portfolio) AddHolding(coin string, amount, purchasePriceUSD float64, platform, notes, date string) (Holding, error) {
	return p.store.AddHolding(NewHolding(coin, amount, purchasePriceUSD, platform, notes, date))
}

// RemoveHolding removes a holding by id, reporting whether it existed.
func (p *Portfolio) RemoveHolding(id string) (bool, error) {
	return p.store.RemoveHolding(id)
}

// ListHoldings returns all holdings in insertion order.
func (p *Portfolio) ListHoldings() ([]Holding, error) {
	return p.store.GetHoldings()
}

// Loans

// AddLoan records a new loan and returns the created record.
func (p *Portfolio) AddLoan(coin string, amount float64, platform string, interestRate *float64, notes, date string) (Loan, error) {
	return p.store.AddLoan(NewLoan(coin, amount, platform, interestRate, notes, date))
}

// RemoveLoan removes a loan by id, reporting whether it existed.
func (p *Portfolio) RemoveLoan(id string) (bool, error) {
	return p.store.RemoveLoan(id)
}

// ListLoans returns all loans in insertion order.
func (p *Portfolio) ListLoans() ([]Loan, error) {
	return p.store.GetLoans()
}

// Sales

// AddSale records a new sale and returns the created record.
func (p *Portfolio) AddSale(coin string, amount, sellPriceUSD float64, platform, notes, date string) (Sale, error) {
	return p.store.AddSale(NewSale(coin, amount, sellPriceUSD, platform, notes, date))
}

// RemoveSale removes a sale by id, reporting whether it existed.
func (p *Portfolio) RemoveSale(id string) (bool, error) {
	return p.store.RemoveSale(id)
}

// ListSales returns all sales in insertion order.
func (p *Portfolio) ListSales() ([]Sale, error) {
	return p.store.GetSales()
}

// Stakes

// AddStake records a new stake. Staking more than the available balance
// (current holdings minus what is already staked) is refused.
func (p *Portfolio) AddStake(coin string, amount float64, platform string, apy *float64, notes, date string) (Stake, error) {
	coin = normalizeCoin(coin)

	available, err := p.GetAvailableByCoin()
	if err != nil {
		return Stake{}, fmt.Errorf("checking available balance: %w", err)
	}
	if amount > available[coin] {
		return Stake{}, fmt.Errorf("cannot stake %g %s: only %g %s available", amount, coin, available[coin], coin)
	}

	return p.store.AddStake(NewStake(coin, amount, platform, apy, notes, date))
}

// RemoveStake removes a stake by id, reporting whether it existed.
func (p *Portfolio) RemoveStake(id string) (bool, error) {
	return p.store.RemoveStake(id)
}

// ListStakes returns all stakes in insertion order.
func (p *Portfolio) ListStakes() ([]Stake, error) {
	return p.store.GetStakes()
}

// Aggregations.
//
// Sums are accumulated with decimals: coin amounts are small fractional
// values and repeated float64 additions drift.

// sumByCoin folds records into per-coin totals. Coins only ever appear with
// the amounts that were recorded, so a coin with no records is absent.
func sumByCoin(coins []string, amounts []float64) map[string]float64 {
	totals := make(map[string]decimal.Decimal)
	for i, coin := range coins {
		totals[coin] = totals[coin].Add(decimal.NewFromFloat(amounts[i]))
	}
	byCoin := make(map[string]float64, len(totals))
	for coin, total := range totals {
		byCoin[coin], _ = total.Float64()
	}
	return byCoin
}

// diffByCoin computes left - right for the union of coins, defaulting a
// missing side to zero.
func diffByCoin(left, right map[string]float64) map[string]float64 {
	diff := make(map[string]float64, len(left)+len(right))
	for coin, v := range left {
		d := decimal.NewFromFloat(v).Sub(decimal.NewFromFloat(right[coin]))
		diff[coin], _ = d.Float64()
	}
	for coin, v := range right {
		if _, seen := left[coin]; seen {
			continue
		}
		d := decimal.NewFromFloat(v).Neg()
		diff[coin], _ = d.Float64()
	}
	return diff
}

// GetHoldingsByCoin returns purchased amounts summed per coin.
func (p *Portfolio) GetHoldingsByCoin() (map[string]float64, error) {
	holdings, err := p.ListHoldings()
	if err != nil {
		return nil, err
	}
	coins := make([]string, len(holdings))
	amounts := make([]float64, len(holdings))
	for i, h := range holdings {
		coins[i], amounts[i] = h.Coin, h.Amount
	}
	return sumByCoin(coins, amounts), nil
}

// GetLoansByCoin returns borrowed amounts summed per coin.
func (p *Portfolio) GetLoansByCoin() (map[string]float64, error) {
	loans, err := p.ListLoans()
	if err != nil {
		return nil, err
	}
	coins := make([]string, len(loans))
	amounts := make([]float64, len(loans))
	for i, l := range loans {
		coins[i], amounts[i] = l.Coin, l.Amount
	}
	return sumByCoin(coins, amounts), nil
}

// GetSalesByCoin returns sold amounts summed per coin.
func (p *Portfolio) GetSalesByCoin() (map[string]float64, error) {
	sales, err := p.ListSales()
	if err != nil {
		return nil, err
	}
	coins := make([]string, len(sales))
	amounts := make([]float64, len(sales))
	for i, s := range sales {
		coins[i], amounts[i] = s.Coin, s.Amount
	}
	return sumByCoin(coins, amounts), nil
}

// GetStakesByCoin returns staked amounts summed per coin.
func (p *Portfolio) GetStakesByCoin() (map[string]float64, error) {
	stakes, err := p.ListStakes()
	if err != nil {
		return nil, err
	}
	coins := make([]string, len(stakes))
	amounts := make([]float64, len(stakes))
	for i, s := range stakes {
		coins[i], amounts[i] = s.Coin, s.Amount
	}
	return sumByCoin(coins, amounts), nil
}

// GetNetHoldingsByCoin returns holdings minus loans for the union of coins
// appearing on either side. Sales do not enter this figure.
func (p *Portfolio) GetNetHoldingsByCoin() (map[string]float64, error) {
	holdings, err := p.GetHoldingsByCoin()
	if err != nil {
		return nil, err
	}
	loans, err := p.GetLoansByCoin()
	if err != nil {
		return nil, err
	}
	return diffByCoin(holdings, loans), nil
}

// GetCurrentByCoin returns what is actually owned right now: purchases
// minus sales, per coin.
func (p *Portfolio) GetCurrentByCoin() (map[string]float64, error) {
	holdings, err := p.GetHoldingsByCoin()
	if err != nil {
		return nil, err
	}
	sales, err := p.GetSalesByCoin()
	if err != nil {
		return nil, err
	}
	return diffByCoin(holdings, sales), nil
}

// GetAvailableByCoin returns the unstaked part of the current balance:
// current holdings minus stakes, per coin.
func (p *Portfolio) GetAvailableByCoin() (map[string]float64, error) {
	current, err := p.GetCurrentByCoin()
	if err != nil {
		return nil, err
	}
	stakes, err := p.GetStakesByCoin()
	if err != nil {
		return nil, err
	}
	return diffByCoin(current, stakes), nil
}

// GetTotalInvestedUSD returns the USD spent across all holdings. Sales do
// not reduce this figure.
func (p *Portfolio) GetTotalInvestedUSD() (float64, error) {
	holdings, err := p.ListHoldings()
	if err != nil {
		return 0, err
	}
	total := decimal.Zero
	for _, h := range holdings {
		total = total.Add(decimal.NewFromFloat(h.Amount).Mul(decimal.NewFromFloat(h.PurchasePriceUSD)))
	}
	f, _ := total.Float64()
	return f, nil
}

// GetTotalSoldUSD returns the USD received across all sales.
func (p *Portfolio) GetTotalSoldUSD() (float64, error) {
	sales, err := p.ListSales()
	if err != nil {
		return 0, err
	}
	total := decimal.Zero
	for _, s := range sales {
		total = total.Add(decimal.NewFromFloat(s.Amount).Mul(decimal.NewFromFloat(s.SellPriceUSD)))
	}
	f, _ := total.Float64()
	return f, nil
}

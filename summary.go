package coinfolio

// Summary is the aggregated snapshot bundle consumed by presentation
// layers.
//
// The bundle mirrors the historical one exactly: it carries holdings and
// loans counts but no sales count, HoldingsByCoin sums purchases only, and
// sales stay out of NetByCoin and TotalInvestedUSD. ExtendedSummary is the
// broader view.
type Summary struct {
	TotalHoldingsCount int
	TotalLoansCount    int
	TotalInvestedUSD   float64
	HoldingsByCoin     map[string]float64
	LoansByCoin        map[string]float64
	NetByCoin          map[string]float64
}

// ExtendedSummary widens Summary with the figures the historical bundle
// left out: sales, stakes, and the balances derived from them.
type ExtendedSummary struct {
	Summary
	TotalSalesCount  int
	TotalStakesCount int
	TotalSoldUSD     float64
	SalesByCoin      map[string]float64
	CurrentByCoin    map[string]float64 // purchases - sales
	StakesByCoin     map[string]float64
	AvailableByCoin  map[string]float64 // current - staked
}

// GetSummary assembles the portfolio summary.
func (p *Portfolio) GetSummary() (Summary, error) {
	holdings, err := p.ListHoldings()
	if err != nil {
		return Summary{}, err
	}
	loans, err := p.ListLoans()
	if err != nil {
		return Summary{}, err
	}
	invested, err := p.GetTotalInvestedUSD()
	if err != nil {
		return Summary{}, err
	}
	holdingsByCoin, err := p.GetHoldingsByCoin()
	if err != nil {
		return Summary{}, err
	}
	loansByCoin, err := p.GetLoansByCoin()
	if err != nil {
		return Summary{}, err
	}
	netByCoin, err := p.GetNetHoldingsByCoin()
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		TotalHoldingsCount: len(holdings),
		TotalLoansCount:    len(loans),
		TotalInvestedUSD:   invested,
		HoldingsByCoin:     holdingsByCoin,
		LoansByCoin:        loansByCoin,
		NetByCoin:          netByCoin,
	}, nil
}

// GetExtendedSummary assembles the broader summary.
func (p *Portfolio) GetExtendedSummary() (ExtendedSummary, error) {
	summary, err := p.GetSummary()
	if err != nil {
		return ExtendedSummary{}, err
	}
	sales, err := p.ListSales()
	if err != nil {
		return ExtendedSummary{}, err
	}
	stakes, err := p.ListStakes()
	if err != nil {
		return ExtendedSummary{}, err
	}
	sold, err := p.GetTotalSoldUSD()
	if err != nil {
		return ExtendedSummary{}, err
	}
	salesByCoin, err := p.GetSalesByCoin()
	if err != nil {
		return ExtendedSummary{}, err
	}
	currentByCoin, err := p.GetCurrentByCoin()
	if err != nil {
		return ExtendedSummary{}, err
	}
	stakesByCoin, err := p.GetStakesByCoin()
	if err != nil {
		return ExtendedSummary{}, err
	}
	availableByCoin, err := p.GetAvailableByCoin()
	if err != nil {
		return ExtendedSummary{}, err
	}

	return ExtendedSummary{
		Summary:          summary,
		TotalSalesCount:  len(sales),
		TotalStakesCount: len(stakes),
		TotalSoldUSD:     sold,
		SalesByCoin:      salesByCoin,
		CurrentByCoin:    currentByCoin,
		StakesByCoin:     stakesByCoin,
		AvailableByCoin:  availableByCoin,
	}, nil
}

package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/coinfolio"
)

func TestHoldings(t *testing.T) {
	holdings := []coinfolio.Holding{
		{ID: "aaaaaaaa", Coin: "BTC", Amount: 1.5, PurchasePriceUSD: 20000, Date: "2026-01-15", Platform: "kraken"},
		{ID: "bbbbbbbb", Coin: "ETH", Amount: 10, PurchasePriceUSD: 1500, Date: "2026-02-01"},
	}

	md := Holdings(holdings)
	for _, want := range []string{
		"# Holdings",
		"| aaaaaaaa | BTC | 1.5 | $20,000.00 | $30,000.00 | 2026-01-15 | kraken | - |",
		"| bbbbbbbb | ETH | 10 | $1,500.00 | $15,000.00 | 2026-02-01 | - | - |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("Holdings() lacks %q:\n%s", want, md)
		}
	}
}

func TestHoldings_Empty(t *testing.T) {
	if md := Holdings(nil); !strings.Contains(md, "No holdings recorded") {
		t.Errorf("empty Holdings() = %q", md)
	}
}

func TestLoans_InterestRate(t *testing.T) {
	rate := 5.5
	loans := []coinfolio.Loan{
		{ID: "aaaaaaaa", Coin: "BTC", Amount: 0.5, Platform: "celsius", InterestRate: &rate, Date: "2026-01-15"},
		{ID: "bbbbbbbb", Coin: "ETH", Amount: 2, Platform: "nexo", Date: "2026-01-16"},
	}

	md := Loans(loans)
	if !strings.Contains(md, "| 5.5% |") {
		t.Errorf("Loans() lacks the interest rate:\n%s", md)
	}
	if !strings.Contains(md, "| bbbbbbbb | ETH | 2 | nexo | - |") {
		t.Errorf("Loans() does not dash a missing rate:\n%s", md)
	}
}

func TestSales(t *testing.T) {
	sales := []coinfolio.Sale{
		{ID: "aaaaaaaa", Coin: "ETH", Amount: 2, SellPriceUSD: 2000, Date: "2026-03-01"},
	}
	md := Sales(sales)
	if !strings.Contains(md, "$4,000.00") {
		t.Errorf("Sales() lacks the sale value:\n%s", md)
	}
}

func TestStakes_APY(t *testing.T) {
	apy := 4.2
	stakes := []coinfolio.Stake{
		{ID: "aaaaaaaa", Coin: "ETH", Amount: 5, Platform: "lido", APY: &apy, Date: "2026-03-01"},
	}
	md := Stakes(stakes)
	if !strings.Contains(md, "| 4.2% |") {
		t.Errorf("Stakes() lacks the APY:\n%s", md)
	}
}

func TestSummary(t *testing.T) {
	s := coinfolio.Summary{
		TotalHoldingsCount: 2,
		TotalLoansCount:    1,
		TotalInvestedUSD:   45000,
		HoldingsByCoin:     map[string]float64{"BTC": 1.5, "ETH": 10},
		LoansByCoin:        map[string]float64{"BTC": 0.5},
		NetByCoin:          map[string]float64{"BTC": 1, "ETH": 10},
	}

	md := Summary(s)
	for _, want := range []string{
		"# Portfolio Summary",
		"- Holdings: 2",
		"- Loans: 1",
		"- Total invested: $45,000.00",
		"## Holdings by coin",
		"## Net by coin",
		"| BTC | 1.5 |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("Summary() lacks %q:\n%s", want, md)
		}
	}
}

// Coins render in sorted order so the report is stable run to run.
func TestSummary_StableCoinOrder(t *testing.T) {
	s := coinfolio.Summary{
		HoldingsByCoin: map[string]float64{"SOL": 1, "ADA": 2, "BTC": 3},
	}
	md := Summary(s)
	ada := strings.Index(md, "| ADA |")
	btc := strings.Index(md, "| BTC |")
	sol := strings.Index(md, "| SOL |")
	if ada < 0 || btc < 0 || sol < 0 || !(ada < btc && btc < sol) {
		t.Errorf("coins not sorted (ADA@%d BTC@%d SOL@%d):\n%s", ada, btc, sol, md)
	}
}

func TestExtendedSummary(t *testing.T) {
	s := coinfolio.ExtendedSummary{
		Summary: coinfolio.Summary{
			TotalHoldingsCount: 2,
			TotalInvestedUSD:   45000,
			HoldingsByCoin:     map[string]float64{"ETH": 10},
		},
		TotalSalesCount: 1,
		TotalSoldUSD:    4000,
		SalesByCoin:     map[string]float64{"ETH": 2},
		CurrentByCoin:   map[string]float64{"ETH": 8},
		AvailableByCoin: map[string]float64{"ETH": 8},
	}

	md := ExtendedSummary(s)
	for _, want := range []string{
		"- Sales: 1",
		"- Total sold: $4,000.00",
		"## Current by coin",
		"## Available by coin",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("ExtendedSummary() lacks %q:\n%s", want, md)
		}
	}
}

func TestValuation(t *testing.T) {
	net := map[string]float64{"BTC": 1, "ETH": 10}
	prices := map[string]float64{"BTC": 30000, "ETH": 2000}

	md := Valuation(net, prices)
	for _, want := range []string{
		"| BTC | 1 | $30,000.00 | $30,000.00 |",
		"| ETH | 10 | $2,000.00 | $20,000.00 |",
		"Total net value: $50,000.00",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("Valuation() lacks %q:\n%s", want, md)
		}
	}
}

func TestValuation_Empty(t *testing.T) {
	if md := Valuation(nil, nil); !strings.Contains(md, "Nothing to value") {
		t.Errorf("empty Valuation() = %q", md)
	}
}

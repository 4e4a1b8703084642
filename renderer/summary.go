package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/coinfolio"
)

// byCoinTable renders a per-coin amount mapping as a two-column table.
func byCoinTable(b *strings.Builder, title string, m map[string]float64) {
	if len(m) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", title)
	fmt.Fprintln(b, "| Coin | Amount |")
	fmt.Fprintln(b, "|---|---:|")
	for _, coin := range sortedCoins(m) {
		fmt.Fprintf(b, "| %s | %s |\n", coin, amount(m[coin]))
	}
	fmt.Fprintln(b)
}

// Summary renders the portfolio summary as markdown.
func Summary(s coinfolio.Summary) string {
	var b strings.Builder
	fmt.Fprintln(&b, "# Portfolio Summary")
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "- Holdings: %d\n", s.TotalHoldingsCount)
	fmt.Fprintf(&b, "- Loans: %d\n", s.TotalLoansCount)
	fmt.Fprintf(&b, "- Total invested: %s\n", usd(s.TotalInvestedUSD))
	fmt.Fprintln(&b)
	byCoinTable(&b, "Holdings by coin", s.HoldingsByCoin)
	byCoinTable(&b, "Loans by coin", s.LoansByCoin)
	byCoinTable(&b, "Net by coin", s.NetByCoin)
	return b.String()
}

// ExtendedSummary renders the broader summary as markdown.
func ExtendedSummary(s coinfolio.ExtendedSummary) string {
	var b strings.Builder
	fmt.Fprintln(&b, "# Portfolio Summary (extended)")
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "- Holdings: %d\n", s.TotalHoldingsCount)
	fmt.Fprintf(&b, "- Sales: %d\n", s.TotalSalesCount)
	fmt.Fprintf(&b, "- Loans: %d\n", s.TotalLoansCount)
	fmt.Fprintf(&b, "- Stakes: %d\n", s.TotalStakesCount)
	fmt.Fprintf(&b, "- Total invested: %s\n", usd(s.TotalInvestedUSD))
	fmt.Fprintf(&b, "- Total sold: %s\n", usd(s.TotalSoldUSD))
	fmt.Fprintln(&b)
	byCoinTable(&b, "Holdings by coin", s.HoldingsByCoin)
	byCoinTable(&b, "Sales by coin", s.SalesByCoin)
	byCoinTable(&b, "Current by coin", s.CurrentByCoin)
	byCoinTable(&b, "Loans by coin", s.LoansByCoin)
	byCoinTable(&b, "Stakes by coin", s.StakesByCoin)
	byCoinTable(&b, "Available by coin", s.AvailableByCoin)
	byCoinTable(&b, "Net by coin", s.NetByCoin)
	return b.String()
}

// Valuation renders per-coin live values next to a summary.
func Valuation(net map[string]float64, prices map[string]float64) string {
	if len(net) == 0 {
		return "Nothing to value.\n"
	}
	var b strings.Builder
	fmt.Fprintln(&b, "## Live valuation")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "| Coin | Net Amount | Price | Value |")
	fmt.Fprintln(&b, "|---|---:|---:|---:|")
	var total float64
	for _, coin := range sortedCoins(net) {
		value := net[coin] * prices[coin]
		total += value
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", coin, amount(net[coin]), usd(prices[coin]), usd(value))
	}
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "Total net value: %s\n", usd(total))
	return b.String()
}

// Package renderer turns portfolio data into markdown for terminal output.
package renderer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/etnz/coinfolio"
)

// usd formats a USD value for display.
func usd(v float64) string {
	return money.NewFromFloat(v, money.USD).Display()
}

// amount formats a coin amount without trailing zero noise.
func amount(v float64) string {
	return fmt.Sprintf("%g", v)
}

// orDash substitutes a dash for empty optional fields, keeping table
// columns aligned.
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// sortedCoins returns map keys in a stable order for rendering.
func sortedCoins(m map[string]float64) []string {
	coins := make([]string, 0, len(m))
	for coin := range m {
		coins = append(coins, coin)
	}
	sort.Strings(coins)
	return coins
}

// Holdings renders the holdings list as a markdown table.
func Holdings(holdings []coinfolio.Holding) string {
	if len(holdings) == 0 {
		return "No holdings recorded.\n"
	}
	var b strings.Builder
	fmt.Fprintln(&b, "# Holdings")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "| ID | Coin | Amount | Buy Price | Value | Date | Platform | Notes |")
	fmt.Fprintln(&b, "|---|---|---:|---:|---:|---|---|---|")
	for _, h := range holdings {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s |\n",
			h.ID, h.Coin, amount(h.Amount), usd(h.PurchasePriceUSD), usd(h.TotalValueUSD()),
			h.Date, orDash(h.Platform), orDash(h.Notes))
	}
	return b.String()
}

// Loans renders the loans list as a markdown table.
func Loans(loans []coinfolio.Loan) string {
	if len(loans) == 0 {
		return "No loans recorded.\n"
	}
	var b strings.Builder
	fmt.Fprintln(&b, "# Loans")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "| ID | Coin | Amount | Platform | Rate | Date | Notes |")
	fmt.Fprintln(&b, "|---|---|---:|---|---:|---|---|")
	for _, l := range loans {
		rate := "-"
		if l.InterestRate != nil {
			rate = fmt.Sprintf("%g%%", *l.InterestRate)
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			l.ID, l.Coin, amount(l.Amount), l.Platform, rate, l.Date, orDash(l.Notes))
	}
	return b.String()
}

// Sales renders the sales list as a markdown table.
func Sales(sales []coinfolio.Sale) string {
	if len(sales) == 0 {
		return "No sales recorded.\n"
	}
	var b strings.Builder
	fmt.Fprintln(&b, "# Sales")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "| ID | Coin | Amount | Sell Price | Value | Date | Platform | Notes |")
	fmt.Fprintln(&b, "|---|---|---:|---:|---:|---|---|---|")
	for _, s := range sales {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s |\n",
			s.ID, s.Coin, amount(s.Amount), usd(s.SellPriceUSD), usd(s.TotalValueUSD()),
			s.Date, orDash(s.Platform), orDash(s.Notes))
	}
	return b.String()
}

// Stakes renders the stakes list as a markdown table.
func Stakes(stakes []coinfolio.Stake) string {
	if len(stakes) == 0 {
		return "No stakes recorded.\n"
	}
	var b strings.Builder
	fmt.Fprintln(&b, "# Stakes")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "| ID | Coin | Amount | Platform | APY | Date | Notes |")
	fmt.Fprintln(&b, "|---|---|---:|---|---:|---|---|")
	for _, s := range stakes {
		apy := "-"
		if s.APY != nil {
			apy = fmt.Sprintf("%g%%", *s.APY)
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			s.ID, s.Coin, amount(s.Amount), s.Platform, apy, s.Date, orDash(s.Notes))
	}
	return b.String()
}

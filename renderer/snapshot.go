package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/coinfolio"
)

const timestampFormat = "2006-01-02 15:04"

// Snapshot renders a single snapshot as markdown.
func Snapshot(s coinfolio.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Snapshot %s (%s)\n", s.ID, s.Timestamp.Format(timestampFormat))
	if s.Note != "" {
		fmt.Fprintf(&b, "\n%s\n", s.Note)
	}
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "- Holdings value: %s\n", usd(s.HoldingsValue))
	fmt.Fprintf(&b, "- Loans value: %s\n", usd(s.LoansValue))
	fmt.Fprintf(&b, "- Net value: %s\n", usd(s.NetValue))
	fmt.Fprintf(&b, "- Invested: %s, sold: %s\n", usd(s.TotalInvested), usd(s.TotalSold))
	fmt.Fprintf(&b, "- Profit/loss: %s (%.2f%%)\n", usd(s.ProfitLoss), s.ProfitPercent)
	fmt.Fprintln(&b)

	if len(s.CoinValues) > 0 {
		coins := make(map[string]float64, len(s.CoinValues))
		for coin := range s.CoinValues {
			coins[coin] = s.CoinValues[coin].Value
		}
		fmt.Fprintln(&b, "| Coin | Amount | Price | Value |")
		fmt.Fprintln(&b, "|---|---:|---:|---:|")
		for _, coin := range sortedCoins(coins) {
			cv := s.CoinValues[coin]
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", coin, amount(cv.Amount), usd(cv.Price), usd(cv.Value))
		}
	}
	return b.String()
}

// Snapshots renders the snapshot list as a markdown table, one line each.
func Snapshots(snapshots []coinfolio.Snapshot) string {
	if len(snapshots) == 0 {
		return "No snapshots recorded.\n"
	}
	var b strings.Builder
	fmt.Fprintln(&b, "# Snapshots")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "| ID | Taken | Net Value | Profit/Loss | Note |")
	fmt.Fprintln(&b, "|---|---|---:|---:|---|")
	for _, s := range snapshots {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			s.ID, s.Timestamp.Format(timestampFormat), usd(s.NetValue), usd(s.ProfitLoss), orDash(s.Note))
	}
	return b.String()
}

// Comparison renders a snapshot comparison as markdown.
func Comparison(c coinfolio.SnapshotComparison) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Snapshot %s → %s\n", c.Older.ID, c.Newer.ID)
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "- Net value: %s → %s (%+.2f%%)\n", usd(c.Older.NetValue), usd(c.Newer.NetValue), c.NetValuePercent)
	fmt.Fprintf(&b, "- Profit/loss change: %s\n", usd(c.ProfitLossChange))
	fmt.Fprintln(&b)

	if len(c.CoinChanges) > 0 {
		coins := make(map[string]float64, len(c.CoinChanges))
		for coin := range c.CoinChanges {
			coins[coin] = c.CoinChanges[coin].ValueChange
		}
		fmt.Fprintln(&b, "| Coin | Amount | Price | Value | Change |")
		fmt.Fprintln(&b, "|---|---:|---:|---:|---:|")
		for _, coin := range sortedCoins(coins) {
			cc := c.CoinChanges[coin]
			fmt.Fprintf(&b, "| %s | %s → %s | %s → %s | %s → %s | %s |\n",
				coin,
				amount(cc.OldAmount), amount(cc.NewAmount),
				usd(cc.OldPrice), usd(cc.NewPrice),
				usd(cc.OldValue), usd(cc.NewValue),
				usd(cc.ValueChange))
		}
	}
	return b.String()
}

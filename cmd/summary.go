package cmd

import (
	"context"
	"flag"
	"strings"

	"github.com/etnz/coinfolio/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	extended bool
	live     bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the portfolio summary" }
func (*summaryCmd) Usage() string {
	return `cfo summary [-x] [-live]

  Displays counts, invested total, and per-coin balances. -x widens the
  report with sales and stakes; -live values net balances at fetched spot
  prices.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.extended, "x", false, "Show the extended summary (sales, stakes, available balances).")
	f.BoolVar(&c.live, "live", false, "Fetch spot prices and value the net balances.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := openPortfolio()
	if err != nil {
		return fail(err)
	}

	var b strings.Builder
	if c.extended {
		summary, err := p.GetExtendedSummary()
		if err != nil {
			return fail(err)
		}
		b.WriteString(renderer.ExtendedSummary(summary))
	} else {
		summary, err := p.GetSummary()
		if err != nil {
			return fail(err)
		}
		b.WriteString(renderer.Summary(summary))
	}

	if c.live {
		net, err := p.GetNetHoldingsByCoin()
		if err != nil {
			return fail(err)
		}
		ps, err := newPriceService()
		if err != nil {
			return fail(err)
		}
		coins := make([]string, 0, len(net))
		for coin := range net {
			coins = append(coins, coin)
		}
		prices, err := ps.Prices(coins)
		if err != nil {
			return fail(err)
		}
		b.WriteString("\n")
		b.WriteString(renderer.Valuation(net, prices))
	}

	printMarkdown(b.String())
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"sort"

	"github.com/google/subcommands"
)

type priceCmd struct{}

func (*priceCmd) Name() string     { return "price" }
func (*priceCmd) Synopsis() string { return "look up spot USD prices" }
func (*priceCmd) Usage() string {
	return `cfo price <symbol>...

  Fetches the current USD price of the given coins.
`
}

func (*priceCmd) SetFlags(_ *flag.FlagSet) {}

func (c *priceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		return usageError(fmt.Errorf("no coin symbol given"))
	}

	ps, err := newPriceService()
	if err != nil {
		return fail(err)
	}
	prices, err := ps.Prices(f.Args())
	if err != nil {
		return fail(err)
	}

	symbols := make([]string, 0, len(prices))
	for symbol := range prices {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	for _, symbol := range symbols {
		fmt.Printf("%s: %.4f USD\n", symbol, prices[symbol])
	}
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/coinfolio"
	"github.com/google/subcommands"
)

type sellCmd struct {
	coin     string
	amount   float64
	price    float64
	platform string
	notes    string
	date     string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a coin sale" }
func (*sellCmd) Usage() string {
	return `cfo sell -coin <symbol> -amount <n> -price <usd> [-platform <name>] [-notes <text>] [-date <YYYY-MM-DD>]

  Records a new sale. The date defaults to today.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.coin, "coin", "", "Coin symbol (e.g. BTC).")
	f.Float64Var(&c.amount, "amount", 0, "Amount sold, in coin units.")
	f.Float64Var(&c.price, "price", 0, "Sell price, in USD per unit.")
	f.StringVar(&c.platform, "platform", "", "Platform of the sale (defaults to the configured one).")
	f.StringVar(&c.notes, "notes", "", "Free-text notes.")
	f.StringVar(&c.date, "date", "", "Sale date (YYYY-MM-DD, defaults to today).")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := validateRecordFlags(c.coin, c.amount, c.date, c.notes); err != nil {
		return usageError(err)
	}
	if err := coinfolio.ValidatePrice(c.price); err != nil {
		return usageError(err)
	}
	if c.platform == "" {
		c.platform = defaultPlatform()
	}

	p, err := openPortfolio()
	if err != nil {
		return fail(err)
	}
	s, err := p.AddSale(c.coin, c.amount, c.price, c.platform, c.notes, c.date)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Added sale %s: %g %s at %g USD on %s\n", s.ID, s.Amount, s.Coin, s.SellPriceUSD, s.Date)
	return subcommands.ExitSuccess
}

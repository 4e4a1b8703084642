package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/coinfolio"
	"github.com/google/subcommands"
)

type buyCmd struct {
	coin     string
	amount   float64
	price    float64
	platform string
	notes    string
	date     string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a coin purchase" }
func (*buyCmd) Usage() string {
	return `cfo buy -coin <symbol> -amount <n> -price <usd> [-platform <name>] [-notes <text>] [-date <YYYY-MM-DD>]

  Records a new holding. The date defaults to today.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.coin, "coin", "", "Coin symbol (e.g. BTC).")
	f.Float64Var(&c.amount, "amount", 0, "Amount purchased, in coin units.")
	f.Float64Var(&c.price, "price", 0, "Purchase price, in USD per unit.")
	f.StringVar(&c.platform, "platform", "", "Platform of the purchase (defaults to the configured one).")
	f.StringVar(&c.notes, "notes", "", "Free-text notes.")
	f.StringVar(&c.date, "date", "", "Purchase date (YYYY-MM-DD, defaults to today).")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	h, err := p.AddHolding(c.coin, c.amount, c.price, c.platform, c.notes, c.date)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Added holding %s: %g %s at %g USD on %s\n", h.ID, h.Amount, h.Coin, h.PurchasePriceUSD, h.Date)
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type borrowCmd struct {
	coin     string
	amount   float64
	platform string
	rate     float64
	notes    string
	date     string
}

func (*borrowCmd) Name() string     { return "borrow" }
func (*borrowCmd) Synopsis() string { return "record a coin loan" }
func (*borrowCmd) Usage() string {
	return `cfo borrow -coin <symbol> -amount <n> -platform <name> [-rate <pct>] [-notes <text>] [-date <YYYY-MM-DD>]

  Records a new loan. The platform identifies the counterparty and is
  required. The date defaults to today.
`
}

func (c *borrowCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.coin, "coin", "", "Coin symbol (e.g. BTC).")
	f.Float64Var(&c.amount, "amount", 0, "Amount borrowed, in coin units.")
	f.StringVar(&c.platform, "platform", "", "Counterparty platform (required).")
	f.Float64Var(&c.rate, "rate", -1, "Annual interest rate in percent (optional).")
	f.StringVar(&c.notes, "notes", "", "Free-text notes.")
	f.StringVar(&c.date, "date", "", "Loan date (YYYY-MM-DD, defaults to today).")
}

func (c *borrowCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := validateRecordFlags(c.coin, c.amount, c.date, c.notes); err != nil {
		return usageError(err)
	}
	if c.platform == "" {
		c.platform = defaultPlatform()
	}
	if c.platform == "" {
		return usageError(fmt.Errorf("platform is required for loans"))
	}

	p, err := openPortfolio()
	if err != nil {
		return fail(err)
	}
	l, err := p.AddLoan(c.coin, c.amount, c.platform, optionalRate(c.rate), c.notes, c.date)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Added loan %s: %g %s from %s on %s\n", l.ID, l.Amount, l.Coin, l.Platform, l.Date)
	return subcommands.ExitSuccess
}

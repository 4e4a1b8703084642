package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type stakeCmd struct {
	coin     string
	amount   float64
	platform string
	apy      float64
	notes    string
	date     string
}

func (*stakeCmd) Name() string     { return "stake" }
func (*stakeCmd) Synopsis() string { return "record a coin stake" }
func (*stakeCmd) Usage() string {
	return `cfo stake -coin <symbol> -amount <n> -platform <name> [-apy <pct>] [-notes <text>] [-date <YYYY-MM-DD>]

  Records a new stake. Only the available balance (current holdings minus
  what is already staked) can be staked.
`
}

func (c *stakeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.coin, "coin", "", "Coin symbol (e.g. ETH).")
	f.Float64Var(&c.amount, "amount", 0, "Amount staked, in coin units.")
	f.StringVar(&c.platform, "platform", "", "Staking platform (required).")
	f.Float64Var(&c.apy, "apy", -1, "Annual percentage yield (optional).")
	f.StringVar(&c.notes, "notes", "", "Free-text notes.")
	f.StringVar(&c.date, "date", "", "Stake date (YYYY-MM-DD, defaults to today).")
}

func (c *stakeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := validateRecordFlags(c.coin, c.amount, c.date, c.notes); err != nil {
		return usageError(err)
	}
	if c.platform == "" {
		c.platform = defaultPlatform()
	}
	if c.platform == "" {
		return usageError(fmt.Errorf("platform is required for stakes"))
	}

	p, err := openPortfolio()
	if err != nil {
		return fail(err)
	}
	s, err := p.AddStake(c.coin, c.amount, c.platform, optionalRate(c.apy), c.notes, c.date)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Added stake %s: %g %s on %s since %s\n", s.ID, s.Amount, s.Coin, s.Platform, s.Date)
	return subcommands.ExitSuccess
}

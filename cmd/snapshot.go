package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/coinfolio"
	"github.com/etnz/coinfolio/renderer"
	"github.com/google/subcommands"
)

type snapshotCmd struct {
	note string
}

func (*snapshotCmd) Name() string     { return "snapshot" }
func (*snapshotCmd) Synopsis() string { return "take and inspect portfolio valuation snapshots" }
func (*snapshotCmd) Usage() string {
	return `cfo snapshot [-note <text>]                take a snapshot at spot prices
cfo snapshot list                          list snapshots
cfo snapshot show <id>                     show one snapshot
cfo snapshot diff <older-id> <newer-id>    compare two snapshots
cfo snapshot rm <id>                       remove a snapshot

  A snapshot values every held and loaned coin at the current spot price
  and records the result.
`
}

func (c *snapshotCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.note, "note", "", "Free-text note attached to a new snapshot.")
}

func (c *snapshotCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ss, err := openSnapshots()
	if err != nil {
		return fail(err)
	}

	if f.NArg() == 0 {
		return c.take(ss)
	}

	switch f.Arg(0) {
	case "list":
		snapshots, err := ss.List()
		if err != nil {
			return fail(err)
		}
		printMarkdown(renderer.Snapshots(snapshots))
		return subcommands.ExitSuccess

	case "show":
		if f.NArg() != 2 {
			return usageError(fmt.Errorf("show takes exactly one snapshot id"))
		}
		snapshot, ok, err := ss.Get(f.Arg(1))
		if err != nil {
			return fail(err)
		}
		if !ok {
			return fail(fmt.Errorf("no snapshot with id %s", f.Arg(1)))
		}
		printMarkdown(renderer.Snapshot(snapshot))
		return subcommands.ExitSuccess

	case "diff":
		if f.NArg() != 3 {
			return usageError(fmt.Errorf("diff takes two snapshot ids"))
		}
		older, ok, err := ss.Get(f.Arg(1))
		if err != nil {
			return fail(err)
		}
		if !ok {
			return fail(fmt.Errorf("no snapshot with id %s", f.Arg(1)))
		}
		newer, ok, err := ss.Get(f.Arg(2))
		if err != nil {
			return fail(err)
		}
		if !ok {
			return fail(fmt.Errorf("no snapshot with id %s", f.Arg(2)))
		}
		printMarkdown(renderer.Comparison(coinfolio.CompareSnapshots(older, newer)))
		return subcommands.ExitSuccess

	case "rm":
		if f.NArg() != 2 {
			return usageError(fmt.Errorf("rm takes exactly one snapshot id"))
		}
		removed, err := ss.Remove(f.Arg(1))
		if err != nil {
			return fail(err)
		}
		if !removed {
			fmt.Printf("No snapshot with id %s\n", f.Arg(1))
		} else {
			fmt.Printf("Removed snapshot %s\n", f.Arg(1))
		}
		return subcommands.ExitSuccess

	default:
		return usageError(fmt.Errorf("unknown snapshot action %q", f.Arg(0)))
	}
}

// take values the portfolio at spot prices and stores the snapshot.
func (c *snapshotCmd) take(ss *coinfolio.SnapshotStore) subcommands.ExitStatus {
	p, err := openPortfolio()
	if err != nil {
		return fail(err)
	}
	current, err := p.GetCurrentByCoin()
	if err != nil {
		return fail(err)
	}
	loans, err := p.GetLoansByCoin()
	if err != nil {
		return fail(err)
	}

	// Fully-sold coins need no quote.
	coins := make(map[string]struct{})
	for coin, amount := range current {
		if amount != 0 {
			coins[coin] = struct{}{}
		}
	}
	for coin := range loans {
		coins[coin] = struct{}{}
	}
	symbols := make([]string, 0, len(coins))
	for coin := range coins {
		symbols = append(symbols, coin)
	}

	psvc, err := newPriceService()
	if err != nil {
		return fail(err)
	}
	prices, err := psvc.Prices(symbols)
	if err != nil {
		return fail(err)
	}

	snapshot, err := p.CreateSnapshot(prices, c.note)
	if err != nil {
		return fail(err)
	}
	if err := ss.Add(snapshot); err != nil {
		return fail(err)
	}
	printMarkdown(renderer.Snapshot(snapshot))
	return subcommands.ExitSuccess
}

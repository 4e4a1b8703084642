package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/coinfolio/renderer"
	"github.com/google/subcommands"
)

type listCmd struct {
	kind string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list records of one kind" }
func (*listCmd) Usage() string {
	return `cfo list [-kind <holdings|loans|sales|stakes>]

  Lists records in the order they were added.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "kind", "holdings", "Record kind: holdings, loans, sales or stakes.")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := openPortfolio()
	if err != nil {
		return fail(err)
	}

	var md string
	switch c.kind {
	case "holdings":
		holdings, err := p.ListHoldings()
		if err != nil {
			return fail(err)
		}
		md = renderer.Holdings(holdings)
	case "loans":
		loans, err := p.ListLoans()
		if err != nil {
			return fail(err)
		}
		md = renderer.Loans(loans)
	case "sales":
		sales, err := p.ListSales()
		if err != nil {
			return fail(err)
		}
		md = renderer.Sales(sales)
	case "stakes":
		stakes, err := p.ListStakes()
		if err != nil {
			return fail(err)
		}
		md = renderer.Stakes(stakes)
	default:
		return usageError(fmt.Errorf("unknown record kind %q", c.kind))
	}

	printMarkdown(md)
	return subcommands.ExitSuccess
}

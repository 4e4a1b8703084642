package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmCmd struct {
	kind string
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "remove a record by id" }
func (*rmCmd) Usage() string {
	return `cfo rm -kind <holding|loan|sale|stake> <id>...

  Removes records by exact id. Unknown ids are reported but are not an
  error. There is no edit command: to change a record, remove it and add
  it again.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "kind", "holding", "Record kind: holding, loan, sale or stake.")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		return usageError(fmt.Errorf("no id given"))
	}

	p, err := openPortfolio()
	if err != nil {
		return fail(err)
	}

	var remove func(id string) (bool, error)
	switch c.kind {
	case "holding":
		remove = p.RemoveHolding
	case "loan":
		remove = p.RemoveLoan
	case "sale":
		remove = p.RemoveSale
	case "stake":
		remove = p.RemoveStake
	default:
		return usageError(fmt.Errorf("unknown record kind %q", c.kind))
	}

	for _, id := range f.Args() {
		removed, err := remove(id)
		if err != nil {
			return fail(err)
		}
		if removed {
			fmt.Printf("Removed %s %s\n", c.kind, id)
		} else {
			fmt.Fprintf(os.Stderr, "No %s with id %s\n", c.kind, id)
		}
	}
	return subcommands.ExitSuccess
}

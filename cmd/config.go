package cmd

import (
	"context"
	"flag"
	"fmt"
	"sort"

	"github.com/google/subcommands"
)

type configCmd struct{}

func (*configCmd) Name() string     { return "config" }
func (*configCmd) Synopsis() string { return "inspect and change settings" }
func (*configCmd) Usage() string {
	return `cfo config                             show the current configuration
cfo config map <symbol> <coingecko-id> map a coin symbol for price lookups
cfo config unmap <symbol>              remove a mapping
cfo config platform [<name>]           set (or clear) the default platform
`
}

func (*configCmd) SetFlags(_ *flag.FlagSet) {}

func (c *configCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cs, err := openConfig()
	if err != nil {
		return fail(err)
	}

	if f.NArg() == 0 {
		cfg, err := cs.Load()
		if err != nil {
			return fail(err)
		}
		if cfg.Preferences.DefaultPlatform != "" {
			fmt.Printf("default platform: %s\n", cfg.Preferences.DefaultPlatform)
		}
		symbols := make([]string, 0, len(cfg.TickerMappings))
		for symbol := range cfg.TickerMappings {
			symbols = append(symbols, symbol)
		}
		sort.Strings(symbols)
		for _, symbol := range symbols {
			fmt.Printf("%s -> %s\n", symbol, cfg.TickerMappings[symbol])
		}
		return subcommands.ExitSuccess
	}

	switch f.Arg(0) {
	case "map":
		if f.NArg() != 3 {
			return usageError(fmt.Errorf("map takes a symbol and a CoinGecko id"))
		}
		if err := cs.SetTickerMapping(f.Arg(1), f.Arg(2)); err != nil {
			return fail(err)
		}
		fmt.Printf("Mapped %s to %s\n", f.Arg(1), f.Arg(2))
		return subcommands.ExitSuccess

	case "unmap":
		if f.NArg() != 2 {
			return usageError(fmt.Errorf("unmap takes a symbol"))
		}
		removed, err := cs.RemoveTickerMapping(f.Arg(1))
		if err != nil {
			return fail(err)
		}
		if !removed {
			fmt.Printf("No mapping for %s\n", f.Arg(1))
		} else {
			fmt.Printf("Unmapped %s\n", f.Arg(1))
		}
		return subcommands.ExitSuccess

	case "platform":
		platform := ""
		if f.NArg() > 1 {
			platform = f.Arg(1)
		}
		if err := cs.SetDefaultPlatform(platform); err != nil {
			return fail(err)
		}
		if platform == "" {
			fmt.Println("Cleared default platform")
		} else {
			fmt.Printf("Default platform set to %s\n", platform)
		}
		return subcommands.ExitSuccess

	default:
		return usageError(fmt.Errorf("unknown config action %q", f.Arg(0)))
	}
}

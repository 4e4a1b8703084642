// Package cmd implements the CLI application to manage a coin record book.
package cmd

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/glamour"
	"github.com/etnz/coinfolio"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package calls Register() and then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&buyCmd{}, "records")
	c.Register(&sellCmd{}, "records")
	c.Register(&borrowCmd{}, "records")
	c.Register(&stakeCmd{}, "records")
	c.Register(&rmCmd{}, "records")
	c.Register(&listCmd{}, "records")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&snapshotCmd{}, "reports")
	c.Register(&priceCmd{}, "reports")
	c.Register(&assistCmd{}, "reports")

	c.Register(&configCmd{}, "settings")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var dataFile = flag.String("f", defaultDataFile(), "Path to the portfolio document (JSON)")

// environment holds the supported environment overrides.
type environment struct {
	// File overrides the portfolio document location.
	File string `env:"CFO_FILE"`
}

// defaultDataFile resolves the document location: CFO_FILE when set,
// otherwise a data directory next to the executable.
func defaultDataFile() string {
	var e environment
	if err := env.Parse(&e); err != nil {
		log.Printf("warning, ignoring environment: %v", err)
	}
	if e.File != "" {
		return e.File
	}
	return coinfolio.DefaultPath()
}

// openPortfolio opens the portfolio service over the app document.
func openPortfolio() (*coinfolio.Portfolio, error) {
	store, err := coinfolio.OpenStore(*dataFile)
	if err != nil {
		return nil, fmt.Errorf("opening document %q: %w", *dataFile, err)
	}
	return coinfolio.NewPortfolio(store), nil
}

// openSnapshots opens the snapshot store next to the app document.
func openSnapshots() (*coinfolio.SnapshotStore, error) {
	return coinfolio.OpenSnapshotStore(coinfolio.DefaultSnapshotPath(*dataFile))
}

// openConfig opens the config store next to the app document.
func openConfig() (*coinfolio.ConfigStore, error) {
	return coinfolio.OpenConfigStore(coinfolio.DefaultConfigPath(*dataFile))
}

// newPriceService builds a price service extended with the user's ticker
// mappings.
func newPriceService() (*coinfolio.PriceService, error) {
	cs, err := openConfig()
	if err != nil {
		return nil, err
	}
	cfg, err := cs.Load()
	if err != nil {
		return nil, err
	}
	return coinfolio.NewPriceService(coinfolio.WithCoinMappings(cfg.TickerMappings)), nil
}

// defaultPlatform returns the configured default platform, or "".
func defaultPlatform() string {
	cs, err := openConfig()
	if err != nil {
		return ""
	}
	cfg, err := cs.Load()
	if err != nil {
		return ""
	}
	return cfg.Preferences.DefaultPlatform
}

// printMarkdown renders markdown for the terminal and prints it, falling
// back to the raw text when rendering fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// fail prints an error and returns the failure exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}

package cmd

import (
	"fmt"
	"os"

	"github.com/etnz/coinfolio"
	"github.com/google/subcommands"
)

// usageError prints the validation error and returns the usage exit status.
func usageError(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitUsageError
}

// validateRecordFlags applies the boundary checks shared by all record
// commands. The core stores whatever it is given; typos stop here.
func validateRecordFlags(coin string, amount float64, date, notes string) error {
	if err := coinfolio.ValidateCoinSymbol(coin); err != nil {
		return err
	}
	if err := coinfolio.ValidateAmount(amount); err != nil {
		return err
	}
	if err := coinfolio.ValidateDate(date); err != nil {
		return err
	}
	return coinfolio.ValidateNotes(notes)
}

// optionalRate turns a flag value into the optional rate field. The flags
// default to a negative sentinel, which means unset.
func optionalRate(v float64) *float64 {
	if v < 0 {
		return nil
	}
	return &v
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/networth"
	"github.com/etnz/networth/app"
	"github.com/etnz/networth/renderer"
	"github.com/google/subcommands"
)

// itemArgs reads the name and value of a new item from the command line.
// With a preset, only the value is expected.
func itemArgs(f *flag.FlagSet, presetName string) (name string, value float64, err error) {
	switch {
	case presetName != "" && f.NArg() == 1:
		return presetName, networth.SanitizeNumber(f.Arg(0)), nil
	case presetName == "" && f.NArg() == 2:
		return f.Arg(0), networth.SanitizeNumber(f.Arg(1)), nil
	}
	return "", 0, fmt.Errorf("expected <name> <value>, or <value> with -preset")
}

// addAssetCmd holds the flags for the 'add-asset' subcommand.
type addAssetCmd struct {
	category string
	preset   string
}

func (*addAssetCmd) Name() string     { return "add-asset" }
func (*addAssetCmd) Synopsis() string { return "add an asset" }
func (*addAssetCmd) Usage() string {
	return `nw add-asset [-c <category>] <name> <value>
nw add-asset -preset <preset> <value>

  Adds an asset. The value may be written the way it is printed, e.g. "$12,500".
  Categories: cash, investments, property, other.
  Presets: "Checking Account", "Savings Account", "401(k)", "Roth IRA",
  "Brokerage Account", "Primary Home", "Vehicle", "Crypto".
`
}

func (c *addAssetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "c", string(networth.Cash), "Category of the asset.")
	f.StringVar(&c.preset, "preset", "", "Use the name and category of a preset.")
}

func (c *addAssetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	category, err := networth.ParseAssetCategory(c.category)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.preset != "" {
		p, ok := networth.FindPreset(networth.AssetPresets, c.preset)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown asset preset %q\n", c.preset)
			return subcommands.ExitUsageError
		}
		category = p.Category
	}
	name, value, err := itemArgs(f, c.preset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	return withController(ctx, true, func(ctl *app.Controller) subcommands.ExitStatus {
		a, err := ctl.AddAsset(app.AssetInput{Name: name, Value: value, Category: category})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error adding asset: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Added asset %s %q (%s): %s\n", renderer.ShortID(a.ID), a.Name, a.Category.Label(), networth.FormatCurrency(a.Value))
		return subcommands.ExitSuccess
	})
}

// addLiabilityCmd holds the flags for the 'add-liability' subcommand.
type addLiabilityCmd struct {
	category string
	preset   string
}

func (*addLiabilityCmd) Name() string     { return "add-liability" }
func (*addLiabilityCmd) Synopsis() string { return "add a liability" }
func (*addLiabilityCmd) Usage() string {
	return `nw add-liability [-c <category>] <name> <value>
nw add-liability -preset <preset> <value>

  Adds a liability. The value may be written the way it is printed, e.g. "$1,200".
  Categories: mortgage, student-loans, credit-cards, auto, other.
  Presets: "Mortgage", "Student Loans", "Credit Card", "Auto Loan",
  "Personal Loan", "Medical Debt".
`
}

func (c *addLiabilityCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "c", string(networth.OtherLiability), "Category of the liability.")
	f.StringVar(&c.preset, "preset", "", "Use the name and category of a preset.")
}

func (c *addLiabilityCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	category, err := networth.ParseLiabilityCategory(c.category)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.preset != "" {
		p, ok := networth.FindPreset(networth.LiabilityPresets, c.preset)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown liability preset %q\n", c.preset)
			return subcommands.ExitUsageError
		}
		category = p.Category
	}
	name, value, err := itemArgs(f, c.preset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	return withController(ctx, true, func(ctl *app.Controller) subcommands.ExitStatus {
		l, err := ctl.AddLiability(app.LiabilityInput{Name: name, Value: value, Category: category})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error adding liability: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Added liability %s %q (%s): %s\n", renderer.ShortID(l.ID), l.Name, l.Category.Label(), networth.FormatCurrency(l.Value))
		return subcommands.ExitSuccess
	})
}

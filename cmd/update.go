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

// updateCmd holds the flags for the 'update' subcommand.
type updateCmd struct {
	name     string
	value    string
	category string
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "change the name, value or category of an item" }
func (*updateCmd) Usage() string {
	return `nw update [-name <name>] [-value <value>] [-c <category>] <id>

  Changes an asset or a liability. Only the given flags are changed.
  Use 'nw list' to find the ids.
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "New name.")
	f.StringVar(&c.value, "value", "", "New value.")
	f.StringVar(&c.category, "c", "", "New category.")
}

func (c *updateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one item id")
		return subcommands.ExitUsageError
	}
	set := map[string]bool{}
	f.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	var name *string
	if set["name"] {
		name = &c.name
	}
	var value *float64
	if set["value"] {
		v := networth.SanitizeNumber(c.value)
		value = &v
	}

	return withController(ctx, true, func(ctl *app.Controller) subcommands.ExitStatus {
		id, kind, err := resolveItem(ctl.Data(), f.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}

		switch kind {
		case assetItem:
			u := app.AssetUpdate{Name: name, Value: value}
			if set["c"] {
				cat, err := networth.ParseAssetCategory(c.category)
				if err != nil {
					fmt.Fprintf(os.Stderr, "Error: %v\n", err)
					return subcommands.ExitUsageError
				}
				u.Category = &cat
			}
			a, err := ctl.UpdateAsset(id, u)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error updating asset: %v\n", err)
				return subcommands.ExitFailure
			}
			fmt.Printf("Updated asset %s %q (%s): %s\n", renderer.ShortID(a.ID), a.Name, a.Category.Label(), networth.FormatCurrency(a.Value))
		case liabilityItem:
			u := app.LiabilityUpdate{Name: name, Value: value}
			if set["c"] {
				cat, err := networth.ParseLiabilityCategory(c.category)
				if err != nil {
					fmt.Fprintf(os.Stderr, "Error: %v\n", err)
					return subcommands.ExitUsageError
				}
				u.Category = &cat
			}
			l, err := ctl.UpdateLiability(id, u)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error updating liability: %v\n", err)
				return subcommands.ExitFailure
			}
			fmt.Printf("Updated liability %s %q (%s): %s\n", renderer.ShortID(l.ID), l.Name, l.Category.Label(), networth.FormatCurrency(l.Value))
		}
		return subcommands.ExitSuccess
	})
}

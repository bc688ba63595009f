package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/networth/app"
	"github.com/etnz/networth/renderer"
	"github.com/google/subcommands"
)

type removeCmd struct{}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove assets or liabilities" }
func (*removeCmd) Usage() string {
	return `nw remove <id>...

  Removes the assets and liabilities with the given ids.
`
}

func (c *removeCmd) SetFlags(f *flag.FlagSet) {}

func (c *removeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: expected at least one item id")
		return subcommands.ExitUsageError
	}
	return withController(ctx, true, func(ctl *app.Controller) subcommands.ExitStatus {
		for _, ref := range f.Args() {
			id, kind, err := resolveItem(ctl.Data(), ref)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return subcommands.ExitFailure
			}
			if kind == assetItem {
				err = ctl.RemoveAsset(id)
			} else {
				err = ctl.RemoveLiability(id)
			}
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error removing %s: %v\n", ref, err)
				return subcommands.ExitFailure
			}
			fmt.Printf("Removed %s\n", renderer.ShortID(id))
		}
		return subcommands.ExitSuccess
	})
}

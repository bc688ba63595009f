package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/networth/app"
	"github.com/google/subcommands"
)

type resetCmd struct {
	yes bool
}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "delete every asset, liability, snapshot and the goal" }
func (*resetCmd) Usage() string {
	return `nw reset -yes

  Deletes all the stored data. The encryption setting is kept.
`
}

func (c *resetCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "yes", false, "Confirm the deletion.")
}

func (c *resetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.yes {
		fmt.Fprintln(os.Stderr, "Error: reset deletes all your data, confirm with -yes")
		return subcommands.ExitUsageError
	}
	return withController(ctx, false, func(ctl *app.Controller) subcommands.ExitStatus {
		if err := ctl.Reset(); err != nil {
			fmt.Fprintf(os.Stderr, "Error resetting data: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println("All data deleted")
		return subcommands.ExitSuccess
	})
}

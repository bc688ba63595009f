package cmd

import (
	"context"
	"flag"

	"github.com/etnz/networth/app"
	"github.com/etnz/networth/renderer"
	"github.com/google/subcommands"
)

type budgetCmd struct {
	output
}

func (*budgetCmd) Name() string     { return "budget" }
func (*budgetCmd) Synopsis() string { return "display budgeting recommendations" }
func (*budgetCmd) Usage() string {
	return `nw budget [-raw]

  Displays recommendations based on the debt to asset ratio.
`
}

func (c *budgetCmd) SetFlags(f *flag.FlagSet) { c.output.SetFlags(f) }

func (c *budgetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withController(ctx, false, func(ctl *app.Controller) subcommands.ExitStatus {
		c.print(renderer.Budget(ctl.Summary()))
		return subcommands.ExitSuccess
	})
}

package cmd

import (
	"context"
	"flag"

	"github.com/etnz/networth/app"
	"github.com/etnz/networth/renderer"
	"github.com/google/subcommands"
)

type milestonesCmd struct {
	output
}

func (*milestonesCmd) Name() string     { return "milestones" }
func (*milestonesCmd) Synopsis() string { return "display the net worth milestones" }
func (*milestonesCmd) Usage() string {
	return `nw milestones [-raw]

  Displays the milestone catalog, checking the ones already reached.
`
}

func (c *milestonesCmd) SetFlags(f *flag.FlagSet) { c.output.SetFlags(f) }

func (c *milestonesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withController(ctx, false, func(ctl *app.Controller) subcommands.ExitStatus {
		c.print(renderer.Milestones(ctl.Summary()))
		return subcommands.ExitSuccess
	})
}

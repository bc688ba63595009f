package cmd

import (
	"context"
	"flag"

	"github.com/etnz/networth/app"
	"github.com/etnz/networth/renderer"
	"github.com/google/subcommands"
)

type historyCmd struct {
	output
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the net worth history" }
func (*historyCmd) Usage() string {
	return `nw history [-raw]

  Displays every snapshot and the change since the first one.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) { c.output.SetFlags(f) }

func (c *historyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withController(ctx, false, func(ctl *app.Controller) subcommands.ExitStatus {
		c.print(renderer.History(ctl.Data().History))
		return subcommands.ExitSuccess
	})
}

package cmd

import (
	"context"
	"flag"

	"github.com/etnz/networth/app"
	"github.com/etnz/networth/renderer"
	"github.com/google/subcommands"
)

type listCmd struct {
	output
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list assets and liabilities" }
func (*listCmd) Usage() string {
	return `nw list [-raw]

  Lists every asset and liability with its id. Commands taking an id accept
  any unambiguous prefix of it, like the one displayed here.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) { c.output.SetFlags(f) }

func (c *listCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withController(ctx, false, func(ctl *app.Controller) subcommands.ExitStatus {
		c.print(renderer.Items(ctl.Data()))
		return subcommands.ExitSuccess
	})
}

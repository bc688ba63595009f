package cmd

import (
	"context"
	"flag"

	"github.com/etnz/networth/app"
	"github.com/etnz/networth/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	output
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the net worth, financial health and insights" }
func (*summaryCmd) Usage() string {
	return `nw summary [-raw]

  Displays the total assets, total liabilities and net worth, the financial
  health level, the insights on the current situation and the goal progress.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) { c.output.SetFlags(f) }

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withController(ctx, false, func(ctl *app.Controller) subcommands.ExitStatus {
		c.print(renderer.Summary(ctl.Summary()))
		return subcommands.ExitSuccess
	})
}

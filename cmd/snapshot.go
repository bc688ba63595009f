package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/networth"
	"github.com/etnz/networth/app"
	"github.com/google/subcommands"
)

type snapshotCmd struct{}

func (*snapshotCmd) Name() string     { return "snapshot" }
func (*snapshotCmd) Synopsis() string { return "record today's net worth in the history" }
func (*snapshotCmd) Usage() string {
	return `nw snapshot

  Records today's totals in the history. A snapshot taken the same day
  replaces the previous one.
`
}

func (c *snapshotCmd) SetFlags(f *flag.FlagSet) {}

func (c *snapshotCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withController(ctx, true, func(ctl *app.Controller) subcommands.ExitStatus {
		s := ctl.SaveSnapshot()
		fmt.Printf("Snapshot saved for %s: net worth %s\n", s.Date, networth.FormatCurrency(s.NetWorth))
		return subcommands.ExitSuccess
	})
}

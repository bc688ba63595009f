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

// goalCmd holds the flags for the 'goal' subcommand.
type goalCmd struct {
	output
	target   string
	deadline string
	clear    bool
}

func (*goalCmd) Name() string     { return "goal" }
func (*goalCmd) Synopsis() string { return "set, clear or display the net worth goal" }
func (*goalCmd) Usage() string {
	return `nw goal [-raw]
nw goal -target <amount> -deadline <date>
nw goal -clear

  Without flags, displays the goal progress and the monthly savings needed to
  reach it in time.
`
}

func (c *goalCmd) SetFlags(f *flag.FlagSet) {
	c.output.SetFlags(f)
	f.StringVar(&c.target, "target", "", "Net worth to reach.")
	f.StringVar(&c.deadline, "deadline", "", "Date to reach the target by, e.g. 2030-01-01.")
	f.BoolVar(&c.clear, "clear", false, "Remove the goal.")
}

func (c *goalCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	setting := c.target != "" || c.deadline != ""
	if setting && c.clear {
		fmt.Fprintln(os.Stderr, "Error: -clear cannot be combined with -target or -deadline")
		return subcommands.ExitUsageError
	}

	var deadline networth.Date
	if setting {
		if c.target == "" || c.deadline == "" {
			fmt.Fprintln(os.Stderr, "Error: both -target and -deadline are required")
			return subcommands.ExitUsageError
		}
		var err error
		if deadline, err = networth.ParseDate(c.deadline); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing deadline: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	return withController(ctx, setting || c.clear, func(ctl *app.Controller) subcommands.ExitStatus {
		switch {
		case c.clear:
			ctl.ClearGoal()
			fmt.Println("Goal cleared")
			return subcommands.ExitSuccess
		case setting:
			if _, err := ctl.SetGoal(networth.SanitizeNumber(c.target), deadline); err != nil {
				fmt.Fprintf(os.Stderr, "Error setting goal: %v\n", err)
				return subcommands.ExitFailure
			}
		}
		md := renderer.Goal(ctl.Summary())
		if md == "" {
			fmt.Println("No goal set.")
			return subcommands.ExitSuccess
		}
		c.print(md)
		return subcommands.ExitSuccess
	})
}

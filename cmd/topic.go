package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/networth/docs"
	"github.com/google/subcommands"
)

type topicCmd struct {
	output
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "learn about net worth and personal finance" }
func (*topicCmd) Usage() string {
	return `nw topic [-raw] [<topic>...]

  Shows the given topics, or the list of topics. Use '*' to show them all.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) { c.output.SetFlags(f) }

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}

	doc, err := docs.GetTopics(topics...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading doc: %v\n", err)
		return subcommands.ExitFailure
	}
	c.print(strings.TrimSpace(doc) + "\n")

	return subcommands.ExitSuccess
}

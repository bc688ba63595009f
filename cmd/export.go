package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/networth/app"
	"github.com/etnz/networth/export"
	"github.com/etnz/networth/renderer"
	"github.com/google/subcommands"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	out string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the data as csv or a markdown report" }
func (*exportCmd) Usage() string {
	return `nw export [-o <file>] csv|md

  csv: every asset, liability and snapshot, one per row.
  md:  a printable report of the net worth, assets and liabilities.

  Writes to stdout unless -o is given.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.out, "o", "", "Output file. Use '"+export.CSVFileName+"' to match the usual csv name.")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 || (f.Arg(0) != "csv" && f.Arg(0) != "md") {
		fmt.Fprintln(os.Stderr, "Error: expected the export format, csv or md")
		return subcommands.ExitUsageError
	}
	format := f.Arg(0)

	return withController(ctx, false, func(ctl *app.Controller) subcommands.ExitStatus {
		if c.out == "" {
			if err := writeExport(os.Stdout, format, ctl); err != nil {
				fmt.Fprintf(os.Stderr, "Error exporting %s: %v\n", format, err)
				return subcommands.ExitFailure
			}
			return subcommands.ExitSuccess
		}

		file, err := os.Create(c.out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.out, err)
			return subcommands.ExitFailure
		}
		if err := writeExport(file, format, ctl); err != nil {
			file.Close()
			fmt.Fprintf(os.Stderr, "Error exporting %s: %v\n", format, err)
			return subcommands.ExitFailure
		}
		if err := file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.out, err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(os.Stderr, "Exported to %s\n", c.out)
		return subcommands.ExitSuccess
	})
}

// writeExport writes the data of ctl to w in the given format, csv or md.
func writeExport(w io.Writer, format string, ctl *app.Controller) error {
	data := ctl.Data()
	switch format {
	case "csv":
		return export.WriteCSV(w, data.Assets, data.Liabilities, data.History)
	case "md":
		_, err := io.WriteString(w, renderer.Report(ctl.Summary(), data))
		return err
	}
	return fmt.Errorf("unknown export format %q", format)
}

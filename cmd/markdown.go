package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
)

// output holds the flags shared by the commands printing a markdown document.
type output struct {
	raw bool
}

func (o *output) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&o.raw, "raw", false, "Print the markdown source instead of rendering it.")
}

// print writes md to stdout, rendered for the terminal unless -raw is set.
func (o *output) print(md string) {
	if o.raw {
		fmt.Print(md)
		return
	}
	printMarkdown(md)
}

// printMarkdown renders md for the terminal. It falls back to the markdown
// source when it cannot be rendered.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering markdown: %v\n", err)
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

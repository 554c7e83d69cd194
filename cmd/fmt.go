package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/vbraga/teller"
	"github.com/vbraga/teller/renderer"
)

type fmtCmd struct {
	list bool
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "rewrite the record file in canonical form"
}
func (*fmtCmd) Usage() string {
	return `tlr fmt [-list]

  Reads the record file tolerantly (corrupt fields fall back to their
  defaults, missing columns are backfilled), then writes it back in the
  canonical column order with normalized identifiers and statement lines.
  -list additionally prints the resulting records.
`
}

func (p *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.list, "list", false, "Print the records after formatting.")
}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := teller.NewFileStore(*recordsFile)
	records, err := store.LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load records: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := store.SaveAll(records); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Formatted %d records in %q.\n", len(records), *recordsFile)

	if p.list {
		printMarkdown(renderer.Records(records))
	}
	return subcommands.ExitSuccess
}

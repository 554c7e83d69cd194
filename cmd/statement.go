package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/vbraga/teller/renderer"
)

type statementCmd struct {
	cpf      string
	password string
	plain    bool
}

func (*statementCmd) Name() string     { return "statement" }
func (*statementCmd) Synopsis() string { return "show the account statement and balance" }
func (*statementCmd) Usage() string {
	return `tlr statement -cpf <identifier> -password <password> [-plain]

  Shows the transaction log of the authenticated account followed by the
  current balance. -plain prints the canonical text form instead of the
  rendered one.
`
}

func (p *statementCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.cpf, "cpf", "", "Identifier of the account holder.")
	f.StringVar(&p.password, "password", "", "Password.")
	f.BoolVar(&p.plain, "plain", false, "Print the canonical plain-text statement.")
}

func (p *statementCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := login(p.cpf, p.password)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if p.plain {
		text, err := s.Statement()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Println(text)
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.Statement(s.Account()))
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type openAccountCmd struct {
	cpf string
}

func (*openAccountCmd) Name() string     { return "open-account" }
func (*openAccountCmd) Synopsis() string { return "open a new account for an existing user" }
func (*openAccountCmd) Usage() string {
	return `tlr open-account -cpf <identifier>

  Opens a new account for the user with this identifier: branch 0001 and
  the next sequential account number, starting from a zero balance.
`
}

func (p *openAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.cpf, "cpf", "", "Identifier of the account holder.")
}

func (p *openAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.cpf == "" {
		fmt.Fprintln(os.Stderr, "Error: -cpf is required.")
		return subcommands.ExitUsageError
	}

	s, err := openSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	branch, number, err := s.OpenAccount(p.cpf)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Account opened: branch %s account %s.\n", branch, number)
	return subcommands.ExitSuccess
}

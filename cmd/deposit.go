package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/vbraga/teller"
)

type depositCmd struct {
	cpf      string
	password string
	amount   string
}

func (*depositCmd) Name() string     { return "deposit" }
func (*depositCmd) Synopsis() string { return "deposit an amount into the authenticated account" }
func (*depositCmd) Usage() string {
	return `tlr deposit -cpf <identifier> -password <password> -amount <amount>

  Deposits a positive amount. The amount accepts both the comma and the
  period as decimal separator, e.g. -amount 100,50.
`
}

func (p *depositCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.cpf, "cpf", "", "Identifier of the account holder.")
	f.StringVar(&p.password, "password", "", "Password.")
	f.StringVar(&p.amount, "amount", "", "Amount to deposit.")
}

func (p *depositCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := teller.ParseAmount(p.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	s, err := login(p.cpf, p.password)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := s.Deposit(amount); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Deposited %s. Balance is now %s.\n", amount, s.Account().Balance)
	return subcommands.ExitSuccess
}

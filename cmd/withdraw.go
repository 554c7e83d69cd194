package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/vbraga/teller"
)

type withdrawCmd struct {
	cpf      string
	password string
	amount   string
}

func (*withdrawCmd) Name() string     { return "withdraw" }
func (*withdrawCmd) Synopsis() string { return "withdraw an amount from the authenticated account" }
func (*withdrawCmd) Usage() string {
	return `tlr withdraw -cpf <identifier> -password <password> -amount <amount>

  Withdraws a positive amount, within the balance, the per-withdrawal
  limit, and the withdrawal counter.
`
}

func (p *withdrawCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.cpf, "cpf", "", "Identifier of the account holder.")
	f.StringVar(&p.password, "password", "", "Password.")
	f.StringVar(&p.amount, "amount", "", "Amount to withdraw.")
}

func (p *withdrawCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if err := s.Withdraw(amount); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Withdrew %s. Balance is now %s.\n", amount, s.Account().Balance)
	return subcommands.ExitSuccess
}

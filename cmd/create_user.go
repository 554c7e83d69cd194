package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/vbraga/teller"
)

type createUserCmd struct {
	name      string
	birthdate string
	cpf       string
	address   string
	password  string
}

func (*createUserCmd) Name() string     { return "create-user" }
func (*createUserCmd) Synopsis() string { return "register a new user identity" }
func (*createUserCmd) Usage() string {
	return `tlr create-user -name <name> -cpf <identifier> -password <password> [-birthdate <date>] [-address <address>]

  Registers a new user. The identifier is normalized to 11 digits; a user
  with the same identifier must not already exist. The new identity has no
  account number yet: open one with "tlr open-account".
`
}

func (p *createUserCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "name", "", "Full name.")
	f.StringVar(&p.birthdate, "birthdate", "", "Birthdate (DD/MM/YYYY).")
	f.StringVar(&p.cpf, "cpf", "", "Identifier, with or without mask.")
	f.StringVar(&p.address, "address", "", "Address (street, number - district - city/state).")
	f.StringVar(&p.password, "password", "", "Password.")
}

func (p *createUserCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.name == "" || p.cpf == "" || p.password == "" {
		fmt.Fprintln(os.Stderr, "Error: -name, -cpf and -password are required.")
		return subcommands.ExitUsageError
	}

	s, err := openSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	account, err := s.CreateUser(teller.UserProfile{
		Name:       p.name,
		Birthdate:  p.birthdate,
		Identifier: p.cpf,
		Address:    p.address,
		Password:   p.password,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("User %s registered with identifier %s.\n", account.Owner, account.Identifier)
	return subcommands.ExitSuccess
}

package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/vbraga/teller"
	"github.com/vbraga/teller/renderer"
)

type menuCmd struct{}

func (*menuCmd) Name() string     { return "menu" }
func (*menuCmd) Synopsis() string { return "interactive menu-driven session" }
func (*menuCmd) Usage() string {
	return `tlr menu

  Runs the interactive surface: login, create user, open account, and
  after a login: deposit, withdraw, statement, logout. Each mutation is
  persisted before the next prompt.
`
}

func (c *menuCmd) SetFlags(f *flag.FlagSet) {}

func (c *menuCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := runMenu(s, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

const topMenu = `
[1] Login
[2] Create user
[3] Open account
[0] Exit

=> `

const accountMenu = `
[d] Deposit
[w] Withdraw
[s] Statement
[q] Logout

=> `

// runMenu drives the interactive loop over any reader/writer pair, so the
// whole surface is testable without a terminal.
func runMenu(s *teller.Session, r io.Reader, w io.Writer) error {
	in := bufio.NewScanner(r)
	prompt := func(label string) (string, bool) {
		fmt.Fprint(w, label)
		if !in.Scan() {
			return "", false
		}
		return strings.TrimSpace(in.Text()), true
	}

	for {
		choice, ok := prompt(topMenu)
		if !ok {
			return in.Err()
		}
		switch choice {
		case "1":
			cpf, ok := prompt("Identifier: ")
			if !ok {
				return in.Err()
			}
			password, ok := prompt("Password: ")
			if !ok {
				return in.Err()
			}
			account, err := s.Login(cpf, password)
			if err != nil {
				fmt.Fprintf(w, "%v\n", err)
				continue
			}
			number := account.AccountNumber
			if number == "" {
				number = "(no account)"
			}
			fmt.Fprintf(w, "Welcome, %s! Branch %s account %s\n", account.Owner, account.Branch, number)
			if err := runAccountMenu(s, in, w); err != nil {
				return err
			}

		case "2":
			var profile teller.UserProfile
			fields := []struct {
				label string
				dst   *string
			}{
				{"Full name: ", &profile.Name},
				{"Birthdate (DD/MM/YYYY): ", &profile.Birthdate},
				{"Identifier: ", &profile.Identifier},
				{"Address: ", &profile.Address},
				{"Password: ", &profile.Password},
			}
			for _, field := range fields {
				v, ok := prompt(field.label)
				if !ok {
					return in.Err()
				}
				*field.dst = v
			}
			if _, err := s.CreateUser(profile); err != nil {
				fmt.Fprintf(w, "%v\n", err)
				continue
			}
			fmt.Fprintln(w, "User created.")

		case "3":
			cpf, ok := prompt("Identifier of the holder: ")
			if !ok {
				return in.Err()
			}
			branch, number, err := s.OpenAccount(cpf)
			if err != nil {
				fmt.Fprintf(w, "%v\n", err)
				continue
			}
			fmt.Fprintf(w, "Account opened: branch %s account %s\n", branch, number)

		case "0":
			fmt.Fprintln(w, "Bye.")
			return nil

		default:
			fmt.Fprintln(w, "Invalid option.")
		}
	}
}

// runAccountMenu serves one logged-in user until logout.
func runAccountMenu(s *teller.Session, in *bufio.Scanner, w io.Writer) error {
	defer s.Logout()

	prompt := func(label string) (string, bool) {
		fmt.Fprint(w, label)
		if !in.Scan() {
			return "", false
		}
		return strings.TrimSpace(in.Text()), true
	}
	amountPrompt := func(label string) (teller.Money, bool) {
		raw, ok := prompt(label)
		if !ok {
			return teller.Money{}, false
		}
		amount, err := teller.ParseAmount(raw)
		if err != nil {
			fmt.Fprintf(w, "%v\n", err)
			return teller.Money{}, false
		}
		return amount, true
	}

	for {
		choice, ok := prompt(accountMenu)
		if !ok {
			return in.Err()
		}
		switch choice {
		case "d":
			amount, ok := amountPrompt("Amount to deposit: ")
			if !ok {
				continue
			}
			if err := s.Deposit(amount); err != nil {
				fmt.Fprintf(w, "%v\n", err)
				continue
			}
			fmt.Fprintf(w, "Deposited %s.\n", amount)

		case "w":
			amount, ok := amountPrompt("Amount to withdraw: ")
			if !ok {
				continue
			}
			if err := s.Withdraw(amount); err != nil {
				fmt.Fprintf(w, "%v\n", err)
				continue
			}
			fmt.Fprintf(w, "Withdrew %s.\n", amount)

		case "s":
			fmt.Fprintln(w, renderer.Statement(s.Account()))

		case "q":
			fmt.Fprintln(w, "Logged out.")
			return nil

		default:
			fmt.Fprintln(w, "Invalid option.")
		}
	}
}

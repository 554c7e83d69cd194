// Package cmd implements the CLI application to manage the account book.
package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/vbraga/teller"
)

// Commands lists all subcommands.
// A main package registers them on a commander and Execute()s the
// user-selected one.
var Commands = []subcommands.Command{
	&createUserCmd{},
	&openAccountCmd{},
	&depositCmd{},
	&withdrawCmd{},
	&statementCmd{},
	&menuCmd{},
	&fmtCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var recordsFile = flag.String("records", "accounts.csv", "Path to the record file holding all accounts")

// openSession loads the whole record collection from the records file.
func openSession() (*teller.Session, error) {
	return teller.Open(teller.NewFileStore(*recordsFile))
}

// login opens a session and authenticates it in one step.
func login(identifier, password string) (*teller.Session, error) {
	s, err := openSession()
	if err != nil {
		return nil, err
	}
	if _, err := s.Login(identifier, password); err != nil {
		return nil, err
	}
	return s, nil
}

// printMarkdown renders markdown to the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		// Fall back to the raw markdown.
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// Completion describes the command line for shell completion.
func Completion() *complete.Command {
	credentials := map[string]complete.Predictor{
		"cpf":      predict.Something,
		"password": predict.Something,
	}
	moving := map[string]complete.Predictor{
		"cpf":      predict.Something,
		"password": predict.Something,
		"amount":   predict.Something,
	}
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"records": predict.Files("*.csv"),
		},
		Sub: map[string]*complete.Command{
			"create-user": {Flags: map[string]complete.Predictor{
				"name":      predict.Something,
				"birthdate": predict.Something,
				"cpf":       predict.Something,
				"address":   predict.Something,
				"password":  predict.Something,
			}},
			"open-account": {Flags: map[string]complete.Predictor{"cpf": predict.Something}},
			"deposit":      {Flags: moving},
			"withdraw":     {Flags: moving},
			"statement":    {Flags: credentials},
			"menu":         {},
			"fmt":          {},
			"topic":        {Args: predict.Set{"readme", "getting-started", "limits", "records"}},
		},
	}
}

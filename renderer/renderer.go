// Package renderer turns teller domain objects into markdown, leaving the
// terminal styling to the caller.
package renderer

import (
	"fmt"
	"strings"

	"github.com/vbraga/teller"
)

// Entry renders a single statement entry to a human sentence.
func Entry(e teller.Entry) string {
	switch e.Kind {
	case teller.KindDeposit:
		return fmt.Sprintf("Deposited %s", e.Amount)
	case teller.KindWithdrawal:
		return fmt.Sprintf("Withdrew %s", e.Amount)
	default:
		return e.Text
	}
}

// Statement renders an account statement to markdown: a title identifying
// the account, the entry table, and the current balance.
func Statement(a *teller.Account) string {
	var b strings.Builder

	number := a.AccountNumber
	if number == "" {
		number = "(no account)"
	}
	fmt.Fprintf(&b, "# Statement\n\n")
	fmt.Fprintf(&b, "%s / branch %s account %s\n\n", a.Owner, a.Branch, number)

	if len(a.Statement) == 0 {
		b.WriteString("No transactions yet.\n")
	} else {
		b.WriteString("| # | Operation | Amount |\n")
		b.WriteString("|--:|-----------|-------:|\n")
		for i, e := range a.Statement {
			switch e.Kind {
			case teller.KindDeposit:
				fmt.Fprintf(&b, "| %d | Deposit | %s |\n", i+1, e.Amount)
			case teller.KindWithdrawal:
				fmt.Fprintf(&b, "| %d | Withdrawal | %s |\n", i+1, e.Amount)
			default:
				fmt.Fprintf(&b, "| %d | Note | %s |\n", i+1, e.Text)
			}
		}
	}

	fmt.Fprintf(&b, "\n**Balance: %s**\n", a.Balance)
	return b.String()
}

// Records renders the whole record collection as a markdown table, one row
// per record, in storage order.
func Records(records []teller.Account) string {
	var b strings.Builder
	b.WriteString("| Identifier | Owner | Branch | Account | Balance | Withdrawals |\n")
	b.WriteString("|------------|-------|--------|---------|--------:|------------:|\n")
	for i := range records {
		a := &records[i]
		number := a.AccountNumber
		if number == "" {
			number = "-"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %d/%d |\n",
			a.Identifier, a.Owner, a.Branch, number, a.Balance, a.WithdrawalCount, a.WithdrawalCountLimit)
	}
	return b.String()
}

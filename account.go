package teller

import (
	"fmt"
	"strings"
)

// Defaults applied to every newly created record.
const (
	// Branch is the fixed organizational prefix attached to every account.
	Branch = "0001"
	// DefaultWithdrawalCountLimit is the number of withdrawals allowed per
	// period. The counter reset itself (e.g. a monthly job) is not handled
	// here.
	DefaultWithdrawalCountLimit = 3
)

// DefaultPerWithdrawalLimit is the default ceiling on a single withdrawal.
func DefaultPerWithdrawalLimit() Money { return BRL(500) }

// EntryKind identifies the kind of a statement entry.
type EntryKind string

const (
	KindDeposit    EntryKind = "deposit"
	KindWithdrawal EntryKind = "withdrawal"
	// KindNote preserves a statement line that does not parse as a deposit
	// or a withdrawal. Its text is carried verbatim.
	KindNote EntryKind = "note"
)

// Entry is one statement line in its canonical structured form. Rendering
// to text happens on demand, so formatting stays decoupled from the
// transaction history itself.
type Entry struct {
	Kind   EntryKind
	Amount Money  // zero for notes
	Text   string // verbatim line, notes only
}

// String renders the entry in the canonical statement line format.
func (e Entry) String() string {
	switch e.Kind {
	case KindDeposit:
		return fmt.Sprintf("Deposit: %s", e.Amount.Fixed())
	case KindWithdrawal:
		return fmt.Sprintf("Withdrawal: %s", e.Amount.Fixed())
	default:
		return e.Text
	}
}

// ParseEntry decodes a single statement line back into its structured form.
// Unknown lines are kept verbatim as notes, never dropped.
func ParseEntry(line string) Entry {
	if rest, ok := strings.CutPrefix(line, "Deposit: "); ok {
		if amount, err := ParseAmount(rest); err == nil {
			return Entry{Kind: KindDeposit, Amount: amount}
		}
	}
	if rest, ok := strings.CutPrefix(line, "Withdrawal: "); ok {
		if amount, err := ParseAmount(rest); err == nil {
			return Entry{Kind: KindWithdrawal, Amount: amount}
		}
	}
	return Entry{Kind: KindNote, Text: line}
}

// Account is one record of the book: a balance, its limits, and its
// transaction log. An owner may hold several accounts, all sharing the same
// identifier; the identity row created first keeps an empty account number.
type Account struct {
	Owner                string  // display name
	Identifier           string  // normalized 11-digit identifier (CPF)
	Password             string  // plain string, surrounding whitespace trimmed
	Balance              Money   // only increased by Deposit, only decreased by Withdraw
	PerWithdrawalLimit   Money   // ceiling on any single withdrawal
	WithdrawalCount      int     // withdrawals made in the current period
	WithdrawalCountLimit int     // ceiling on WithdrawalCount
	Statement            []Entry // append-only within a period
	Branch               string
	AccountNumber        string // sequential, empty until an account is opened
}

// NewAccount returns a fresh identity record with the default limits and an
// empty account number.
func NewAccount(owner, identifier, password string) Account {
	return Account{
		Owner:                owner,
		Identifier:           NormalizeIdentifier(identifier),
		Password:             strings.TrimSpace(password),
		Balance:              BRL(0),
		PerWithdrawalLimit:   DefaultPerWithdrawalLimit(),
		WithdrawalCountLimit: DefaultWithdrawalCountLimit,
		Branch:               Branch,
	}
}

// StatementText renders the account statement: the log verbatim, one entry
// per line (or a placeholder when empty), followed by the current balance
// with two decimal places.
func (a *Account) StatementText() string {
	var b strings.Builder
	if len(a.Statement) == 0 {
		b.WriteString("No transactions yet.")
	} else {
		for i, e := range a.Statement {
			if i > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(e.String())
		}
	}
	fmt.Fprintf(&b, "\n\nBalance: %s", a.Balance.Fixed())
	return b.String()
}

package teller

import (
	"fmt"
	"strconv"
	"strings"
)

// UserProfile is the information collected when registering a new user.
// Birthdate and address are collected for the registration form but are not
// part of the persisted record layout.
type UserProfile struct {
	Name       string
	Birthdate  string
	Identifier string
	Address    string
	Password   string
}

// Registry holds the full record collection and implements user and account
// creation. It never persists anything itself: the session owning it saves
// the collection after each successful mutation.
type Registry struct {
	records []Account
}

// NewRegistry creates a registry over an existing record collection.
func NewRegistry(records []Account) *Registry {
	return &Registry{records: records}
}

// Records exposes the underlying collection, in storage order.
func (r *Registry) Records() []Account { return r.records }

// Len returns the number of records.
func (r *Registry) Len() int { return len(r.records) }

// Account returns the record at position i.
func (r *Registry) Account(i int) *Account { return &r.records[i] }

// CreateUser registers a new identity. The identifier is normalized first;
// a record with the same identifier already present makes the registration
// fail with ErrDuplicateIdentity and the collection is left untouched.
//
// The new record has a zero balance, the default limits, an empty statement
// and no account number yet: it only asserts "this user exists".
func (r *Registry) CreateUser(profile UserProfile) (*Account, error) {
	identifier := NormalizeIdentifier(profile.Identifier)
	for i := range r.records {
		if r.records[i].Identifier == identifier {
			return nil, fmt.Errorf("create user %s: %w", identifier, ErrDuplicateIdentity)
		}
	}
	r.records = append(r.records, NewAccount(strings.TrimSpace(profile.Name), identifier, profile.Password))
	return &r.records[len(r.records)-1], nil
}

// OpenAccount opens a new account for an existing identity: it clones the
// identity's most recent record, assigns the next sequential account number
// and the fixed branch, and resets balance, statement and withdrawal count.
// It returns the assigned branch and account number for display.
func (r *Registry) OpenAccount(identifierRaw string) (branch, number string, err error) {
	identifier := NormalizeIdentifier(identifierRaw)
	last := -1
	for i := range r.records {
		if r.records[i].Identifier == identifier {
			last = i
		}
	}
	if last < 0 {
		return "", "", fmt.Errorf("open account for %s: %w", identifier, ErrUnknownIdentity)
	}

	account := r.records[last] // copy; Statement is reset below, so no aliasing
	account.AccountNumber = r.nextAccountNumber()
	account.Branch = Branch
	account.Balance = BRL(0)
	account.Statement = nil
	account.WithdrawalCount = 0

	r.records = append(r.records, account)
	return account.Branch, account.AccountNumber, nil
}

// nextAccountNumber scans all assigned account numbers and returns max+1,
// or "1" when none parse as an integer.
func (r *Registry) nextAccountNumber() string {
	highest := 0
	found := false
	for i := range r.records {
		if r.records[i].AccountNumber == "" {
			continue
		}
		n, err := strconv.Atoi(r.records[i].AccountNumber)
		if err != nil {
			continue
		}
		if !found || n > highest {
			highest, found = n, true
		}
	}
	if !found {
		return "1"
	}
	return strconv.Itoa(highest + 1)
}

package teller

import (
	"errors"
	"fmt"
)

var (
	// Transaction errors. All of them are recoverable: the caller may retry
	// with a corrected amount.
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrOverWithdrawalLimit  = errors.New("amount over the per-withdrawal limit")
	ErrWithdrawalsExhausted = errors.New("maximum number of withdrawals reached")

	// Registry errors.
	ErrDuplicateIdentity = errors.New("a user with this identifier already exists")
	ErrUnknownIdentity   = errors.New("no user with this identifier")

	// Resolver error.
	ErrBadCredentials = errors.New("invalid identifier or password")

	// ErrNotLoggedIn is returned by session operations that require a prior
	// successful Login.
	ErrNotLoggedIn = errors.New("not logged in")
)

// RecordCorrupt reports a field of a persisted record that could not be
// decoded. The caller may reject the whole file or tolerate the failure and
// default-fill the field.
type RecordCorrupt struct {
	Row   int    // 1-based data row in the record file
	Field string // column name
	Value string // raw value that failed to decode
	Err   error
}

func (e *RecordCorrupt) Error() string {
	return fmt.Sprintf("record %d: corrupt field %q: cannot decode %q: %v", e.Row, e.Field, e.Value, e.Err)
}

func (e *RecordCorrupt) Unwrap() error { return e.Err }

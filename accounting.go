package teller

import "fmt"

// This file is the transaction engine: the only two mutation paths for an
// account balance. Every guard runs before any mutation, so a failed
// operation leaves the account exactly as it was.

// Deposit adds a positive amount to the account balance and appends one
// deposit entry to the statement.
func (a *Account) Deposit(amount Money) error {
	if !amount.IsPositive() {
		return fmt.Errorf("deposit of %s: %w", amount.Fixed(), ErrInvalidAmount)
	}
	a.Balance = a.Balance.Add(amount)
	a.Statement = append(a.Statement, Entry{Kind: KindDeposit, Amount: amount})
	return nil
}

// Withdraw subtracts a positive amount from the account balance, increments
// the withdrawal counter, and appends one withdrawal entry to the statement.
//
// The guards are checked in a fixed order and the first failing one wins:
// invalid amount, then insufficient funds, then the per-withdrawal limit,
// then the withdrawal-count limit.
func (a *Account) Withdraw(amount Money) error {
	if !amount.IsPositive() {
		return fmt.Errorf("withdrawal of %s: %w", amount.Fixed(), ErrInvalidAmount)
	}
	if amount.GreaterThan(a.Balance) {
		return fmt.Errorf("withdrawal of %s with balance %s: %w", amount.Fixed(), a.Balance.Fixed(), ErrInsufficientFunds)
	}
	if amount.GreaterThan(a.PerWithdrawalLimit) {
		return fmt.Errorf("withdrawal of %s: %w (%s)", amount.Fixed(), ErrOverWithdrawalLimit, a.PerWithdrawalLimit.Fixed())
	}
	if a.WithdrawalCount >= a.WithdrawalCountLimit {
		return fmt.Errorf("withdrawal of %s: %w (%d)", amount.Fixed(), ErrWithdrawalsExhausted, a.WithdrawalCountLimit)
	}
	a.Balance = a.Balance.Sub(amount)
	a.WithdrawalCount++
	a.Statement = append(a.Statement, Entry{Kind: KindWithdrawal, Amount: amount})
	return nil
}

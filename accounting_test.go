package teller

import (
	"errors"
	"testing"
)

// testAccount returns an opened account in a known state.
func testAccount(balance float64, withdrawals int) Account {
	a := NewAccount("Ana Souza", "12345678901", "secret")
	a.AccountNumber = "1"
	a.Balance = BRL(balance)
	a.WithdrawalCount = withdrawals
	return a
}

func TestAccount_Deposit(t *testing.T) {
	testCases := []struct {
		name        string
		amount      Money
		wantErr     error
		wantBalance Money
		wantEntries int
	}{
		{
			name:        "positive amount increases balance",
			amount:      BRL(50),
			wantBalance: BRL(150),
			wantEntries: 1,
		},
		{
			name:        "fractional amount",
			amount:      BRL(0.01),
			wantBalance: BRL(100.01),
			wantEntries: 1,
		},
		{
			name:        "zero amount is invalid",
			amount:      BRL(0),
			wantErr:     ErrInvalidAmount,
			wantBalance: BRL(100),
		},
		{
			name:        "negative amount is invalid",
			amount:      BRL(-10),
			wantErr:     ErrInvalidAmount,
			wantBalance: BRL(100),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := testAccount(100, 0)
			err := a.Deposit(tc.amount)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Deposit(%s) error = %v, want %v", tc.amount.Fixed(), err, tc.wantErr)
			}
			if !a.Balance.Equal(tc.wantBalance) {
				t.Errorf("balance = %s, want %s", a.Balance.Fixed(), tc.wantBalance.Fixed())
			}
			if len(a.Statement) != tc.wantEntries {
				t.Errorf("statement has %d entries, want %d", len(a.Statement), tc.wantEntries)
			}
		})
	}
}

func TestAccount_Withdraw(t *testing.T) {
	testCases := []struct {
		name        string
		balance     float64
		withdrawals int
		amount      Money
		wantErr     error
		wantBalance Money
		wantCount   int
	}{
		{
			name:        "valid withdrawal",
			balance:     100,
			amount:      BRL(50),
			wantBalance: BRL(50),
			wantCount:   1,
		},
		{
			name:        "whole balance",
			balance:     100,
			amount:      BRL(100),
			wantBalance: BRL(0),
			wantCount:   1,
		},
		{
			name:        "zero amount is invalid",
			balance:     100,
			amount:      BRL(0),
			wantErr:     ErrInvalidAmount,
			wantBalance: BRL(100),
		},
		{
			name:        "negative amount is invalid",
			balance:     100,
			amount:      BRL(-5),
			wantErr:     ErrInvalidAmount,
			wantBalance: BRL(100),
		},
		{
			name:        "over balance",
			balance:     50,
			amount:      BRL(100),
			wantErr:     ErrInsufficientFunds,
			wantBalance: BRL(50),
		},
		{
			name:        "over the per-withdrawal limit",
			balance:     1000,
			amount:      BRL(600),
			wantErr:     ErrOverWithdrawalLimit,
			wantBalance: BRL(1000),
		},
		{
			name:        "withdrawals exhausted",
			balance:     100,
			withdrawals: 3,
			amount:      BRL(10),
			wantErr:     ErrWithdrawalsExhausted,
			wantBalance: BRL(100),
			wantCount:   3,
		},
		{
			// Guard order: the amount guard wins even when the amount also
			// breaks the per-withdrawal limit.
			name:        "negative and over limit reports invalid amount",
			balance:     1000,
			amount:      BRL(-600),
			wantErr:     ErrInvalidAmount,
			wantBalance: BRL(1000),
		},
		{
			// Guard order: insufficient funds is checked before the
			// per-withdrawal limit.
			name:        "over balance and over limit reports insufficient funds",
			balance:     100,
			amount:      BRL(600),
			wantErr:     ErrInsufficientFunds,
			wantBalance: BRL(100),
		},
		{
			// Guard order: the per-withdrawal limit is checked before the
			// withdrawal counter.
			name:        "over limit with exhausted counter reports limit",
			balance:     1000,
			withdrawals: 3,
			amount:      BRL(600),
			wantErr:     ErrOverWithdrawalLimit,
			wantBalance: BRL(1000),
			wantCount:   3,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := testAccount(tc.balance, tc.withdrawals)
			before := len(a.Statement)

			err := a.Withdraw(tc.amount)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Withdraw(%s) error = %v, want %v", tc.amount.Fixed(), err, tc.wantErr)
			}
			if !a.Balance.Equal(tc.wantBalance) {
				t.Errorf("balance = %s, want %s", a.Balance.Fixed(), tc.wantBalance.Fixed())
			}
			if a.WithdrawalCount != tc.wantCount {
				t.Errorf("withdrawal count = %d, want %d", a.WithdrawalCount, tc.wantCount)
			}
			wantEntries := before
			if tc.wantErr == nil {
				wantEntries++
			}
			if len(a.Statement) != wantEntries {
				t.Errorf("statement has %d entries, want %d", len(a.Statement), wantEntries)
			}
		})
	}
}

func TestAccount_WithdrawalsUpToLimit(t *testing.T) {
	a := testAccount(1000, 0)
	for i := 0; i < DefaultWithdrawalCountLimit; i++ {
		if err := a.Withdraw(BRL(10)); err != nil {
			t.Fatalf("withdrawal %d failed: %v", i+1, err)
		}
	}
	if err := a.Withdraw(BRL(10)); !errors.Is(err, ErrWithdrawalsExhausted) {
		t.Fatalf("withdrawal past the limit: error = %v, want %v", err, ErrWithdrawalsExhausted)
	}
	if a.WithdrawalCount != DefaultWithdrawalCountLimit {
		t.Errorf("withdrawal count = %d, want %d", a.WithdrawalCount, DefaultWithdrawalCountLimit)
	}
	if !a.Balance.Equal(BRL(970)) {
		t.Errorf("balance = %s, want 970.00", a.Balance.Fixed())
	}
}

func TestAccount_StatementText(t *testing.T) {
	t.Run("empty statement", func(t *testing.T) {
		a := testAccount(0, 0)
		got := a.StatementText()
		want := "No transactions yet.\n\nBalance: 0.00"
		if got != want {
			t.Errorf("StatementText() = %q, want %q", got, want)
		}
	})

	t.Run("after deposits and a withdrawal", func(t *testing.T) {
		a := testAccount(0, 0)
		if err := a.Deposit(BRL(100)); err != nil {
			t.Fatal(err)
		}
		if err := a.Deposit(BRL(2.5)); err != nil {
			t.Fatal(err)
		}
		if err := a.Withdraw(BRL(50)); err != nil {
			t.Fatal(err)
		}
		got := a.StatementText()
		want := "Deposit: 100.00\nDeposit: 2.50\nWithdrawal: 50.00\n\nBalance: 52.50"
		if got != want {
			t.Errorf("StatementText() = %q, want %q", got, want)
		}
	})
}

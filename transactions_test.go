package teller

import (
	"errors"
	"testing"
)

func TestTransaction_What(t *testing.T) {
	if got := NewDeposit(BRL(10)).What(); got != KindDeposit {
		t.Errorf("deposit kind = %q, want %q", got, KindDeposit)
	}
	if got := NewWithdrawal(BRL(10)).What(); got != KindWithdrawal {
		t.Errorf("withdrawal kind = %q, want %q", got, KindWithdrawal)
	}
}

func TestTransaction_Equal(t *testing.T) {
	testCases := []struct {
		name string
		a, b Transaction
		want bool
	}{
		{name: "equal deposits", a: NewDeposit(BRL(10)), b: NewDeposit(BRL(10)), want: true},
		{name: "different amounts", a: NewDeposit(BRL(10)), b: NewDeposit(BRL(20)), want: false},
		{name: "different kinds", a: NewDeposit(BRL(10)), b: NewWithdrawal(BRL(10)), want: false},
		{name: "equal withdrawals", a: NewWithdrawal(BRL(5)), b: NewWithdrawal(BRL(5)), want: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Equal(tc.b); got != tc.want {
				t.Errorf("Equal = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRegister_RecordsOnlyOnSuccess(t *testing.T) {
	a := newTestAccount(1)

	// Failed deposit: no balance change, no entry.
	if err := NewDeposit(BRL(0)).Register(a); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("Register error = %v, want ErrInvalidAmount", err)
	}
	if a.History().Len() != 0 {
		t.Errorf("failed deposit was recorded")
	}

	// Successful deposit: balance and one entry.
	if err := NewDeposit(BRL(100)).Register(a); err != nil {
		t.Fatal(err)
	}
	if a.History().Len() != 1 {
		t.Errorf("history length = %d, want 1", a.History().Len())
	}

	// Failed withdrawal: still one entry.
	if err := NewWithdrawal(BRL(200)).Register(a); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("Register error = %v, want ErrInsufficientFunds", err)
	}
	if a.History().Len() != 1 {
		t.Errorf("failed withdrawal was recorded")
	}
}

func TestRegister_ChecksCheckingRules(t *testing.T) {
	// Register goes through the variant's withdrawal, not the base rule.
	a := newTestAccount(1)
	if err := NewDeposit(BRL(1000)).Register(a); err != nil {
		t.Fatal(err)
	}
	if err := NewWithdrawal(BRL(600)).Register(a); !errors.Is(err, ErrCeilingExceeded) {
		t.Errorf("Register error = %v, want ErrCeilingExceeded", err)
	}
}

package teller

import "testing"

func TestMoney_Comparisons(t *testing.T) {
	if !BRL(10).IsPositive() || BRL(-10).IsPositive() || BRL(0).IsPositive() {
		t.Error("IsPositive is wrong")
	}
	if !BRL(0).IsZero() || BRL(1).IsZero() {
		t.Error("IsZero is wrong")
	}
	if !BRL(5).LessThan(BRL(10)) || BRL(10).LessThan(BRL(5)) {
		t.Error("LessThan is wrong")
	}
	if !BRL(10).GreaterThan(BRL(5)) || BRL(5).GreaterThan(BRL(10)) {
		t.Error("GreaterThan is wrong")
	}
	if !BRL(10).Equal(BRL(10)) || BRL(10).Equal(BRL(11)) {
		t.Error("Equal is wrong")
	}
}

func TestMoney_Arithmetic(t *testing.T) {
	if got := BRL(10).Add(BRL(2.5)); !got.Equal(BRL(12.5)) {
		t.Errorf("10 + 2.5 = %v", got)
	}
	if got := BRL(10).Sub(BRL(2.5)); !got.Equal(BRL(7.5)) {
		t.Errorf("10 - 2.5 = %v", got)
	}
	if got := BRL(10).Neg(); !got.Equal(BRL(-10)) {
		t.Errorf("-10 = %v", got)
	}
	// Exactness: the classic float trap must not leak in.
	if got := BRL(0.1).Add(BRL(0.2)); !got.Equal(BRL(0.3)) {
		t.Errorf("0.1 + 0.2 = %v, want 0.3", got)
	}
}

func TestMoney_WeakCurrency(t *testing.T) {
	// The "" currency merges with any other.
	if got := NO(10).Add(BRL(5)); got.Currency() != "BRL" {
		t.Errorf("currency = %q, want BRL", got.Currency())
	}
	if got := BRL(10).Add(NO(5)); got.Currency() != "BRL" {
		t.Errorf("currency = %q, want BRL", got.Currency())
	}
}

func TestMoney_String(t *testing.T) {
	got := BRL(1234.5).String()
	// go-money renders BRL with the R$ symbol and two decimals.
	if got != "R$1.234,50" {
		t.Errorf("String() = %q, want %q", got, "R$1.234,50")
	}
}

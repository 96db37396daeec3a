package teller

// BRL is a helper for test to create reais money from const
func BRL(v float64) Money { return M(v, "BRL") }

// NO is a helper for test to create money from const with no currency set
func NO(v float64) Money { return M(v, "") }

// newTestAccount returns a checking account with a throwaway holder.
func newTestAccount(number int) *CheckingAccount {
	holder, err := NewIndividual("Ana", "01-01-1990", "111", "Rua A, 1")
	if err != nil {
		panic(err)
	}
	a := NewCheckingAccount(holder, number)
	holder.AddAccount(a)
	return a
}

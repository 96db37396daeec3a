package renderer

import (
	"fmt"

	"github.com/etnz/teller"
)

// Transaction renders a transaction to a one-line string for menu feedback.
func Transaction(tx teller.Transaction) string {
	switch v := tx.(type) {
	case teller.Deposit:
		return fmt.Sprintf("Deposited %s", v.Amount())
	case teller.Withdrawal:
		return fmt.Sprintf("Withdrew %s", v.Amount())
	default:
		return string(tx.What())
	}
}

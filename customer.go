package teller

import "github.com/etnz/teller/date"

// Customer is the base customer variant: an address and the ordered
// collection of owned accounts.
type Customer struct {
	address  string
	accounts []BankAccount
}

// Address returns the customer's address.
func (c *Customer) Address() string { return c.address }

// Transact dispatches the transaction to the account. It delegates directly
// to Register; the indirection is the seam where a future customer variant
// could authorize or intercept a transaction first.
func (c *Customer) Transact(a BankAccount, tx Transaction) error {
	return tx.Register(a)
}

// AddAccount appends the account to the customer's owned collection.
// There is no duplicate check.
func (c *Customer) AddAccount(a BankAccount) {
	c.accounts = append(c.accounts, a)
}

// Accounts returns the owned accounts in creation order.
func (c *Customer) Accounts() []BankAccount { return c.accounts }

// Individual is a person holding accounts. The SSN is the lookup key and is
// immutable after construction; uniqueness is enforced by the directory's
// caller, not here.
type Individual struct {
	Customer
	name  string
	birth date.Date
	ssn   string
}

// NewIndividual creates an individual customer. It fails with
// *date.InvalidDateError when the birth date is not a dd-mm-yyyy calendar
// date.
func NewIndividual(name, birth, ssn, address string) (*Individual, error) {
	day, err := date.Parse(birth)
	if err != nil {
		return nil, err
	}
	return &Individual{
		Customer: Customer{address: address},
		name:     name,
		birth:    day,
		ssn:      ssn,
	}, nil
}

// Name returns the person's full name.
func (c *Individual) Name() string { return c.name }

// Birth returns the validated date of birth.
func (c *Individual) Birth() date.Date { return c.birth }

// SSN returns the identifier used to look the customer up.
func (c *Individual) SSN() string { return c.ssn }

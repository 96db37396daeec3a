package teller

import "iter"

// Registry owns the process-wide collections of customers and accounts for
// one session. It is passed by reference into every CLI operation; nothing
// in the package keeps a module-level singleton. The whole state is lost
// when the process exits.
type Registry struct {
	customers []*Individual
	accounts  []BankAccount
}

// NewRegistry creates an empty session registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// FindCustomer returns the customer with this SSN, or nil if unknown.
func (r *Registry) FindCustomer(ssn string) *Individual {
	for _, c := range r.customers {
		if c.SSN() == ssn {
			return c
		}
	}
	return nil
}

// AddCustomer appends the customer to the session. The caller is expected to
// have checked FindCustomer first; the registry itself does not enforce SSN
// uniqueness.
func (r *Registry) AddCustomer(c *Individual) {
	r.customers = append(r.customers, c)
}

// NextNumber returns the number the next opened account will get.
// Numbers are sequential within the session, starting at 1.
func (r *Registry) NextNumber() int { return len(r.accounts) + 1 }

// Open creates a checking account for the customer, wires it into the
// session and into the customer's owned collection, and returns it.
func (r *Registry) Open(c *Individual) BankAccount {
	a := NewCheckingAccount(c, r.NextNumber())
	r.accounts = append(r.accounts, a)
	c.AddAccount(a)
	return a
}

// Accounts returns an iterator over all session accounts in creation order.
func (r *Registry) Accounts() iter.Seq[BankAccount] {
	return func(yield func(BankAccount) bool) {
		for _, a := range r.accounts {
			if !yield(a) {
				return
			}
		}
	}
}

// Customers returns an iterator over all session customers in creation order.
func (r *Registry) Customers() iter.Seq[*Individual] {
	return func(yield func(*Individual) bool) {
		for _, c := range r.customers {
			if !yield(c) {
				return
			}
		}
	}
}

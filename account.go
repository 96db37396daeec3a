package teller

import "errors"

// Branch is the fixed organizational code stamped on every account.
const Branch = "0001"

// Defaults for the checking account variant.
const (
	DefaultCeiling        = 500 // maximum single-withdrawal amount
	DefaultMaxWithdrawals = 3   // maximum recorded withdrawals, cumulative
)

// Rule errors returned by deposit and withdrawal operations. Each failure
// reason gets its own sentinel so the menu can tell them apart.
var (
	// ErrInvalidAmount rejects non-positive amounts. Zero is a failure,
	// not a no-op.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInsufficientFunds rejects withdrawals above the current balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrCeilingExceeded rejects a single withdrawal above the checking
	// account ceiling.
	ErrCeilingExceeded = errors.New("withdrawal amount exceeds the limit")

	// ErrWithdrawalsExceeded rejects a withdrawal once the recorded
	// withdrawal count reached the checking account maximum.
	ErrWithdrawalsExceeded = errors.New("maximum number of withdrawals exceeded")
)

// BankAccount is the capability shared by all account variants.
// Implementations keep the balance and the history as one unit: they are only
// mutated together, in a single synchronous step. The simulator is
// single-threaded; a concurrent redesign would need one mutual-exclusion
// boundary per account around the check-then-mutate in Deposit and Withdraw.
type BankAccount interface {
	Deposit(amount Money) error
	Withdraw(amount Money) error
	Balance() Money
	Number() int
	Branch() string
	Holder() *Individual
	History() *History
}

// Account is the base account variant. Its withdrawal rule only checks the
// amount and the available funds.
type Account struct {
	number  int
	branch  string
	balance Money
	holder  *Individual
	history *History
}

// newAccount wires the shared account state. The account number is assigned
// by the registry; the holder is set once and never reassigned.
func newAccount(holder *Individual, number int) Account {
	return Account{
		number:  number,
		branch:  Branch,
		holder:  holder,
		history: NewHistory(),
	}
}

// Balance returns the current balance.
func (a *Account) Balance() Money { return a.balance }

// Number returns the account number.
func (a *Account) Number() int { return a.number }

// Branch returns the account branch code.
func (a *Account) Branch() string { return a.branch }

// Holder returns the owning customer.
func (a *Account) Holder() *Individual { return a.holder }

// History returns the account's transaction history.
func (a *Account) History() *History { return a.history }

// Deposit credits the amount. It fails with ErrInvalidAmount unless the
// amount is strictly positive; on failure the balance is untouched.
func (a *Account) Deposit(amount Money) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	a.balance = a.balance.Add(amount)
	return nil
}

// Withdraw debits the amount. It fails with ErrInvalidAmount unless the
// amount is strictly positive, and with ErrInsufficientFunds when the amount
// exceeds the balance; on failure the balance is untouched.
func (a *Account) Withdraw(amount Money) error {
	if amount.GreaterThan(a.balance) {
		return ErrInsufficientFunds
	}
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	a.balance = a.balance.Sub(amount)
	return nil
}

// CheckingAccount is the limited account variant: a ceiling on any single
// withdrawal, and a cap on how many withdrawals the history may record.
// The cap is cumulative over the whole history, never reset.
type CheckingAccount struct {
	Account
	ceiling        Money
	maxWithdrawals int
}

// NewCheckingAccount creates a checking account for the holder with the
// default ceiling and withdrawal cap. It is the session's only
// account-creation path.
func NewCheckingAccount(holder *Individual, number int) *CheckingAccount {
	return &CheckingAccount{
		Account:        newAccount(holder, number),
		ceiling:        M(DefaultCeiling, DefaultCurrency),
		maxWithdrawals: DefaultMaxWithdrawals,
	}
}

// Ceiling returns the maximum single-withdrawal amount.
func (a *CheckingAccount) Ceiling() Money { return a.ceiling }

// MaxWithdrawals returns the recorded-withdrawal cap.
func (a *CheckingAccount) MaxWithdrawals() int { return a.maxWithdrawals }

// Withdraw applies the checking rules before the base rule. The checks keep
// a fixed order so the surfaced message is deterministic: ceiling first, then
// the withdrawal count, then funds.
func (a *CheckingAccount) Withdraw(amount Money) error {
	if amount.GreaterThan(a.ceiling) {
		return ErrCeilingExceeded
	}
	if a.history.Count(KindWithdrawal) >= a.maxWithdrawals {
		return ErrWithdrawalsExceeded
	}
	return a.Account.Withdraw(amount)
}

var (
	_ BankAccount = (*Account)(nil)
	_ BankAccount = (*CheckingAccount)(nil)
)

package teller

// Kind is a typed string for identifying the two transaction variants.
// Kinds are compared by value, never by type name.
type Kind string

// Kinds recorded in an account history.
const (
	KindDeposit    Kind = "deposit"
	KindWithdrawal Kind = "withdrawal"
)

// Transaction defines the common interface for the operations that can move
// money on an account. A transaction is an ephemeral value: only its recorded
// projection lives in the account history.
type Transaction interface {
	What() Kind    // What returns the kind of the transaction.
	Amount() Money // Amount returns the amount the transaction moves.
	Equal(Transaction) bool
	// Register applies the transaction to the account and, only on success,
	// appends the matching entry to the account history. A failed Register
	// leaves the account untouched and returns the rule that was broken.
	Register(BankAccount) error
}

type baseTx struct {
	kind   Kind
	amount Money
}

// What returns the kind of the transaction.
func (t baseTx) What() Kind { return t.kind }

// Amount returns the amount of the transaction.
func (t baseTx) Amount() Money { return t.amount }

// Deposit represents a transaction where cash is added to an account.
type Deposit struct {
	baseTx
}

// NewDeposit creates a new Deposit transaction.
func NewDeposit(amount Money) Deposit {
	return Deposit{baseTx{kind: KindDeposit, amount: amount}}
}

func (t Deposit) Equal(other Transaction) bool {
	o, ok := other.(Deposit)
	return ok && t.amount.Equal(o.amount)
}

// Register credits the account and records the deposit in its history.
func (t Deposit) Register(a BankAccount) error {
	if err := a.Deposit(t.amount); err != nil {
		return err
	}
	a.History().Append(KindDeposit, t.amount)
	return nil
}

// Withdrawal represents a transaction where cash is removed from an account.
type Withdrawal struct {
	baseTx
}

// NewWithdrawal creates a new Withdrawal transaction.
func NewWithdrawal(amount Money) Withdrawal {
	return Withdrawal{baseTx{kind: KindWithdrawal, amount: amount}}
}

func (t Withdrawal) Equal(other Transaction) bool {
	o, ok := other.(Withdrawal)
	return ok && t.amount.Equal(o.amount)
}

// Register debits the account and records the withdrawal in its history.
// The account variant decides which withdrawal rules apply.
func (t Withdrawal) Register(a BankAccount) error {
	if err := a.Withdraw(t.amount); err != nil {
		return err
	}
	a.History().Append(KindWithdrawal, t.amount)
	return nil
}

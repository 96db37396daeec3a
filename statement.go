package teller

// Statement is the report of one account's recorded activity: header data,
// the entries in recording order, and the closing balance.
type Statement struct {
	Branch  string
	Number  int
	Holder  string
	Entries []Entry
	Balance Money
}

// AccountCard is the header block shown when listing the session's accounts.
type AccountCard struct {
	Branch string
	Number int
	Holder string
}

// NewAccountCard builds the listing card for the account.
func NewAccountCard(a BankAccount) AccountCard {
	c := AccountCard{Branch: a.Branch(), Number: a.Number()}
	if h := a.Holder(); h != nil {
		c.Holder = h.Name()
	}
	return c
}

// NewStatement builds the statement report for the account from its live
// history. The returned entries are a copy: mutating the account afterwards
// does not change an already built statement.
func NewStatement(a BankAccount) *Statement {
	s := &Statement{
		Branch:  a.Branch(),
		Number:  a.Number(),
		Balance: a.Balance(),
	}
	if h := a.Holder(); h != nil {
		s.Holder = h.Name()
	}
	for e := range a.History().Entries(AcceptAll) {
		s.Entries = append(s.Entries, e)
	}
	return s
}

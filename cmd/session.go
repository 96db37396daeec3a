package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/etnz/teller"
	"github.com/etnz/teller/renderer"
)

const menuText = `
================ MENU ================
[1]	Deposit
[2]	Withdraw
[3]	Statement
[4]	New Account
[5]	List Accounts
[6]	New Customer
[7]	Exit
=> `

// session holds one interactive run over a registry. Input and output are
// injected so tests can script a whole run.
type session struct {
	reg      *teller.Registry
	in       *bufio.Scanner
	out      io.Writer
	currency string
	json     bool
	render   func(string) string // markdown to printable text
}

func newSession(reg *teller.Registry, in io.Reader, out io.Writer, currency string, json bool) *session {
	return &session{
		reg:      reg,
		in:       bufio.NewScanner(in),
		out:      out,
		currency: currency,
		json:     json,
		render:   func(md string) string { return md },
	}
}

// run loops on the menu until the operator exits or input ends.
func (s *session) run() {
	for {
		option, ok := s.prompt(menuText)
		if !ok {
			return
		}
		switch option {
		case "1":
			s.deposit()
		case "2":
			s.withdraw()
		case "3":
			s.statement()
		case "4":
			s.newAccount()
		case "5":
			s.listAccounts()
		case "6":
			s.newCustomer()
		case "7":
			return
		default:
			fmt.Fprintln(s.out, "Invalid operation, please select the desired operation again.")
		}
	}
}

// prompt prints the message and reads one trimmed line.
// ok is false when the input is exhausted.
func (s *session) prompt(msg string) (line string, ok bool) {
	fmt.Fprint(s.out, msg)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// promptAmount re-asks until the operator types a positive number.
func (s *session) promptAmount(msg string) (teller.Money, bool) {
	for {
		line, ok := s.prompt(msg)
		if !ok {
			return teller.Money{}, false
		}
		value, err := strconv.ParseFloat(line, 64)
		if err != nil {
			fmt.Fprintln(s.out, "Invalid input. Enter a number.")
			continue
		}
		if value <= 0 {
			fmt.Fprintln(s.out, "Operation failed! The amount must be positive.")
			continue
		}
		return teller.M(value, s.currency), true
	}
}

// getAccount resolves an account from an SSN prompt, asking the operator to
// pick one when the customer holds several. A nil return means the flow was
// abandoned (unknown customer, no account, or input exhausted).
func (s *session) getAccount() teller.BankAccount {
	ssn, ok := s.prompt("Enter the customer's SSN: ")
	if !ok {
		return nil
	}
	customer := s.reg.FindCustomer(ssn)
	if customer == nil {
		fmt.Fprintln(s.out, "Customer not found!")
		return nil
	}

	accounts := customer.Accounts()
	if len(accounts) == 0 {
		fmt.Fprintln(s.out, "Customer has no account!")
		return nil
	}
	if len(accounts) == 1 {
		return accounts[0]
	}

	fmt.Fprintln(s.out, "Customer accounts:")
	for i, a := range accounts {
		fmt.Fprintf(s.out, "[%d] Branch: %s, Number: %d\n", i+1, a.Branch(), a.Number())
	}
	for {
		line, ok := s.prompt("Select the desired account: ")
		if !ok {
			return nil
		}
		option, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(s.out, "Invalid input. Enter a number.")
			continue
		}
		if option < 1 || option > len(accounts) {
			fmt.Fprintln(s.out, "Invalid option!")
			continue
		}
		return accounts[option-1]
	}
}

func (s *session) deposit() {
	account := s.getAccount()
	if account == nil {
		return
	}
	amount, ok := s.promptAmount("Enter the deposit amount: ")
	if !ok {
		return
	}
	tx := teller.NewDeposit(amount)
	if err := account.Holder().Transact(account, tx); err != nil {
		fmt.Fprintf(s.out, "Operation failed! %s.\n", capitalize(err.Error()))
		return
	}
	fmt.Fprintf(s.out, "%s. Deposit successful!\n", renderer.Transaction(tx))
}

func (s *session) withdraw() {
	account := s.getAccount()
	if account == nil {
		return
	}
	amount, ok := s.promptAmount("Enter the withdrawal amount: ")
	if !ok {
		return
	}
	tx := teller.NewWithdrawal(amount)
	if err := account.Holder().Transact(account, tx); err != nil {
		fmt.Fprintf(s.out, "Operation failed! %s.\n", capitalize(err.Error()))
		return
	}
	fmt.Fprintf(s.out, "%s. Withdrawal successful!\n", renderer.Transaction(tx))
}

func (s *session) statement() {
	account := s.getAccount()
	if account == nil {
		return
	}
	report := teller.NewStatement(account)
	if s.json {
		if err := teller.EncodeStatement(s.out, report); err != nil {
			fmt.Fprintf(s.out, "Operation failed! %s.\n", capitalize(err.Error()))
		}
		return
	}
	fmt.Fprint(s.out, s.render(renderer.StatementMarkdown(report)))
}

func (s *session) newAccount() {
	ssn, ok := s.prompt("Enter the customer's SSN: ")
	if !ok {
		return
	}
	customer := s.reg.FindCustomer(ssn)
	if customer == nil {
		fmt.Fprintln(s.out, "Customer not found, account creation flow terminated!")
		return
	}
	account := s.reg.Open(customer)
	fmt.Fprintf(s.out, "Account %s/%d created successfully!\n", account.Branch(), account.Number())
}

func (s *session) listAccounts() {
	var cards []teller.AccountCard
	for a := range s.reg.Accounts() {
		cards = append(cards, teller.NewAccountCard(a))
	}
	fmt.Fprint(s.out, s.render(renderer.AccountsMarkdown(cards)))
}

func (s *session) newCustomer() {
	ssn, ok := s.prompt("Enter the SSN (numbers only): ")
	if !ok {
		return
	}
	if s.reg.FindCustomer(ssn) != nil {
		fmt.Fprintln(s.out, "A customer with this SSN already exists!")
		return
	}
	name, ok := s.prompt("Enter the full name: ")
	if !ok {
		return
	}

	// Re-ask until the birth date parses.
	var birth string
	for {
		birth, ok = s.prompt("Enter the date of birth (dd-mm-yyyy): ")
		if !ok {
			return
		}
		if _, err := teller.NewIndividual(name, birth, ssn, ""); err == nil {
			break
		}
		fmt.Fprintln(s.out, "Invalid date. Use the format dd-mm-yyyy.")
	}

	address, ok := s.prompt("Enter the address (street, number - neighborhood - city/state abbreviation): ")
	if !ok {
		return
	}

	customer, err := teller.NewIndividual(name, birth, ssn, address)
	if err != nil {
		// The date was validated by the loop above.
		fmt.Fprintf(s.out, "Operation failed! %s.\n", capitalize(err.Error()))
		return
	}
	s.reg.AddCustomer(customer)
	fmt.Fprintln(s.out, "Customer created successfully!")
}

// capitalize upper-cases the first byte of an ASCII message.
func capitalize(msg string) string {
	if msg == "" {
		return msg
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}

package cmd

import (
	"strings"
	"testing"

	"github.com/etnz/teller"
)

// runScript drives a whole session from scripted input and returns the output.
func runScript(t *testing.T, json bool, lines ...string) string {
	t.Helper()
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out strings.Builder
	s := newSession(teller.NewRegistry(), in, &out, teller.DefaultCurrency, json)
	s.run()
	return out.String()
}

func TestSession_DepositAndStatement(t *testing.T) {
	out := runScript(t, false,
		"6", "111", "Ana", "01-01-1990", "Rua A, 1", // new customer
		"4", "111", // new account
		"1", "111", "100", // deposit 100
		"3", "111", // statement
		"7", // exit
	)

	for _, want := range []string{
		"Customer created successfully!",
		"Account 0001/1 created successfully!",
		"Deposit successful!",
		"Statement for account 0001/1",
		"R$100,00",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q\noutput:\n%s", want, out)
		}
	}
}

func TestSession_WithdrawalFailures(t *testing.T) {
	out := runScript(t, false,
		"6", "111", "Ana", "01-01-1990", "Rua A, 1",
		"4", "111",
		"1", "111", "100",
		"2", "111", "600", // above the ceiling
		"2", "111", "200", // above the balance
		"7",
	)

	if !strings.Contains(out, "Withdrawal amount exceeds the limit") {
		t.Errorf("missing ceiling failure message\noutput:\n%s", out)
	}
	if !strings.Contains(out, "Insufficient funds") {
		t.Errorf("missing funds failure message\noutput:\n%s", out)
	}
}

func TestSession_InvalidInputsReprompt(t *testing.T) {
	out := runScript(t, false,
		"9",                                               // unknown menu option
		"6", "111", "Ana", "31-02-2020", "01-01-1990", "Rua A, 1", // bad date then good
		"4", "111",
		"1", "111", "abc", "-5", "50", // bad amounts then good
		"7",
	)

	for _, want := range []string{
		"Invalid operation, please select the desired operation again.",
		"Invalid date. Use the format dd-mm-yyyy.",
		"Invalid input. Enter a number.",
		"Operation failed! The amount must be positive.",
		"Deposit successful!",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q\noutput:\n%s", want, out)
		}
	}
}

func TestSession_UnknownCustomer(t *testing.T) {
	out := runScript(t, false,
		"1", "999", // deposit for unknown ssn
		"4", "999", // account for unknown ssn
		"7",
	)
	if !strings.Contains(out, "Customer not found!") {
		t.Errorf("missing lookup failure\noutput:\n%s", out)
	}
	if !strings.Contains(out, "Customer not found, account creation flow terminated!") {
		t.Errorf("missing account creation failure\noutput:\n%s", out)
	}
}

func TestSession_CustomerWithoutAccount(t *testing.T) {
	out := runScript(t, false,
		"6", "111", "Ana", "01-01-1990", "Rua A, 1",
		"3", "111", // statement before any account exists
		"7",
	)
	if !strings.Contains(out, "Customer has no account!") {
		t.Errorf("missing no-account message\noutput:\n%s", out)
	}
}

func TestSession_AccountSelection(t *testing.T) {
	out := runScript(t, false,
		"6", "111", "Ana", "01-01-1990", "Rua A, 1",
		"4", "111",
		"4", "111", // second account
		"1", "111", "2", "75", // deposit picks account 2
		"3", "111", "2", // statement of account 2
		"7",
	)
	if !strings.Contains(out, "[2] Branch: 0001, Number: 2") {
		t.Errorf("missing selection listing\noutput:\n%s", out)
	}
	if !strings.Contains(out, "Statement for account 0001/2") {
		t.Errorf("missing statement for the selected account\noutput:\n%s", out)
	}
	if !strings.Contains(out, "R$75,00") {
		t.Errorf("deposit did not land on the selected account\noutput:\n%s", out)
	}
}

func TestSession_JSONStatement(t *testing.T) {
	out := runScript(t, true,
		"6", "111", "Ana", "01-01-1990", "Rua A, 1",
		"4", "111",
		"1", "111", "100",
		"3", "111",
		"7",
	)
	for _, want := range []string{
		`"kind":"deposit"`,
		`"amount":100`,
		`"branch":"0001"`,
		`"holder":"Ana"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("JSON statement does not contain %s\noutput:\n%s", want, out)
		}
	}
}

func TestSession_ListAccounts(t *testing.T) {
	out := runScript(t, false,
		"5", // empty listing
		"6", "111", "Ana", "01-01-1990", "Rua A, 1",
		"4", "111",
		"5",
		"7",
	)
	if !strings.Contains(out, "No accounts have been opened.") {
		t.Errorf("missing empty listing\noutput:\n%s", out)
	}
	if !strings.Contains(out, "Holder: Ana") {
		t.Errorf("missing account card\noutput:\n%s", out)
	}
}

func TestSession_DuplicateSSN(t *testing.T) {
	out := runScript(t, false,
		"6", "111", "Ana", "01-01-1990", "Rua A, 1",
		"6", "111",
		"7",
	)
	if !strings.Contains(out, "A customer with this SSN already exists!") {
		t.Errorf("missing duplicate message\noutput:\n%s", out)
	}
}

func TestSession_EndOfInput(t *testing.T) {
	// The loop must stop cleanly when input runs out mid-flow.
	out := runScript(t, false, "1")
	if !strings.Contains(out, "Enter the customer's SSN:") {
		t.Errorf("session did not reach the SSN prompt\noutput:\n%s", out)
	}
}

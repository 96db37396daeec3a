// Package teller provides the domain model for an in-process bank teller
// simulator: customers, accounts and the transactions that move money
// between an operator and an account.
//
// The core functionalities include:
//   - Accounts: a base account with deposit/withdraw rules, and a checking
//     variant adding a single-withdrawal ceiling and a cap on the number of
//     recorded withdrawals.
//   - Transactions: deposit and withdrawal values that apply themselves to an
//     account and record themselves in its history only on success.
//   - History: the ordered, append-only log of applied transactions, used for
//     statements and for enforcing the withdrawal cap.
//   - Registry: the single owned session state (customers, accounts) with
//     lookup by SSN.
//
// Everything is in-memory and single-threaded: the package serves the
// `teller` command-line tool, and the whole session state is lost when the
// process exits.
package teller

package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/teller"
	md "github.com/nao1215/markdown"
)

// StatementMarkdown renders the account statement to a markdown string.
func StatementMarkdown(s *teller.Statement) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Statement for account %s/%d", s.Branch, s.Number))
	if s.Holder != "" {
		doc.PlainText(fmt.Sprintf("Holder: %s", s.Holder))
	}

	if len(s.Entries) == 0 {
		doc.PlainText("No transactions have been made.")
	} else {
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignLeft,
				md.AlignRight,
			},
			Header: []string{"Date", "Operation", "Amount"},
			Rows:   [][]string{},
		}
		for _, e := range s.Entries {
			table.Rows = append(table.Rows, []string{
				e.Time.Format(teller.TimeFormat),
				string(e.Kind),
				e.Amount.String(),
			})
		}
		doc.Table(table)
	}

	doc.PlainText(fmt.Sprintf("Balance: %s", s.Balance.String()))

	return doc.String()
}

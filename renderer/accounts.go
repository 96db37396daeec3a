package renderer

import "github.com/etnz/teller"

// AccountsMarkdown renders the session account listing to a markdown string.
func AccountsMarkdown(cards []teller.AccountCard) string {
	partials := map[string]string{
		"accounts_card": "accounts_card.md",
	}
	return renderTemplate("accounts", "accounts.md", partials, cards)
}

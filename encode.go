package teller

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// EncodeEntry writes one history entry as a single JSON line.
func EncodeEntry(w io.Writer, e Entry) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal entry: %w", err)
	}
	if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
		return fmt.Errorf("failed to write entry: %w", err)
	}
	return nil
}

// EncodeStatement writes the statement as JSONL: one line per recorded entry
// followed by one closing object carrying the account header and the balance.
// The export is one-way; the session never reads it back.
func EncodeStatement(w io.Writer, s *Statement) error {
	for _, e := range s.Entries {
		if err := EncodeEntry(w, e); err != nil {
			return err
		}
	}

	var closing jsonObjectWriter
	closing.Append("branch", s.Branch)
	closing.Append("number", s.Number)
	closing.Optional("holder", s.Holder)
	closing.Append("balance", s.Balance)
	data, err := closing.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal statement closing: %w", err)
	}
	if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
		return fmt.Errorf("failed to write statement closing: %w", err)
	}
	return nil
}

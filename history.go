package teller

import (
	"iter"
	"time"
)

// Entry is the immutable record of one applied transaction.
type Entry struct {
	Kind   Kind
	Amount Money
	Time   time.Time // wall-clock time at the moment of recording
}

// MarshalJSON implements the json.Marshaler interface for Entry.
func (e Entry) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("kind", e.Kind)
	w.EmbedFrom(e.Amount)
	w.Append("time", e.Time.Format(TimeFormat))
	return w.MarshalJSON()
}

// TimeFormat is the layout used to display entry timestamps.
const TimeFormat = "02-01-2006 15:04:05"

// History is the ordered, append-only log of applied transactions,
// owned one-to-one by an account.
//
// In a History entries are always in recording order.
type History struct {
	entries []Entry
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{entries: make([]Entry, 0)}
}

// Append records one entry of the given kind and amount, stamped with the
// current wall-clock time. It never fails.
func (h *History) Append(kind Kind, amount Money) {
	h.entries = append(h.entries, Entry{Kind: kind, Amount: amount, Time: time.Now()})
}

// Len returns the number of recorded entries.
func (h *History) Len() int { return len(h.entries) }

// AcceptAll is a filter that accepts every entry.
func AcceptAll(Entry) bool { return true }

// Entries returns a read-only iterator over the recorded entries, in
// recording order, keeping only those accepted by the filter.
func (h *History) Entries(accept func(Entry) bool) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, e := range h.entries {
			if !accept(e) {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// Count returns the number of recorded entries of the given kind.
// It scans the full sequence on every call so the count always reflects
// the live history.
func (h *History) Count(kind Kind) int {
	n := 0
	for _, e := range h.entries {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

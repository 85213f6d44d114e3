// Package compare classifies every constant of a reference set against a
// counterpart set.
package compare

import "github.com/specialistvlad/seedsync/internal/extract"

// Outcome is the verdict for one key of the reference set.
type Outcome int

const (
	Matched Outcome = iota
	Mismatched
	MissingInB
)

func (o Outcome) String() string {
	switch o {
	case Matched:
		return "matched"
	case Mismatched:
		return "mismatched"
	case MissingInB:
		return "missing"
	default:
		return "unknown"
	}
}

// Entry is the comparison of one reference key. ValueB is empty when the
// outcome is MissingInB.
type Entry struct {
	Key     string
	Outcome Outcome
	ValueA  string
	ValueB  string
}

// Result holds one Entry per key of A, in A's order, and the keys found only
// in B, in B's order.
type Result struct {
	Entries []Entry
	Extra   []string
}

// Synchronized reports whether every key of A matched. Extra keys do not
// count against it.
func (r *Result) Synchronized() bool {
	for _, e := range r.Entries {
		if e.Outcome != Matched {
			return false
		}
	}
	return true
}

// Failures returns the entries that are not Matched.
func (r *Result) Failures() []Entry {
	var out []Entry
	for _, e := range r.Entries {
		if e.Outcome != Matched {
			out = append(out, e)
		}
	}
	return out
}

// Compare checks a against b with exact, case-sensitive string equality.
func Compare(a, b *extract.ConstantSet) *Result {
	res := &Result{Entries: make([]Entry, 0, a.Len())}

	for _, key := range a.Keys() {
		valueA, _ := a.Get(key)
		entry := Entry{Key: key, ValueA: valueA}

		valueB, ok := b.Get(key)
		switch {
		case !ok:
			entry.Outcome = MissingInB
		case valueB == valueA:
			entry.Outcome = Matched
			entry.ValueB = valueB
		default:
			entry.Outcome = Mismatched
			entry.ValueB = valueB
		}
		res.Entries = append(res.Entries, entry)
	}

	for _, key := range b.Keys() {
		if _, ok := a.Get(key); !ok {
			res.Extra = append(res.Extra, key)
		}
	}
	return res
}

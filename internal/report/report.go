// Package report renders a check's constants and comparison as
// line-oriented text for a human reading CI logs. The format is diagnostic
// only and carries no compatibility promise.
package report

import (
	"fmt"
	"io"

	"github.com/specialistvlad/seedsync/internal/compare"
	"github.com/specialistvlad/seedsync/internal/config"
	"github.com/specialistvlad/seedsync/internal/extract"
)

type markers struct {
	start, compare, ok, fail, warn string
}

var (
	emojiMarkers = markers{start: "🔍 ", compare: "🔎 ", ok: "✅ ", fail: "❌ ", warn: "⚠️  "}
	plainMarkers = markers{ok: "[ok] ", fail: "[FAIL] ", warn: "[warn] "}
)

// Reporter writes check reports to an io.Writer.
type Reporter struct {
	w io.Writer
	m markers
}

// New returns a Reporter writing to w. With plain set, the emoji markers are
// replaced by ASCII tags.
func New(w io.Writer, plain bool) *Reporter {
	m := emojiMarkers
	if plain {
		m = plainMarkers
	}
	return &Reporter{w: w, m: m}
}

// Report prints both constant sets, one line per compared key, the extra and
// duplicate key warnings, and the summary line.
func (r *Reporter) Report(check *config.Check, a, b *extract.ConstantSet, res *compare.Result) {
	srcA, srcB := check.A(), check.B()

	r.printf("%sChecking %s constant synchronization...\n\n", r.m.start, check.Title)

	r.printSet(srcA, a)
	r.printf("\n")
	r.printSet(srcB, b)

	r.printf("\n%sComparison:\n", r.m.compare)
	for _, e := range res.Entries {
		switch e.Outcome {
		case compare.Matched:
			r.printf("%s%s: synchronized\n", r.m.ok, e.Key)
		case compare.Mismatched:
			r.printf("%s%s: %s=%q vs %s=%q\n", r.m.fail, e.Key, srcA.Label, e.ValueA, srcB.Label, e.ValueB)
		case compare.MissingInB:
			r.printf("%s%s: %s=%q vs %s=undefined\n", r.m.fail, e.Key, srcA.Label, e.ValueA, srcB.Label)
		}
	}

	for _, key := range res.Extra {
		r.printf("%sExtra %s key: %s\n", r.m.warn, srcB.Label, key)
	}
	for _, key := range a.Duplicates() {
		r.printf("%sDuplicate %s key: %s (last value wins)\n", r.m.warn, srcA.Label, key)
	}
	for _, key := range b.Duplicates() {
		r.printf("%sDuplicate %s key: %s (last value wins)\n", r.m.warn, srcB.Label, key)
	}

	if res.Synchronized() {
		r.printf("\n%sAll %s constants are synchronized!\n", r.m.ok, check.Title)
	} else {
		r.printf("\n%s%s constants are out of sync!\n", r.m.fail, check.Title)
	}
}

func (r *Reporter) printSet(src *config.Source, set *extract.ConstantSet) {
	r.printf("%s seeds:\n", src.Title)
	for _, key := range set.Keys() {
		v, _ := set.Get(key)
		r.printf("  %s: %q\n", key, v)
	}
}

func (r *Reporter) printf(format string, args ...any) {
	fmt.Fprintf(r.w, format, args...)
}

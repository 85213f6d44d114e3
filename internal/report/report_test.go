package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/specialistvlad/seedsync/internal/compare"
	"github.com/specialistvlad/seedsync/internal/config"
	"github.com/specialistvlad/seedsync/internal/extract"
	"github.com/stretchr/testify/require"
)

func pdaCheck() *config.Check {
	return &config.Check{
		Name:  "pda",
		Title: "PDA",
		Sources: []*config.Source{
			{ID: "typescript", Label: "TS", Title: "TypeScript"},
			{ID: "rust", Label: "Rust", Title: "Rust"},
		},
	}
}

func setOf(pairs ...string) *extract.ConstantSet {
	s := extract.NewConstantSet()
	for i := 0; i+1 < len(pairs); i += 2 {
		s.Set(pairs[i], pairs[i+1])
	}
	return s
}

func render(t *testing.T, plain bool, a, b *extract.ConstantSet) string {
	t.Helper()
	var buf bytes.Buffer
	New(&buf, plain).Report(pdaCheck(), a, b, compare.Compare(a, b))
	return buf.String()
}

func TestReport_Synchronized(t *testing.T) {
	t.Parallel()

	out := render(t, false, setOf("FOO", "abc"), setOf("FOO", "abc"))

	want := `🔍 Checking PDA constant synchronization...

TypeScript seeds:
  FOO: "abc"

Rust seeds:
  FOO: "abc"

🔎 Comparison:
✅ FOO: synchronized

✅ All PDA constants are synchronized!
`
	require.Equal(t, want, out)
}

func TestReport_Mismatch(t *testing.T) {
	t.Parallel()

	out := render(t, false, setOf("FOO", "abc"), setOf("FOO", "xyz"))

	require.Contains(t, out, `❌ FOO: TS="abc" vs Rust="xyz"`)
	require.True(t, strings.HasSuffix(out, "❌ PDA constants are out of sync!\n"))
}

func TestReport_MissingCounterpart(t *testing.T) {
	t.Parallel()

	out := render(t, false, setOf("FOO", "abc"), setOf())

	require.Contains(t, out, `❌ FOO: TS="abc" vs Rust=undefined`)
	require.Contains(t, out, "out of sync")
}

func TestReport_ExtraKeyIsOnlyAWarning(t *testing.T) {
	t.Parallel()

	out := render(t, false, setOf(), setOf("BAR", "x"))

	require.Contains(t, out, "⚠️  Extra Rust key: BAR")
	require.Contains(t, out, "✅ All PDA constants are synchronized!")
}

func TestReport_Duplicates(t *testing.T) {
	t.Parallel()

	b := setOf("FOO", "old", "FOO", "abc")
	out := render(t, false, setOf("FOO", "abc"), b)

	require.Contains(t, out, "⚠️  Duplicate Rust key: FOO (last value wins)")
	require.Contains(t, out, "✅ FOO: synchronized")
}

func TestReport_PlainMarkers(t *testing.T) {
	t.Parallel()

	out := render(t, true, setOf("FOO", "abc", "BAZ", "q"), setOf("FOO", "abc", "BAR", "x"))

	want := `Checking PDA constant synchronization...

TypeScript seeds:
  FOO: "abc"
  BAZ: "q"

Rust seeds:
  FOO: "abc"
  BAR: "x"

Comparison:
[ok] FOO: synchronized
[FAIL] BAZ: TS="q" vs Rust=undefined
[warn] Extra Rust key: BAR

[FAIL] PDA constants are out of sync!
`
	require.Equal(t, want, out)
}

package compare

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/seedsync/internal/extract"
	"github.com/stretchr/testify/require"
)

func setOf(pairs ...string) *extract.ConstantSet {
	s := extract.NewConstantSet()
	for i := 0; i+1 < len(pairs); i += 2 {
		s.Set(pairs[i], pairs[i+1])
	}
	return s
}

func TestCompare(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		a, b         *extract.ConstantSet
		want         *Result
		synchronized bool
	}{
		{
			name:         "identical sets",
			a:            setOf("FOO", "abc", "BAR", "def"),
			b:            setOf("BAR", "def", "FOO", "abc"),
			want:         &Result{Entries: []Entry{{Key: "FOO", Outcome: Matched, ValueA: "abc", ValueB: "abc"}, {Key: "BAR", Outcome: Matched, ValueA: "def", ValueB: "def"}}},
			synchronized: true,
		},
		{
			name:         "different value",
			a:            setOf("FOO", "abc"),
			b:            setOf("FOO", "xyz"),
			want:         &Result{Entries: []Entry{{Key: "FOO", Outcome: Mismatched, ValueA: "abc", ValueB: "xyz"}}},
			synchronized: false,
		},
		{
			name:         "missing in b",
			a:            setOf("FOO", "abc"),
			b:            setOf(),
			want:         &Result{Entries: []Entry{{Key: "FOO", Outcome: MissingInB, ValueA: "abc"}}},
			synchronized: false,
		},
		{
			name:         "extra key in b only",
			a:            setOf(),
			b:            setOf("BAR", "x"),
			want:         &Result{Entries: []Entry{}, Extra: []string{"BAR"}},
			synchronized: true,
		},
		{
			name:         "case sensitive values",
			a:            setOf("FOO", "seed"),
			b:            setOf("FOO", "Seed"),
			want:         &Result{Entries: []Entry{{Key: "FOO", Outcome: Mismatched, ValueA: "seed", ValueB: "Seed"}}},
			synchronized: false,
		},
		{
			name:         "case sensitive keys",
			a:            setOf("FOO", "x"),
			b:            setOf("foo", "x"),
			want:         &Result{Entries: []Entry{{Key: "FOO", Outcome: MissingInB, ValueA: "x"}}, Extra: []string{"foo"}},
			synchronized: false,
		},
		{
			name:         "whitespace is significant",
			a:            setOf("FOO", "a b"),
			b:            setOf("FOO", "a  b"),
			want:         &Result{Entries: []Entry{{Key: "FOO", Outcome: Mismatched, ValueA: "a b", ValueB: "a  b"}}},
			synchronized: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Compare(tc.a, tc.b)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("unexpected result (-want +got):\n%s", diff)
			}
			require.Equal(t, tc.synchronized, got.Synchronized())
		})
	}
}

func TestCompare_IsDeterministic(t *testing.T) {
	t.Parallel()

	a := setOf("A", "1", "B", "2", "C", "3", "D", "4")
	b := setOf("D", "4", "C", "x", "E", "5")

	first := Compare(a, b)
	for i := 0; i < 20; i++ {
		require.Equal(t, first, Compare(a, b))
	}
	require.Len(t, first.Failures(), 3)
	require.Equal(t, []string{"E"}, first.Extra)
}

func TestOutcome_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "matched", Matched.String())
	require.Equal(t, "mismatched", Mismatched.String())
	require.Equal(t, "missing", MissingInB.String())
	require.Equal(t, "unknown", Outcome(42).String())
}

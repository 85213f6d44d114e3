package extract

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/specialistvlad/seedsync/internal/config"
)

// Extractor scrapes constants out of a source text. Extract never fails: text
// that does not match the rule yields an empty set.
type Extractor interface {
	Extract(text string) *ConstantSet
}

// New compiles a rule into its Extractor. Errors here are configuration
// errors (a bad regular expression or a missing capture group).
func New(rule config.Rule) (Extractor, error) {
	switch {
	case rule.Block != nil:
		return newBlockExtractor(rule.Block)
	case rule.Pattern != nil:
		return newPatternExtractor(rule.Pattern)
	default:
		return nil, errors.New("rule has neither block nor pattern")
	}
}

// blockExtractor reads `key: value` lines out of one aggregate declaration,
// such as a TypeScript object literal.
type blockExtractor struct {
	block     *regexp.Regexp
	delimiter string
	strip     string
}

func newBlockExtractor(r *config.BlockRule) (*blockExtractor, error) {
	re, err := regexp.Compile(r.Pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid block pattern %q: %w", r.Pattern, err)
	}
	delimiter := r.Delimiter
	if delimiter == "" {
		delimiter = ":"
	}
	strip := r.Strip
	if strip == "" {
		strip = config.DefaultStrip
	}
	return &blockExtractor{block: re, delimiter: delimiter, strip: strip}, nil
}

func (e *blockExtractor) Extract(text string) *ConstantSet {
	set := NewConstantSet()

	m := e.block.FindStringSubmatch(text)
	if m == nil {
		return set
	}
	body := m[0]
	if len(m) > 1 {
		body = m[1]
	}

	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if !strings.Contains(line, e.delimiter) {
			continue
		}
		// Only the first two fields count; anything after a second
		// delimiter is dropped.
		fields := strings.Split(line, e.delimiter)
		key, value := e.clean(fields[0]), e.clean(fields[1])
		if key == "" || value == "" {
			continue
		}
		set.Set(key, value)
	}
	return set
}

func (e *blockExtractor) clean(s string) string {
	s = strings.Map(func(r rune) rune {
		if strings.ContainsRune(e.strip, r) {
			return -1
		}
		return r
	}, strings.TrimSpace(s))
	return strings.TrimSpace(s)
}

// patternExtractor collects every match of a declaration pattern, such as
// Rust `pub const NAME: &[u8] = b"value";` lines.
type patternExtractor struct {
	re       *regexp.Regexp
	nameIdx  int
	valueIdx int
}

func newPatternExtractor(r *config.PatternRule) (*patternExtractor, error) {
	re, err := regexp.Compile(r.Regex)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern regex %q: %w", r.Regex, err)
	}

	nameIdx, valueIdx := re.SubexpIndex("name"), re.SubexpIndex("value")
	if nameIdx < 0 || valueIdx < 0 {
		if re.NumSubexp() < 2 {
			return nil, fmt.Errorf("pattern regex %q needs `name` and `value` capture groups", r.Regex)
		}
		nameIdx, valueIdx = 1, 2
	}
	return &patternExtractor{re: re, nameIdx: nameIdx, valueIdx: valueIdx}, nil
}

func (e *patternExtractor) Extract(text string) *ConstantSet {
	set := NewConstantSet()
	for _, m := range e.re.FindAllStringSubmatch(text, -1) {
		name := m[e.nameIdx]
		if name == "" {
			continue
		}
		set.Set(name, m[e.valueIdx])
	}
	return set
}

package config

import (
	"errors"
	"fmt"
)

// DefaultStrip is the set of characters removed from keys and values
// extracted by a block rule when the rule does not name its own.
const DefaultStrip = `'",`

// Model is the unified, format-agnostic representation of a rules file.
type Model struct {
	Checks []*Check
}

// Check compares the constants of two sources. Sources[0] is the reference
// side (A) and Sources[1] the counterpart (B).
type Check struct {
	Name    string
	Title   string
	Sources []*Source
}

// A returns the reference source.
func (c *Check) A() *Source { return c.Sources[0] }

// B returns the counterpart source.
func (c *Check) B() *Source { return c.Sources[1] }

// Source is one side of a check: where the file lives and how its constants
// are extracted.
type Source struct {
	ID    string
	Label string // short name used in mismatch lines, e.g. "TS"
	Title string // long name used in headers, e.g. "TypeScript"
	Path  string
	Rule  Rule
}

// Rule describes how constants are scraped from a source text. Exactly one
// of Block or Pattern is set.
type Rule struct {
	Block   *BlockRule
	Pattern *PatternRule
}

// BlockRule extracts `key<delimiter>value` lines from inside a single
// aggregate declaration located by Pattern.
type BlockRule struct {
	Pattern   string
	Delimiter string
	Strip     string
}

// PatternRule extracts one constant per match of Regex anywhere in the text.
type PatternRule struct {
	Regex string
}

// Validate checks the model for structural errors and fills in defaults
// (labels, titles, block delimiter and strip set).
func (m *Model) Validate() error {
	if m == nil || len(m.Checks) == 0 {
		return errors.New("rules must declare at least one check")
	}

	seen := make(map[string]struct{}, len(m.Checks))
	for _, c := range m.Checks {
		if c.Name == "" {
			return errors.New("check name cannot be empty")
		}
		if _, dup := seen[c.Name]; dup {
			return fmt.Errorf("check %q is declared more than once", c.Name)
		}
		seen[c.Name] = struct{}{}

		if len(c.Sources) != 2 {
			return fmt.Errorf("check %q must declare exactly two sources, found %d", c.Name, len(c.Sources))
		}
		if c.Title == "" {
			c.Title = c.Name
		}
		for _, s := range c.Sources {
			if err := s.validate(); err != nil {
				return fmt.Errorf("check %q: %w", c.Name, err)
			}
		}
	}
	return nil
}

func (s *Source) validate() error {
	if s.ID == "" {
		return errors.New("source id cannot be empty")
	}
	if s.Path == "" {
		return fmt.Errorf("source %q: path is required", s.ID)
	}
	if s.Label == "" {
		s.Label = s.ID
	}
	if s.Title == "" {
		s.Title = s.Label
	}

	switch {
	case s.Rule.Block != nil && s.Rule.Pattern != nil:
		return fmt.Errorf("source %q: only one of block or pattern may be set", s.ID)
	case s.Rule.Block != nil:
		if s.Rule.Block.Pattern == "" {
			return fmt.Errorf("source %q: block pattern is required", s.ID)
		}
		if s.Rule.Block.Delimiter == "" {
			s.Rule.Block.Delimiter = ":"
		}
		if s.Rule.Block.Strip == "" {
			s.Rule.Block.Strip = DefaultStrip
		}
	case s.Rule.Pattern != nil:
		if s.Rule.Pattern.Regex == "" {
			return fmt.Errorf("source %q: pattern regex is required", s.ID)
		}
	default:
		return fmt.Errorf("source %q: one of block or pattern is required", s.ID)
	}
	return nil
}

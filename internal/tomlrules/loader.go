// Package tomlrules implements the rules Loader for TOML files, for projects
// that keep their CI configuration in TOML rather than HCL.
package tomlrules

import (
	"context"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/specialistvlad/seedsync/internal/config"
	"github.com/specialistvlad/seedsync/internal/ctxlog"
)

type fileConfig struct {
	Checks []fileCheck `toml:"check"`
}

type fileCheck struct {
	Name    string       `toml:"name"`
	Title   string       `toml:"title"`
	Sources []fileSource `toml:"source"`
}

type fileSource struct {
	ID      string       `toml:"id"`
	Label   string       `toml:"label"`
	Title   string       `toml:"title"`
	Path    string       `toml:"path"`
	Block   *fileBlock   `toml:"block"`
	Pattern *filePattern `toml:"pattern"`
}

type fileBlock struct {
	Pattern   string `toml:"pattern"`
	Delimiter string `toml:"delimiter"`
	Strip     string `toml:"strip"`
}

type filePattern struct {
	Regex string `toml:"regex"`
}

// Loader is the TOML implementation of config.Loader.
type Loader struct{}

// NewLoader creates a new TOML rules loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load decodes a TOML rules file. Keys the schema does not know are an error.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("TOML loader started.", "path", path)

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, fmt.Errorf("load rules %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("load rules %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	model := &config.Model{Checks: make([]*config.Check, 0, len(raw.Checks))}
	for _, c := range raw.Checks {
		model.Checks = append(model.Checks, translateCheck(c))
	}

	if err := model.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules in %s: %w", path, err)
	}
	logger.Debug("TOML loading complete.", "checks", len(model.Checks))
	return model, nil
}

func translateCheck(c fileCheck) *config.Check {
	check := &config.Check{
		Name:    strings.TrimSpace(c.Name),
		Title:   strings.TrimSpace(c.Title),
		Sources: make([]*config.Source, 0, len(c.Sources)),
	}
	for _, s := range c.Sources {
		src := &config.Source{
			ID:    strings.TrimSpace(s.ID),
			Label: strings.TrimSpace(s.Label),
			Title: strings.TrimSpace(s.Title),
			Path:  strings.TrimSpace(s.Path),
		}
		if s.Block != nil {
			src.Rule.Block = &config.BlockRule{
				Pattern:   s.Block.Pattern,
				Delimiter: s.Block.Delimiter,
				Strip:     s.Block.Strip,
			}
		}
		if s.Pattern != nil {
			src.Rule.Pattern = &config.PatternRule{Regex: s.Pattern.Regex}
		}
		check.Sources = append(check.Sources, src)
	}
	return check
}

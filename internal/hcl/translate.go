package hcl

import "github.com/specialistvlad/seedsync/internal/config"

// translateCheck converts the HCL-specific check schema into the agnostic model.
func translateCheck(c *checkBlock) *config.Check {
	check := &config.Check{
		Name:    c.Name,
		Title:   c.Title,
		Sources: make([]*config.Source, 0, len(c.Sources)),
	}
	for _, s := range c.Sources {
		check.Sources = append(check.Sources, translateSource(s))
	}
	return check
}

func translateSource(s *sourceBlock) *config.Source {
	src := &config.Source{
		ID:    s.ID,
		Label: s.Label,
		Title: s.Title,
		Path:  s.Path,
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
	return src
}

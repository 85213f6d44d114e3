package hcl

// fileRoot decodes the top-level blocks of a rules file. Any other block or
// attribute is a decode error.
type fileRoot struct {
	Checks []*checkBlock `hcl:"check,block"`
}

type checkBlock struct {
	Name    string         `hcl:"name,label"`
	Title   string         `hcl:"title,optional"`
	Sources []*sourceBlock `hcl:"source,block"`
}

type sourceBlock struct {
	ID      string       `hcl:"id,label"`
	Label   string       `hcl:"label,optional"`
	Title   string       `hcl:"title,optional"`
	Path    string       `hcl:"path"`
	Block   *blockRule   `hcl:"block,block"`
	Pattern *patternRule `hcl:"pattern,block"`
}

type blockRule struct {
	Pattern   string `hcl:"pattern"`
	Delimiter string `hcl:"delimiter,optional"`
	Strip     string `hcl:"strip,optional"`
}

type patternRule struct {
	Regex string `hcl:"regex"`
}

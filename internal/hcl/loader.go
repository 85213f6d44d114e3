package hcl

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/seedsync/internal/config"
	"github.com/specialistvlad/seedsync/internal/ctxlog"
	"github.com/specialistvlad/seedsync/internal/fsutil"
	"github.com/zclconf/go-cty/cty"
)

//go:embed defaults.hcl
var defaultRules []byte

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	root string
}

// NewLoader creates a new HCL rules loader. Rules expressions can refer to
// root as `${root}` and to the process environment as `${env.NAME}`.
func NewLoader(root string) *Loader {
	return &Loader{root: root}
}

// Load reads a single .hcl file, or every .hcl file found under a directory,
// and merges their checks into one validated model.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing rules path %s: %w", path, err)
	}

	files := []string{path}
	if info.IsDir() {
		files, err = fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("error scanning rules directory %s: %w", path, err)
		}
		if len(files) == 0 {
			return nil, fmt.Errorf("no .hcl files found in %s", path)
		}
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	model := &config.Model{}
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}
		checks, err := l.decode(hclFile.Body, file)
		if err != nil {
			return nil, err
		}
		model.Checks = append(model.Checks, checks...)
	}

	if err := model.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules in %s: %w", path, err)
	}
	logger.Debug("HCL loading complete.", "checks", len(model.Checks))
	return model, nil
}

// Defaults returns the built-in rules.
func (l *Loader) Defaults(ctx context.Context) (*config.Model, error) {
	ctxlog.FromContext(ctx).Debug("Using built-in rules.")

	hclFile, diags := hclparse.NewParser().ParseHCL(defaultRules, "defaults.hcl")
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse built-in rules: %w", diags)
	}
	checks, err := l.decode(hclFile.Body, "defaults.hcl")
	if err != nil {
		return nil, err
	}

	model := &config.Model{Checks: checks}
	if err := model.Validate(); err != nil {
		return nil, fmt.Errorf("invalid built-in rules: %w", err)
	}
	return model, nil
}

func (l *Loader) decode(body hcl.Body, filename string) ([]*config.Check, error) {
	var root fileRoot
	if diags := gohcl.DecodeBody(body, l.evalContext(), &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	checks := make([]*config.Check, 0, len(root.Checks))
	for _, c := range root.Checks {
		checks = append(checks, translateCheck(c))
	}
	return checks, nil
}

func (l *Loader) evalContext() *hcl.EvalContext {
	env := make(map[string]cty.Value)
	for _, kv := range os.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			continue
		}
		env[name] = cty.StringVal(value)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"root": cty.StringVal(l.root),
			"env":  cty.ObjectVal(env),
		},
	}
}

package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/seedsync/internal/config"
	"github.com/specialistvlad/seedsync/internal/ctxlog"
	"github.com/specialistvlad/seedsync/internal/extract"
	"github.com/specialistvlad/seedsync/internal/hcl"
	"github.com/specialistvlad/seedsync/internal/report"
	"github.com/specialistvlad/seedsync/internal/tomlrules"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	logger   *slog.Logger
	root     string
	plans    []*plan
	reporter *report.Reporter
}

// plan is a check with its extraction rules compiled.
type plan struct {
	check    *config.Check
	extractA extract.Extractor
	extractB extract.Extractor
}

// NewApp loads the rules and compiles every extraction rule. The report is
// written to outW and logs to logW. Any error returned here is a
// configuration error: no source file has been read yet.
func NewApp(outW, logW io.Writer, cfg *Config) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	rules, err := loadRules(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load rules: %w", err)
	}
	logger.Debug("Rules loaded.", "checks", len(rules.Checks))

	plans := make([]*plan, 0, len(rules.Checks))
	for _, check := range rules.Checks {
		p, err := compile(check)
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}

	return &App{
		logger:   logger,
		root:     cfg.Root,
		plans:    plans,
		reporter: report.New(outW, cfg.Plain),
	}, nil
}

func loadRules(ctx context.Context, cfg *Config) (*config.Model, error) {
	hclLoader := hcl.NewLoader(cfg.Root)
	if cfg.RulesPath == "" {
		return hclLoader.Defaults(ctx)
	}

	var loader config.Loader = hclLoader
	if strings.EqualFold(filepath.Ext(cfg.RulesPath), ".toml") {
		loader = tomlrules.NewLoader()
	}
	return loader.Load(ctx, cfg.RulesPath)
}

func compile(check *config.Check) (*plan, error) {
	a, err := extract.New(check.A().Rule)
	if err != nil {
		return nil, fmt.Errorf("check %q source %q: %w", check.Name, check.A().ID, err)
	}
	b, err := extract.New(check.B().Rule)
	if err != nil {
		return nil, fmt.Errorf("check %q source %q: %w", check.Name, check.B().ID, err)
	}
	return &plan{check: check, extractA: a, extractB: b}, nil
}

// Checks returns the loaded checks in run order.
func (a *App) Checks() []*config.Check {
	out := make([]*config.Check, 0, len(a.plans))
	for _, p := range a.plans {
		out = append(out, p.check)
	}
	return out
}

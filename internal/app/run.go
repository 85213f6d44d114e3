package app

import (
	"context"
	"fmt"
	"os"

	"github.com/specialistvlad/seedsync/internal/compare"
	"github.com/specialistvlad/seedsync/internal/config"
	"github.com/specialistvlad/seedsync/internal/ctxlog"
	"github.com/specialistvlad/seedsync/internal/extract"
	"github.com/specialistvlad/seedsync/internal/fsutil"
	"golang.org/x/sync/errgroup"
)

// CheckResult is the outcome of one check.
type CheckResult struct {
	Check  *config.Check
	A, B   *extract.ConstantSet
	Result *compare.Result
}

// Verdict collects the results of every check in a run.
type Verdict struct {
	Checks []*CheckResult
}

// Synchronized reports whether every check passed.
func (v *Verdict) Synchronized() bool {
	for _, c := range v.Checks {
		if !c.Result.Synchronized() {
			return false
		}
	}
	return true
}

// Run executes every check in declaration order and writes its report. A
// source that cannot be read aborts the run with an error; the checks
// before it have already been reported.
func (a *App) Run(ctx context.Context) (*Verdict, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "checks", len(a.plans))

	verdict := &Verdict{Checks: make([]*CheckResult, 0, len(a.plans))}
	for _, p := range a.plans {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res, err := a.runCheck(ctxlog.With(ctx, "check", p.check.Name), p)
		if err != nil {
			return nil, err
		}
		verdict.Checks = append(verdict.Checks, res)
	}

	a.logger.Debug("App.Run method finished.", "synchronized", verdict.Synchronized())
	return verdict, nil
}

func (a *App) runCheck(ctx context.Context, p *plan) (*CheckResult, error) {
	logger := ctxlog.FromContext(ctx)
	srcA, srcB := p.check.A(), p.check.B()

	var textA, textB string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		textA, err = a.readSource(gctx, srcA)
		return err
	})
	g.Go(func() error {
		var err error
		textB, err = a.readSource(gctx, srcB)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	setA := p.extractA.Extract(textA)
	setB := p.extractB.Extract(textB)
	logger.Debug("Constants extracted.", srcA.ID, setA.Len(), srcB.ID, setB.Len())
	if setA.Len() == 0 {
		logger.Warn("No constants extracted; check the rule.", "source", srcA.ID)
	}
	if setB.Len() == 0 {
		logger.Warn("No constants extracted; check the rule.", "source", srcB.ID)
	}

	res := compare.Compare(setA, setB)
	a.reporter.Report(p.check, setA, setB, res)
	logger.Info("Check finished.", "synchronized", res.Synchronized(), "failures", len(res.Failures()), "extra", len(res.Extra))

	return &CheckResult{Check: p.check, A: setA, B: setB, Result: res}, nil
}

func (a *App) readSource(ctx context.Context, src *config.Source) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	path := fsutil.ResolvePath(a.root, src.Path)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s source %s: %w", src.Label, path, err)
	}
	ctxlog.FromContext(ctx).Debug("Source read.", "source", src.ID, "path", path, "bytes", len(data))
	return string(data), nil
}

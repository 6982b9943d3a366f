package runner

import (
	"context"

	"github.com/kardolus/reviewer/command"
)

// Strategy decides how a Runner invokes its commands and what happens when
// they fail.
type Strategy interface {
	Name() string
	Prepare(ctx context.Context, r *Runner)
	Run(ctx context.Context, r *Runner)
}

const (
	SilentName      = "silent"
	PassthroughName = "passthrough"
	VerboseName     = "verbose"
)

// StrategyFor maps a strategy name to a constructor. An empty name selects
// fallback.
func StrategyFor(name string, fallback func() Strategy) (func() Strategy, bool) {
	switch name {
	case "":
		return fallback, true
	case SilentName:
		return func() Strategy { return NewSilent() }, true
	case PassthroughName:
		return func() Strategy { return NewPassthrough() }, true
	case VerboseName:
		return func() Strategy { return NewVerbose() }, true
	default:
		return nil, false
	}
}

// Silent captures everything and only reports status. Rerunnable failures
// are escalated to a Verbose rerun so the tool's own diagnostics are shown.
type Silent struct{}

func NewSilent() *Silent { return &Silent{} }

func (s *Silent) Name() string { return SilentName }

func (s *Silent) Prepare(ctx context.Context, r *Runner) {
	r.prepareCaptured(ctx)
}

func (s *Silent) Run(ctx context.Context, r *Runner) {
	r.runCaptured(ctx, command.TotalSilence)

	switch {
	case r.Missing():
		r.deps.Output.MissingExecutable(r.tool)
	case r.Success():
		r.deps.Output.Success(r.timer)
	default:
		r.deps.Output.Failure(r.ExitStatus())
		if r.Rerunnable() {
			r.RetryWith(ctx, NewVerbose())
		}
	}
}

// Passthrough streams the tool's output from the start without any
// decoration.
type Passthrough struct{}

func NewPassthrough() *Passthrough { return &Passthrough{} }

func (p *Passthrough) Name() string { return PassthroughName }

func (p *Passthrough) Prepare(ctx context.Context, r *Runner) {
	r.prepareDirect(ctx, false)
}

func (p *Passthrough) Run(ctx context.Context, r *Runner) {
	r.runDirect(ctx, false)

	if r.Missing() {
		r.deps.Output.MissingExecutable(r.tool)
	}
}

// Verbose prints each command before streaming it. It is the end of the
// escalation chain.
type Verbose struct{}

func NewVerbose() *Verbose { return &Verbose{} }

func (v *Verbose) Name() string { return VerboseName }

func (v *Verbose) Prepare(ctx context.Context, r *Runner) {
	r.prepareDirect(ctx, true)
}

func (v *Verbose) Run(ctx context.Context, r *Runner) {
	r.runDirect(ctx, true)

	switch {
	case r.Missing():
		r.deps.Output.MissingExecutable(r.tool)
	case r.Success():
		r.deps.Output.Success(r.timer)
	default:
		r.deps.Output.Failure(r.ExitStatus())
	}
}

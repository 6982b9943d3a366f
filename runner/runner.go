package runner

import (
	"context"
	"strings"
	"time"

	"github.com/kardolus/reviewer/command"
	"github.com/kardolus/reviewer/report"
	"github.com/kardolus/reviewer/shell"
	"github.com/kardolus/reviewer/tool"
	"go.uber.org/zap"
)

// DefaultPrepareWindow is how long a prepare command stays fresh.
const DefaultPrepareWindow = 6 * time.Hour

// Phrases in stderr that mean the executable does not exist.
var missingPhrases = []string{
	"can't find executable",
	"executable file not found",
	"command not found",
}

type Deps struct {
	Shell    shell.Executor
	Output   Output
	Guidance Guidance
	Clock    Clock
}

type Settings struct {
	WorkDir       string
	PrepareWindow time.Duration
	// Timeout bounds each command. Zero means no limit.
	Timeout time.Duration
	Files   []string
	// PreviousSeed reuses the seed recorded by the last run.
	PreviousSeed bool
	SeedSource   func() int
}

// Runner carries one tool command through prepare, run and escalation.
type Runner struct {
	tool        *tool.Tool
	commandType command.Type
	strategy    Strategy
	deps        Deps
	settings    Settings

	command *command.Command
	timer   *shell.Timer
	result  shell.Result

	executed bool
	skipped  bool
}

// New fails only for configuration errors: an invalid command type or one
// the tool does not have.
func New(t *tool.Tool, commandType command.Type, strategy Strategy, deps Deps, settings Settings) (*Runner, error) {
	if settings.PrepareWindow <= 0 {
		settings.PrepareWindow = DefaultPrepareWindow
	}
	if deps.Clock == nil {
		deps.Clock = NewRealClock()
	}

	cmd, err := command.New(t, commandType, command.NoSilence, commandOptions(settings)...)
	if err != nil {
		return nil, err
	}

	return &Runner{
		tool:        t,
		commandType: commandType,
		strategy:    strategy,
		deps:        deps,
		settings:    settings,
		command:     cmd,
		timer:       shell.NewTimer(),
	}, nil
}

func commandOptions(settings Settings) []command.Option {
	opts := []command.Option{
		command.WithFiles(settings.Files, settings.WorkDir),
		command.WithSeedSource(settings.SeedSource),
	}
	if settings.PreviousSeed {
		opts = append(opts, command.WithPreviousSeed())
	}
	return opts
}

func (r *Runner) Tool() *tool.Tool { return r.tool }

func (r *Runner) Command() *command.Command { return r.command }

func (r *Runner) Strategy() Strategy { return r.strategy }

func (r *Runner) Timer() *shell.Timer { return r.timer }

func (r *Runner) ShellResult() shell.Result { return r.result }

// Attempts counts executions of the main command, including escalations.
func (r *Runner) Attempts() int { return r.timer.MainRuns() }

// Run executes the command and returns its exit status. Tool failures are
// part of the result, never errors.
func (r *Runner) Run(ctx context.Context) int {
	r.deps.Output.CurrentTool(r.tool, r.commandType)

	if r.command.Skippable() {
		r.skipped = true
		r.deps.Output.Skipped(r.tool)
		zap.S().Debugf("%s: no matching files, skipping", r.tool.Key())
		return 0
	}

	if r.shouldPrepare() {
		r.strategy.Prepare(ctx, r)
		r.tool.RecordPrepared(r.deps.Clock.Now())
	}

	r.strategy.Run(ctx, r)

	if !r.Missing() {
		if main, ok := r.timer.Main(); ok {
			r.tool.RecordDuration(main)
		}
		if !r.Success() {
			r.guide()
		}
	}

	return r.ExitStatus()
}

// RetryWith switches to strategy and runs the main command again under it.
func (r *Runner) RetryWith(ctx context.Context, strategy Strategy) {
	zap.S().Debugf("%s: escalating from %s to %s", r.tool.Key(), r.strategy.Name(), strategy.Name())
	r.strategy = strategy
	strategy.Run(ctx, r)
}

func (r *Runner) ExitStatus() int {
	if r.skipped {
		return 0
	}
	return r.result.ExitStatus
}

// Success applies the tool's exit status tolerance to review commands only.
func (r *Runner) Success() bool {
	if r.skipped {
		return true
	}
	if !r.executed || r.Missing() {
		return false
	}
	if r.commandType == command.Review {
		return r.result.ExitStatus <= r.tool.MaxExitStatus()
	}
	return r.result.ExitStatus == 0
}

func (r *Runner) Skipped() bool { return r.skipped }

func (r *Runner) Missing() bool {
	if !r.executed {
		return false
	}
	if r.result.ExitStatus == shell.ExecutableNotFound {
		return true
	}
	for _, phrase := range missingPhrases {
		if strings.Contains(r.result.Stderr, phrase) {
			return true
		}
	}
	return false
}

// TotalFailure means the process could not run properly; showing it again
// would not reveal anything new.
func (r *Runner) TotalFailure() bool {
	return r.executed && r.result.ExitStatus >= shell.CannotExecute && !r.Missing()
}

func (r *Runner) Rerunnable() bool {
	return r.executed && !r.Missing() && r.result.ExitStatus < shell.CannotExecute
}

// Result summarizes the run for the batch report.
func (r *Runner) Result() report.Result {
	key, name, commandType := r.tool.Key(), r.tool.Name(), string(r.commandType)

	switch {
	case r.skipped:
		return report.NewSkipped(key, name, commandType)
	case r.Missing():
		return report.NewMissing(key, name, commandType, r.command.String())
	}

	result := report.Result{
		ToolKey:     key,
		ToolName:    name,
		CommandType: commandType,
		Success:     r.Success(),
		ExitStatus:  r.result.ExitStatus,
		Duration:    r.timer.Total().Seconds(),
		Stdout:      report.StringPtr(r.result.Stdout),
		Stderr:      report.StringPtr(r.result.Stderr),
	}
	if r.executed {
		result.CommandString = report.StringPtr(r.command.String())
	}
	return result
}

func (r *Runner) shouldPrepare() bool {
	return r.commandType != command.Prepare && r.tool.PrepareDue(r.deps.Clock.Now(), r.settings.PrepareWindow)
}

func (r *Runner) guide() {
	if r.TotalFailure() {
		r.deps.Guidance.Unrecoverable(r.tool, r.result.Stderr)
		return
	}
	r.deps.Guidance.SyntaxGuidance(r.tool)
}

func (r *Runner) runCaptured(ctx context.Context, verbosity command.Verbosity) {
	r.command.SetVerbosity(verbosity)
	cmd := r.command.String()

	stop := r.deps.Output.Progress(r.tool)
	r.timer.RecordMain(func() {
		r.result = r.capture(ctx, cmd)
	})
	stop()

	r.executed = true
}

func (r *Runner) runDirect(ctx context.Context, echo bool) {
	r.command.SetVerbosity(command.NoSilence)
	cmd := r.command.String()

	if echo {
		r.deps.Output.CommandLine(cmd)
	}
	r.timer.RecordMain(func() {
		r.result = r.direct(ctx, cmd)
	})

	r.executed = true
}

// The prepare outcome is deliberately ignored; the tool's own run reports
// any real problem.
func (r *Runner) prepareCaptured(ctx context.Context) {
	cmd, ok := r.prepareCommand(command.TotalSilence)
	if !ok {
		return
	}
	r.timer.RecordPrep(func() {
		r.capture(ctx, cmd)
	})
}

func (r *Runner) prepareDirect(ctx context.Context, echo bool) {
	cmd, ok := r.prepareCommand(command.NoSilence)
	if !ok {
		return
	}
	if echo {
		r.deps.Output.CommandLine(cmd)
	}
	r.timer.RecordPrep(func() {
		r.direct(ctx, cmd)
	})
}

func (r *Runner) prepareCommand(verbosity command.Verbosity) (string, bool) {
	cmd, err := command.New(r.tool, command.Prepare, verbosity, command.WithSeedSource(r.settings.SeedSource))
	if err != nil {
		zap.S().Debugf("%s: %v", r.tool.Key(), err)
		return "", false
	}
	return cmd.String(), true
}

func (r *Runner) capture(ctx context.Context, cmd string) shell.Result {
	ctx, cancel := r.bounded(ctx)
	defer cancel()
	zap.S().Debugf("%s: capturing %q", r.tool.Key(), cmd)
	return r.deps.Shell.Capture(ctx, cmd)
}

func (r *Runner) direct(ctx context.Context, cmd string) shell.Result {
	ctx, cancel := r.bounded(ctx)
	defer cancel()
	zap.S().Debugf("%s: streaming %q", r.tool.Key(), cmd)
	return r.deps.Shell.Direct(ctx, cmd)
}

func (r *Runner) bounded(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.settings.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.settings.Timeout)
}

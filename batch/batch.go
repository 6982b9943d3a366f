package batch

import (
	"context"

	"github.com/kardolus/reviewer/command"
	"github.com/kardolus/reviewer/report"
	"github.com/kardolus/reviewer/runner"
	"github.com/kardolus/reviewer/shell"
	"github.com/kardolus/reviewer/tool"
	"go.uber.org/zap"
)

// Batch runs one command type across tools in configured order and stops at
// the first tool that fails.
type Batch struct {
	commandType command.Type
	tools       []*tool.Tool
	deps        runner.Deps
	settings    runner.Settings
	strategy    func() runner.Strategy
	targets     map[string][]string
}

// New builds a batch. A nil strategy factory means Silent.
func New(commandType command.Type, tools []*tool.Tool, deps runner.Deps, settings runner.Settings, strategy func() runner.Strategy) *Batch {
	if strategy == nil {
		strategy = func() runner.Strategy { return runner.NewSilent() }
	}
	return &Batch{
		commandType: commandType,
		tools:       tools,
		deps:        deps,
		settings:    settings,
		strategy:    strategy,
	}
}

// WithTargets sets the files each tool is aimed at, keyed by tool key. A tool
// with an entry gets exactly those files, none meaning an untargeted run.
// Tools without an entry use the files from the shared settings.
func (b *Batch) WithTargets(targets map[string][]string) *Batch {
	b.targets = targets
	return b
}

// Tools returns the tools that have the batch's command type configured.
func (b *Batch) Tools() []*tool.Tool {
	var result []*tool.Tool
	for _, t := range b.tools {
		if t.HasCommand(string(b.commandType)) {
			result = append(result, t)
		}
	}
	return result
}

// Run returns an error only for configuration problems. Tool failures are
// reported through the Report.
func (b *Batch) Run(ctx context.Context) (*report.Report, error) {
	tools := b.Tools()
	for _, t := range tools {
		t.ResetStatus()
	}

	rep := report.New()
	timer := shell.NewTimer()

	var err error
	timer.RecordMain(func() {
		err = b.run(ctx, tools, rep)
	})
	if err != nil {
		return nil, err
	}

	total, _ := timer.Main()
	rep.RecordDuration(total.Seconds())
	return rep, nil
}

func (b *Batch) run(ctx context.Context, tools []*tool.Tool, rep *report.Report) error {
	for i, t := range tools {
		r, err := runner.New(t, b.commandType, b.strategy(), b.deps, b.settingsFor(t))
		if err != nil {
			return err
		}

		r.Run(ctx)
		result := r.Result()
		rep.Add(result)

		if result.IsMissing() {
			continue
		}
		if !result.IsSkipped() {
			t.RecordOutcome(result.Success, r.FailedFiles())
		}

		if !result.Success {
			if remaining := len(tools) - i - 1; remaining > 0 {
				zap.S().Debugf("%s failed, skipping %d remaining tool(s)", t.Key(), remaining)
			}
			return nil
		}
		if err := ctx.Err(); err != nil {
			zap.S().Debugf("batch interrupted after %s: %v", t.Key(), err)
			return nil
		}
	}
	return nil
}

func (b *Batch) settingsFor(t *tool.Tool) runner.Settings {
	settings := b.settings
	if files, ok := b.targets[t.Key()]; ok {
		settings.Files = files
	}
	return settings
}

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/kardolus/reviewer/batch"
	"github.com/kardolus/reviewer/command"
	"github.com/kardolus/reviewer/config"
	"github.com/kardolus/reviewer/history"
	"github.com/kardolus/reviewer/internal"
	"github.com/kardolus/reviewer/output"
	"github.com/kardolus/reviewer/runner"
	"github.com/kardolus/reviewer/shell"
	"github.com/kardolus/reviewer/tool"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// failedKeyword selects the tools that failed last time, targeted at the
// files they reported.
const failedKeyword = "failed"

type app struct {
	settings config.Settings
	tools    []*tool.Tool
	printer  *output.Printer
	stdout   io.Writer
	stderr   io.Writer
}

// newApp loads configuration. Every error it returns is a configuration
// error and ends the process before any tool runs.
func newApp(v *viper.Viper, stdout, stderr io.Writer) (*app, error) {
	if jsonMode {
		internal.SetLogOutput(stderr)
	}
	if debugMode {
		internal.SetAllowedLogLevels(zapcore.InfoLevel, zapcore.DebugLevel)
	} else {
		internal.InitLogger()
	}

	manager := config.NewManager(config.New()).WithEnvironment(v)
	tools, err := manager.LoadTools()
	if err != nil {
		return nil, err
	}

	historyPath := manager.Settings.HistoryFile
	if historyPath == "" {
		if historyPath, err = internal.GetHistoryPath(manager.Settings.WorkDir); err != nil {
			return nil, fmt.Errorf("resolve history file: %w", err)
		}
	}
	zap.S().Debugf("config %s, history %s", manager.ConfigPath(), historyPath)

	// Status lines move to stderr when stdout is reserved for JSON.
	statusOut := stdout
	if jsonMode {
		statusOut = stderr
	}

	return &app{
		settings: manager.Settings,
		tools:    tool.FromConfig(tools, history.NewFileStore(historyPath)),
		printer:  output.New(statusOut),
		stdout:   stdout,
		stderr:   stderr,
	}, nil
}

func (a *app) run(ctx context.Context, ct command.Type, keywords []string) error {
	sel, err := a.resolve(keywords)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	strategy, err := a.strategy(len(sel.tools))
	if err != nil {
		return err
	}

	streamOut := a.stdout
	if jsonMode {
		streamOut = a.stderr
	}

	deps := runner.Deps{
		Shell:    shell.New().WithWorkDir(a.settings.WorkDir).WithOutput(streamOut),
		Output:   a.printer,
		Guidance: a.printer,
		Clock:    runner.NewRealClock(),
	}
	settings := runner.Settings{
		WorkDir:       a.settings.WorkDir,
		PrepareWindow: a.settings.PrepareWindow,
		Timeout:       a.settings.Timeout,
		Files:         sel.files,
		PreviousSeed:  sel.previousSeed,
	}

	rep, err := batch.New(ct, sel.tools, deps, settings, strategy).WithTargets(sel.targets).Run(ctx)
	if err != nil {
		return err
	}

	switch {
	case jsonMode:
		if err := output.WriteJSON(a.stdout, rep); err != nil {
			return err
		}
	case len(sel.tools) != 1:
		a.printer.Summary(rep)
	}

	if status := rep.MaxExitStatus(); status != 0 {
		return &exitStatusError{status: status}
	}
	return nil
}

type selection struct {
	tools []*tool.Tool
	files []string
	// targets holds per-tool files for failed reruns, keyed by tool key.
	targets      map[string][]string
	previousSeed bool
}

// resolve turns keywords into tools. Anything that is neither a tool key, a
// tag nor the failed keyword must be an existing file to target.
func (a *app) resolve(keywords []string) (selection, error) {
	var (
		names  []string
		files  []string
		failed bool
	)
	for _, keyword := range keywords {
		switch {
		case keyword == failedKeyword:
			failed = true
		case len(tool.Unknown(a.tools, []string{keyword})) == 0:
			names = append(names, keyword)
		case a.isFile(keyword):
			files = append(files, keyword)
		default:
			return selection{}, fmt.Errorf("'%s' is not a configured tool or tag", keyword)
		}
	}

	candidates := tool.Select(a.tools, names)
	if !failed {
		return selection{tools: candidates, files: files}, nil
	}

	// Each failed tool reruns against its own failures. One that recorded
	// none runs in full.
	result := selection{files: files, targets: make(map[string][]string), previousSeed: true}
	for _, t := range candidates {
		if t.LastStatus() != history.StatusFailed {
			continue
		}
		result.tools = append(result.tools, t)

		var targets []string
		targets = append(targets, files...)
		targets = append(targets, t.LastFailedFiles()...)
		result.targets[t.Key()] = targets
	}
	return result, nil
}

func (a *app) strategy(toolCount int) (func() runner.Strategy, error) {
	name := a.settings.Strategy
	if rawMode {
		name = runner.PassthroughName
	}
	if jsonMode && name == "" {
		name = runner.SilentName
	}

	fallback := func() runner.Strategy { return runner.NewSilent() }
	if toolCount == 1 {
		fallback = func() runner.Strategy { return runner.NewVerbose() }
	}

	factory, ok := runner.StrategyFor(name, fallback)
	if !ok {
		return nil, fmt.Errorf("'%s' is not a valid strategy. Valid strategies: %s", name,
			strings.Join([]string{runner.SilentName, runner.PassthroughName, runner.VerboseName}, ", "))
	}
	return factory, nil
}

func (a *app) isFile(keyword string) bool {
	path := keyword
	if !filepath.IsAbs(path) {
		path = filepath.Join(a.settings.WorkDir, path)
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

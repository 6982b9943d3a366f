package runner

import (
	"github.com/kardolus/reviewer/command"
	"github.com/kardolus/reviewer/shell"
	"github.com/kardolus/reviewer/tool"
)

//go:generate mockgen -destination=outputmocks_test.go -package=runner_test github.com/kardolus/reviewer/runner Output

// Output receives status signals while a tool runs. Rendering is up to the
// implementation.
type Output interface {
	CurrentTool(t *tool.Tool, commandType command.Type)
	CommandLine(command string)
	Success(timer *shell.Timer)
	Failure(exitStatus int)
	Skipped(t *tool.Tool)
	MissingExecutable(t *tool.Tool)
	// Progress starts a progress indicator for a captured run and returns
	// the function that stops it.
	Progress(t *tool.Tool) func()
}

//go:generate mockgen -destination=guidancemocks_test.go -package=runner_test github.com/kardolus/reviewer/runner Guidance

// Guidance surfaces help after a tool failed for a reason other than a
// missing executable.
type Guidance interface {
	Unrecoverable(t *tool.Tool, stderr string)
	SyntaxGuidance(t *tool.Tool)
}

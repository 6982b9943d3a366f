package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/creack/pty"
	"go.uber.org/zap"
)

const waitDelay = 5 * time.Second

// Executor runs an assembled command string. Failures to run at all are
// reported through the exit status, never as errors.
type Executor interface {
	// Capture runs the command with stdout and stderr captured separately.
	Capture(ctx context.Context, command string) Result
	// Direct runs the command attached to a terminal, streaming its output
	// while also collecting it.
	Direct(ctx context.Context, command string) Result
}

// Ensure Shell implements the Executor interface
var _ Executor = &Shell{}

type Shell struct {
	workDir string
	out     io.Writer
}

func New() *Shell {
	return &Shell{out: os.Stdout}
}

func (s *Shell) WithWorkDir(workDir string) *Shell {
	s.workDir = workDir
	return s
}

// WithOutput sets where Direct streams output.
func (s *Shell) WithOutput(out io.Writer) *Shell {
	s.out = out
	return s
}

func (s *Shell) Capture(ctx context.Context, command string) Result {
	cmd := s.command(ctx, command)
	ownGroup(cmd)

	var outb, errb bytes.Buffer
	cmd.Stdout = &outb
	cmd.Stderr = &errb

	err := cmd.Run()

	result := Result{
		Stdout:     outb.String(),
		Stderr:     errb.String(),
		ExitStatus: exitStatus(err),
	}
	if result.Stderr == "" && err != nil && result.ExitStatus >= CannotExecute && !isExit(err) {
		result.Stderr = err.Error()
	}

	zap.S().Debugf("captured %q exited %d", command, result.ExitStatus)
	return result
}

// Direct falls back to plain pipes when no pseudo-terminal is available.
// A read error once the child exits is expected and ignored.
func (s *Shell) Direct(ctx context.Context, command string) Result {
	cmd := s.command(ctx, command)

	var buf bytes.Buffer
	sink := io.MultiWriter(s.out, &buf)

	tty, err := pty.Start(cmd)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return Result{Stderr: err.Error(), ExitStatus: ExecutableNotFound}
		}
		zap.S().Debugf("no pty for %q, streaming through pipes: %v", command, err)
		return s.stream(ctx, command, sink, &buf)
	}
	defer tty.Close()

	_, _ = io.Copy(sink, tty)

	status := exitStatus(cmd.Wait())
	zap.S().Debugf("streamed %q exited %d", command, status)

	return Result{Stdout: buf.String(), ExitStatus: status}
}

func (s *Shell) stream(ctx context.Context, command string, sink io.Writer, buf *bytes.Buffer) Result {
	cmd := s.command(ctx, command)
	ownGroup(cmd)
	cmd.Stdout = sink
	cmd.Stderr = sink

	err := cmd.Run()
	result := Result{Stdout: buf.String(), ExitStatus: exitStatus(err)}
	if err != nil && !isExit(err) {
		result.Stderr = err.Error()
	}
	return result
}

func (s *Shell) command(ctx context.Context, command string) *exec.Cmd {
	cmd := shellCommand(ctx, command)
	cmd.Dir = s.workDir
	cmd.Cancel = killGroup(cmd)
	cmd.WaitDelay = waitDelay
	return cmd
}

func isExit(err error) bool {
	var ee *exec.ExitError
	return errors.As(err, &ee)
}

// exitStatus maps a Run/Wait error to an exit status. Processes killed by a
// signal report Terminated; executables that cannot be found or started
// report the matching sentinel.
func exitStatus(err error) int {
	if err == nil {
		return 0
	}

	var ee *exec.ExitError
	if errors.As(err, &ee) {
		if code := ee.ExitCode(); code >= 0 {
			return code
		}
		return Terminated
	}

	switch {
	case errors.Is(err, exec.ErrNotFound), errors.Is(err, os.ErrNotExist):
		return ExecutableNotFound
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return Terminated
	default:
		return CannotExecute
	}
}

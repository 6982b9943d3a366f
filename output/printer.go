package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/kardolus/reviewer/command"
	"github.com/kardolus/reviewer/runner"
	"github.com/kardolus/reviewer/shell"
	"github.com/kardolus/reviewer/tool"
	"golang.org/x/term"
)

// Ensure Printer implements both runner collaborators
var (
	_ runner.Output   = &Printer{}
	_ runner.Guidance = &Printer{}
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "⚠"
	iconPending = "·"
)

const defaultInterval = 200 * time.Millisecond

// Printer renders runner signals for a human reading a terminal.
type Printer struct {
	out      io.Writer
	styles   styles
	terminal bool
	interval time.Duration
}

func New(out io.Writer) *Printer {
	return &Printer{
		out:      out,
		styles:   newStyles(lipgloss.NewRenderer(out)),
		terminal: isTerminal(out),
		interval: defaultInterval,
	}
}

// WithTerminal overrides terminal detection, which gates the progress
// indicator.
func (p *Printer) WithTerminal(terminal bool) *Printer {
	p.terminal = terminal
	return p
}

func (p *Printer) WithInterval(interval time.Duration) *Printer {
	if interval > 0 {
		p.interval = interval
	}
	return p
}

func (p *Printer) CurrentTool(t *tool.Tool, commandType command.Type) {
	p.printf("%s %s\n", p.styles.primary.Render(t.Name()), p.styles.muted.Render(string(commandType)))
}

func (p *Printer) CommandLine(cmd string) {
	p.printf("%s\n", p.styles.muted.Render("$ "+cmd))
}

func (p *Printer) Success(timer *shell.Timer) {
	line := fmt.Sprintf("%s %s", p.styles.success.Render(iconSuccess), formatDuration(timer.Total()))
	if percent, ok := timer.PrepPercent(); ok {
		line += p.styles.muted.Render(fmt.Sprintf(" (%d%% prepare)", percent))
	}
	p.printf("%s\n", line)
}

func (p *Printer) Failure(exitStatus int) {
	p.printf("%s %s\n", p.styles.err.Render(iconError), p.styles.err.Render(fmt.Sprintf("exit status %d", exitStatus)))
}

func (p *Printer) Skipped(t *tool.Tool) {
	p.printf("%s %s\n", p.styles.muted.Render(iconPending), p.styles.muted.Render("no matching files for "+t.Name()))
}

func (p *Printer) MissingExecutable(t *tool.Tool) {
	p.printf("%s %s\n", p.styles.warning.Render(iconWarning), p.styles.warning.Render(t.Name()+" is not installed"))
	if t.HasCommand(string(command.Install)) {
		p.printf("  install it with %s\n", p.styles.bold.Render("rvw install "+t.Key()))
	} else if link := t.Link("install"); link != "" {
		p.printf("  installation instructions: %s\n", link)
	}
}

// Unrecoverable shows stderr as-is since a process that could not run has
// nothing better to offer.
func (p *Printer) Unrecoverable(t *tool.Tool, stderr string) {
	p.printf("%s %s\n", p.styles.err.Render(iconError), p.styles.err.Render(t.Name()+" could not run"))
	if stderr = strings.TrimSpace(stderr); stderr != "" {
		p.printf("%s\n", stderr)
	}
	p.printf("  check the %s command in your configuration\n", p.styles.bold.Render(t.Key()))
}

// Link names consulted when a tool reports offenses, in display order.
var guidanceLinks = []struct{ name, label string }{
	{"disable_syntax", "disable a rule"},
	{"ignore_syntax", "ignore a file"},
	{"usage", "usage"},
}

// SyntaxGuidance points at the tool's documentation for disabling or
// ignoring the rules it reported.
func (p *Printer) SyntaxGuidance(t *tool.Tool) {
	var lines []string
	for _, link := range guidanceLinks {
		if url := t.Link(link.name); url != "" {
			lines = append(lines, fmt.Sprintf("  %s: %s", link.label, url))
		}
	}
	if len(lines) == 0 {
		return
	}

	p.printf("%s\n", p.styles.muted.Render(t.Name()+" documentation:"))
	for _, line := range lines {
		p.printf("%s\n", line)
	}
}

func (p *Printer) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%.2fs", d.Seconds())
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

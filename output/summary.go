package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/kardolus/reviewer/command"
	"github.com/kardolus/reviewer/report"
	"github.com/kardolus/reviewer/tool"
)

// Summary prints the totals of a batch run and names any tools that were
// not installed.
func (p *Printer) Summary(rep *report.Report) {
	if rep.Empty() {
		p.printf("%s\n", p.styles.muted.Render("no tools to run"))
		return
	}

	s := rep.Summary()
	line := fmt.Sprintf("%d tool(s): %d passed, %d failed", s.Total, s.Passed, s.Failed)
	if s.Missing > 0 {
		line += fmt.Sprintf(", %d missing", s.Missing)
	}
	line += fmt.Sprintf(" in %.2fs", s.Duration)

	if rep.Success() {
		p.printf("\n%s %s\n", p.styles.success.Render(iconSuccess), line)
	} else {
		p.printf("\n%s %s\n", p.styles.err.Render(iconError), line)
	}

	for _, missing := range rep.MissingResults() {
		p.printf("  %s %s\n", p.styles.warning.Render(iconWarning), missing.ToolName+" is not installed")
	}
}

// Tools lists configured tools with their command types and tags.
func (p *Printer) Tools(tools []*tool.Tool) {
	for _, t := range tools {
		types := command.ConfiguredTypes(t)
		names := make([]string, 0, len(types))
		for _, ct := range types {
			names = append(names, string(ct))
		}

		name := p.styles.bold.Render(t.Key())
		if t.Disabled() {
			name += p.styles.muted.Render(" (disabled)")
		}
		p.printf("%s  %s\n", name, p.styles.muted.Render(strings.Join(names, ", ")))
		if tags := t.Tags(); len(tags) > 0 {
			p.printf("  tags: %s\n", strings.Join(tags, ", "))
		}
		if description := t.Description(); description != "" {
			p.printf("  %s\n", description)
		}
	}
}

// WriteJSON writes the report as indented JSON.
func WriteJSON(w io.Writer, rep *report.Report) error {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

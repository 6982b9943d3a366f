package output

import "github.com/charmbracelet/lipgloss"

var (
	colorSuccess = lipgloss.AdaptiveColor{Light: "#00A86B", Dark: "#73D16C"}
	colorError   = lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF6B6B"}
	colorWarning = lipgloss.AdaptiveColor{Light: "#FF8C00", Dark: "#FFAA44"}
	colorPrimary = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#888888", Dark: "#626262"}
)

type styles struct {
	success lipgloss.Style
	err     lipgloss.Style
	warning lipgloss.Style
	primary lipgloss.Style
	muted   lipgloss.Style
	bold    lipgloss.Style
}

// newStyles binds the palette to a renderer so color is only emitted when
// the destination supports it.
func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		success: r.NewStyle().Foreground(colorSuccess),
		err:     r.NewStyle().Foreground(colorError),
		warning: r.NewStyle().Foreground(colorWarning),
		primary: r.NewStyle().Foreground(colorPrimary).Bold(true),
		muted:   r.NewStyle().Foreground(colorMuted),
		bold:    r.NewStyle().Bold(true),
	}
}

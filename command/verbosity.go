package command

import (
	"fmt"
	"runtime"
)

// Verbosity is how much of a tool's own output is allowed through. Levels
// are ordered from the most suppressed to the least.
type Verbosity int

const (
	TotalSilence Verbosity = iota
	ToolSilence
	NoSilence
)

var verbosityNames = map[Verbosity]string{
	TotalSilence: "total_silence",
	ToolSilence:  "tool_silence",
	NoSilence:    "no_silence",
}

func ParseVerbosity(name string) (Verbosity, error) {
	for v, n := range verbosityNames {
		if n == name {
			return v, nil
		}
	}
	return 0, fmt.Errorf("invalid verbosity %q", name)
}

func (v Verbosity) String() string {
	if name, ok := verbosityNames[v]; ok {
		return name
	}
	return fmt.Sprintf("verbosity(%d)", int(v))
}

// Tokens returns the command suffix for this level. Each level's tokens are
// a superset of the tokens of every louder level.
func (v Verbosity) Tokens(quietOption string) []string {
	switch v {
	case TotalSilence:
		return []string{quietOption, "> " + NullDevice()}
	case ToolSilence:
		return []string{quietOption}
	default:
		return []string{}
	}
}

func NullDevice() string {
	if runtime.GOOS == "windows" {
		return "NUL"
	}
	return "/dev/null"
}

package command

import (
	"fmt"
	"strings"
)

// InvalidTypeError is returned for command types other than install,
// prepare, review and format.
type InvalidTypeError struct {
	Type string
}

func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("'%s' is not a valid command type. Valid types: %s", e.Type, strings.Join(typeNames(), ", "))
}

// NotConfiguredError is returned when a tool has no command of the
// requested type. Configured lists the types the tool does have.
type NotConfiguredError struct {
	Tool       string
	Type       Type
	Configured []Type
}

func (e *NotConfiguredError) Error() string {
	names := make([]string, 0, len(e.Configured))
	for _, t := range e.Configured {
		names = append(names, string(t))
	}

	configured := "none"
	if len(names) > 0 {
		configured = strings.Join(names, ", ")
	}

	return fmt.Sprintf("'%s' does not have a '%s' command configured. Configured commands: %s", e.Tool, e.Type, configured)
}

package shell

// Exit statuses synthesized or interpreted by the executor.
const (
	CannotExecute      = 126
	ExecutableNotFound = 127
	Terminated         = 130
)

// Result is the outcome of one subprocess invocation. Stderr is empty when
// output was streamed through a terminal, which merges both streams into
// Stdout.
type Result struct {
	Stdout     string
	Stderr     string
	ExitStatus int
}

func (r Result) Success() bool {
	return r.ExitStatus == 0
}

// Output merges stdout and stderr for scanning.
func (r Result) Output() string {
	switch {
	case r.Stderr == "":
		return r.Stdout
	case r.Stdout == "":
		return r.Stderr
	default:
		return r.Stdout + "\n" + r.Stderr
	}
}

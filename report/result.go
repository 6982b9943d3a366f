package report

// Result summarizes one tool's run. Exactly one of a normal execution,
// Skipped or Missing describes it; the flags are nil for normal executions.
type Result struct {
	ToolKey       string  `json:"tool_key"`
	ToolName      string  `json:"tool_name"`
	CommandType   string  `json:"command_type"`
	CommandString *string `json:"command_string,omitempty"`
	Success       bool    `json:"success"`
	ExitStatus    int     `json:"exit_status"`
	Duration      float64 `json:"duration"`
	Stdout        *string `json:"stdout,omitempty"`
	Stderr        *string `json:"stderr,omitempty"`
	Skipped       *bool   `json:"skipped,omitempty"`
	Missing       *bool   `json:"missing,omitempty"`
}

const missingExitStatus = 127

// NewSkipped reports a tool that had nothing to run against.
func NewSkipped(toolKey, toolName, commandType string) Result {
	return Result{
		ToolKey:     toolKey,
		ToolName:    toolName,
		CommandType: commandType,
		Success:     true,
		ExitStatus:  0,
		Duration:    0,
		Skipped:     boolPtr(true),
	}
}

// NewMissing reports a tool whose executable could not be found.
func NewMissing(toolKey, toolName, commandType, commandString string) Result {
	return Result{
		ToolKey:       toolKey,
		ToolName:      toolName,
		CommandType:   commandType,
		CommandString: StringPtr(commandString),
		Success:       false,
		ExitStatus:    missingExitStatus,
		Duration:      0,
		Missing:       boolPtr(true),
	}
}

func (r Result) IsSkipped() bool {
	return r.Skipped != nil && *r.Skipped
}

func (r Result) IsMissing() bool {
	return r.Missing != nil && *r.Missing
}

// Executed reports whether the tool actually ran.
func (r Result) Executed() bool {
	return !r.IsSkipped() && !r.IsMissing()
}

// StringPtr returns nil for empty strings so they are dropped when
// serialized.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func boolPtr(b bool) *bool {
	return &b
}

package command

import (
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/kardolus/reviewer/tool"
	"go.uber.org/zap"
)

// SeedPlaceholder is replaced by a random seed wherever it appears in an
// assembled command.
const SeedPlaceholder = "$SEED"

const maxSeed = 100_000

// Command is the executable form of one tool command at one verbosity.
type Command struct {
	tool        *tool.Tool
	commandType Type
	verbosity   Verbosity

	requestedFiles []string
	targetFiles    []string

	seedSource   func() int
	previousSeed bool
	seed         *int

	memo string
}

type Option func(*Command)

// WithFiles targets the command at files. workDir resolves mapped test files.
func WithFiles(files []string, workDir string) Option {
	return func(c *Command) {
		c.requestedFiles = files
		if len(files) > 0 {
			c.targetFiles = c.tool.TargetFiles(files, workDir)
		}
	}
}

func WithSeedSource(source func() int) Option {
	return func(c *Command) {
		if source != nil {
			c.seedSource = source
		}
	}
}

// WithPreviousSeed reuses the seed recorded by the previous run when there is
// one, so a rerun of failures reproduces the same ordering.
func WithPreviousSeed() Option {
	return func(c *Command) { c.previousSeed = true }
}

func New(t *tool.Tool, commandType Type, verbosity Verbosity, opts ...Option) (*Command, error) {
	if !commandType.Valid() {
		return nil, &InvalidTypeError{Type: string(commandType)}
	}
	if !t.HasCommand(string(commandType)) {
		return nil, &NotConfiguredError{Tool: t.Name(), Type: commandType, Configured: ConfiguredTypes(t)}
	}

	c := &Command{
		tool:        t,
		commandType: commandType,
		verbosity:   verbosity,
		seedSource:  func() int { return rand.IntN(maxSeed) },
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func (c *Command) Tool() *tool.Tool { return c.tool }

func (c *Command) Type() Type { return c.commandType }

func (c *Command) Verbosity() Verbosity { return c.verbosity }

// SetVerbosity changes the verbosity and drops the memoized string. A seed
// already chosen is kept.
func (c *Command) SetVerbosity(v Verbosity) {
	if v == c.verbosity {
		return
	}
	c.verbosity = v
	c.memo = ""
}

func (c *Command) RequestedFiles() []string { return c.requestedFiles }

func (c *Command) TargetFiles() []string { return c.targetFiles }

// Skippable reports whether files were requested but none of them apply to
// this tool, leaving nothing to run against.
func (c *Command) Skippable() bool {
	return len(c.requestedFiles) > 0 && len(c.targetFiles) == 0 && c.acceptsFiles()
}

func (c *Command) Seed() (int, bool) {
	if c.seed == nil {
		return 0, false
	}
	return *c.seed, true
}

func (c *Command) String() string {
	if c.memo != "" {
		return c.memo
	}

	result := join(
		c.envPrefix(),
		c.tool.Command(string(c.commandType)),
		c.flags(),
		c.files(),
		strings.Join(c.verbosity.Tokens(c.tool.QuietOption()), " "),
	)

	if strings.Contains(result, SeedPlaceholder) {
		result = strings.ReplaceAll(result, SeedPlaceholder, strconv.Itoa(c.resolveSeed()))
	}

	c.memo = result
	return result
}

func (c *Command) resolveSeed() int {
	if c.seed != nil {
		return *c.seed
	}

	seed, ok := 0, false
	if c.previousSeed {
		seed, ok = c.tool.LastSeed()
	}
	if !ok {
		seed = c.seedSource()
	}

	c.seed = &seed
	c.tool.RecordSeed(seed)
	zap.S().Debugf("%s seed %d", c.tool.Key(), seed)

	return seed
}

func (c *Command) envPrefix() string {
	var parts []string
	for _, pair := range c.tool.Env() {
		key := strings.TrimSpace(pair.Key)
		if key == "" || pair.Value == "" {
			continue
		}
		parts = append(parts, strings.ToUpper(key)+"="+quote(pair.Value))
	}
	return strings.Join(parts, " ")
}

func (c *Command) flags() string {
	if c.commandType != Review {
		return ""
	}

	var parts []string
	for _, pair := range c.tool.Flags() {
		key := strings.TrimSpace(pair.Key)
		if key == "" {
			continue
		}
		dash := "--"
		if len(key) == 1 {
			dash = "-"
		}
		parts = append(parts, strings.TrimSpace(dash+key+" "+quote(pair.Value)))
	}
	return strings.Join(parts, " ")
}

func (c *Command) acceptsFiles() bool {
	return (c.commandType == Review || c.commandType == Format) && c.tool.SupportsFiles()
}

func (c *Command) files() string {
	if !c.acceptsFiles() || len(c.targetFiles) == 0 {
		return ""
	}
	flag, separator := c.tool.FileFlag()
	return flag + " " + strings.Join(c.targetFiles, separator)
}

func quote(value string) string {
	if strings.Contains(value, " ") {
		return "'" + value + "'"
	}
	return value
}

func join(segments ...string) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

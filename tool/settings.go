package tool

import (
	"strings"

	"github.com/kardolus/reviewer/config"
	"github.com/spf13/cast"
)

const (
	quietOptionKey   = "quiet_option"
	maxExitStatusKey = "max_exit_status"
)

// Settings is a read-only view over one tool's configuration.
type Settings struct {
	key string
	cfg config.ToolConfig
}

func NewSettings(key string, cfg config.ToolConfig) Settings {
	return Settings{key: key, cfg: cfg}
}

func (s Settings) Key() string { return s.key }

func (s Settings) Name() string {
	if s.cfg.Name == "" {
		return s.key
	}
	return s.cfg.Name
}

func (s Settings) Description() string { return s.cfg.Description }

func (s Settings) Disabled() bool { return s.cfg.Disabled }

func (s Settings) Tags() []string {
	if s.cfg.Tags == nil {
		return []string{}
	}
	return s.cfg.Tags
}

func (s Settings) HasTag(tag string) bool {
	for _, t := range s.cfg.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (s Settings) Env() config.Pairs {
	if s.cfg.Env == nil {
		return config.Pairs{}
	}
	return s.cfg.Env
}

func (s Settings) Flags() config.Pairs {
	if s.cfg.Flags == nil {
		return config.Pairs{}
	}
	return s.cfg.Flags
}

func (s Settings) Links() map[string]string {
	if s.cfg.Links == nil {
		return map[string]string{}
	}
	return s.cfg.Links
}

func (s Settings) Link(name string) string {
	return s.cfg.Links[name]
}

// Commands returns the raw commands mapping, including the non-command keys
// quiet_option and max_exit_status, in configured order.
func (s Settings) Commands() config.Pairs {
	if s.cfg.Commands == nil {
		return config.Pairs{}
	}
	return s.cfg.Commands
}

func (s Settings) Command(commandType string) string {
	value, _ := s.cfg.Commands.Get(commandType)
	return value
}

func (s Settings) HasCommand(commandType string) bool {
	return strings.TrimSpace(s.Command(commandType)) != ""
}

func (s Settings) QuietOption() string {
	return s.Command(quietOptionKey)
}

func (s Settings) MaxExitStatus() int {
	value, ok := s.cfg.Commands.Get(maxExitStatusKey)
	if !ok {
		return 0
	}
	return cast.ToInt(value)
}

func (s Settings) Files() (config.FilesConfig, bool) {
	if s.cfg.Files == nil {
		return config.FilesConfig{}, false
	}
	return *s.cfg.Files, true
}

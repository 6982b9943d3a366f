package config

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the parsed tool configuration file. Tools keep the order in which
// they appear in the file.
type Config struct {
	Tools Tools
}

type Tools []Entry

type Entry struct {
	Key  string
	Tool ToolConfig
}

type ToolConfig struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Tags        []string          `yaml:"tags"`
	Commands    Pairs             `yaml:"commands"`
	Env         Pairs             `yaml:"env"`
	Flags       Pairs             `yaml:"flags"`
	Files       *FilesConfig      `yaml:"files"`
	Links       map[string]string `yaml:"links"`
	Disabled    bool              `yaml:"disabled"`
}

type FilesConfig struct {
	Flag       string `yaml:"flag"`
	Separator  string `yaml:"separator"`
	Pattern    string `yaml:"pattern"`
	MapToTests string `yaml:"map_to_tests"`
}

// Pairs is a yaml mapping that remembers key order.
type Pairs []Pair

type Pair struct {
	Key   string
	Value string
}

func (p Pairs) Get(key string) (string, bool) {
	for _, pair := range p {
		if pair.Key == key {
			return pair.Value, true
		}
	}
	return "", false
}

func (p Pairs) Keys() []string {
	keys := make([]string, 0, len(p))
	for _, pair := range p {
		keys = append(keys, pair.Key)
	}
	return keys
}

func (p *Pairs) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping", node.Line)
	}

	result := make(Pairs, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if value.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: %q must be a scalar value", value.Line, key.Value)
		}
		result = append(result, Pair{Key: key.Value, Value: value.Value})
	}

	*p = result
	return nil
}

func (t *Tools) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping of tools", node.Line)
	}

	result := make(Tools, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var tool ToolConfig
		if err := node.Content[i+1].Decode(&tool); err != nil {
			return fmt.Errorf("tool %q: %w", node.Content[i].Value, err)
		}
		result = append(result, Entry{Key: node.Content[i].Value, Tool: tool})
	}

	*t = result
	return nil
}

func (t Tools) Keys() []string {
	keys := make([]string, 0, len(t))
	for _, entry := range t {
		keys = append(keys, entry.Key)
	}
	return keys
}

// Validate reports the first tool that cannot be run at all.
func (t Tools) Validate() error {
	if len(t) == 0 {
		return &Error{Message: "no tools are configured"}
	}

	seen := make(map[string]bool, len(t))
	for _, entry := range t {
		if strings.TrimSpace(entry.Key) == "" {
			return &Error{Message: "a tool is configured without a key"}
		}
		if seen[entry.Key] {
			return &Error{Tool: entry.Key, Message: "is configured more than once"}
		}
		seen[entry.Key] = true

		review, _ := entry.Tool.Commands.Get("review")
		if strings.TrimSpace(review) == "" {
			return &Error{Tool: entry.Key, Key: "commands.review", Message: "is required for every tool"}
		}
	}

	return nil
}

// Error is a configuration mistake that must be fixed before anything runs.
type Error struct {
	Tool    string
	Key     string
	Message string
}

func (e *Error) Error() string {
	switch {
	case e.Tool != "" && e.Key != "":
		return fmt.Sprintf("configuration error: '%s' %s %s", e.Tool, e.Key, e.Message)
	case e.Tool != "":
		return fmt.Sprintf("configuration error: '%s' %s", e.Tool, e.Message)
	default:
		return "configuration error: " + e.Message
	}
}

// Settings control how a run behaves, independent of which tools run.
type Settings struct {
	ConfigFile    string
	HistoryFile   string
	WorkDir       string
	PrepareWindow time.Duration
	Timeout       time.Duration
	Strategy      string
}

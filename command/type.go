package command

import "github.com/kardolus/reviewer/tool"

type Type string

const (
	Install Type = "install"
	Prepare Type = "prepare"
	Review  Type = "review"
	Format  Type = "format"
)

var Types = []Type{Install, Prepare, Review, Format}

func ParseType(name string) (Type, error) {
	for _, t := range Types {
		if string(t) == name {
			return t, nil
		}
	}
	return "", &InvalidTypeError{Type: name}
}

func (t Type) Valid() bool {
	_, err := ParseType(string(t))
	return err == nil
}

// ConfiguredTypes lists the valid command types a tool has, in the order
// they appear in its configuration.
func ConfiguredTypes(t *tool.Tool) []Type {
	var result []Type
	for _, key := range t.Commands().Keys() {
		ct := Type(key)
		if ct.Valid() && t.HasCommand(key) {
			result = append(result, ct)
		}
	}
	return result
}

func typeNames() []string {
	names := make([]string, 0, len(Types))
	for _, t := range Types {
		names = append(names, string(t))
	}
	return names
}

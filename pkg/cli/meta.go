package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mosaicforge/pbncore/pkg/stdimg"
)

// ParamType is a small enum for parameter types used in metadata.
type ParamType string

const (
	ParamTypeInt    ParamType = "int"
	ParamTypeFloat  ParamType = "float"
	ParamTypeBool   ParamType = "bool"
	ParamTypeString ParamType = "string"
)

// ValidationRule is a machine-friendly representation of the constraints
// that a UI or client can use to validate input before invoking a command.
type ValidationRule struct {
	Type     ParamType
	Required bool
	Min      *float64
	Max      *float64
	Hint     string
	Example  string
}

// GenerateTooltipFromStdSpec produces a tooltip string from a stdimg.CommandSpec.
func GenerateTooltipFromStdSpec(c stdimg.CommandSpec) string {
	var sb strings.Builder
	if c.Description != "" {
		sb.WriteString(c.Description)
	} else {
		sb.WriteString("No description")
	}
	if len(c.Args) == 0 {
		sb.WriteString(" — no parameters")
		return sb.String()
	}
	sb.WriteString(" — parameters:\n")
	for _, a := range c.Args {
		req := "optional"
		if a.Required {
			req = "required"
		}
		sb.WriteString(fmt.Sprintf("- %s (%s, %s)", a.Name, a.Type, req))
		if a.Description != "" {
			sb.WriteString(" — " + a.Description)
		}
		if a.Default != "" {
			sb.WriteString(" (default: " + a.Default + ")")
		}
		sb.WriteString("\n")
	}
	return strings.TrimSpace(sb.String())
}

// GenerateValidationRulesFromStdSpec creates ValidationRule entries from a stdimg.CommandSpec.
func GenerateValidationRulesFromStdSpec(c stdimg.CommandSpec) map[string]ValidationRule {
	rules := make(map[string]ValidationRule, len(c.Args))
	for _, a := range c.Args {
		var t ParamType
		switch strings.ToLower(a.Type) {
		case "int":
			t = ParamTypeInt
		case "float":
			t = ParamTypeFloat
		case "bool":
			t = ParamTypeBool
		default:
			t = ParamTypeString
		}
		rules[a.Name] = ValidationRule{Type: t, Required: a.Required, Hint: a.Description, Example: a.Default}
	}
	return rules
}

// StdMetaStore is a lookup of stdimg.CommandSpec by name, used to generate
// tooltips and normalize arguments for the preprocessing prompt.
type StdMetaStore struct {
	Commands []stdimg.CommandSpec
	byName   map[string]stdimg.CommandSpec
}

// NewMetaStoreFromStdimg creates a StdMetaStore from stdimg.CommandSpec list.
func NewMetaStoreFromStdimg(cmds []stdimg.CommandSpec) *StdMetaStore {
	m := &StdMetaStore{Commands: cmds, byName: make(map[string]stdimg.CommandSpec, len(cmds))}
	for _, c := range cmds {
		m.byName[c.Name] = c
	}
	return m
}

// GetCommandHelp returns both tooltip and validation rules for a stdimg command.
func (m *StdMetaStore) GetCommandHelp(name string) (string, map[string]ValidationRule, error) {
	c, ok := m.byName[name]
	if !ok {
		return "", nil, fmt.Errorf("unknown command: %s", name)
	}
	return GenerateTooltipFromStdSpec(c), GenerateValidationRulesFromStdSpec(c), nil
}

// NormalizeArgsFromStd validates and normalizes positional args against a
// stdimg command's declared parameter order.
func NormalizeArgsFromStd(store *StdMetaStore, cmdName string, args []string) ([]string, error) {
	if store == nil {
		return nil, fmt.Errorf("metadata store is nil")
	}
	c, ok := store.byName[cmdName]
	if !ok {
		return nil, fmt.Errorf("unknown command: %s", cmdName)
	}
	rules := GenerateValidationRulesFromStdSpec(c)
	out := make([]string, len(c.Args))
	for i, a := range c.Args {
		var raw string
		if i < len(args) {
			raw = strings.TrimSpace(args[i])
		}
		if raw == "" {
			if a.Required {
				return nil, fmt.Errorf("missing required parameter: %s", a.Name)
			}
			out[i] = ""
			continue
		}
		vr := rules[a.Name]
		switch vr.Type {
		case ParamTypeInt:
			v, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("parameter %s: expected integer, got %q", a.Name, raw)
			}
			out[i] = strconv.FormatInt(v, 10)
		case ParamTypeFloat:
			f, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("parameter %s: expected float, got %q", a.Name, raw)
			}
			out[i] = strconv.FormatFloat(f, 'f', -1, 64)
		default:
			out[i] = raw
		}
	}
	return out, nil
}

// ValidateSettings checks the two paint-by-numbers knobs the prompt
// collects from the user against the bounds pbncore.Process itself
// enforces, so a bad value is rejected before the (possibly slow)
// pipeline runs rather than after. ParseKColors and ParseMinRegionSize
// both route their bounds checks through this single function so the
// two knobs can't drift out of sync with each other or with Process.
func ValidateSettings(kColors, minRegionSize int) error {
	if kColors < 2 || kColors > 50 {
		return fmt.Errorf("k colors must be between 2 and 50, got %d", kColors)
	}
	if minRegionSize < 0 {
		return fmt.Errorf("min region size must be >= 0, got %d", minRegionSize)
	}
	return nil
}

// ParseKColors parses the k-colors prompt input and validates it via
// ValidateSettings, holding min-region-size fixed at its own floor so
// only the k bound applies.
func ParseKColors(raw string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("expected an integer, got %q", raw)
	}
	if err := ValidateSettings(v, 0); err != nil {
		return 0, err
	}
	return v, nil
}

// ParseMinRegionSize parses the min-region-size prompt input and
// validates it via ValidateSettings, holding k fixed at a known-valid
// value so only the min-region-size bound applies.
func ParseMinRegionSize(raw string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("expected an integer, got %q", raw)
	}
	if err := ValidateSettings(2, v); err != nil {
		return 0, err
	}
	return v, nil
}

package types

import (
	"fmt"
	"strings"
)

// Position is a line/column location in a stylesheet. Both fields are
// 1-based; a zero Position means "unknown".
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Issue represents a single rule violation found in a stylesheet.
type Issue struct {
	Rule       string
	Filename   string
	Message    string
	Suggestion string
	Note       string
	Start      Position
	End        Position
	Severity   Severity
}

// Severity is the reporting level of a rule or an issue.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
	SeverityOff
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "ERROR"
	case SeverityWarning:
		return "WARNING"
	case SeverityInfo:
		return "INFO"
	case SeverityOff:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

// MarshalYAML implements yaml.Marshaler.
func (s Severity) MarshalYAML() (interface{}, error) {
	return strings.ToLower(s.String()), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Severity) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	switch strings.ToLower(raw) {
	case "error":
		*s = SeverityError
	case "warning", "warn":
		*s = SeverityWarning
	case "info":
		*s = SeverityInfo
	case "off":
		*s = SeverityOff
	default:
		return fmt.Errorf("unknown severity %q", raw)
	}
	return nil
}

// Ptr returns a pointer to the severity, for building ConfigRule
// values in code.
func (s Severity) Ptr() *Severity { return &s }

// ConfigRule carries the per-rule configuration from the YAML file.
// A nil Severity means the entry did not set one and the rule keeps
// its default. Options holds rule-specific knobs (indent-width, allow
// lists, ...); each rule validates the keys it understands.
type ConfigRule struct {
	Severity *Severity              `yaml:"severity,omitempty"`
	Options  map[string]interface{} `yaml:"options,omitempty"`
}

package lint

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/cssverse/csslin/internal"
	tt "github.com/cssverse/csslin/internal/types"
)

// Config represents the overall configuration with a name and a map of
// rules.
type Config struct {
	Name  string                   `yaml:"name"`
	Rules map[string]tt.ConfigRule `yaml:"rules"`
}

// DefaultConfigFile is the configuration file looked up when none is
// given.
const DefaultConfigFile = ".csslin.yaml"

// LoadConfig reads the YAML configuration file. Unrecognized top-level
// keys and unknown rule names are returned as warning issues;
// malformed YAML or invalid values are fatal. An empty path yields the
// default configuration.
func LoadConfig(configurationPath string) (Config, []tt.Issue, error) {
	var config Config
	if configurationPath == "" {
		return config, nil, nil
	}

	data, err := os.ReadFile(configurationPath)
	if err != nil {
		return config, nil, fmt.Errorf("error reading configuration: %w", err)
	}

	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return config, nil, fmt.Errorf("error parsing configuration: %w", err)
	}
	warnings := unknownKeyWarnings(configurationPath, raw)

	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, nil, fmt.Errorf("error parsing configuration: %w", err)
	}
	return config, warnings, nil
}

func unknownKeyWarnings(path string, raw map[string]interface{}) []tt.Issue {
	var warnings []tt.Issue
	warn := func(message string) {
		warnings = append(warnings, tt.Issue{
			Rule:     "unknown-config-key",
			Filename: path,
			Message:  message,
			Start:    tt.Position{Line: 1, Column: 1},
			End:      tt.Position{Line: 1, Column: 1},
			Severity: tt.SeverityWarning,
		})
	}

	var topKeys []string
	for key := range raw {
		topKeys = append(topKeys, key)
	}
	sort.Strings(topKeys)
	for _, key := range topKeys {
		if key != "name" && key != "rules" {
			warn(fmt.Sprintf("unrecognized configuration key %q", key))
		}
	}

	rules, ok := raw["rules"].(map[string]interface{})
	if !ok {
		return warnings
	}
	known := make(map[string]bool)
	for _, name := range internal.AllRuleNames() {
		known[name] = true
	}
	var ruleKeys []string
	for key := range rules {
		ruleKeys = append(ruleKeys, key)
	}
	sort.Strings(ruleKeys)
	for _, key := range ruleKeys {
		if !known[key] {
			warn(fmt.Sprintf("unknown rule %q in configuration", key))
		}
	}
	return warnings
}

package wordfreq

import (
	_ "embed"
	"fmt"
	"os"

	"go.yaml.in/yaml/v4"
)

//go:embed rules/requirements.yaml
var defaultRules []byte

// DefaultRules returns the built-in rule set for Korean job-requirement text.
func DefaultRules() (*RuleSet, error) {
	return ParseRules(defaultRules)
}

// LoadRules reads a YAML rule file. An empty path yields DefaultRules.
func LoadRules(path string) (*RuleSet, error) {
	if path == "" {
		return DefaultRules()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules %s: %w", path, err)
	}
	rs, err := ParseRules(data)
	if err != nil {
		return nil, fmt.Errorf("rules %s: %w", path, err)
	}
	return rs, nil
}

// ParseRules decodes YAML into a validated RuleSet.
func ParseRules(data []byte) (*RuleSet, error) {
	var cfg RulesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decode rules: %w", err)
	}
	return NewRuleSet(cfg)
}

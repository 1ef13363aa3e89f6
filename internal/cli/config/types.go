// Package config provides configuration management for the solstyle CLI.
//
// Configuration is loaded once per run from solstyle.yaml, environment
// variables and CLI flags, then resolved into a lint.Config before any
// checking begins.
package config

import "github.com/solstack-labs/solstyle/pkg/lint"

// Config holds all CLI configuration options.
type Config struct {
	// ContractsDir is the default root checked when no path is given.
	ContractsDir string `koanf:"contracts_dir"`

	// Verbose enables debug logging.
	Verbose bool `koanf:"verbose"`

	// OutputFormat selects the renderer mode (auto|text|markdown|json).
	OutputFormat string `koanf:"output"`

	// Checks maps category name to its rule options. When absent, every
	// category runs with defaults; a present Checks block enables only
	// the categories it lists.
	Checks map[string]lint.RuleOptions `koanf:"checks"`

	// Severity maps category to rule-name severity overrides. Nested
	// rather than flat "category.rule" keys because the loader treats a
	// dot in a key as a path separator.
	Severity map[string]map[string]string `koanf:"severity"`

	// Disabled contains rule IDs to disable.
	Disabled []string `koanf:"disabled"`
}

// Default configuration values.
const (
	DefaultContractsDir = "src"
	DefaultOutput       = "auto" // Auto-detect: TTY=text, non-TTY=markdown
)

// LintConfig resolves the file configuration into an engine config.
// CLI-level overrides (flags) are applied on top by the command.
func (c *Config) LintConfig() *lint.Config {
	if c == nil || c.Checks == nil {
		return applyOverrides(lint.DefaultConfig(), c)
	}

	lintCfg := lint.NewConfig()
	for category, opts := range c.Checks {
		lintCfg.EnableCategory(category, opts)
	}
	return applyOverrides(lintCfg, c)
}

func applyOverrides(lintCfg *lint.Config, c *Config) *lint.Config {
	if c == nil {
		return lintCfg
	}
	for _, id := range c.Disabled {
		lintCfg.Disable(id)
	}
	for category, rules := range c.Severity {
		for name, sev := range rules {
			if s, ok := lint.ParseSeverity(sev); ok {
				lintCfg.SetSeverity(category+"."+name, s)
			}
		}
	}
	return lintCfg
}

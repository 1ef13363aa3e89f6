package lint

// Config controls which categories and rules are enabled, their
// options, and their severities. It is resolved once before a run and
// treated as immutable while checking.
//
// A category that was never enabled contributes no findings at all.
// Within an enabled category, individual rules read their own options
// and fall back to built-in defaults when a key is absent.
type Config struct {
	// categories maps category name to its rule options.
	// A nil options map means "enabled with defaults".
	categories map[string]RuleOptions

	// disabled contains rule IDs to skip
	disabled map[string]bool

	// severity overrides the default severity of rules,
	// keyed by qualified rule name ("category.rule_name")
	severity map[string]Severity
}

// NewConfig creates an empty configuration with no categories enabled.
func NewConfig() *Config {
	return &Config{
		categories: make(map[string]RuleOptions),
		disabled:   make(map[string]bool),
		severity:   make(map[string]Severity),
	}
}

// DefaultConfig creates a configuration with every category enabled
// using built-in rule defaults.
func DefaultConfig() *Config {
	cfg := NewConfig()
	for _, cat := range PassOrder {
		cfg.EnableCategory(cat, nil)
	}
	return cfg
}

// EnableCategory enables a category with the given rule options.
// A nil opts map enables the category with rule defaults.
func (c *Config) EnableCategory(name string, opts RuleOptions) *Config {
	c.categories[name] = opts
	return c
}

// CategoryEnabled returns true if the category was enabled.
func (c *Config) CategoryEnabled(name string) bool {
	if c == nil {
		return false
	}
	_, ok := c.categories[name]
	return ok
}

// CategoryOptions returns the options for a category; nil when the
// category is enabled with defaults or not enabled at all.
func (c *Config) CategoryOptions(name string) RuleOptions {
	if c == nil {
		return nil
	}
	return c.categories[name]
}

// Disable disables a rule by ID.
func (c *Config) Disable(ruleID string) *Config {
	c.disabled[ruleID] = true
	return c
}

// IsDisabled returns true if the rule should be skipped.
func (c *Config) IsDisabled(ruleID string) bool {
	if c == nil {
		return false
	}
	return c.disabled[ruleID]
}

// SetSeverity overrides the severity for a qualified rule name.
func (c *Config) SetSeverity(name string, severity Severity) *Config {
	c.severity[name] = severity
	return c
}

// ResolveSeverity returns the severity for a rule, applying any
// override keyed by the rule's qualified name.
func (c *Config) ResolveSeverity(name string, defaultSeverity Severity) Severity {
	if c != nil {
		if sev, ok := c.severity[name]; ok {
			return sev
		}
	}
	return defaultSeverity
}

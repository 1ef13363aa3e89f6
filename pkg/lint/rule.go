package lint

import "github.com/solstack-labs/solstyle/pkg/lint/source"

// Rule is the base interface all style rules implement.
type Rule interface {
	// ID returns the unique identifier, e.g., "MissingSPDX"
	ID() string

	// Name returns the qualified name, e.g., "structure.spdx_required".
	// Severity overrides and configuration are keyed by this name.
	Name() string

	// Group returns the category, e.g., "structure", "naming"
	Group() string

	// Description returns a human-readable description
	Description() string

	// DefaultSeverity returns the default severity for this rule
	DefaultSeverity() Severity

	// ConfigKeys returns configuration keys this rule reads from its
	// category options
	ConfigKeys() []string

	// Documentation methods for richer rule documentation
	Rationale() string   // Why this rule exists, what problems it prevents
	BadExample() string  // Code showing the anti-pattern
	GoodExample() string // Code showing the correct pattern
	Fix() string         // How to fix violations (when not obvious)
}

// SourceRule analyzes a single source file.
// Rules are stateless; all context arrives via the check parameters.
type SourceRule interface {
	Rule

	// CheckSource analyzes a file and returns diagnostics.
	// The opts parameter contains the rule's category options from
	// configuration.
	CheckSource(file *source.File, opts RuleOptions) []Diagnostic
}

// RuleInfo provides metadata about a rule for documentation/tooling.
type RuleInfo struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Group           string   `json:"group"`
	Description     string   `json:"description"`
	DefaultSeverity string   `json:"default_severity"`
	ConfigKeys      []string `json:"config_keys,omitempty"`
	Rationale       string   `json:"rationale,omitempty"`
	BadExample      string   `json:"bad_example,omitempty"`
	GoodExample     string   `json:"good_example,omitempty"`
	Fix             string   `json:"fix,omitempty"`
}

// GetRuleInfo extracts metadata from a Rule for documentation/tooling.
func GetRuleInfo(r Rule) RuleInfo {
	return RuleInfo{
		ID:              r.ID(),
		Name:            r.Name(),
		Group:           r.Group(),
		Description:     r.Description(),
		DefaultSeverity: r.DefaultSeverity().String(),
		ConfigKeys:      r.ConfigKeys(),
		Rationale:       r.Rationale(),
		BadExample:      r.BadExample(),
		GoodExample:     r.GoodExample(),
		Fix:             r.Fix(),
	}
}

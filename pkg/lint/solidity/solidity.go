// Package solidity defines the data-driven rule form used by the
// Solidity style rules. Rule implementations live in the rules
// subpackage and register themselves through this package.
package solidity

import (
	"github.com/solstack-labs/solstyle/pkg/lint"
	"github.com/solstack-labs/solstyle/pkg/lint/source"
)

// RuleDef is a data-driven style rule definition.
// Rules are stateless - all context comes via the Check function
// parameters.
type RuleDef struct {
	ID          string        // Unique identifier, e.g., "MissingSPDX"
	Name        string        // Qualified name, e.g., "structure.spdx_required"
	Group       string        // Category: structure, imports, naming, layout
	Description string        // Human-readable description
	Severity    lint.Severity // Default severity
	Check       CheckFunc     // The check function
	ConfigKeys  []string      // Category option keys this rule reads

	// Documentation fields for richer rule documentation
	Rationale   string // Why this rule exists, what problems it prevents
	BadExample  string // Code showing the anti-pattern
	GoodExample string // Code showing the correct pattern
	Fix         string // How to fix violations (when not obvious)
}

// CheckFunc analyzes a source file and returns diagnostics.
// The opts parameter contains the rule's category options from
// configuration.
type CheckFunc func(file *source.File, opts lint.RuleOptions) []lint.Diagnostic

// wrappedRuleDef wraps a RuleDef to implement lint.SourceRule.
type wrappedRuleDef struct {
	def RuleDef
}

// WrapRuleDef wraps a RuleDef to implement the lint.SourceRule interface.
func WrapRuleDef(def RuleDef) lint.SourceRule {
	return &wrappedRuleDef{def: def}
}

func (w *wrappedRuleDef) ID() string                     { return w.def.ID }
func (w *wrappedRuleDef) Name() string                   { return w.def.Name }
func (w *wrappedRuleDef) Group() string                  { return w.def.Group }
func (w *wrappedRuleDef) Description() string            { return w.def.Description }
func (w *wrappedRuleDef) DefaultSeverity() lint.Severity { return w.def.Severity }
func (w *wrappedRuleDef) ConfigKeys() []string           { return w.def.ConfigKeys }

// Documentation methods
func (w *wrappedRuleDef) Rationale() string   { return w.def.Rationale }
func (w *wrappedRuleDef) BadExample() string  { return w.def.BadExample }
func (w *wrappedRuleDef) GoodExample() string { return w.def.GoodExample }
func (w *wrappedRuleDef) Fix() string         { return w.def.Fix }

func (w *wrappedRuleDef) CheckSource(file *source.File, opts lint.RuleOptions) []lint.Diagnostic {
	return w.def.Check(file, opts)
}

// Unwrap returns the underlying RuleDef.
func (w *wrappedRuleDef) Unwrap() RuleDef {
	return w.def
}

// Register adds a rule to the global registry.
// Call this from init() functions in rule packages.
func Register(def RuleDef) {
	lint.Register(WrapRuleDef(def))
}

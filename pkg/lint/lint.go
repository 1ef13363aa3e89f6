// Package lint provides the style rule engine for Solidity sources.
// Rules are registered from category packages and run in a fixed pass
// order (structure, imports, naming, layout) over each file.
//
// The package defines the shared types; rule implementations live in
// pkg/lint/solidity/rules to keep the engine free of Solidity-specific
// pattern matching.
package lint

import "strings"

// Severity indicates the importance of a diagnostic.
type Severity int

// Severity levels for diagnostics.
const (
	// SeverityError indicates a blocking issue that fails the run.
	SeverityError Severity = iota
	// SeverityWarning indicates a potential issue that should be reviewed.
	SeverityWarning
	// SeverityInfo indicates advisory feedback.
	SeverityInfo
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// ParseSeverity converts a severity name to a Severity.
func ParseSeverity(s string) (Severity, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return SeverityError, true
	case "warning", "warn":
		return SeverityWarning, true
	case "info":
		return SeverityInfo, true
	default:
		return SeverityWarning, false
	}
}

// Diagnostic represents a single style finding.
type Diagnostic struct {
	RuleID   string
	Severity Severity
	Message  string
	Line     int // 1-indexed; 0 when the finding has no line anchor
}

// RuleOptions holds rule-specific configuration options for a category.
type RuleOptions map[string]any

// Category names, in pass order.
const (
	CategoryStructure = "structure"
	CategoryImports   = "imports"
	CategoryNaming    = "naming"
	CategoryLayout    = "layout"
)

// PassOrder is the fixed order in which rule categories run per file.
var PassOrder = []string{CategoryStructure, CategoryImports, CategoryNaming, CategoryLayout}

package rules

import (
	"strings"

	"github.com/solstack-labs/solstyle/pkg/lint"
	"github.com/solstack-labs/solstyle/pkg/lint/solidity"
	"github.com/solstack-labs/solstyle/pkg/lint/source"
)

func init() {
	solidity.Register(NoTabs)
	solidity.Register(TrailingWhitespace)
}

// NoTabs forbids tab characters anywhere on a line.
var NoTabs = solidity.RuleDef{
	ID:          "NoTabs",
	Name:        "layout.no_tabs",
	Group:       lint.CategoryLayout,
	Description: "Indent with spaces; tab characters are not allowed.",
	Severity:    lint.SeverityError,
	ConfigKeys:  []string{"no_tabs"},
	Check:       checkNoTabs,

	Rationale: `Mixed tab and space indentation renders differently per editor and
breaks vertical alignment in review tools.`,
}

// TrailingWhitespace forbids whitespace at the end of a line.
var TrailingWhitespace = solidity.RuleDef{
	ID:          "TrailingWhitespace",
	Name:        "layout.trailing_whitespace",
	Group:       lint.CategoryLayout,
	Description: "Lines must not end with whitespace.",
	Severity:    lint.SeverityWarning,
	ConfigKeys:  []string{"trailing_whitespace"},
	Check:       checkTrailingWhitespace,
}

func checkNoTabs(f *source.File, opts lint.RuleOptions) []lint.Diagnostic {
	if !lint.GetBoolOption(opts, "no_tabs", true) {
		return nil
	}

	var diagnostics []lint.Diagnostic
	for i, line := range f.Lines() {
		if !strings.ContainsRune(line, '\t') {
			continue
		}
		diagnostics = append(diagnostics, lint.Diagnostic{
			RuleID:   "NoTabs",
			Severity: lint.SeverityError,
			Message:  "line contains tab characters",
			Line:     i + 1,
		})
	}
	return diagnostics
}

func checkTrailingWhitespace(f *source.File, opts lint.RuleOptions) []lint.Diagnostic {
	if !lint.GetBoolOption(opts, "trailing_whitespace", true) {
		return nil
	}

	var diagnostics []lint.Diagnostic
	for i, line := range f.Lines() {
		if line == "" || strings.TrimRight(line, " \t") == line {
			continue
		}
		diagnostics = append(diagnostics, lint.Diagnostic{
			RuleID:   "TrailingWhitespace",
			Severity: lint.SeverityWarning,
			Message:  "line has trailing whitespace",
			Line:     i + 1,
		})
	}
	return diagnostics
}

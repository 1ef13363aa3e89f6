package rules

import (
	"fmt"
	"unicode/utf8"

	"github.com/solstack-labs/solstyle/pkg/lint"
	"github.com/solstack-labs/solstyle/pkg/lint/solidity"
	"github.com/solstack-labs/solstyle/pkg/lint/source"
)

func init() {
	solidity.Register(LineLength)
}

const defaultMaxLineLength = 120

// LineLength limits the character count of a physical line.
var LineLength = solidity.RuleDef{
	ID:          "MaxLineLength",
	Name:        "layout.max_line_length",
	Group:       lint.CategoryLayout,
	Description: "Lines must not exceed the configured maximum length.",
	Severity:    lint.SeverityWarning,
	ConfigKeys:  []string{"max_line_length"},
	Check:       checkLineLength,

	Fix: "Break long statements across lines; long string literals can move to constants.",
}

func checkLineLength(f *source.File, opts lint.RuleOptions) []lint.Diagnostic {
	maxLength := lint.GetIntOption(opts, "max_line_length", defaultMaxLineLength)

	var diagnostics []lint.Diagnostic
	for i, line := range f.Lines() {
		// Characters, not bytes: multi-byte runes count once.
		length := utf8.RuneCountInString(line)
		if length <= maxLength {
			continue
		}
		diagnostics = append(diagnostics, lint.Diagnostic{
			RuleID:   "MaxLineLength",
			Severity: lint.SeverityWarning,
			Message:  fmt.Sprintf("line is %d characters long (maximum is %d)", length, maxLength),
			Line:     i + 1,
		})
	}
	return diagnostics
}

package rules

import (
	"fmt"
	"regexp"

	"github.com/solstack-labs/solstyle/pkg/lint"
	"github.com/solstack-labs/solstyle/pkg/lint/solidity"
	"github.com/solstack-labs/solstyle/pkg/lint/source"
)

func init() {
	solidity.Register(ConstantNames)
}

// ConstantNames enforces UPPER_CASE constant names.
var ConstantNames = solidity.RuleDef{
	ID:          "ConstantNaming",
	Name:        "naming.constants",
	Group:       lint.CategoryNaming,
	Description: "Constant names must be in UPPER_CASE style.",
	Severity:    lint.SeverityError,
	ConfigKeys:  []string{"constants"},
	Check:       checkConstantNames,

	Rationale: `UPPER_CASE signals compile-time constants at a glance and separates
them from mutable state variables.`,

	BadExample: `uint256 public constant maxSupply = 1_000_000;`,

	GoodExample: `uint256 public constant MAX_SUPPLY = 1_000_000;`,
}

var constantRe = regexp.MustCompile(`\bconstant\s+([A-Za-z_$][A-Za-z0-9_$]*)`)

func checkConstantNames(f *source.File, opts lint.RuleOptions) []lint.Diagnostic {
	if !lint.GetBoolOption(opts, "constants", true) {
		return nil
	}

	var diagnostics []lint.Diagnostic
	for _, decl := range scanNamedDecls(f, constantRe) {
		if upperSnakeCaseRe.MatchString(decl.name) {
			continue
		}
		diagnostics = append(diagnostics, lint.Diagnostic{
			RuleID:   "ConstantNaming",
			Severity: lint.SeverityError,
			Message:  fmt.Sprintf("constant name %q is not in UPPER_CASE style", decl.name),
			Line:     decl.line,
		})
	}
	return diagnostics
}

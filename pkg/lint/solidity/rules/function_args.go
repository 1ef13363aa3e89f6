package rules

import (
	"fmt"
	"regexp"

	"github.com/solstack-labs/solstyle/pkg/lint"
	"github.com/solstack-labs/solstyle/pkg/lint/solidity"
	"github.com/solstack-labs/solstyle/pkg/lint/source"
)

func init() {
	solidity.Register(FunctionArgNames)
}

// FunctionArgNames enforces _mixedCase function argument names.
var FunctionArgNames = solidity.RuleDef{
	ID:          "FunctionArgumentNaming",
	Name:        "naming.function_args",
	Group:       lint.CategoryNaming,
	Description: "Function argument names must be in _mixedCase style.",
	Severity:    lint.SeverityError,
	ConfigKeys:  []string{"function_args"},
	Check:       checkFunctionArgNames,

	Rationale: `Prefixing arguments with an underscore distinguishes them from state
variables inside the body, which prevents accidental shadowing bugs.`,

	BadExample: `function transfer(address to, uint256 amount) public { }`,

	GoodExample: `function transfer(address _to, uint256 _amount) public { }`,
}

// argNameRe captures the trailing identifier of an argument fragment,
// tolerating an array suffix.
var argNameRe = regexp.MustCompile(`([A-Za-z_$][A-Za-z0-9_$]*)(?:\s*\[[^\]]*\])?\s*$`)

// dataLocations are keywords a naive comma split can surface as the
// trailing identifier of a fragment; they are never argument names.
var dataLocations = map[string]bool{
	"memory":   true,
	"storage":  true,
	"calldata": true,
}

func checkFunctionArgNames(f *source.File, opts lint.RuleOptions) []lint.Diagnostic {
	if !lint.GetBoolOption(opts, "function_args", true) {
		return nil
	}

	var diagnostics []lint.Diagnostic
	for _, fn := range scanFunctions(f) {
		for _, fragment := range splitArguments(fn.args) {
			m := argNameRe.FindStringSubmatch(fragment)
			if m == nil {
				continue
			}
			name := m[1]
			if dataLocations[name] {
				continue
			}
			if underscoreMixedCaseRe.MatchString(name) {
				continue
			}
			// Arguments may span lines; the finding anchors to the
			// declaration line.
			diagnostics = append(diagnostics, lint.Diagnostic{
				RuleID:   "FunctionArgumentNaming",
				Severity: lint.SeverityError,
				Message:  fmt.Sprintf("argument %q of function %q is not in _mixedCase style", name, fn.name),
				Line:     fn.line,
			})
		}
	}
	return diagnostics
}

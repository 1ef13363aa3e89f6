package rules

import (
	"fmt"

	"github.com/solstack-labs/solstyle/pkg/lint"
	"github.com/solstack-labs/solstyle/pkg/lint/solidity"
	"github.com/solstack-labs/solstyle/pkg/lint/source"
)

func init() {
	solidity.Register(FunctionNames)
	solidity.Register(PrivateFunctionNames)
}

// FunctionNames enforces mixedCase function names.
//
// When the underscore policy for private/internal functions is active,
// those functions are handed off to PrivateFunctionNames instead:
// every function is judged by exactly one of the two rules.
var FunctionNames = solidity.RuleDef{
	ID:          "FunctionNaming",
	Name:        "naming.functions",
	Group:       lint.CategoryNaming,
	Description: "Function names must be in mixedCase style.",
	Severity:    lint.SeverityError,
	ConfigKeys:  []string{"functions", "private_underscore"},
	Check:       checkFunctionNames,

	Rationale: `mixedCase is the style-guide convention for functions. Constructor,
receive and fallback are language keywords and exempt.`,

	BadExample: `function Transfer_tokens() public { }`,

	GoodExample: `function transferTokens() public { }`,
}

// PrivateFunctionNames enforces the underscore-mixedCase convention for
// private and internal functions.
var PrivateFunctionNames = solidity.RuleDef{
	ID:          "PrivateInternalFunctionNaming",
	Name:        "naming.private_underscore",
	Group:       lint.CategoryNaming,
	Description: "Private and internal function names must be in _mixedCase style.",
	Severity:    lint.SeverityError,
	ConfigKeys:  []string{"private_underscore"},
	Check:       checkPrivateFunctionNames,

	Rationale: `The leading underscore marks a function as not part of the external
surface, which reads at the call site without chasing the declaration.
Functions with no visibility keyword default to internal, matching the
language's own default.`,

	BadExample: `function validateInput() private { }`,

	GoodExample: `function _validateInput() private { }`,
}

func checkFunctionNames(f *source.File, opts lint.RuleOptions) []lint.Diagnostic {
	if !lint.GetBoolOption(opts, "functions", true) {
		return nil
	}
	underscorePolicy := lint.GetBoolOption(opts, "private_underscore", true)

	var diagnostics []lint.Diagnostic
	for _, fn := range scanFunctions(f) {
		// Covered by PrivateInternalFunctionNaming instead.
		if underscorePolicy && isInternalVisibility(fn.visibility) {
			continue
		}
		if mixedCaseRe.MatchString(fn.name) {
			continue
		}
		diagnostics = append(diagnostics, lint.Diagnostic{
			RuleID:   "FunctionNaming",
			Severity: lint.SeverityError,
			Message:  fmt.Sprintf("function name %q is not in mixedCase style", fn.name),
			Line:     fn.line,
		})
	}
	return diagnostics
}

func checkPrivateFunctionNames(f *source.File, opts lint.RuleOptions) []lint.Diagnostic {
	if !lint.GetBoolOption(opts, "private_underscore", true) {
		return nil
	}

	var diagnostics []lint.Diagnostic
	for _, fn := range scanFunctions(f) {
		if !isInternalVisibility(fn.visibility) {
			continue
		}
		if underscoreMixedCaseRe.MatchString(fn.name) {
			continue
		}
		diagnostics = append(diagnostics, lint.Diagnostic{
			RuleID:   "PrivateInternalFunctionNaming",
			Severity: lint.SeverityError,
			Message:  fmt.Sprintf("%s function name %q is not in _mixedCase style", fn.visibility, fn.name),
			Line:     fn.line,
		})
	}
	return diagnostics
}

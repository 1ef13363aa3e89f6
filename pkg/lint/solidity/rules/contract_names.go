package rules

import (
	"fmt"
	"regexp"

	"github.com/solstack-labs/solstyle/pkg/lint"
	"github.com/solstack-labs/solstyle/pkg/lint/solidity"
	"github.com/solstack-labs/solstyle/pkg/lint/source"
)

func init() {
	solidity.Register(ContractNames)
}

// ContractNames enforces CapWords contract names.
var ContractNames = solidity.RuleDef{
	ID:          "ContractNaming",
	Name:        "naming.contracts",
	Group:       lint.CategoryNaming,
	Description: "Contract names must be in CapWords style.",
	Severity:    lint.SeverityError,
	ConfigKeys:  []string{"contracts"},
	Check:       checkContractNames,

	Rationale: `CapWords contract names are the universal convention; a file named
after its contract is only findable when both follow it.`,

	BadExample: `contract myToken { }`,

	GoodExample: `contract MyToken { }`,
}

var contractRe = regexp.MustCompile(`\bcontract\s+([A-Za-z_$][A-Za-z0-9_$]*)`)

func checkContractNames(f *source.File, opts lint.RuleOptions) []lint.Diagnostic {
	if !lint.GetBoolOption(opts, "contracts", true) {
		return nil
	}

	var diagnostics []lint.Diagnostic
	for _, decl := range scanNamedDecls(f, contractRe) {
		if capWordsRe.MatchString(decl.name) {
			continue
		}
		diagnostics = append(diagnostics, lint.Diagnostic{
			RuleID:   "ContractNaming",
			Severity: lint.SeverityError,
			Message:  fmt.Sprintf("contract name %q is not in CapWords style", decl.name),
			Line:     decl.line,
		})
	}
	return diagnostics
}

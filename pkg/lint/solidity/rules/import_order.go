package rules

import (
	"fmt"

	"github.com/solstack-labs/solstyle/pkg/lint"
	"github.com/solstack-labs/solstyle/pkg/lint/solidity"
	"github.com/solstack-labs/solstyle/pkg/lint/source"
)

func init() {
	solidity.Register(ImportOrder)
}

// ImportOrder requires import paths to be sorted alphabetically.
var ImportOrder = solidity.RuleDef{
	ID:          "ImportsNotAlphabetical",
	Name:        "imports.alphabetical",
	Group:       lint.CategoryImports,
	Description: "Import paths should be in alphabetical order.",
	Severity:    lint.SeverityWarning,
	ConfigKeys:  []string{"alphabetical"},
	Check:       checkImportOrder,

	Rationale: `A fixed ordering removes churn from diffs and makes it easy to spot
duplicate imports.`,

	BadExample: `import {B} from "./b.sol";
import {A} from "./a.sol";`,

	GoodExample: `import {A} from "./a.sol";
import {B} from "./b.sol";`,
}

func checkImportOrder(f *source.File, opts lint.RuleOptions) []lint.Diagnostic {
	if !lint.GetBoolOption(opts, "alphabetical", true) {
		return nil
	}

	var diagnostics []lint.Diagnostic
	prev := ""
	for _, imp := range scanImports(f) {
		// Imports without a from-clause have no path to compare.
		if imp.path == "" {
			continue
		}
		// Only the immediately preceding import is compared, so a
		// descending run yields one finding per adjacent inversion.
		if prev != "" && imp.path < prev {
			diagnostics = append(diagnostics, lint.Diagnostic{
				RuleID:   "ImportsNotAlphabetical",
				Severity: lint.SeverityWarning,
				Message:  fmt.Sprintf("import %q should come before %q", imp.path, prev),
				Line:     imp.line,
			})
		}
		prev = imp.path
	}
	return diagnostics
}

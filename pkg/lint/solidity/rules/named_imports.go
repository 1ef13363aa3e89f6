package rules

import (
	"regexp"

	"github.com/solstack-labs/solstyle/pkg/lint"
	"github.com/solstack-labs/solstyle/pkg/lint/solidity"
	"github.com/solstack-labs/solstyle/pkg/lint/source"
)

func init() {
	solidity.Register(NamedImports)
}

// NamedImports requires the explicit named-import form.
var NamedImports = solidity.RuleDef{
	ID:          "NamedImportRequired",
	Name:        "imports.named",
	Group:       lint.CategoryImports,
	Description: "Imports must use the named form: import {Symbol} from \"path\";",
	Severity:    lint.SeverityWarning,
	ConfigKeys:  []string{"named"},
	Check:       checkNamedImports,

	Rationale: `Plain file imports pull every symbol into scope, which hides where
identifiers come from and invites collisions. Named imports document exactly
which symbols a file depends on.`,

	BadExample: `import "./Token.sol";`,

	GoodExample: `import {Token} from "./Token.sol";`,

	Fix: "List the imported symbols in braces: import {A, B} from \"./File.sol\";",
}

// namedImportRe is the exact accepted grammar: one or more comma-free
// identifiers in braces, a quoted path, optional trailing semicolon.
var namedImportRe = regexp.MustCompile(
	`^import\s*\{\s*[A-Za-z_$][A-Za-z0-9_$]*(\s*,\s*[A-Za-z_$][A-Za-z0-9_$]*)*\s*\}\s*from\s*"[^"]+"\s*;?$`)

func checkNamedImports(f *source.File, opts lint.RuleOptions) []lint.Diagnostic {
	if !lint.GetBoolOption(opts, "named", true) {
		return nil
	}

	var diagnostics []lint.Diagnostic
	for _, imp := range scanImports(f) {
		if namedImportRe.MatchString(imp.raw) {
			continue
		}
		diagnostics = append(diagnostics, lint.Diagnostic{
			RuleID:   "NamedImportRequired",
			Severity: lint.SeverityWarning,
			Message:  "import should use the named form: import {Symbol} from \"path\";",
			Line:     imp.line,
		})
	}
	return diagnostics
}

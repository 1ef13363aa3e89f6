package rules

import (
	"regexp"

	"github.com/solstack-labs/solstyle/pkg/lint"
	"github.com/solstack-labs/solstyle/pkg/lint/solidity"
	"github.com/solstack-labs/solstyle/pkg/lint/source"
)

func init() {
	solidity.Register(PragmaAfterLicense)
}

// PragmaAfterLicense warns when the pragma line precedes the SPDX line.
var PragmaAfterLicense = solidity.RuleDef{
	ID:          "PragmaBeforeLicense",
	Name:        "structure.pragma_after_license",
	Group:       lint.CategoryStructure,
	Description: "The pragma directive should follow the SPDX license identifier.",
	Severity:    lint.SeverityWarning,
	ConfigKeys:  []string{"pragma_after_license"},
	Check:       checkPragmaAfterLicense,

	Rationale: `The conventional file header is the SPDX comment first, then the
pragma. Keeping that order consistent across a codebase makes headers
scannable.`,

	BadExample: `pragma solidity ^0.8.20;
// SPDX-License-Identifier: MIT`,

	GoodExample: `// SPDX-License-Identifier: MIT
pragma solidity ^0.8.20;`,
}

var pragmaRe = regexp.MustCompile(`^\s*pragma\s+solidity\b`)

// pragmaLine returns the 1-indexed line of the first pragma solidity
// directive, or 0.
func pragmaLine(f *source.File) int {
	for i, line := range f.Lines() {
		if pragmaRe.MatchString(line) {
			return i + 1
		}
	}
	return 0
}

func checkPragmaAfterLicense(f *source.File, opts lint.RuleOptions) []lint.Diagnostic {
	if !lint.GetBoolOption(opts, "pragma_after_license", true) {
		return nil
	}

	pragma := pragmaLine(f)
	license := spdxLine(f)
	// Ordering is only checkable when both lines exist; a missing pragma
	// must not suppress the separate SPDX presence check.
	if pragma == 0 || license == 0 {
		return nil
	}
	if pragma >= license {
		return nil
	}
	return []lint.Diagnostic{{
		RuleID:   "PragmaBeforeLicense",
		Severity: lint.SeverityWarning,
		Message:  "pragma directive appears before the SPDX license identifier",
		Line:     pragma,
	}}
}

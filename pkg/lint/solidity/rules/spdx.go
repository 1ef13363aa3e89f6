package rules

import (
	"strings"

	"github.com/solstack-labs/solstyle/pkg/lint"
	"github.com/solstack-labs/solstyle/pkg/lint/solidity"
	"github.com/solstack-labs/solstyle/pkg/lint/source"
)

func init() {
	solidity.Register(SPDXRequired)
	solidity.Register(SPDXFirstLine)
}

// spdxMarker is the license identifier marker the structure pass looks for.
const spdxMarker = "SPDX-License-Identifier:"

// SPDXRequired fails files that carry no SPDX license identifier.
var SPDXRequired = solidity.RuleDef{
	ID:          "MissingSPDX",
	Name:        "structure.spdx_required",
	Group:       lint.CategoryStructure,
	Description: "Every source file must contain an SPDX license identifier.",
	Severity:    lint.SeverityError,
	ConfigKeys:  []string{"spdx_required"},
	Check:       checkSPDXRequired,

	Rationale: `Compilers and license scanners rely on the machine-readable SPDX
comment to determine a file's license. Files without one trigger compiler
warnings and make license audits ambiguous.`,

	BadExample: `pragma solidity ^0.8.20;

contract Token { }`,

	GoodExample: `// SPDX-License-Identifier: MIT
pragma solidity ^0.8.20;

contract Token { }`,

	Fix: "Add `// SPDX-License-Identifier: <license>` as the first line of the file.",
}

// SPDXFirstLine warns when the SPDX identifier is present but not on line 1.
var SPDXFirstLine = solidity.RuleDef{
	ID:          "SPDXNotAtTop",
	Name:        "structure.spdx_first_line",
	Group:       lint.CategoryStructure,
	Description: "The SPDX license identifier should be the first line of the file.",
	Severity:    lint.SeverityWarning,
	ConfigKeys:  []string{"spdx_first_line", "spdx_required"},
	Check:       checkSPDXFirstLine,

	Rationale: `Placing the SPDX comment first makes it trivially discoverable by
tooling that only inspects a file's head.`,

	Fix: "Move the SPDX comment to line 1, above the pragma.",
}

// spdxLine returns the 1-indexed line carrying the SPDX marker, or 0.
func spdxLine(f *source.File) int {
	for i, line := range f.Lines() {
		if strings.Contains(line, spdxMarker) {
			return i + 1
		}
	}
	return 0
}

func checkSPDXRequired(f *source.File, opts lint.RuleOptions) []lint.Diagnostic {
	if !lint.GetBoolOption(opts, "spdx_required", true) {
		return nil
	}
	if spdxLine(f) != 0 {
		return nil
	}
	return []lint.Diagnostic{{
		RuleID:   "MissingSPDX",
		Severity: lint.SeverityError,
		Message:  "missing SPDX license identifier",
		Line:     1,
	}}
}

func checkSPDXFirstLine(f *source.File, opts lint.RuleOptions) []lint.Diagnostic {
	// Placement is only meaningful when presence is also being enforced.
	if !lint.GetBoolOption(opts, "spdx_first_line", true) ||
		!lint.GetBoolOption(opts, "spdx_required", true) {
		return nil
	}
	line := spdxLine(f)
	if line == 0 || line == 1 {
		return nil
	}
	return []lint.Diagnostic{{
		RuleID:   "SPDXNotAtTop",
		Severity: lint.SeverityWarning,
		Message:  "SPDX license identifier should be on the first line",
		Line:     line,
	}}
}

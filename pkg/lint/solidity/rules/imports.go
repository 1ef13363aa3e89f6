package rules

import (
	"regexp"
	"strings"

	"github.com/solstack-labs/solstyle/pkg/lint/source"
)

// importLine is one import statement as seen by the import pass.
type importLine struct {
	raw  string // trimmed line text
	path string // path from the from-clause; empty when absent
	line int    // 1-indexed
}

var importFromRe = regexp.MustCompile(`from\s*"([^"]+)"`)

// scanImports collects the lines beginning with the import keyword, in
// file order. Imports without a from-clause keep an empty path.
func scanImports(f *source.File) []importLine {
	var imports []importLine
	for i, line := range f.Lines() {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "import") {
			continue
		}
		// Require a statement, not an identifier that merely starts
		// with the keyword (e.g. "importantValue = 1").
		rest := trimmed[len("import"):]
		if rest != "" && rest[0] != ' ' && rest[0] != '\t' && rest[0] != '{' && rest[0] != '"' {
			continue
		}

		imp := importLine{raw: trimmed, line: i + 1}
		if m := importFromRe.FindStringSubmatch(trimmed); m != nil {
			imp.path = m[1]
		}
		imports = append(imports, imp)
	}
	return imports
}

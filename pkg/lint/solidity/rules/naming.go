package rules

import (
	"regexp"
	"strings"

	"github.com/solstack-labs/solstyle/pkg/lint/source"
)

// Identifier styles enforced by the naming pass.
var (
	capWordsRe            = regexp.MustCompile(`^[A-Z][A-Za-z0-9]*$`)
	mixedCaseRe           = regexp.MustCompile(`^[a-z][A-Za-z0-9]*$`)
	underscoreMixedCaseRe = regexp.MustCompile(`^_[a-z][A-Za-z0-9]*$`)
	upperSnakeCaseRe      = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)
)

// functionDecl is one function declaration as extracted by the naming
// pass. The pass scans the whole file text rather than individual
// lines, so multi-line argument lists stay attached to the declaration.
type functionDecl struct {
	name       string
	args       string // raw argument list between the parentheses
	visibility string // public, external, internal or private
	line       int    // 1-indexed line of the declaration
}

// functionRe captures name, raw argument list and the modifier tail up
// to the body or terminating semicolon.
var functionRe = regexp.MustCompile(`\bfunction\s+([A-Za-z_$][A-Za-z0-9_$]*)\s*\(([^)]*)\)([^{;]*)`)

var visibilityRe = regexp.MustCompile(`\b(public|external|internal|private)\b`)

// scanFunctions extracts function declarations from the file text.
// Constructor, receive and fallback declarations are excluded; the
// language declares them without names so the pattern would only see
// them in legacy sources.
func scanFunctions(f *source.File) []functionDecl {
	var decls []functionDecl
	for _, m := range functionRe.FindAllStringSubmatchIndex(f.Text, -1) {
		name := f.Text[m[2]:m[3]]
		if name == "constructor" || name == "receive" || name == "fallback" {
			continue
		}

		tail := f.Text[m[6]:m[7]]
		visibility := "internal" // the language default when unspecified
		if v := visibilityRe.FindString(tail); v != "" {
			visibility = v
		}

		decls = append(decls, functionDecl{
			name:       name,
			args:       f.Text[m[4]:m[5]],
			visibility: visibility,
			line:       f.LineAt(m[0]),
		})
	}
	return decls
}

func isInternalVisibility(v string) bool {
	return v == "private" || v == "internal"
}

// namedDecl is a (name, line) pair extracted by a whole-file pattern.
type namedDecl struct {
	name string
	line int
}

// scanNamedDecls runs a pattern whose first capture group is an
// identifier and resolves each match to its line.
func scanNamedDecls(f *source.File, re *regexp.Regexp) []namedDecl {
	var decls []namedDecl
	for _, m := range re.FindAllStringSubmatchIndex(f.Text, -1) {
		if m[2] < 0 {
			continue
		}
		decls = append(decls, namedDecl{
			name: f.Text[m[2]:m[3]],
			line: f.LineAt(m[0]),
		})
	}
	return decls
}

// splitArguments splits a raw argument list into trimmed fragments.
func splitArguments(raw string) []string {
	var fragments []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			fragments = append(fragments, part)
		}
	}
	return fragments
}

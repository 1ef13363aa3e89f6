package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/solstack-labs/solstyle/pkg/lint"
	"github.com/solstack-labs/solstyle/pkg/lint/solidity"
	"github.com/solstack-labs/solstyle/pkg/lint/source"
)

func init() {
	solidity.Register(EventNames)
	solidity.Register(EventPastTense)
}

// EventNames enforces CapWords event names.
var EventNames = solidity.RuleDef{
	ID:          "EventNaming",
	Name:        "naming.events",
	Group:       lint.CategoryNaming,
	Description: "Event names must be in CapWords style.",
	Severity:    lint.SeverityError,
	ConfigKeys:  []string{"events"},
	Check:       checkEventNames,

	BadExample: `event tokensMinted(address to);`,

	GoodExample: `event TokensMinted(address to);`,
}

// EventPastTense suggests past-tense event names.
var EventPastTense = solidity.RuleDef{
	ID:          "EventPastTense",
	Name:        "naming.event_past_tense",
	Group:       lint.CategoryNaming,
	Description: "Event names should be past tense.",
	Severity:    lint.SeverityInfo,
	ConfigKeys:  []string{"event_past_tense"},
	Check:       checkEventPastTense,

	Rationale: `Events record things that already happened, so past-tense names read
naturally in logs. The check is a suffix heuristic, not linguistic analysis;
irregular verbs (e.g. "Sent") are known false positives.`,

	BadExample: `event Transfer(address from, address to);`,

	GoodExample: `event Transferred(address from, address to);`,
}

var eventRe = regexp.MustCompile(`\bevent\s+([A-Za-z_$][A-Za-z0-9_$]*)`)

// pastTenseExceptions are accepted names that the "ed" suffix test
// would otherwise need to special-case.
var pastTenseExceptions = map[string]bool{
	"Updated": true,
	"Created": true,
	"Deleted": true,
	"Added":   true,
	"Removed": true,
	"Set":     true,
	"Changed": true,
}

func checkEventNames(f *source.File, opts lint.RuleOptions) []lint.Diagnostic {
	if !lint.GetBoolOption(opts, "events", true) {
		return nil
	}

	var diagnostics []lint.Diagnostic
	for _, decl := range scanNamedDecls(f, eventRe) {
		if capWordsRe.MatchString(decl.name) {
			continue
		}
		diagnostics = append(diagnostics, lint.Diagnostic{
			RuleID:   "EventNaming",
			Severity: lint.SeverityError,
			Message:  fmt.Sprintf("event name %q is not in CapWords style", decl.name),
			Line:     decl.line,
		})
	}
	return diagnostics
}

func checkEventPastTense(f *source.File, opts lint.RuleOptions) []lint.Diagnostic {
	if !lint.GetBoolOption(opts, "event_past_tense", true) {
		return nil
	}

	var diagnostics []lint.Diagnostic
	for _, decl := range scanNamedDecls(f, eventRe) {
		if strings.HasSuffix(decl.name, "ed") || pastTenseExceptions[decl.name] {
			continue
		}
		diagnostics = append(diagnostics, lint.Diagnostic{
			RuleID:   "EventPastTense",
			Severity: lint.SeverityInfo,
			Message:  fmt.Sprintf("event name %q does not appear to be past tense", decl.name),
			Line:     decl.line,
		})
	}
	return diagnostics
}

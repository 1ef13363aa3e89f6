package rules_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solstack-labs/solstyle/pkg/lint"
	_ "github.com/solstack-labs/solstyle/pkg/lint/solidity/rules" // register rules
	"github.com/solstack-labs/solstyle/pkg/lint/source"
)

// runRule runs a single registered rule against the given source text
// with default options.
func runRule(t *testing.T, text, ruleID string) []lint.Diagnostic {
	t.Helper()
	return runRuleWithOptions(t, text, ruleID, nil)
}

// runRuleWithOptions runs a single registered rule with explicit
// category options.
func runRuleWithOptions(t *testing.T, text, ruleID string, opts lint.RuleOptions) []lint.Diagnostic {
	t.Helper()
	rule, ok := lint.GetRuleByID(ruleID)
	require.True(t, ok, "rule %s not registered", ruleID)
	return rule.CheckSource(source.New("test.sol", text), opts)
}

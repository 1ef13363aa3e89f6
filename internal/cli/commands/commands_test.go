package commands

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solstack-labs/solstyle/internal/cli/output"
	"github.com/solstack-labs/solstyle/pkg/lint"
)

func TestNewCheckCommand(t *testing.T) {
	cmd := NewCheckCommand()

	assert.Equal(t, "check [path...]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")

	flags := []string{"format", "disable", "severity", "rule"}
	for _, flag := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestNewRulesCommand(t *testing.T) {
	cmd := NewRulesCommand()

	assert.Equal(t, "rules [rule-id]", cmd.Use)
	for _, flag := range []string{"group", "verbose", "format"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestBuildCheckConfig(t *testing.T) {
	t.Run("empty options", func(t *testing.T) {
		opts := &CheckOptions{}
		cfg := buildCheckConfig(nil, opts)

		require.NotNil(t, cfg)
		assert.False(t, cfg.IsDisabled("NoTabs"))
		for _, category := range lint.PassOrder {
			assert.True(t, cfg.CategoryEnabled(category), "category %q", category)
		}
	})

	t.Run("disable rules", func(t *testing.T) {
		opts := &CheckOptions{
			Disable: []string{"NoTabs", " MaxLineLength "},
		}
		cfg := buildCheckConfig(nil, opts)

		require.NotNil(t, cfg)
		assert.True(t, cfg.IsDisabled("NoTabs"))
		assert.True(t, cfg.IsDisabled("MaxLineLength"))
		assert.False(t, cfg.IsDisabled("TrailingWhitespace"))
	})

	t.Run("enable only specific rules", func(t *testing.T) {
		opts := &CheckOptions{
			Rules: []string{"MissingSPDX", "NoTabs"},
		}
		cfg := buildCheckConfig(nil, opts)

		require.NotNil(t, cfg)
		assert.False(t, cfg.IsDisabled("MissingSPDX"))
		assert.False(t, cfg.IsDisabled("NoTabs"))
		for _, r := range lint.GetAllRules() {
			if r.ID() != "MissingSPDX" && r.ID() != "NoTabs" {
				assert.True(t, cfg.IsDisabled(r.ID()), "rule %q should be disabled", r.ID())
			}
		}
	})
}

func TestFilterBySeverity(t *testing.T) {
	results := []lint.FileResult{
		{
			Path: "Token.sol",
			Diagnostics: []lint.Diagnostic{
				{RuleID: "MissingSPDX", Severity: lint.SeverityError, Message: "error"},
				{RuleID: "TrailingWhitespace", Severity: lint.SeverityWarning, Message: "warning"},
				{RuleID: "EventPastTense", Severity: lint.SeverityInfo, Message: "info"},
			},
		},
	}

	t.Run("error threshold", func(t *testing.T) {
		filtered := filterBySeverity(results, "error")
		require.Len(t, filtered, 1)
		assert.Len(t, filtered[0].Diagnostics, 1)
		assert.Equal(t, lint.SeverityError, filtered[0].Diagnostics[0].Severity)
	})

	t.Run("warning threshold", func(t *testing.T) {
		filtered := filterBySeverity(results, "warning")
		require.Len(t, filtered, 1)
		assert.Len(t, filtered[0].Diagnostics, 2)
	})

	t.Run("info threshold keeps everything", func(t *testing.T) {
		filtered := filterBySeverity(results, "info")
		require.Len(t, filtered, 1)
		assert.Len(t, filtered[0].Diagnostics, 3)
	})

	t.Run("unknown threshold defaults to info", func(t *testing.T) {
		filtered := filterBySeverity(results, "everything")
		require.Len(t, filtered, 1)
		assert.Len(t, filtered[0].Diagnostics, 3)
	})

	t.Run("empty results when all below threshold", func(t *testing.T) {
		infoOnly := []lint.FileResult{
			{
				Path: "Token.sol",
				Diagnostics: []lint.Diagnostic{
					{RuleID: "EventPastTense", Severity: lint.SeverityInfo, Message: "info"},
				},
			},
		}
		filtered := filterBySeverity(infoOnly, "error")
		assert.Empty(t, filtered)
	})
}

// failingWriter rejects every write.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("write failed") }

func TestRenderCheckResults(t *testing.T) {
	report := &lint.Report{
		FilesChecked: 1,
		Files: []lint.FileResult{
			{
				Path: "Token.sol",
				Diagnostics: []lint.Diagnostic{
					{RuleID: "NoTabs", Severity: lint.SeverityError, Message: "tab", Line: 3},
				},
			},
		},
	}

	t.Run("markdown", func(t *testing.T) {
		buf := new(bytes.Buffer)
		r := output.NewRenderer(buf, buf, output.ModeMarkdown)
		require.NoError(t, renderCheckResults(r, report, report.Files))
		assert.Contains(t, buf.String(), "NoTabs")
		assert.Contains(t, buf.String(), "Summary:")
	})

	t.Run("json", func(t *testing.T) {
		buf := new(bytes.Buffer)
		r := output.NewRenderer(buf, buf, output.ModeJSON)
		require.NoError(t, renderCheckResults(r, report, report.Files))
		assert.Contains(t, buf.String(), `"rule_id"`)
	})

	t.Run("json write failure propagates", func(t *testing.T) {
		r := output.NewRenderer(failingWriter{}, failingWriter{}, output.ModeJSON)
		assert.Error(t, renderCheckResults(r, report, report.Files))
	})
}

package rules_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solstack-labs/solstyle/pkg/lint"
)

func TestMaxLineLength(t *testing.T) {
	t.Run("long line reports actual and maximum length", func(t *testing.T) {
		text := "// " + strings.Repeat("x", 127) + "\n"
		diags := runRule(t, text, "MaxLineLength")
		require.Len(t, diags, 1)
		assert.Equal(t, 1, diags[0].Line)
		assert.Contains(t, diags[0].Message, "130")
		assert.Contains(t, diags[0].Message, "120")
		assert.Equal(t, lint.SeverityWarning, diags[0].Severity)
	})

	t.Run("line at the limit is clean", func(t *testing.T) {
		text := strings.Repeat("x", 120) + "\n"
		assert.Empty(t, runRule(t, text, "MaxLineLength"))
	})

	t.Run("length is counted in characters not bytes", func(t *testing.T) {
		// 120 two-byte runes: 240 bytes but exactly at the limit.
		text := strings.Repeat("é", 120) + "\n"
		assert.Empty(t, runRule(t, text, "MaxLineLength"))
	})

	t.Run("configured maximum", func(t *testing.T) {
		text := strings.Repeat("x", 90) + "\n"
		diags := runRuleWithOptions(t, text, "MaxLineLength",
			lint.RuleOptions{"max_line_length": 80})
		require.Len(t, diags, 1)
		assert.Contains(t, diags[0].Message, "90")
		assert.Contains(t, diags[0].Message, "80")
	})
}

func TestNoTabs(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantLines []int
	}{
		{
			name:      "space indentation",
			text:      "contract A {\n    uint256 x;\n}\n",
			wantLines: nil,
		},
		{
			name:      "tab indentation",
			text:      "contract A {\n\tuint256 x;\n}\n",
			wantLines: []int{2},
		},
		{
			name:      "tab mid-line",
			text:      "uint256 x;\t// aligned comment\n",
			wantLines: []int{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := runRule(t, tt.text, "NoTabs")
			require.Len(t, diags, len(tt.wantLines))
			for i, line := range tt.wantLines {
				assert.Equal(t, line, diags[i].Line)
				assert.Equal(t, lint.SeverityError, diags[i].Severity)
			}
		})
	}
}

func TestTrailingWhitespace(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantLines []int
	}{
		{
			name:      "clean lines",
			text:      "contract A {\n}\n",
			wantLines: nil,
		},
		{
			name:      "trailing spaces",
			text:      "contract A {  \n}\n",
			wantLines: []int{1},
		},
		{
			name:      "trailing tab",
			text:      "contract A {\n}\t\n",
			wantLines: []int{2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := runRule(t, tt.text, "TrailingWhitespace")
			require.Len(t, diags, len(tt.wantLines))
			for i, line := range tt.wantLines {
				assert.Equal(t, line, diags[i].Line)
			}
		})
	}
}

// A single line can trip all three layout rules at once.
func TestLayoutChecksAreIndependentPerLine(t *testing.T) {
	line := "\t" + strings.Repeat("x", 125) + "  "
	text := line + "\n"

	assert.Len(t, runRule(t, text, "MaxLineLength"), 1)
	assert.Len(t, runRule(t, text, "NoTabs"), 1)
	assert.Len(t, runRule(t, text, "TrailingWhitespace"), 1)
}

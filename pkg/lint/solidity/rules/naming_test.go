package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solstack-labs/solstyle/pkg/lint"
)

func TestContractNaming(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantDiag bool
	}{
		{
			name:     "CapWords contract",
			text:     "contract MyToken { }\n",
			wantDiag: false,
		},
		{
			name:     "lowercase first letter",
			text:     "contract myToken { }\n",
			wantDiag: true,
		},
		{
			name:     "snake case",
			text:     "contract my_token { }\n",
			wantDiag: true,
		},
		{
			name:     "abstract contract",
			text:     "abstract contract baseVault { }\n",
			wantDiag: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := runRule(t, tt.text, "ContractNaming")
			if tt.wantDiag {
				require.Len(t, diags, 1)
				assert.Equal(t, 1, diags[0].Line)
				assert.Equal(t, lint.SeverityError, diags[0].Severity)
			} else {
				assert.Empty(t, diags)
			}
		})
	}
}

func TestFunctionNaming(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantDiag bool
	}{
		{
			name:     "mixedCase public function",
			text:     "function transferTokens() public { }\n",
			wantDiag: false,
		},
		{
			name:     "CapWords public function",
			text:     "function TransferTokens() public { }\n",
			wantDiag: true,
		},
		{
			name:     "underscored external function",
			text:     "function _transfer() external { }\n",
			wantDiag: true,
		},
		{
			name:     "constructor is exempt",
			text:     "constructor() { }\n",
			wantDiag: false,
		},
		{
			name:     "private function handled by the underscore rule",
			text:     "function Validate() private { }\n",
			wantDiag: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := runRule(t, tt.text, "FunctionNaming")
			if tt.wantDiag {
				require.Len(t, diags, 1)
			} else {
				assert.Empty(t, diags)
			}
		})
	}
}

func TestPrivateInternalFunctionNaming(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantDiag bool
	}{
		{
			name:     "underscored private function",
			text:     "function _validateInput() private { }\n",
			wantDiag: false,
		},
		{
			name:     "private function without underscore",
			text:     "function validateInput() private { }\n",
			wantDiag: true,
		},
		{
			name:     "internal function without underscore",
			text:     "function computeHash() internal view returns (bytes32) { }\n",
			wantDiag: true,
		},
		{
			name:     "no visibility keyword defaults to internal",
			text:     "function helper() { }\n",
			wantDiag: true,
		},
		{
			name:     "public function is out of scope",
			text:     "function TransferTokens() public { }\n",
			wantDiag: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := runRule(t, tt.text, "PrivateInternalFunctionNaming")
			if tt.wantDiag {
				require.Len(t, diags, 1)
				assert.Equal(t, lint.SeverityError, diags[0].Severity)
			} else {
				assert.Empty(t, diags)
			}
		})
	}
}

// Every function is judged by exactly one of the two function naming
// rules, never both.
func TestFunctionNamingMutualExclusivity(t *testing.T) {
	text := "function validateInput() private { }\n"

	private := runRule(t, text, "PrivateInternalFunctionNaming")
	general := runRule(t, text, "FunctionNaming")
	require.Len(t, private, 1)
	assert.Empty(t, general)
}

func TestFunctionNamingWithUnderscorePolicyDisabled(t *testing.T) {
	opts := lint.RuleOptions{"private_underscore": false}

	// With the policy off, private functions fall under the general
	// mixedCase rule and the underscore rule stays silent.
	text := "function _validateInput() private { }\n"
	assert.Empty(t, runRuleWithOptions(t, text, "PrivateInternalFunctionNaming", opts))

	diags := runRuleWithOptions(t, text, "FunctionNaming", opts)
	require.Len(t, diags, 1)
	assert.Equal(t, "FunctionNaming", diags[0].RuleID)

	text = "function validateInput() private { }\n"
	assert.Empty(t, runRuleWithOptions(t, text, "FunctionNaming", opts))
}

func TestFunctionArgumentNaming(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantCount int
	}{
		{
			name:      "underscored arguments",
			text:      "function transfer(address _to, uint256 _amount) public { }\n",
			wantCount: 0,
		},
		{
			name:      "plain arguments",
			text:      "function transfer(address to, uint256 amount) public { }\n",
			wantCount: 2,
		},
		{
			name:      "data location keywords are skipped",
			text:      "function setName(string memory _name) public { }\n",
			wantCount: 0,
		},
		{
			name:      "array argument",
			text:      "function setAll(uint256[] memory _values) public { }\n",
			wantCount: 0,
		},
		{
			name:      "no arguments",
			text:      "function pause() public { }\n",
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := runRule(t, tt.text, "FunctionArgumentNaming")
			assert.Len(t, diags, tt.wantCount)
		})
	}
}

func TestFunctionArgumentNamingMultiLineSignature(t *testing.T) {
	text := "function transfer(\n    address to,\n    uint256 _amount\n) public { }\n"
	diags := runRule(t, text, "FunctionArgumentNaming")
	require.Len(t, diags, 1)
	// Findings anchor to the declaration line, not the argument's line.
	assert.Equal(t, 1, diags[0].Line)
}

func TestEventNaming(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantDiag bool
	}{
		{
			name:     "CapWords event",
			text:     "event TokensMinted(address to);\n",
			wantDiag: false,
		},
		{
			name:     "lowercase event",
			text:     "event tokensMinted(address to);\n",
			wantDiag: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := runRule(t, tt.text, "EventNaming")
			if tt.wantDiag {
				require.Len(t, diags, 1)
			} else {
				assert.Empty(t, diags)
			}
		})
	}
}

func TestEventPastTense(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantDiag bool
	}{
		{
			name:     "ed suffix",
			text:     "event TokensMinted(address to);\n",
			wantDiag: false,
		},
		{
			name:     "exception word Set",
			text:     "event Set(bytes32 key);\n",
			wantDiag: false,
		},
		{
			name:     "present tense",
			text:     "event Transfer(address from, address to);\n",
			wantDiag: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := runRule(t, tt.text, "EventPastTense")
			if tt.wantDiag {
				require.Len(t, diags, 1)
				assert.Equal(t, lint.SeverityInfo, diags[0].Severity)
			} else {
				assert.Empty(t, diags)
			}
		})
	}
}

// Casing and tense are independent checks over the same declarations.
func TestEventChecksRunIndependently(t *testing.T) {
	text := "event transfer(address from);\n"
	assert.Len(t, runRule(t, text, "EventNaming"), 1)
	assert.Len(t, runRule(t, text, "EventPastTense"), 1)
}

func TestConstantNaming(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantDiag bool
	}{
		{
			name:     "upper case constant",
			text:     "uint256 public constant MAX_SUPPLY = 1_000_000;\n",
			wantDiag: false,
		},
		{
			name:     "mixedCase constant",
			text:     "uint256 public constant maxSupply = 1_000_000;\n",
			wantDiag: true,
		},
		{
			name:     "no visibility keyword",
			text:     "uint256 constant decimalsFactor = 1e18;\n",
			wantDiag: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := runRule(t, tt.text, "ConstantNaming")
			if tt.wantDiag {
				require.Len(t, diags, 1)
				assert.Equal(t, lint.SeverityError, diags[0].Severity)
			} else {
				assert.Empty(t, diags)
			}
		})
	}
}

func TestNamingLineNumbersFromOffsets(t *testing.T) {
	text := "// SPDX-License-Identifier: MIT\n" +
		"pragma solidity ^0.8.20;\n" +
		"\n" +
		"contract myToken {\n" +
		"    event transfer(address to);\n" +
		"}\n"

	contract := runRule(t, text, "ContractNaming")
	require.Len(t, contract, 1)
	assert.Equal(t, 4, contract[0].Line)

	event := runRule(t, text, "EventNaming")
	require.Len(t, event, 1)
	assert.Equal(t, 5, event[0].Line)
}

// Package rules contains all Solidity style rules.
// Import this package to register the rules with the engine registry:
//
//	import _ "github.com/solstack-labs/solstyle/pkg/lint/solidity/rules"
//
// Rules are organized by category, matching the engine's pass order:
//
//   - structure: SPDX license marker presence and placement, pragma
//     ordering
//   - imports: named-import form, alphabetical import paths
//   - naming: contract, function, argument, event and constant naming
//   - layout: line length, tabs, trailing whitespace
//
// The rules are regex-based by design. The checker is a best-effort
// style tool, not a compiler front end: a construct the patterns fail
// to match is skipped silently, and unusual formatting can produce
// false positives or negatives. That tradeoff keeps every rule a
// single pass over the file text.
package rules

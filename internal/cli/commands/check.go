package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/solstack-labs/solstyle/internal/cli/config"
	"github.com/solstack-labs/solstyle/internal/cli/output"
	"github.com/solstack-labs/solstyle/internal/walker"
	"github.com/solstack-labs/solstyle/pkg/lint"
	_ "github.com/solstack-labs/solstyle/pkg/lint/solidity/rules" // register style rules
	"github.com/solstack-labs/solstyle/pkg/lint/source"
)

// CheckOptions holds options for the check command.
type CheckOptions struct {
	Paths    []string // Files or directories to check
	Format   string   // Output format: text, markdown, json
	Disable  []string // Rule IDs to disable
	Severity string   // Minimum severity to display: error, warning, info
	Rules    []string // Run only specific rules
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:   "check [path...]",
		Short: "Check Solidity sources for style violations",
		Long: `Analyze Solidity source files for style violations.

Runs structure, import, naming and layout rules against your contracts
and reports any violations found. Rules can be configured in
solstyle.yaml.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # Check the configured contracts directory
  solstyle check

  # Check specific paths
  solstyle check ./contracts ./script/Deploy.s.sol

  # Output as JSON
  solstyle check --format json

  # Disable specific rules
  solstyle check --disable NoTabs,MaxLineLength

  # Only display errors (warnings/info hidden, exit status unchanged)
  solstyle check --severity error`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Paths = args
			return runCheck(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule IDs to disable")
	cmd.Flags().StringVar(&opts.Severity, "severity", "info", "Minimum severity to display: error, warning, info")
	cmd.Flags().StringSliceVar(&opts.Rules, "rule", nil, "Run only specific rules")

	return cmd
}

func runCheck(cmd *cobra.Command, opts *CheckOptions) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer

	// Override renderer if format flag is set
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	targets := opts.Paths
	if len(targets) == 0 {
		targets = []string{cfg.ContractsDir}
	}

	paths, err := walker.New(cmdCtx.Logger).Discover(targets)
	if err != nil {
		return err
	}

	files := make([]*source.File, 0, len(paths))
	for _, path := range paths {
		f, err := source.Read(path)
		if err != nil {
			return err
		}
		files = append(files, f)
	}

	analyzer := lint.NewAnalyzer(buildCheckConfig(cfg, opts))
	report := analyzer.Run(files)

	// The severity flag filters display only; the exit status always
	// reflects the full report.
	display := filterBySeverity(report.Files, opts.Severity)
	if err := renderCheckResults(r, report, display); err != nil {
		return err
	}

	if report.HasErrors() {
		return fmt.Errorf("style violations found")
	}
	return nil
}

// buildCheckConfig resolves the engine config from the project config
// plus CLI overrides.
func buildCheckConfig(cfg *config.Config, opts *CheckOptions) *lint.Config {
	lintCfg := cfg.LintConfig()

	for _, id := range opts.Disable {
		lintCfg.Disable(strings.TrimSpace(id))
	}

	// If --rule specified, disable all others
	if len(opts.Rules) > 0 {
		enabledSet := make(map[string]bool)
		for _, id := range opts.Rules {
			enabledSet[strings.TrimSpace(id)] = true
		}
		for _, rule := range lint.GetAllRules() {
			if !enabledSet[rule.ID()] {
				lintCfg.Disable(rule.ID())
			}
		}
	}

	return lintCfg
}

// filterBySeverity drops findings below the display threshold.
func filterBySeverity(results []lint.FileResult, severityThreshold string) []lint.FileResult {
	threshold, ok := lint.ParseSeverity(severityThreshold)
	if !ok {
		threshold = lint.SeverityInfo
	}

	var filtered []lint.FileResult
	for _, res := range results {
		var diags []lint.Diagnostic
		for _, d := range res.Diagnostics {
			if d.Severity <= threshold {
				diags = append(diags, d)
			}
		}
		if len(diags) > 0 {
			filtered = append(filtered, lint.FileResult{
				Path:        res.Path,
				Diagnostics: diags,
			})
		}
	}
	return filtered
}

func renderCheckResults(r *output.Renderer, report *lint.Report, display []lint.FileResult) error {
	summary := report.Summarize()

	if r.EffectiveMode() == output.ModeJSON {
		jsonOutput := output.CheckOutput{
			Summary: output.CheckSummary{
				FilesChecked: summary.Files,
				TotalIssues:  summary.Total,
				Errors:       summary.Errors,
				Warnings:     summary.Warnings,
				Info:         summary.Info,
			},
		}
		for _, res := range display {
			fileResult := output.CheckFileResult{Path: res.Path}
			for _, d := range res.Diagnostics {
				fileResult.Diagnostics = append(fileResult.Diagnostics, output.CheckDiagnostic{
					RuleID:   d.RuleID,
					Severity: d.Severity.String(),
					Message:  d.Message,
					Line:     d.Line,
				})
			}
			jsonOutput.Files = append(jsonOutput.Files, fileResult)
		}
		return r.JSON(jsonOutput)
	}

	if summary.Total == 0 {
		r.Success(fmt.Sprintf("No style violations found in %d files", summary.Files))
		return nil
	}

	for _, res := range display {
		r.Println(r.Styles().FilePath.Render(res.Path))
		for _, d := range res.Diagnostics {
			loc := fmt.Sprintf("%d", d.Line)
			if d.Line == 0 {
				loc = "-"
			}
			r.Printf("  %s  %s  %s  %s\n",
				r.Styles().Muted.Render(fmt.Sprintf("%-4s", loc)),
				severityLabel(r, d.Severity),
				r.Styles().Bold.Render(d.RuleID),
				d.Message,
			)
		}
		r.Println("")
	}

	summaryParts := []string{fmt.Sprintf("%d issues", summary.Total)}
	if summary.Errors > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d errors", summary.Errors))
	}
	if summary.Warnings > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d warnings", summary.Warnings))
	}
	if summary.Info > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d info", summary.Info))
	}
	r.Printf("Summary: %s in %d files\n", strings.Join(summaryParts, ", "), summary.Files)
	return nil
}

func severityLabel(r *output.Renderer, sev lint.Severity) string {
	switch sev {
	case lint.SeverityError:
		return r.Styles().Error.Render("error  ")
	case lint.SeverityWarning:
		return r.Styles().Warning.Render("warning")
	case lint.SeverityInfo:
		return r.Styles().Info.Render("info   ")
	default:
		return r.Styles().Muted.Render("unknown")
	}
}

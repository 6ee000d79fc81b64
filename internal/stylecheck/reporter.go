package stylecheck

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/yacobolo/stylewarn"
)

// Reporter handles formatting and outputting check results
type Reporter struct {
	w               io.Writer
	useColors       bool
	printLines      bool
	printLinterName bool
}

// NewReporter creates a new reporter with the given configuration
func NewReporter(w io.Writer, config Config) *Reporter {
	return &Reporter{
		w:               w,
		useColors:       shouldUseColors(config),
		printLines:      config.PrintIssuedLines,
		printLinterName: config.PrintLinterName,
	}
}

// shouldUseColors determines if colors should be enabled
func shouldUseColors(config Config) bool {
	// Explicit flag wins
	if config.UseColors {
		return true
	}

	// FORCE_COLOR (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// PrintIssues outputs issues in golangci-lint format
func (r *Reporter) PrintIssues(issues []Issue) {
	// Sort issues by file, then line, then column
	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].Pos.Filename != issues[j].Pos.Filename {
			return issues[i].Pos.Filename < issues[j].Pos.Filename
		}
		if issues[i].Pos.Line != issues[j].Pos.Line {
			return issues[i].Pos.Line < issues[j].Pos.Line
		}
		return issues[i].Pos.Column < issues[j].Pos.Column
	})

	for _, issue := range issues {
		r.printIssue(issue)
	}
}

// printIssue formats a single issue in golangci-lint style
func (r *Reporter) printIssue(issue Issue) {
	// Format: file:line:col: message (linter)
	location := fmt.Sprintf("%s:%d:%d:", issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column)

	linterSuffix := ""
	if r.printLinterName {
		linterSuffix = fmt.Sprintf(" (%s)", issue.FromLinter)
	}

	fmt.Fprintf(r.w, "%s %s%s\n",
		RenderStyle(StyleLocation, location, r.useColors),
		issue.Text,
		RenderStyle(StyleHint, linterSuffix, r.useColors))

	if r.printLines && len(issue.SourceLines) > 0 {
		for _, line := range issue.SourceLines {
			fmt.Fprintf(r.w, "\t%s\n", line)
		}

		caret := r.buildCaretIndicator(issue.SourceLines[0], issue.Pos.Column)
		fmt.Fprintf(r.w, "\t%s\n", RenderStyle(StyleWarning, caret, r.useColors))

		if issue.Replacement != nil && issue.Replacement.NewText != "" {
			fmt.Fprintf(r.w, "\tsuggestion: %s\n", RenderStyle(StyleSuggestion, issue.Replacement.NewText, r.useColors))
		}
	}
}

// buildCaretIndicator creates the "^" indicator aligned with the column,
// copying tabs from the prefix so alignment survives tab stops
func (r *Reporter) buildCaretIndicator(sourceLine string, column int) string {
	if column <= 0 {
		return "^"
	}

	prefixLen := column - 1
	if prefixLen > len(sourceLine) {
		prefixLen = len(sourceLine)
	}

	prefix := sourceLine[:prefixLen]

	var padding strings.Builder
	for _, ch := range prefix {
		if ch == '\t' {
			padding.WriteRune('\t')
		} else {
			padding.WriteRune(' ')
		}
	}

	return padding.String() + "^"
}

// PrintSummary outputs the issue count summary
func (r *Reporter) PrintSummary(result Result) {
	totalIssues := len(result.Issues)
	truncated := result.TruncatedCount

	fmt.Fprintln(r.w, "")

	if totalIssues == 0 && truncated == 0 {
		fmt.Fprintln(r.w, RenderStyle(StyleClean, "0 issues.", r.useColors))
		return
	}

	var errors, warnings int
	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}

	counts := fmt.Sprintf("%s, %s",
		RenderStyle(StyleError, pluralizeCount(errors, "error", "errors"), r.useColors),
		RenderStyle(StyleWarning, pluralizeCount(warnings, "warning", "warnings"), r.useColors))
	if truncated > 0 {
		fmt.Fprintf(r.w, "%s (%s; %s truncated):\n",
			pluralizeCount(totalIssues, "issue", "issues"), counts,
			pluralizeCount(truncated, "issue", "issues"))
	} else {
		fmt.Fprintf(r.w, "%s (%s):\n", pluralizeCount(totalIssues, "issue", "issues"), counts)
	}

	// Group by rule, in evaluation order
	ruleCounts := make(map[string]int)
	for _, issue := range result.Issues {
		ruleCounts[issue.Rule]++
	}
	for _, rule := range stylewarn.AllRules {
		if count := ruleCounts[string(rule)]; count > 0 {
			fmt.Fprintf(r.w, "* %s: %d\n", renderRule(rule, string(rule), r.useColors), count)
		}
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleHint, "Hint: Run with --output-format full to see statistics", r.useColors))
}

// PrintStatistics outputs per-rule statistics
func (r *Reporter) PrintStatistics(result Result) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleLocation, "Style Check Statistics", r.useColors))
	fmt.Fprintln(r.w, "----------------------")

	fmt.Fprintf(r.w, "Files Scanned:        %d\n", result.FilesScanned)
	fmt.Fprintf(r.w, "Files Skipped:        %d\n", result.FilesSkipped)
	fmt.Fprintf(r.w, "Assignments Checked:  %d\n", result.AssignmentsChecked)
	fmt.Fprintf(r.w, "Custom Properties:    %d\n", result.CustomProperties)
	fmt.Fprintf(r.w, "Build Mode:           %s\n", stylewarn.BuildMode)

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleLocation, "Findings by Rule", r.useColors))
	fmt.Fprintln(r.w, "----------------")
	for _, rule := range stylewarn.AllRules {
		label := fmt.Sprintf("%-20s", string(rule)+":")
		fmt.Fprintf(r.w, "%s %d\n", renderRule(rule, label, r.useColors), result.RuleCounts[rule])
	}

	if len(result.Warnings) > 0 {
		fmt.Fprintln(r.w, "")
		fmt.Fprintln(r.w, RenderStyle(StyleWarning, "Warnings", r.useColors))
		fmt.Fprintln(r.w, "--------")
		for _, warning := range result.Warnings {
			fmt.Fprintf(r.w, "• %s\n", warning)
		}
	}
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}

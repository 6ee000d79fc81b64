package stylecheck

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/yacobolo/stylewarn"
)

// DetermineOutputFormat selects the output format from flags
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	// Explicit -quiet flag wins (exit code only)
	if quiet {
		return OutputIssues
	}

	switch formatFlag {
	case "issues":
		return OutputIssues
	case "summary":
		return OutputSummary
	case "full":
		return OutputFull
	case "json":
		return OutputJSON
	}

	// Invalid or empty format: golangci-lint style default
	return OutputIssues
}

// WriteOutput writes the check result in the specified format
func WriteOutput(w io.Writer, result *Result, format OutputFormat, config Config) {
	switch format {
	case OutputIssues:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)

	case OutputSummary:
		reporter := NewReporter(w, config)
		reporter.PrintStatistics(*result)

	case OutputFull:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)
		reporter.PrintStatistics(*result)

	case OutputJSON:
		if err := WriteJSON(w, result); err != nil {
			// Log error but don't crash
			fmt.Fprintf(os.Stderr, "Error writing JSON: %v\n", err)
		}
	}
}

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string         `json:"version"`
	Timestamp string         `json:"timestamp"`
	BuildMode string         `json:"build_mode"`
	Summary   JSONSummary    `json:"summary"`
	Rules     map[string]int `json:"rules"`
	Issues    []JSONIssue    `json:"issues"`
	Warnings  []string       `json:"warnings,omitempty"`
}

// JSONSummary contains high-level counts
type JSONSummary struct {
	TotalIssues        int `json:"total_issues"`
	Errors             int `json:"errors"`
	Warnings           int `json:"warnings"`
	Truncated          int `json:"truncated"`
	FilesScanned       int `json:"files_scanned"`
	AssignmentsChecked int `json:"assignments_checked"`
}

// JSONIssue represents a single issue
type JSONIssue struct {
	File       string `json:"file"`
	Line       int    `json:"line"`
	Column     int    `json:"column"`
	Severity   string `json:"severity"`
	Rule       string `json:"rule"`
	Message    string `json:"message"`
	Linter     string `json:"linter"`
	Suggestion string `json:"suggestion,omitempty"`
	Source     string `json:"source,omitempty"`
}

// WriteJSON writes the check result as JSON
func WriteJSON(w io.Writer, result *Result) error {
	output := buildJSONOutput(result)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts Result to JSONOutput
func buildJSONOutput(result *Result) JSONOutput {
	rules := make(map[string]int, len(stylewarn.AllRules))
	for _, rule := range stylewarn.AllRules {
		rules[string(rule)] = result.RuleCounts[rule]
	}

	issues := make([]JSONIssue, 0, len(result.Issues))
	for _, issue := range result.Issues {
		ji := JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: issue.Severity,
			Rule:     issue.Rule,
			Message:  issue.Text,
			Linter:   issue.FromLinter,
		}
		if issue.Replacement != nil {
			ji.Suggestion = issue.Replacement.NewText
		}
		if len(issue.SourceLines) > 0 {
			ji.Source = issue.SourceLines[0]
		}
		issues = append(issues, ji)
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		BuildMode: stylewarn.BuildMode,
		Summary: JSONSummary{
			TotalIssues:        len(result.Issues),
			Errors:             result.ErrorCount,
			Warnings:           result.WarningCount,
			Truncated:          result.TruncatedCount,
			FilesScanned:       result.FilesScanned,
			AssignmentsChecked: result.AssignmentsChecked,
		},
		Rules:    rules,
		Issues:   issues,
		Warnings: result.Warnings,
	}
}

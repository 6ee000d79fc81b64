package stylecheck

import "github.com/yacobolo/stylewarn"

// Issue represents a single diagnostic in golangci-lint format
type Issue struct {
	FromLinter  string       `json:"FromLinter"`  // "stylewarn"
	Rule        string       `json:"Rule"`        // "hyphenated-name"
	Text        string       `json:"Text"`        // "Unsupported style property background-color. Did you mean backgroundColor?"
	Severity    string       `json:"Severity"`    // "warning", "error"
	SourceLines []string     `json:"SourceLines"` // Lines of the style file with the issue
	Pos         IssuePos     `json:"Pos"`         // File location
	Replacement *Replacement `json:"Replacement"` // Optional fix suggestion
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "web/styles/button.yaml"
	Line     int    `json:"Line"`     // 12
	Column   int    `json:"Column"`   // 3 (1-based)
}

// Replacement provides an automated fix suggestion
type Replacement struct {
	NewText      string // "backgroundColor" or "red"
	InlineLength int    // Length of text to replace
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// severityOf maps rules to severities: naming and formatting slips are
// warnings, values the target cannot render are errors.
func severityOf(rule stylewarn.Rule) string {
	switch rule {
	case stylewarn.RuleNaNValue, stylewarn.RuleInfinityValue, stylewarn.RuleUnsupportedValue:
		return SeverityError
	default:
		return SeverityWarning
	}
}

// newIssue places a diagnostic at the assignment that triggered it.
func newIssue(a Assignment, d stylewarn.Diagnostic) Issue {
	issue := Issue{
		FromLinter: LinterName,
		Rule:       string(d.Rule),
		Text:       d.Message,
		Severity:   severityOf(d.Rule),
		Pos: IssuePos{
			Filename: a.File,
			Line:     a.ValuePos.Line,
			Column:   a.ValuePos.Column,
		},
	}
	if a.LineText != "" {
		issue.SourceLines = []string{a.LineText}
	}

	switch d.Rule {
	case stylewarn.RuleHyphenatedName, stylewarn.RuleVendorPrefix:
		issue.Pos.Line, issue.Pos.Column = a.NamePos.Line, a.NamePos.Column
		issue.SourceLines = nil
		if a.NameLine != "" {
			issue.SourceLines = []string{a.NameLine}
		}
		issue.Replacement = &Replacement{NewText: d.Suggestion, InlineLength: len(a.Name)}
	case stylewarn.RuleTrailingSemicolon:
		issue.Replacement = &Replacement{NewText: d.Suggestion, InlineLength: len(d.Value)}
	}
	return issue
}

package stylecheck

import "github.com/yacobolo/stylewarn"

// LinterName tags every issue, golangci-lint style.
const LinterName = "stylewarn"

// Config holds checker configuration
type Config struct {
	ScanPaths    []string // Patterns to scan (e.g., "web/styles/**/*.yaml")
	SupportCheck bool     // Query the headless environment for unsupported values
	Verbose      bool
	Strict       bool // Exit with code 1 on any issue, not only errors

	MaxIssues        int  // 0 = unlimited (default)
	MaxSameIssues    int  // 0 = unlimited (default)
	PrintIssuedLines bool // Show source lines with issues (default: true)
	PrintLinterName  bool // Show (stylewarn) suffix (default: true)
	UseColors        bool // Enable color output (default: auto-detect)
}

// Result contains check results
type Result struct {
	Issues []Issue

	FilesScanned       int
	FilesSkipped       int // generated/ignored or unsupported extensions
	AssignmentsChecked int
	CustomProperties   int // --* assignments, never validated
	RuleCounts         map[stylewarn.Rule]int
	ErrorCount         int
	WarningCount       int
	TruncatedCount     int // Issues removed due to limits

	// Files that could not be read or decoded
	Warnings []string
}

// Assignment is one property: value pair found in a style file.
type Assignment struct {
	File     string
	Style    string // enclosing style name, empty for flat files
	Name     string
	Value    stylewarn.Value
	NamePos  Position
	ValuePos Position
	NameLine string // source line of the name, for display
	LineText string // source line of the value, for display
}

// Position is a 1-based line and column.
type Position struct {
	Line   int
	Column int
}

// OutputFormat represents the checker output format
type OutputFormat string

const (
	// OutputIssues shows only errors/warnings in golangci-lint format (CI-friendly)
	OutputIssues OutputFormat = "issues"
	// OutputSummary shows per-rule statistics only
	OutputSummary OutputFormat = "summary"
	// OutputFull shows issues + statistics
	OutputFull OutputFormat = "full"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
)

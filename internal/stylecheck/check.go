// Package stylecheck runs the style validator over style files on disk and
// reports the findings in golangci-lint style.
package stylecheck

import (
	"fmt"

	"github.com/yacobolo/stylewarn"
	"github.com/yacobolo/stylewarn/internal/cssenv"
	"go.uber.org/zap"
)

// Check validates every assignment in the files matched by config.ScanPaths.
// One validator serves the whole run, so each name, semicolon value, NaN and
// Infinity finding is reported once across all files.
func Check(config Config, log *zap.Logger) (*Result, error) {
	if log == nil {
		log = zap.NewNop()
	}

	files, stats, err := expandGlobPatterns(config.ScanPaths)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	log.Debug("Discovered style files",
		zap.Int("discovered", stats.FilesDiscovered),
		zap.Int("skipped", stats.FilesSkipped))

	result := &Result{
		FilesScanned: stats.FilesScanned,
		FilesSkipped: stats.FilesSkipped,
		RuleCounts:   make(map[stylewarn.Rule]int),
	}

	// Diagnostics arrive synchronously from Validate, so the assignment
	// being checked is always the one that produced them.
	var current Assignment
	sink := stylewarn.SinkFunc(func(d stylewarn.Diagnostic) {
		result.Issues = append(result.Issues, newIssue(current, d))
		result.RuleCounts[d.Rule]++
	})

	opts := []stylewarn.Option{stylewarn.WithLogger(log), stylewarn.WithSink(sink)}
	if config.SupportCheck {
		opts = append(opts, stylewarn.WithStyleSupport(cssenv.New(log)))
	}
	validator := stylewarn.New(opts...)

	for _, file := range files {
		assignments, err := decodeFile(file)
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Failed to decode %s: %v", file, err))
			log.Debug("Skipping style file", zap.String("file", file), zap.Error(err))
			continue
		}

		for _, a := range assignments {
			if stylewarn.IsCustomProperty(a.Name) {
				result.CustomProperties++
				continue
			}
			current = a
			validator.Validate(a.Name, a.Value, stylewarn.ResolveValue(a.Name, a.Value))
			result.AssignmentsChecked++
		}
	}

	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityError:
			result.ErrorCount++
		case SeverityWarning:
			result.WarningCount++
		}
	}

	result.Issues, result.TruncatedCount = limitIssues(result.Issues, config)
	return result, nil
}

// Failed applies the exit-code policy: strict mode fails on any issue, the
// default soft gate only on errors.
func (r *Result) Failed(strict bool) bool {
	if strict {
		return r.ErrorCount+r.WarningCount > 0
	}
	return r.ErrorCount > 0
}

// limitIssues applies max-issues and max-same-issues constraints
func limitIssues(issues []Issue, config Config) ([]Issue, int) {
	originalCount := len(issues)

	// Apply max-same-issues first so the cap counts distinct findings
	if config.MaxSameIssues > 0 {
		issues = deduplicateSameIssues(issues, config.MaxSameIssues)
	}

	if config.MaxIssues > 0 && len(issues) > config.MaxIssues {
		issues = issues[:config.MaxIssues]
	}

	return issues, originalCount - len(issues)
}

// deduplicateSameIssues limits how many times the same message appears
func deduplicateSameIssues(issues []Issue, maxSame int) []Issue {
	messageCounts := make(map[string]int)
	var filtered []Issue

	for _, issue := range issues {
		count := messageCounts[issue.Text]
		if count < maxSame {
			filtered = append(filtered, issue)
			messageCounts[issue.Text]++
		}
	}

	return filtered
}

package stylecheck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yacobolo/stylewarn"
	"go.uber.org/zap"
)

func writeStyleFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func messages(issues []Issue) []string {
	out := make([]string, 0, len(issues))
	for _, issue := range issues {
		out = append(out, issue.Text)
	}
	return out
}

func TestCheckReportsEachRule(t *testing.T) {
	dir := t.TempDir()
	writeStyleFile(t, dir, "a.yaml", `button:
  background-color: red
  webkitTransform: none
  color: "red;"
  opacity: .nan
  flexGrow: .inf
  --accent: "not checked"
`)

	result, err := Check(Config{ScanPaths: []string{filepath.Join(dir, "*.yaml")}}, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Unsupported style property background-color. Did you mean backgroundColor?",
		"Unsupported vendor-prefixed style property webkitTransform. Did you mean WebkitTransform?",
		"Style property values shouldn't contain a semicolon. Try \"color: red\" instead.",
		"`NaN` is an invalid value for the `opacity` css style property.",
		"`Infinity` is an invalid value for the `flexGrow` css style property.",
	}, messages(result.Issues))

	assert.Equal(t, 1, result.FilesScanned)
	assert.Equal(t, 5, result.AssignmentsChecked)
	assert.Equal(t, 1, result.CustomProperties)
	assert.Equal(t, 2, result.ErrorCount)
	assert.Equal(t, 3, result.WarningCount)
	assert.Equal(t, 1, result.RuleCounts[stylewarn.RuleNaNValue])

	hyphen := result.Issues[0]
	assert.Equal(t, SeverityWarning, hyphen.Severity)
	assert.Equal(t, LinterName, hyphen.FromLinter)
	assert.Equal(t, IssuePos{Filename: filepath.Join(dir, "a.yaml"), Line: 2, Column: 3}, hyphen.Pos)
	require.NotNil(t, hyphen.Replacement)
	assert.Equal(t, "backgroundColor", hyphen.Replacement.NewText)

	nan := result.Issues[3]
	assert.Equal(t, SeverityError, nan.Severity)
	assert.Equal(t, 5, nan.Pos.Line)
	assert.Nil(t, nan.Replacement)
}

func TestCheckDeduplicatesAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	writeStyleFile(t, dir, "a.yaml", "background-color: red\nopacity: .nan\n")
	writeStyleFile(t, dir, "b.yaml", "background-color: blue\nwidth: .nan\n")

	result, err := Check(Config{ScanPaths: []string{filepath.Join(dir, "*.yaml")}}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Unsupported style property background-color. Did you mean backgroundColor?",
		"`NaN` is an invalid value for the `opacity` css style property.",
	}, messages(result.Issues))
}

func TestCheckUnsupportedValuesRepeat(t *testing.T) {
	dir := t.TempDir()
	writeStyleFile(t, dir, "a.yaml", `first:
  color: not-a-color
  width: 10
second:
  color: not-a-color
`)

	result, err := Check(Config{
		ScanPaths:    []string{filepath.Join(dir, "*.yaml")},
		SupportCheck: true,
	}, zap.NewNop())
	require.NoError(t, err)

	msg := "`not-a-color` is an invalid value for the `color` css style property."
	assert.Equal(t, []string{msg, msg}, messages(result.Issues))
	assert.Equal(t, 2, result.ErrorCount)
	assert.True(t, result.Failed(false))
}

func TestCheckWithoutSupportCheck(t *testing.T) {
	dir := t.TempDir()
	writeStyleFile(t, dir, "a.yaml", "color: not-a-color\n")

	result, err := Check(Config{ScanPaths: []string{filepath.Join(dir, "*.yaml")}}, zap.NewNop())
	require.NoError(t, err)
	assert.Empty(t, result.Issues)
	assert.False(t, result.Failed(true))
}

func TestCheckRecordsDecodeFailures(t *testing.T) {
	dir := t.TempDir()
	writeStyleFile(t, dir, "bad.yaml", "- not\n- a mapping\n")
	writeStyleFile(t, dir, "good.yaml", "color: red\n")

	result, err := Check(Config{ScanPaths: []string{filepath.Join(dir, "*.yaml")}}, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "bad.yaml")
	assert.Equal(t, 1, result.AssignmentsChecked)
}

func TestCheckBadPattern(t *testing.T) {
	_, err := Check(Config{ScanPaths: []string{"[unclosed"}}, zap.NewNop())
	require.Error(t, err)
}

func TestResultFailed(t *testing.T) {
	tests := []struct {
		name     string
		errors   int
		warnings int
		strict   bool
		want     bool
	}{
		{name: "clean", want: false},
		{name: "warnings soft", warnings: 2, want: false},
		{name: "warnings strict", warnings: 2, strict: true, want: true},
		{name: "errors soft", errors: 1, want: true},
		{name: "errors strict", errors: 1, strict: true, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Result{ErrorCount: tt.errors, WarningCount: tt.warnings}
			assert.Equal(t, tt.want, r.Failed(tt.strict))
		})
	}
}

func TestLimitIssues(t *testing.T) {
	issues := []Issue{
		{Text: "a"}, {Text: "a"}, {Text: "a"}, {Text: "b"}, {Text: "c"},
	}

	got, truncated := limitIssues(issues, Config{MaxSameIssues: 2})
	assert.Equal(t, []string{"a", "a", "b", "c"}, messages(got))
	assert.Equal(t, 1, truncated)

	got, truncated = limitIssues(issues, Config{MaxSameIssues: 1, MaxIssues: 2})
	assert.Equal(t, []string{"a", "b"}, messages(got))
	assert.Equal(t, 3, truncated)

	got, truncated = limitIssues(issues, Config{})
	assert.Len(t, got, 5)
	assert.Zero(t, truncated)
}

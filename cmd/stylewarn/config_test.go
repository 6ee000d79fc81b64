package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yacobolo/stylewarn"
)

// resetKoanf creates a fresh koanf instance for each test.
func resetKoanf() {
	k = koanf.New(".")
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestConfigFileLoading(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".stylewarn.yaml")
	writeFile(t, configPath, `
verbose: true
color: true

check:
  strict: true
  support-check: false
  max-issues: 25
  paths:
    - "web/**/*.yaml"
`)
	require.NoError(t, loadConfigFromPath(configPath))

	assert.True(t, k.Bool("verbose"))
	assert.True(t, k.Bool("color"))
	assert.True(t, k.Bool("check.strict"))
	assert.False(t, k.Bool("check.support-check"))
	assert.Equal(t, 25, k.Int("check.max-issues"))
	assert.Equal(t, []string{"web/**/*.yaml"}, k.Strings("check.paths"))
}

func TestConfigFileNotFound_UsesDefaults(t *testing.T) {
	resetKoanf()

	// Point to non-existent config, should not error
	require.NoError(t, loadConfigFromPath("/nonexistent/.stylewarn.yaml"))

	config := buildCheckConfig()
	assert.Equal(t, defaultScanPaths, config.ScanPaths)
	assert.True(t, config.SupportCheck)
	assert.False(t, config.Strict)
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".stylewarn.yaml")
	writeFile(t, configPath, `
check:
  strict: false
  output-format: summary
`)

	t.Setenv("STYLEWARN_CHECK_STRICT", "true")
	t.Setenv("STYLEWARN_VERBOSE", "true")

	require.NoError(t, loadConfigFromPath(configPath))

	assert.True(t, k.Bool("check.strict"))
	assert.True(t, k.Bool("verbose"))
	assert.Equal(t, "summary", k.String("check.output-format"))
}

func TestBuildCheckConfig_Defaults(t *testing.T) {
	resetKoanf()

	config := buildCheckConfig()
	assert.Equal(t, defaultScanPaths, config.ScanPaths)
	assert.True(t, config.SupportCheck)
	assert.False(t, config.Verbose)
	assert.False(t, config.Strict)
	assert.Equal(t, 0, config.MaxIssues)
	assert.Equal(t, 0, config.MaxSameIssues)
	assert.True(t, config.PrintIssuedLines)
	assert.True(t, config.PrintLinterName)
	assert.False(t, config.UseColors)
}

func TestBuildCheckConfig_FromConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".stylewarn.yaml")
	writeFile(t, configPath, `
check:
  strict: true
  paths:
    - "src/**/*.json"
  max-same-issues: 3
  print-lines: false
`)
	require.NoError(t, loadConfigFromPath(configPath))

	config := buildCheckConfig()
	assert.True(t, config.Strict)
	assert.Equal(t, []string{"src/**/*.json"}, config.ScanPaths)
	assert.Equal(t, 3, config.MaxSameIssues)
	assert.False(t, config.PrintIssuedLines)
}

func TestLoadConfig_UnsetFlagsDoNotShadowFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".stylewarn.yaml")
	writeFile(t, configPath, `
check:
  strict: true
  paths:
    - "from/file/*.yaml"
`)

	cmd := &cobra.Command{Use: "check"}
	cmd.Flags().String("config", "", "")
	addCheckFlags(cmd)
	require.NoError(t, cmd.Flags().Parse([]string{"--config", configPath, "--max-issues", "7"}))
	require.NoError(t, loadConfig(cmd))

	config := buildCheckConfig()
	assert.True(t, config.Strict)
	assert.Equal(t, []string{"from/file/*.yaml"}, config.ScanPaths)
	assert.Equal(t, 7, config.MaxIssues)
}

func TestRunCheck(t *testing.T) {
	t.Setenv("FORCE_COLOR", "")
	t.Setenv("GITHUB_ACTIONS", "")

	dir := t.TempDir()
	stylePath := filepath.Join(dir, "button.yaml")
	writeFile(t, stylePath, "button:\n  background-color: red\n  color: not-a-color\n")

	tests := []struct {
		name    string
		config  string
		wantErr bool
		want    []string
	}{
		{
			name: "soft gate fails on errors",
			config: `check:
  output-format: issues
  print-linter-name: true
`,
			wantErr: true,
			want: []string{
				"button.yaml:2:3: Unsupported style property background-color. Did you mean backgroundColor? (stylewarn)",
				"button.yaml:3:10: `not-a-color` is an invalid value for the `color` css style property. (stylewarn)",
				"2 issues (1 error, 1 warning):",
			},
		},
		{
			name: "warnings alone pass without strict",
			config: `check:
  support-check: false
`,
			wantErr: false,
			want:    []string{"1 issue (0 errors, 1 warning):"},
		},
		{
			name: "strict fails on warnings",
			config: `check:
  support-check: false
  strict: true
`,
			wantErr: true,
			want:    []string{"1 issue (0 errors, 1 warning):"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetKoanf()
			configPath := filepath.Join(t.TempDir(), ".stylewarn.yaml")
			writeFile(t, configPath, tt.config)
			require.NoError(t, loadConfigFromPath(configPath))
			require.NoError(t, k.Set("paths", []string{stylePath}))

			var out bytes.Buffer
			cmd := &cobra.Command{}
			cmd.SetOut(&out)

			err := runCheck(cmd)
			if tt.wantErr {
				require.ErrorIs(t, err, errIssuesFound)
			} else {
				require.NoError(t, err)
			}
			for _, line := range tt.want {
				assert.Contains(t, out.String(), line)
			}
		})
	}
}

func TestRunCheck_JSON(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	stylePath := filepath.Join(dir, "card.json")
	writeFile(t, stylePath, `{"card": {"opacity": 0.5, "padding": "4px;"}}`)
	require.NoError(t, k.Set("paths", []string{stylePath}))
	require.NoError(t, k.Set("support-check", false))
	require.NoError(t, k.Set("output-format", "json"))

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	require.NoError(t, runCheck(cmd))

	var report struct {
		Summary struct {
			TotalIssues int `json:"total_issues"`
		} `json:"summary"`
		Rules map[string]int `json:"rules"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	assert.Equal(t, 1, report.Summary.TotalIssues)
	assert.Equal(t, 1, report.Rules[string(stylewarn.RuleTrailingSemicolon)])
}

func TestRunCheck_Quiet(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	stylePath := filepath.Join(dir, "a.yaml")
	writeFile(t, stylePath, "width: .inf\n")
	require.NoError(t, k.Set("paths", []string{stylePath}))
	require.NoError(t, k.Set("quiet", true))

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	require.ErrorIs(t, runCheck(cmd), errIssuesFound)
	assert.Empty(t, out.String())
}

func TestInitCommand_CreatesConfigFile(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	cmd := rootCmd
	cmd.SetArgs([]string{"init"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(".stylewarn.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "check:")
	assert.Contains(t, string(data), "support-check: true")
}

func TestInitCommand_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	require.NoError(t, os.WriteFile(".stylewarn.yaml", []byte("existing"), 0644))

	cmd := rootCmd
	cmd.SetArgs([]string{"init"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInitCommand_ForceOverwrite(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	require.NoError(t, os.WriteFile(".stylewarn.yaml", []byte("existing"), 0644))

	cmd := rootCmd
	cmd.SetArgs([]string{"init", "--force"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(".stylewarn.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "check:")
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := rootCmd
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
	cmd.SetOut(nil)

	assert.Equal(t, "stylewarn dev ("+stylewarn.BuildMode+")\n", out.String())
}

func TestCompletionCommand(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			var out bytes.Buffer
			cmd := rootCmd
			cmd.SetOut(&out)
			cmd.SetArgs([]string{"completion", shell})
			require.NoError(t, cmd.Execute())
			cmd.SetOut(nil)

			assert.Contains(t, out.String(), "stylewarn")
		})
	}
}

func TestOutputFormatFlagCompletion(t *testing.T) {
	for _, cmd := range []*cobra.Command{rootCmd, checkCmd} {
		fn, ok := cmd.GetFlagCompletionFunc("output-format")
		require.True(t, ok, cmd.Name())

		got, directive := fn(cmd, nil, "")
		assert.Equal(t, []string{"issues", "summary", "full", "json"}, got)
		assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
	}
}

func TestGetStringWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set, should return default
	assert.Equal(t, "default", getStringWithFallback("flag-key", "config.key", "default"))
}

func TestGetBoolWithFallback(t *testing.T) {
	resetKoanf()

	assert.False(t, getBoolWithFallback("flag-key", "config.key", false))
	assert.True(t, getBoolWithFallback("flag-key", "config.key", true))
}

func TestGetIntWithFallback(t *testing.T) {
	resetKoanf()

	assert.Equal(t, 42, getIntWithFallback("flag-key", "config.key", 42))
}

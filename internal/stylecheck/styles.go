package stylecheck

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/yacobolo/stylewarn"
)

// Report styles. Lipgloss degrades colors to what the terminal supports.
var (
	// StyleLocation marks file:line:col prefixes and section headers.
	StyleLocation = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	// StyleError marks error counts and error-severity rule names.
	StyleError = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	// StyleWarning marks warning counts, warning-severity rule names and carets.
	StyleWarning = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	// StyleClean marks the all-clear line.
	StyleClean = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	// StyleHint marks linter names and hints.
	StyleHint = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	// StyleSuggestion marks the replacement offered for a name or value.
	StyleSuggestion = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// RenderStyle applies a lipgloss style to text when colors are enabled.
// When useColors is false, the text is returned unmodified.
func RenderStyle(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}

// severityStyle picks the style for a severity.
func severityStyle(severity string) lipgloss.Style {
	if severity == SeverityError {
		return StyleError
	}
	return StyleWarning
}

// renderRule renders text for a rule in the color of the rule's severity.
func renderRule(rule stylewarn.Rule, text string, useColors bool) string {
	return RenderStyle(severityStyle(severityOf(rule)), text, useColors)
}

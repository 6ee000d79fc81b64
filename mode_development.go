//go:build !stylewarn_production

package stylewarn

// Enabled reports whether diagnostics are compiled in.
const Enabled = true

// BuildMode names the build flavor for version output.
const BuildMode = "development"

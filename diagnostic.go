package stylewarn

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Rule identifies which check produced a diagnostic.
type Rule string

// Rules, in evaluation order.
const (
	RuleHyphenatedName    Rule = "hyphenated-name"
	RuleVendorPrefix      Rule = "vendor-prefix"
	RuleTrailingSemicolon Rule = "trailing-semicolon"
	RuleNaNValue          Rule = "nan-value"
	RuleInfinityValue     Rule = "infinity-value"
	RuleUnsupportedValue  Rule = "unsupported-value"
)

// AllRules lists every rule in evaluation order.
var AllRules = []Rule{
	RuleHyphenatedName,
	RuleVendorPrefix,
	RuleTrailingSemicolon,
	RuleNaNValue,
	RuleInfinityValue,
	RuleUnsupportedValue,
}

// Message templates. Developers grep logs for these, keep wording and
// placeholder order stable.
const (
	MsgHyphenatedName    = "Unsupported style property %s. Did you mean %s?"
	MsgVendorPrefix      = "Unsupported vendor-prefixed style property %s. Did you mean %s?"
	MsgTrailingSemicolon = "Style property values shouldn't contain a semicolon. Try \"%s: %s\" instead."
	MsgNaNValue          = "`NaN` is an invalid value for the `%s` css style property."
	MsgInfinityValue     = "`Infinity` is an invalid value for the `%s` css style property."
	MsgUnsupportedValue  = "`%s` is an invalid value for the `%s` css style property."
)

// Diagnostic is a single advisory finding.
type Diagnostic struct {
	Rule       Rule
	Property   string // name as passed to Validate
	Value      string // raw value, stringified
	Suggestion string // "backgroundColor", "WebkitTransform", "red"; empty for value rules
	Message    string // rendered template
}

// Sink receives diagnostics. Implementations must not call back into the
// Validator that reports to them.
type Sink interface {
	Report(d Diagnostic)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(d Diagnostic)

// Report calls f(d).
func (f SinkFunc) Report(d Diagnostic) {
	f(d)
}

type logSink struct {
	log *zap.Logger
}

// NewLogSink returns a Sink writing one warning entry per diagnostic.
func NewLogSink(log *zap.Logger) Sink {
	if log == nil {
		log = zap.NewNop()
	}
	return logSink{log: log}
}

func (s logSink) Report(d Diagnostic) {
	fields := []zap.Field{
		zap.String("rule", string(d.Rule)),
		zap.String("property", d.Property),
	}
	if d.Suggestion != "" {
		fields = append(fields, zap.String("suggestion", d.Suggestion))
	}
	s.log.Warn(d.Message, fields...)
}

// consoleLogger is what a Validator logs to when the host supplies nothing:
// plain console lines on stderr.
func consoleLogger() *zap.Logger {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.TimeKey = zapcore.OmitKey
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(os.Stderr), zapcore.WarnLevel)
	return zap.New(core)
}

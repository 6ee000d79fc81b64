package stylewarn

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"go.uber.org/zap"
)

var (
	// msTransform is correct, the other prefixes should be capitalized.
	badVendoredStyleNamePattern = regexp.MustCompile(`^(?:webkit|moz|o)[A-Z]`)
	msPattern                   = regexp.MustCompile(`^-ms-`)
	// A script-host "." stops at line terminators.
	hyphenPattern = regexp.MustCompile(`-([^\n\r\x{2028}\x{2029}])`)

	// Whitespace here follows the script-host definition: RE2's \s plus
	// vertical tab, Unicode separators and the BOM.
	badStyleValueWithSemicolonPattern = regexp.MustCompile(`;[\s\v\p{Z}\x{FEFF}]*$`)
)

// StyleSupport is the optional capability of a rendering target to tell
// whether it supports a value for a property.
type StyleSupport interface {
	// NewScratchElement returns a throwaway, never rendered element.
	NewScratchElement() ScratchElement
	// Supports reports whether value is valid for the canonical property key.
	Supports(property, value string) bool
}

// ScratchElement is a style-bearing element used to learn the canonical key
// the target applies for a property name.
type ScratchElement interface {
	// SetStyle assigns a property the way a host would.
	SetStyle(name, value string)
	// Item returns the key of the index-th applied property, or "".
	Item(index int) string
}

// Option configures a Validator.
type Option func(*Validator)

// WithLogger sets the logger. Diagnostics go to it unless WithSink is used.
func WithLogger(log *zap.Logger) Option {
	return func(v *Validator) {
		if log != nil {
			v.log = log
		}
	}
}

// WithSink routes diagnostics to s instead of the logger.
func WithSink(s Sink) Option {
	return func(v *Validator) {
		v.sink = s
	}
}

// WithStyleSupport enables the unsupported-value check. Without it, or with
// a nil support, that check is skipped.
func WithStyleSupport(s StyleSupport) Option {
	return func(v *Validator) {
		v.support = s
	}
}

// Validator checks style assignments and reports developer mistakes.
// Each kind of name and semicolon finding is reported once per key, NaN and
// Infinity once per Validator. Create one per process or lifecycle.
// It is safe for concurrent use.
type Validator struct {
	log     *zap.Logger
	sink    Sink
	support StyleSupport

	mu                     sync.Mutex
	warnedStyleNames       map[string]bool
	warnedStyleValues      map[string]bool
	warnedForNaNValue      bool
	warnedForInfinityValue bool
}

// New creates a Validator with empty dedup state.
func New(opts ...Option) *Validator {
	v := &Validator{
		warnedStyleNames:  make(map[string]bool),
		warnedStyleValues: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.log == nil {
		v.log = consoleLogger()
	}
	v.log = v.log.Named("stylewarn")
	if v.sink == nil {
		v.sink = NewLogSink(v.log)
	}
	return v
}

// Validate inspects one assignment. resolved is the string the host is about
// to commit for value. It never panics and has no effect in production builds.
func (v *Validator) Validate(name string, value Value, resolved string) {
	if !Enabled || v == nil {
		return
	}

	raw := value.String()

	switch {
	case strings.Contains(name, "-"):
		v.warnHyphenatedStyleName(name)
	case badVendoredStyleNamePattern.MatchString(name):
		v.warnBadVendoredStyleName(name)
	case badStyleValueWithSemicolonPattern.MatchString(raw):
		v.warnStyleValueWithSemicolon(name, raw)
	}

	switch {
	case value.IsNaN():
		v.warnStyleValueIsNaN(name)
	case value.IsInf():
		v.warnStyleValueIsInfinity(name)
	case v.support != nil:
		v.checkSupported(name, raw, resolved)
	}
}

func camelize(s string) string {
	return hyphenPattern.ReplaceAllStringFunc(s, func(m string) string {
		return strings.ToUpper(m[1:])
	})
}

// HyphenatedSuggestion returns the camel-cased form of a CSS property name.
// A leading -ms- becomes ms, following the DOM naming of that prefix.
func HyphenatedSuggestion(name string) string {
	return camelize(msPattern.ReplaceAllString(name, "ms-"))
}

// VendorSuggestion returns name with its first character upper-cased.
func VendorSuggestion(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// StripSemicolon removes a trailing semicolon and the whitespace after it.
func StripSemicolon(value string) string {
	return badStyleValueWithSemicolonPattern.ReplaceAllString(value, "")
}

// markName records name and reports whether it was new.
func (v *Validator) markName(name string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.warnedStyleNames[name] {
		return false
	}
	v.warnedStyleNames[name] = true
	return true
}

func (v *Validator) warnHyphenatedStyleName(name string) {
	if !v.markName(name) {
		return
	}
	suggestion := HyphenatedSuggestion(name)
	v.emit(Diagnostic{
		Rule:       RuleHyphenatedName,
		Property:   name,
		Suggestion: suggestion,
		Message:    fmt.Sprintf(MsgHyphenatedName, name, suggestion),
	})
}

func (v *Validator) warnBadVendoredStyleName(name string) {
	if !v.markName(name) {
		return
	}
	suggestion := VendorSuggestion(name)
	v.emit(Diagnostic{
		Rule:       RuleVendorPrefix,
		Property:   name,
		Suggestion: suggestion,
		Message:    fmt.Sprintf(MsgVendorPrefix, name, suggestion),
	})
}

func (v *Validator) warnStyleValueWithSemicolon(name, value string) {
	v.mu.Lock()
	seen := v.warnedStyleValues[value]
	v.warnedStyleValues[value] = true
	v.mu.Unlock()
	if seen {
		return
	}

	stripped := StripSemicolon(value)
	v.emit(Diagnostic{
		Rule:       RuleTrailingSemicolon,
		Property:   name,
		Value:      value,
		Suggestion: stripped,
		Message:    fmt.Sprintf(MsgTrailingSemicolon, name, stripped),
	})
}

func (v *Validator) warnStyleValueIsNaN(name string) {
	v.mu.Lock()
	seen := v.warnedForNaNValue
	v.warnedForNaNValue = true
	v.mu.Unlock()
	if seen {
		return
	}

	v.emit(Diagnostic{
		Rule:     RuleNaNValue,
		Property: name,
		Value:    "NaN",
		Message:  fmt.Sprintf(MsgNaNValue, name),
	})
}

func (v *Validator) warnStyleValueIsInfinity(name string) {
	v.mu.Lock()
	seen := v.warnedForInfinityValue
	v.warnedForInfinityValue = true
	v.mu.Unlock()
	if seen {
		return
	}

	v.emit(Diagnostic{
		Rule:     RuleInfinityValue,
		Property: name,
		Value:    "Infinity",
		Message:  fmt.Sprintf(MsgInfinityValue, name),
	})
}

// checkSupported asks the rendering target whether it accepts the value.
// Not deduplicated.
func (v *Validator) checkSupported(name, raw, resolved string) {
	defer func() {
		if r := recover(); r != nil {
			v.log.Debug("style support query failed",
				zap.String("property", name),
				zap.Any("panic", r))
		}
	}()

	el := v.support.NewScratchElement()
	if el == nil {
		return
	}
	el.SetStyle(name, resolved)
	if v.support.Supports(el.Item(0), resolved) {
		return
	}

	v.emit(Diagnostic{
		Rule:     RuleUnsupportedValue,
		Property: name,
		Value:    raw,
		Message:  fmt.Sprintf(MsgUnsupportedValue, raw, name),
	})
}

func (v *Validator) emit(d Diagnostic) {
	defer func() {
		if r := recover(); r != nil {
			v.log.Debug("diagnostic sink failed",
				zap.String("rule", string(d.Rule)),
				zap.Any("panic", r))
		}
	}()
	v.sink.Report(d)
}

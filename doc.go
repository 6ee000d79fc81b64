// Package stylewarn provides development-mode diagnostics for style
// properties applied by a UI rendering pipeline.
//
// A Validator inspects each property name and value immediately before the
// host commits it to an element and reports developer mistakes: hyphenated
// CSS names used where the camel-cased form is expected, badly cased vendor
// prefixes, values with a trailing semicolon, NaN and Infinity numbers, and
// values the rendering target does not support. It never changes what gets
// rendered.
//
// # Usage
//
//	v := stylewarn.New(
//		stylewarn.WithLogger(log),
//		stylewarn.WithStyleSupport(env), // optional
//	)
//	v.Validate("background-color", stylewarn.Text("red"), "red")
//	// Unsupported style property background-color. Did you mean backgroundColor?
//
// Values are classified by the caller as Numeric or Text. ResolveValue gives
// the string a host commits for a value, which is what Validate expects as
// its third argument.
//
// # Production builds
//
// Building with the stylewarn_production tag turns Validate into a no-op:
//
//	go build -tags stylewarn_production ./...
package stylewarn

package stylewarn

import (
	"math"
	"strconv"
	"strings"
)

// Kind tells a Numeric value from a Text value.
type Kind uint8

const (
	// KindText is a string value such as "red" or "10px".
	KindText Kind = iota
	// KindNumeric is a bare number such as 10 or NaN.
	KindNumeric
)

// Value is a style value as supplied by the application.
// The zero Value is the empty text.
type Value struct {
	kind Kind
	num  float64
	text string
}

// Numeric wraps a number.
func Numeric(f float64) Value {
	return Value{kind: KindNumeric, num: f}
}

// Text wraps a string.
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// Kind returns the value's kind.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNumeric reports whether v holds a number.
func (v Value) IsNumeric() bool {
	return v.kind == KindNumeric
}

// Float returns the number held by v, or 0 for text.
func (v Value) Float() float64 {
	return v.num
}

// IsNaN reports whether v is the number NaN.
func (v Value) IsNaN() bool {
	return v.kind == KindNumeric && math.IsNaN(v.num)
}

// IsInf reports whether v is a positive or negative infinite number.
func (v Value) IsInf() bool {
	return v.kind == KindNumeric && math.IsInf(v.num, 0)
}

// String returns the value the way a script host would print it:
// 10, 1.5, 1e+21, NaN, Infinity, -Infinity.
func (v Value) String() string {
	if v.kind == KindText {
		return v.text
	}
	return formatNumber(v.num)
}

func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		// Covers negative zero.
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		mantissa, exp, _ := strings.Cut(s, "e")
		sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
		return mantissa + "e" + sign + digits
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

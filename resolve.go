package stylewarn

import "strings"

// unitlessProperties accept bare numbers. Every entry is also registered
// with the Webkit, ms, Moz and O prefixes.
var unitlessProperties = map[string]bool{
	"animationIterationCount": true,
	"aspectRatio":             true,
	"borderImageOutset":       true,
	"borderImageSlice":        true,
	"borderImageWidth":        true,
	"boxFlex":                 true,
	"boxFlexGroup":            true,
	"boxOrdinalGroup":         true,
	"columnCount":             true,
	"columns":                 true,
	"flex":                    true,
	"flexGrow":                true,
	"flexPositive":            true,
	"flexShrink":              true,
	"flexNegative":            true,
	"flexOrder":               true,
	"gridArea":                true,
	"gridRow":                 true,
	"gridRowEnd":              true,
	"gridRowSpan":             true,
	"gridRowStart":            true,
	"gridColumn":              true,
	"gridColumnEnd":           true,
	"gridColumnSpan":          true,
	"gridColumnStart":         true,
	"fontWeight":              true,
	"lineClamp":               true,
	"lineHeight":              true,
	"opacity":                 true,
	"order":                   true,
	"orphans":                 true,
	"tabSize":                 true,
	"widows":                  true,
	"zIndex":                  true,
	"zoom":                    true,

	// SVG-related properties
	"fillOpacity":      true,
	"floodOpacity":     true,
	"stopOpacity":      true,
	"strokeDasharray":  true,
	"strokeDashoffset": true,
	"strokeMiterlimit": true,
	"strokeOpacity":    true,
	"strokeWidth":      true,
}

func init() {
	prefixes := []string{"Webkit", "ms", "Moz", "O"}
	base := make([]string, 0, len(unitlessProperties))
	for name := range unitlessProperties {
		base = append(base, name)
	}
	for _, name := range base {
		suffix := strings.ToUpper(name[:1]) + name[1:]
		for _, prefix := range prefixes {
			unitlessProperties[prefix+suffix] = true
		}
	}
}

// IsUnitless reports whether a bare number is valid for the property.
func IsUnitless(name string) bool {
	return unitlessProperties[name]
}

// IsCustomProperty reports whether name is a CSS custom property (--foo).
func IsCustomProperty(name string) bool {
	return strings.HasPrefix(name, "--")
}

// ResolveValue returns the string a host commits for value: non-zero
// numbers get a px unit unless the property is unitless or custom, and
// everything else is trimmed.
func ResolveValue(name string, value Value) string {
	if value.IsNumeric() && value.Float() != 0 && !IsCustomProperty(name) && !IsUnitless(name) {
		return value.String() + "px"
	}
	return strings.TrimSpace(value.String())
}

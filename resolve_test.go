package stylewarn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveValue(t *testing.T) {
	tests := []struct {
		name     string
		property string
		value    Value
		want     string
	}{
		{name: "number gets px", property: "width", value: Numeric(10), want: "10px"},
		{name: "zero stays bare", property: "width", value: Numeric(0), want: "0"},
		{name: "unitless", property: "opacity", value: Numeric(0.5), want: "0.5"},
		{name: "prefixed unitless", property: "WebkitFlexGrow", value: Numeric(1), want: "1"},
		{name: "ms prefixed unitless", property: "msFlexGrow", value: Numeric(1), want: "1"},
		{name: "custom property", property: "--gap", value: Numeric(4), want: "4"},
		{name: "text trimmed", property: "color", value: Text("  red "), want: "red"},
		{name: "custom text trimmed", property: "--tone", value: Text(" warm "), want: "warm"},
		{name: "nan", property: "width", value: Numeric(math.NaN()), want: "NaNpx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveValue(tt.property, tt.value))
		})
	}
}

func TestIsUnitless(t *testing.T) {
	assert.True(t, IsUnitless("zIndex"))
	assert.True(t, IsUnitless("MozOpacity"))
	assert.False(t, IsUnitless("width"))
	assert.False(t, IsUnitless("z-index"))
}

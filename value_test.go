package stylewarn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueString(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  string
	}{
		{name: "text", value: Text("red"), want: "red"},
		{name: "zero value", value: Value{}, want: ""},
		{name: "integer", value: Numeric(10), want: "10"},
		{name: "fraction", value: Numeric(1.5), want: "1.5"},
		{name: "negative", value: Numeric(-0.25), want: "-0.25"},
		{name: "negative zero", value: Numeric(math.Copysign(0, -1)), want: "0"},
		{name: "large", value: Numeric(1e21), want: "1e+21"},
		{name: "small", value: Numeric(1.5e-7), want: "1.5e-7"},
		{name: "nan", value: Numeric(math.NaN()), want: "NaN"},
		{name: "infinity", value: Numeric(math.Inf(1)), want: "Infinity"},
		{name: "negative infinity", value: Numeric(math.Inf(-1)), want: "-Infinity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.value.String())
		})
	}
}

func TestValueClassification(t *testing.T) {
	assert.True(t, Numeric(math.NaN()).IsNaN())
	assert.False(t, Numeric(math.NaN()).IsInf())
	assert.True(t, Numeric(math.Inf(-1)).IsInf())
	assert.False(t, Text("NaN").IsNaN())
	assert.False(t, Text("Infinity").IsInf())
	assert.Equal(t, KindNumeric, Numeric(1).Kind())
	assert.Equal(t, KindText, Text("1").Kind())
	assert.False(t, Text("1").IsNumeric())
	assert.Zero(t, Text("1").Float())
}

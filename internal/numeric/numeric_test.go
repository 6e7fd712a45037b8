package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dashfolio-dev/dashfolio/internal/model"
)

func TestCoerce(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"1,5", 1.5},
		{"3.2", 3.2},
		{"  42 ", 42},
		{"-7", -7},
		{"+7", 7},
		{".5", 0.5},
		{"5.", 5},
		{"1e3", 1000},
		{"2.5E-1", 0.25},
		{"0x10", 16},
		{"0b101", 5},
		{"0o17", 15},
		{" 12\t", 12},
		{"\ufeff9", 9},
		{"\u00a07\u2028", 7},
		{"\u30008", 8},
		{"\u0085 5", 0},
		{"5\u0085", 0},
		{"", 0},
		{"   ", 0},
		{"abc", 0},
		{"12 EUR", 0},
		{"1,234.56", 0},
		{"1.5.3", 0},
		{"Infinity", 0},
		{"-Infinity", 0},
		{"inf", 0},
		{"NaN", 0},
		{"1e400", 0},
		{"1_000", 0},
		{"0x1p3", 0},
		{"-0x10", 0},
		{"0x", 0},
		{"e5", 0},
		{"5e", 0},
		{"-", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Coerce(tt.input), "Coerce(%q)", tt.input)
	}
}

func TestField(t *testing.T) {
	r := model.NewRecord("a", "10,25", "b", "oops")

	assert.Equal(t, 10.25, Field(r, "a"))
	assert.Equal(t, 0.0, Field(r, "b"))
	assert.Equal(t, 0.0, Field(r, "missing"))
}

func TestSum(t *testing.T) {
	ds := model.NewDataset(
		model.NewRecord("v", "100"),
		model.NewRecord("v", "200,5"),
		model.NewRecord("v", "n/a"),
		model.NewRecord(),
	)
	assert.Equal(t, 300.5, Sum(ds, "v"))
	assert.Equal(t, 0.0, Sum(model.Dataset{}, "v"))
}

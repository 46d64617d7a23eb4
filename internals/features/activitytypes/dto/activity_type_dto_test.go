package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "كرة القدم", NormalizeName("  كرة القدم  "))
	assert.Equal(t, "", NormalizeName("   "))
}

func TestDedupeNames(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{
			"case-insensitive dedupe keeps first",
			[]string{"Football", "football", "FOOTBALL", "Chess"},
			[]string{"Football", "Chess"},
		},
		{
			"trims before comparing",
			[]string{" كرة القدم ", "كرة القدم", "سباحة"},
			[]string{"كرة القدم", "سباحة"},
		},
		{
			"drops empties",
			[]string{"", "  ", "Tennis"},
			[]string{"Tennis"},
		},
		{
			"preserves order",
			[]string{"c", "a", "b", "a"},
			[]string{"c", "a", "b"},
		},
		{"empty input", nil, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DedupeNames(tt.input))
		})
	}
}

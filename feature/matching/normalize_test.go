package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeField(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"plain", "Müller", "MÜLLER"},
		{"trims ends", "  Jan  ", "JAN"},
		{"collapses inner runs", "van  der   Berg", "VAN DER BERG"},
		{"unicode whitespace", "Jan Peter", "JAN PETER"},
		{"tabs and newlines", "Jan\tPeter\n", "JAN PETER"},
		{"whitespace only", " \t ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeField(tt.input))
		})
	}
}

func TestNormalizeFieldIdempotent(t *testing.T) {
	inputs := []string{"", "Müller", "  van  der   Berg  ", "JAN", "a b"}

	for _, in := range inputs {
		once := NormalizeField(in)
		assert.Equal(t, once, NormalizeField(once), "normalizing %q twice must be stable", in)
	}
}

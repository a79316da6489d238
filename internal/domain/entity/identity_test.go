package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "mixed case with surrounding spaces", input: " Alice@X.com ", want: "alice@x.com"},
		{name: "inner whitespace stripped", input: "bob smith", want: "bobsmith"},
		{name: "tabs and newlines stripped", input: "\tCara\n", want: "cara"},
		{name: "already normalized", input: "dana@x.com", want: "dana@x.com"},
		{name: "empty", input: "", want: ""},
		{name: "whitespace only", input: "  \t ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeKey(tt.input))
		})
	}
}

func TestNormalizeKey_Idempotent(t *testing.T) {
	inputs := []string{" Alice@X.com ", "Bob Smith", "c@X.COM", ""}
	for _, input := range inputs {
		once := NormalizeKey(input)
		assert.Equal(t, once, NormalizeKey(once))
	}
}

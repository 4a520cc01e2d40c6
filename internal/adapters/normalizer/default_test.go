package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultNormalizer(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Mixed case", input: "To Be, Or NOT to be", expected: "to be, or not to be"},
		{name: "Already lower", input: "love and hate", expected: "love and hate"},
		{name: "Non-ASCII untouched", input: "ÉLAN Æon", expected: "Élan Æon"},
		{name: "Empty", input: "", expected: ""},
		{name: "Punctuation and digits", input: "ACT I. SCENE 2", expected: "act i. scene 2"},
	}

	n := NewDefaultNormalizer()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := n.Normalize(nil, []byte(tc.input))
			assert.Equal(t, tc.expected, string(got))
			assert.Len(t, got, len(tc.input), "normalization must preserve length")
		})
	}
}

func TestDefaultNormalizerInPlace(t *testing.T) {
	buf := []byte("HELLO World")
	got := NewDefaultNormalizer().Normalize(buf, buf)
	assert.Equal(t, "hello world", string(got))
	assert.Equal(t, "hello world", string(buf))
}

func TestIsLower(t *testing.T) {
	assert.True(t, IsLower('a'))
	assert.True(t, IsLower('z'))
	assert.False(t, IsLower('A'))
	assert.False(t, IsLower(' '))
	assert.False(t, IsLower('\''))
	assert.False(t, IsLower(0xC3))
}

package normalizer

import (
	"github.com/baditaflorin/go_corpus_bench/internal/ports"
)

// asciiLower maps every byte to itself except A-Z, which map to a-z.
var asciiLower [256]byte

func init() {
	for i := range asciiLower {
		b := byte(i)
		if 'A' <= b && b <= 'Z' {
			b += 'a' - 'A'
		}
		asciiLower[i] = b
	}
}

// DefaultNormalizer lowercases ASCII letters byte by byte and leaves every
// other byte untouched, so multi-byte UTF-8 sequences and lengths survive.
type DefaultNormalizer struct{}

// NewDefaultNormalizer creates a new default normalizer.
func NewDefaultNormalizer() ports.Normalizer {
	return &DefaultNormalizer{}
}

// Normalize writes the lowercase form of src into dst, growing dst as needed.
func (n *DefaultNormalizer) Normalize(dst, src []byte) []byte {
	if cap(dst) < len(src) {
		dst = make([]byte, len(src))
	}
	dst = dst[:len(src)]
	for i, b := range src {
		dst[i] = asciiLower[b]
	}
	return dst
}

// IsLower reports whether b is an ASCII lowercase letter.
func IsLower(b byte) bool {
	return 'a' <= b && b <= 'z'
}

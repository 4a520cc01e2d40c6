package ports

// Normalizer defines the interface for corpus normalization.
// Normalize must not change the length of its input.
type Normalizer interface {
	// Normalize writes the normalized form of src into dst and returns it.
	// dst may alias src for in-place normalization.
	Normalize(dst, src []byte) []byte
}

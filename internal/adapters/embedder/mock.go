package embedder

import (
	"context"
	"crypto/sha256"
	"fmt"
	"math"
)

// Mock is a deterministic, offline Embedder for tests and local runs: the
// vector is derived from a hash of the text and normalized to unit length.
type Mock struct {
	dims int
}

func NewMock(dims int) *Mock {
	if dims <= 0 {
		dims = 384
	}
	return &Mock{dims: dims}
}

func (m *Mock) Embed(ctx context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, fmt.Errorf("text cannot be empty")
	}
	return m.vector(text), nil
}

func (m *Mock) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("texts cannot be empty")
	}
	out := make([][]float32, len(texts))
	for i, t := range texts {
		if t == "" {
			return nil, fmt.Errorf("text at index %d cannot be empty", i)
		}
		out[i] = m.vector(t)
	}
	return out, nil
}

func (m *Mock) vector(text string) []float32 {
	hash := sha256.Sum256([]byte(text))
	vec := make([]float32, m.dims)
	var norm float64
	for i := range vec {
		v := float64(hash[i%len(hash)])/127.5 - 1.0
		// mix the position in so long vectors aren't just repeats
		v += float64(hash[(i*7+3)%len(hash)]) / 512.0
		vec[i] = float32(v)
		norm += v * v
	}
	if norm > 0 {
		n := float32(math.Sqrt(norm))
		for i := range vec {
			vec[i] /= n
		}
	}
	return vec
}

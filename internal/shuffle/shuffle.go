package shuffle

import "math/rand/v2"

// Rand is the randomness source used by Shuffle.
// IntN must return a uniform value in [0, n).
type Rand interface {
	IntN(n int) int
}

// globalRand draws from the process-wide math/rand/v2 source.
type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Default returns the unseeded process-wide source.
func Default() Rand {
	return globalRand{}
}

// NewSeeded returns a reproducible source. Not safe for concurrent use.
func NewSeeded(seed uint64) Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Shuffle returns a uniformly random permutation of s as a new slice.
// s itself is left untouched.
func Shuffle[T any](rng Rand, s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	if rng == nil {
		rng = Default()
	}

	// Fisher-Yates, walking down from the last index.
	for i := len(out) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

package sim

import (
	"math/rand"
	"time"
)

// Rand is the randomness consumed by the simulator: chunk counts, truncation
// amounts, jitter durations, and sample field values. Tests substitute a
// scripted implementation.
type Rand interface {
	// Intn returns a uniform int in [0, n). Panics if n <= 0.
	Intn(n int) int

	// Float64 returns a uniform float64 in [0.0, 1.0).
	Float64() float64
}

// NewRand returns a math/rand backed source. A zero seed picks a time-based
// seed; any other value makes the whole run reproducible.
func NewRand(seed int64) Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

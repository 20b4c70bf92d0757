package sim

import (
	"fmt"

	"github.com/noh-jun/framepub/internal/domain"
)

// Split partitions data into n contiguous, near-equal slices. The slices
// reference data directly (no copy); their concatenation in order is exactly
// data. When n exceeds len(data) the count is capped at len(data) so no
// slice is ever empty, which would surface as a zero-byte read on the
// receiving side. An empty input yields a single empty slice.
//
// The first len(data)%n slices carry one extra byte, so slice sizes differ
// by at most 1.
func Split(data []byte, n int) ([][]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: chunk count must be >= 1, got %d", domain.ErrInvalidArgument, n)
	}
	if len(data) == 0 {
		return [][]byte{data}, nil
	}
	if n > len(data) {
		n = len(data)
	}

	base := len(data) / n
	rem := len(data) % n

	chunks := make([][]byte, 0, n)
	off := 0
	for i := 0; i < n; i++ {
		size := base
		if i < rem {
			size++
		}
		chunks = append(chunks, data[off:off+size])
		off += size
	}
	return chunks, nil
}

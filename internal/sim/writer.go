package sim

import (
	"fmt"
	"time"

	"github.com/noh-jun/framepub/internal/domain"
	"github.com/noh-jun/framepub/internal/ports"
)

// pacedWriter writes chunks to the transport in order, blocking until each
// chunk is fully accepted before moving to the next.
type pacedWriter struct {
	tr  ports.Transport
	rng Rand

	// sleep is swapped out in tests.
	sleep func(time.Duration)
}

func newPacedWriter(tr ports.Transport, rng Rand) *pacedWriter {
	return &pacedWriter{tr: tr, rng: rng, sleep: time.Sleep}
}

// writeChunks hands off every chunk in order. Between non-final chunks, if
// jitter > 0, it sleeps a uniform duration in [0, jitter]. No delay follows
// the last chunk. On failure the remaining chunks are discarded.
func (w *pacedWriter) writeChunks(chunks [][]byte, jitter time.Duration) error {
	for i, chunk := range chunks {
		if err := w.writeFull(chunk); err != nil {
			return err
		}
		if jitter > 0 && i != len(chunks)-1 {
			w.sleep(time.Duration(w.rng.Float64() * float64(jitter)))
		}
	}
	return nil
}

// writeFull repeatedly hands remaining bytes to the transport until none
// remain. A hand-off that errors or accepts <= 0 bytes means the connection
// is stalled or closed.
func (w *pacedWriter) writeFull(p []byte) error {
	for len(p) > 0 {
		n, err := w.tr.Write(p)
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrTransport, err)
		}
		if n <= 0 {
			return fmt.Errorf("%w: write accepted %d bytes", domain.ErrTransport, n)
		}
		p = p[n:]
	}
	return nil
}

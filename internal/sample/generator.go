// Package sample generates the test messages framepub puts on the wire:
// randomized pick/drop driver records serialized as compact JSON, optionally
// newline-terminated. The framing core treats the output as an opaque frame
// payload.
package sample

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/noh-jun/framepub/internal/domain"
	"github.com/noh-jun/framepub/internal/sim"
)

var commandValues = []int{0, 3}

// Generator implements ports.SampleEncoder. It is safe for the config
// watcher to update the terminator while the session is encoding.
type Generator struct {
	driverID int
	rng      sim.Rand

	mu   sync.RWMutex
	term Terminator

	// now is swapped out in tests.
	now func() int64
}

// NewGenerator creates a generator publishing as the given driver instance.
func NewGenerator(driverID int, term Terminator, rng sim.Rand) *Generator {
	return &Generator{
		driverID: driverID,
		term:     term,
		rng:      rng,
		now:      nowUnixMilli,
	}
}

// SetTerminator switches the terminator mode for subsequent encodes.
func (g *Generator) SetTerminator(term Terminator) {
	g.mu.Lock()
	g.term = term
	g.mu.Unlock()
}

// Terminator returns the current terminator mode.
func (g *Generator) Terminator() Terminator {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.term
}

// Encode builds one sample message at seqNo and serializes it as compact
// JSON with no inserted whitespace, plus the configured terminator.
func (g *Generator) Encode(seqNo uint64, res int) ([]byte, error) {
	msg := Message{
		Res:              res,
		DriverInstanceID: g.driverID,
		SeqNo:            seqNo,
		PubTimestamp:     g.now(),
		Command:          commandValues[g.rng.Intn(len(commandValues))],
		Measure:          g.rng.Intn(2),
		WorkType:         g.rng.Intn(3),
		Payload: Payload{
			ForkHeightMM:  g.rng.Intn(1501),
			ForkForwardMM: g.rng.Intn(3001),
			Note:          "hello_tablet",
		},
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrEncoding, err)
	}
	if g.Terminator() == TerminatorNewline {
		body = append(body, '\n')
	}
	return body, nil
}

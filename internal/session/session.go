// Package session drives the simulator: it owns the sequence counter, the
// response-code cycle, and the connection lifecycle, processing one command
// at a time.
package session

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/noh-jun/framepub/internal/domain"
	"github.com/noh-jun/framepub/internal/ports"
	"github.com/noh-jun/framepub/internal/sim"
)

// resCycle is consumed round-robin, one value per accepted command,
// independent of scenario.
var resCycle = []int{0, 1, 2, 99}

// Session holds the state that outlives individual deliveries. It is not
// safe for concurrent Sends; tuning updates may arrive from another
// goroutine (the config watcher) and are applied to the next Send.
type Session struct {
	dialer ports.Dialer
	sim    *sim.Simulator
	log    zerolog.Logger

	mu     sync.Mutex
	tuning sim.Tuning

	tr    ports.Transport
	seqNo uint64
	sends int
}

// New creates a session starting at sequence number 1. The connection is
// established lazily on the first Send.
func New(dialer ports.Dialer, simulator *sim.Simulator, tuning sim.Tuning, log zerolog.Logger) *Session {
	return &Session{
		dialer: dialer,
		sim:    simulator,
		tuning: tuning,
		log:    log,
		seqNo:  1,
	}
}

// SetTuning replaces the tuning used by subsequent sends.
func (s *Session) SetTuning(t sim.Tuning) {
	s.mu.Lock()
	s.tuning = t
	s.mu.Unlock()
}

// Tuning returns a snapshot of the current tuning.
func (s *Session) Tuning() sim.Tuning {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tuning
}

// SeqNo returns the sequence number the next delivery will use.
func (s *Session) SeqNo() uint64 { return s.seqNo }

// Send runs one scenario. The response code advances on every call even if
// the delivery fails; the sequence counter advances only on success. A
// transport failure drops the connection so the next Send redials.
func (s *Session) Send(ctx context.Context, sc domain.Scenario) error {
	res := resCycle[s.sends%len(resCycle)]
	s.sends++

	if s.tr == nil {
		tr, err := s.dialer.DialContext(ctx)
		if err != nil {
			return err
		}
		s.tr = tr
		s.log.Info().Msg("connected")
	}

	next, err := s.sim.Deliver(s.tr, sc, s.seqNo, res, s.Tuning())
	if err != nil {
		// Tuning errors are detected before any I/O; the connection is
		// still good.
		if errors.Is(err, domain.ErrInvalidArgument) {
			return err
		}
		s.log.Error().Err(err).Msg("connection lost")
		s.tr.Close()
		s.tr = nil
		return err
	}
	s.seqNo = next
	return nil
}

// Run reads command keys (one per line) until EOF or ctx cancellation.
// Unknown keys are rejected without consuming a response code. Delivery
// errors are logged and the loop continues; the next command reconnects.
func (s *Session) Run(ctx context.Context, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		key := strings.TrimSpace(scanner.Text())
		if key == "" {
			continue
		}
		sc, ok := domain.ParseScenario(key)
		if !ok {
			s.log.Warn().Str("input", key).Msg("input must be 1/2/3/4")
			continue
		}

		if err := s.Send(ctx, sc); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.log.Error().Err(err).Stringer("scenario", sc).Msg("send failed")
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	s.log.Info().Msg("EOF received, exiting")
	return nil
}

// Close tears down the current connection, if any.
func (s *Session) Close() error {
	if s.tr == nil {
		return nil
	}
	err := s.tr.Close()
	s.tr = nil
	return err
}

package sim

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/noh-jun/framepub/internal/domain"
	"github.com/noh-jun/framepub/internal/ports"
)

// truncMax is the largest number of bytes IncompleteFrame withholds from the
// tail of a frame. The amount is uniform in [1, truncMax], so at least one
// byte is always held back and, because the cut is floored at 1, at least
// one byte is always sent.
const truncMax = 12

// Tuning holds the per-send knobs of the simulator. Values may be updated
// between sends (e.g. by the config watcher); each Deliver call receives a
// snapshot.
type Tuning struct {
	// MinChunks and MaxChunks bound the randomized chunk count used by
	// FragmentedFrame. Both are counts of chunks, not byte sizes.
	MinChunks int
	MaxChunks int

	// Jitter is the upper bound of the random delay inserted between
	// consecutive chunk writes. Zero disables pacing.
	Jitter time.Duration
}

// Validate reports malformed tuning before any I/O happens.
func (t Tuning) Validate() error {
	if t.MinChunks < 1 {
		return fmt.Errorf("%w: min chunks must be >= 1, got %d", domain.ErrInvalidArgument, t.MinChunks)
	}
	if t.MaxChunks < t.MinChunks {
		return fmt.Errorf("%w: max chunks %d < min chunks %d", domain.ErrInvalidArgument, t.MaxChunks, t.MinChunks)
	}
	if t.Jitter < 0 {
		return fmt.Errorf("%w: jitter must be >= 0, got %v", domain.ErrInvalidArgument, t.Jitter)
	}
	return nil
}

// Simulator turns one scenario invocation into the exact byte chunks and
// delays observed on the wire. It owns no connection state; the transport is
// passed per call so the session can swap connections across failures.
type Simulator struct {
	enc ports.SampleEncoder
	rng Rand
	log zerolog.Logger
}

// New creates a simulator. All randomness is drawn from rng.
func New(enc ports.SampleEncoder, rng Rand, log zerolog.Logger) *Simulator {
	return &Simulator{enc: enc, rng: rng, log: log}
}

// Deliver runs one scenario at seqNo and returns the next sequence number.
// The call fully owns tr for its duration; on error the remaining chunks are
// discarded and the counter does not advance.
func (s *Simulator) Deliver(tr ports.Transport, sc domain.Scenario, seqNo uint64, res int, tun Tuning) (uint64, error) {
	if err := tun.Validate(); err != nil {
		return seqNo, err
	}
	pw := newPacedWriter(tr, s.rng)

	switch sc {
	case domain.AtomicFrame:
		payload, err := s.enc.Encode(seqNo, res)
		if err != nil {
			return seqNo, err
		}
		if err := pw.writeFull(payload); err != nil {
			return seqNo, err
		}
		s.log.Info().Stringer("scenario", sc).Int("res", res).
			Uint64("seq_no", seqNo).Int("bytes", len(payload)).Msg("sent")
		return seqNo + 1, nil

	case domain.FragmentedFrame:
		payload, err := s.enc.Encode(seqNo, res)
		if err != nil {
			return seqNo, err
		}
		count := tun.MinChunks + s.rng.Intn(tun.MaxChunks-tun.MinChunks+1)
		chunks, err := Split(payload, count)
		if err != nil {
			return seqNo, err
		}
		if err := pw.writeChunks(chunks, tun.Jitter); err != nil {
			return seqNo, err
		}
		s.log.Info().Stringer("scenario", sc).Int("res", res).
			Uint64("seq_no", seqNo).Int("bytes", len(payload)).
			Int("chunk_count", len(chunks)).Msg("sent")
		return seqNo + 1, nil

	case domain.IncompleteFrame:
		payload, err := s.enc.Encode(seqNo, res)
		if err != nil {
			return seqNo, err
		}
		cut := len(payload) - (1 + s.rng.Intn(truncMax))
		if cut < 1 {
			cut = 1
		}
		if err := pw.writeFull(payload[:cut]); err != nil {
			return seqNo, err
		}
		s.log.Info().Stringer("scenario", sc).Int("res", res).
			Uint64("seq_no", seqNo).Int("bytes", cut).
			Int("cut_from", len(payload)).Msg("sent partial")
		return seqNo + 1, nil

	case domain.CoalescedFrames:
		first, err := s.enc.Encode(seqNo, res)
		if err != nil {
			return seqNo, err
		}
		second, err := s.enc.Encode(seqNo+1, res)
		if err != nil {
			return seqNo, err
		}
		buf := make([]byte, 0, len(first)+len(second))
		buf = append(buf, first...)
		buf = append(buf, second...)
		if err := pw.writeFull(buf); err != nil {
			return seqNo, err
		}
		s.log.Info().Stringer("scenario", sc).Int("res", res).
			Uint64("seq_no", seqNo).Uint64("seq_no_2", seqNo+1).
			Int("bytes", len(buf)).Msg("sent concatenated")
		return seqNo + 2, nil

	default:
		return seqNo, fmt.Errorf("%w: unknown scenario %d", domain.ErrInvalidArgument, int(sc))
	}
}

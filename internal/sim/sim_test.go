package sim

import (
	"bytes"
	"errors"
	"fmt"
)

// recordingTransport captures every Write hand-off. acceptAtMost caps how
// many bytes one hand-off accepts (0 means unlimited), exercising the
// partial-write loop. failAfter > 0 makes hand-offs report zero bytes
// accepted once that many writes have been recorded.
type recordingTransport struct {
	writes       [][]byte
	acceptAtMost int
	failAfter    int
	closed       bool
}

func (r *recordingTransport) Write(p []byte) (int, error) {
	if r.failAfter > 0 && len(r.writes) >= r.failAfter {
		return 0, nil
	}
	n := len(p)
	if r.acceptAtMost > 0 && n > r.acceptAtMost {
		n = r.acceptAtMost
	}
	r.writes = append(r.writes, append([]byte(nil), p[:n]...))
	return n, nil
}

func (r *recordingTransport) Close() error {
	r.closed = true
	return nil
}

func (r *recordingTransport) joined() []byte {
	var out []byte
	for _, w := range r.writes {
		out = append(out, w...)
	}
	return out
}

// scriptedRand returns queued values in order and zero once exhausted.
type scriptedRand struct {
	ints   []int
	floats []float64
}

func (s *scriptedRand) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	if v >= n {
		v = n - 1
	}
	return v
}

func (s *scriptedRand) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

// stubEncoder yields a deterministic payload per sequence number.
type stubEncoder struct {
	payloads map[uint64][]byte
	err      error
}

func (s *stubEncoder) Encode(seqNo uint64, res int) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	if p, ok := s.payloads[seqNo]; ok {
		return append([]byte(nil), p...), nil
	}
	return []byte(fmt.Sprintf("{\"seq_no\":%d,\"res\":%d}", seqNo, res)), nil
}

func payloadEquals(tr *recordingTransport, want []byte) bool {
	return bytes.Equal(tr.joined(), want)
}

var errEncodeBoom = errors.New("boom")

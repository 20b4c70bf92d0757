package domain

import "errors"

// Errors returned by the delivery pipeline. All are wrapped with context at
// the failure site and can be checked with errors.Is.
var (
	// ErrInvalidArgument is returned for malformed tuning values (chunk
	// count <= 0, max < min) detected before any bytes hit the wire.
	ErrInvalidArgument = errors.New("framepub: invalid argument")

	// ErrTransport is returned when a write hand-off makes no progress,
	// signaling a stalled or closed connection. The in-flight delivery is
	// aborted and any remaining chunks are discarded.
	ErrTransport = errors.New("framepub: transport stalled")

	// ErrEncoding is returned when a sample message cannot be serialized.
	ErrEncoding = errors.New("framepub: encode sample")
)

package ports

import (
	"context"
	"io"
)

// Transport is a single persistent, ordered, reliable byte stream. Write
// follows io.Writer semantics: it returns the number of bytes accepted by
// the underlying connection, which may be fewer than len(p).
type Transport interface {
	io.Writer
	io.Closer
}

// Dialer establishes the transport used by a session. Implementations own
// retry policy; DialContext blocks until a connection is up or ctx ends.
type Dialer interface {
	DialContext(ctx context.Context) (Transport, error)
}

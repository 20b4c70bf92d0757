// Package tcp provides the transport adapter: a dialer that keeps retrying
// with a fixed backoff until the receiver under test is reachable.
package tcp

import (
	"context"
	"net"
	"time"

	"github.com/rs/zerolog"

	"github.com/noh-jun/framepub/internal/ports"
)

const (
	defaultConnectTimeout = 3 * time.Second
	defaultRetryInterval  = 1 * time.Second
)

// Dialer connects to a single TCP address with unbounded retry. The returned
// connection is the session's transport; ordering and reliability come from
// TCP itself.
type Dialer struct {
	addr           string
	connectTimeout time.Duration
	retryInterval  time.Duration
	log            zerolog.Logger
}

// NewDialer creates a dialer for addr (host:port).
func NewDialer(addr string, log zerolog.Logger) *Dialer {
	return &Dialer{
		addr:           addr,
		connectTimeout: defaultConnectTimeout,
		retryInterval:  defaultRetryInterval,
		log:            log,
	}
}

// DialContext blocks until a connection is established or ctx ends. Each
// failed attempt is logged and retried after a fixed interval.
func (d *Dialer) DialContext(ctx context.Context) (ports.Transport, error) {
	nd := net.Dialer{Timeout: d.connectTimeout}
	for {
		conn, err := nd.DialContext(ctx, "tcp", d.addr)
		if err == nil {
			return conn, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		d.log.Warn().Err(err).Str("addr", d.addr).
			Dur("retry_in", d.retryInterval).Msg("connect failed")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(d.retryInterval):
		}
	}
}

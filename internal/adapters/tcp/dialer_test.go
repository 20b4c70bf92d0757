package tcp

import (
	"context"
	"errors"
	"io"
	"net"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestDialContext_ConnectsAndDelivers(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()

	got := make(chan []byte, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		b, _ := io.ReadAll(conn)
		got <- b
	}()

	d := NewDialer(ln.Addr().String(), zerolog.Nop())
	tr, err := d.DialContext(context.Background())
	if err != nil {
		t.Fatalf("DialContext returned error: %v", err)
	}

	if _, err := tr.Write([]byte("ping")); err != nil {
		t.Fatalf("write: %v", err)
	}
	tr.Close()

	select {
	case b := <-got:
		if string(b) != "ping" {
			t.Fatalf("expected ping, got %q", b)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("receiver never saw the bytes")
	}
}

func TestDialContext_RetriesUntilListenerAppears(t *testing.T) {
	// Reserve an address, then close it so the first attempts fail.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := ln.Addr().String()
	ln.Close()

	d := NewDialer(addr, zerolog.Nop())
	d.retryInterval = 20 * time.Millisecond

	ready := make(chan struct{})
	go func() {
		time.Sleep(60 * time.Millisecond)
		ln2, err := net.Listen("tcp", addr)
		if err != nil {
			return
		}
		close(ready)
		conn, err := ln2.Accept()
		if err == nil {
			conn.Close()
		}
		ln2.Close()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tr, err := d.DialContext(ctx)
	if err != nil {
		t.Fatalf("DialContext returned error: %v", err)
	}
	tr.Close()

	select {
	case <-ready:
	case <-time.After(2 * time.Second):
		t.Fatal("listener goroutine never came up")
	}
}

func TestDialContext_StopsOnCancel(t *testing.T) {
	// Nothing listens here; the dialer would retry forever.
	d := NewDialer("127.0.0.1:1", zerolog.Nop())
	d.retryInterval = 10 * time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := d.DialContext(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected DeadlineExceeded, got %v", err)
	}
}

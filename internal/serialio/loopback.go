package serialio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
)

// Loopback is an in-memory backend whose ports echo written data back to
// the reader. It lets the monitor run without hardware and keeps tests free
// of device dependencies.
type Loopback struct{}

// NewLoopback creates the loopback backend.
func NewLoopback() *Loopback {
	return &Loopback{}
}

// Name returns "loopback".
func (l *Loopback) Name() string {
	return "loopback"
}

// List returns the fixed set of virtual port names.
func (l *Loopback) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []string{"loop0", "loop1", "loop2"}, nil
}

// Open returns a port that echoes writes back to its reader. Any port name
// is accepted; the settings are validated but otherwise ignored.
func (l *Loopback) Open(ctx context.Context, settings Settings) (Port, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return newLoopbackPort(), nil
}

// loopbackPort buffers writes and serves them to Read. Read blocks until
// data arrives or the port closes, matching real port semantics so the
// pump's reader goroutine behaves identically against both backends.
type loopbackPort struct {
	mu     sync.Mutex
	cond   *sync.Cond
	buf    bytes.Buffer
	closed bool
}

func newLoopbackPort() *loopbackPort {
	p := &loopbackPort{}
	p.cond = sync.NewCond(&p.mu)
	return p
}

func (p *loopbackPort) Read(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for p.buf.Len() == 0 && !p.closed {
		p.cond.Wait()
	}
	if p.buf.Len() == 0 {
		return 0, io.EOF
	}
	return p.buf.Read(b)
}

func (p *loopbackPort) Write(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return 0, fmt.Errorf("write on closed port")
	}
	n, _ := p.buf.Write(b)
	p.cond.Broadcast()
	return n, nil
}

func (p *loopbackPort) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	p.cond.Broadcast()
	return nil
}

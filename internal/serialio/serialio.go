// Package serialio abstracts serial port access behind small interfaces so
// the session and layout core never touches device I/O directly. Two
// backends exist: real devices through go.bug.st/serial, and an in-memory
// loopback used in tests and as a fallback when no hardware is present.
package serialio

import (
	"context"
	"fmt"
	"io"
)

// Port is an open serial connection. Read blocks until data arrives or the
// port is closed; Close unblocks any pending Read.
type Port interface {
	io.ReadWriteCloser
}

// Opener enumerates available ports and opens them.
type Opener interface {
	// Name returns the backend name (e.g., "device", "loopback").
	Name() string

	// List returns the port names this backend can open.
	List(ctx context.Context) ([]string, error)

	// Open opens a port with the given settings.
	Open(ctx context.Context, settings Settings) (Port, error)
}

// Detect picks a backend: real devices when the OS reports any, otherwise
// the loopback.
func Detect(ctx context.Context) Opener {
	d := NewDevice()
	if ports, err := d.List(ctx); err == nil && len(ports) > 0 {
		return d
	}
	return NewLoopback()
}

// FromName creates an Opener by name.
func FromName(name string) (Opener, error) {
	switch name {
	case "device", "serial":
		return NewDevice(), nil
	case "loopback":
		return NewLoopback(), nil
	default:
		return nil, fmt.Errorf("unknown serial backend: %q (supported: device, loopback)", name)
	}
}

package serialio

import (
	"errors"
	"io"
	"sync"
)

const (
	defaultQueueSize = 256

	// maxPendingLine flushes an unterminated line once it grows this large,
	// so devices that never send a newline still show up.
	maxPendingLine = 1024
)

// Pump moves inbound bytes from an open port onto the UI goroutine. One
// reader goroutine splits the stream into lines and parks them in a bounded
// queue; the UI drains the queue once per tick, so log appends never race a
// session collection change.
type Pump struct {
	port  Port
	lines chan pumpLine
	quit  chan struct{}
	done  chan struct{}

	mu     sync.Mutex
	closed bool
	err    error
}

type pumpLine struct {
	text string
	// raw is the byte count consumed from the port, line endings included.
	raw int
}

// NewPump creates a pump for an open port. Call Start to begin reading.
func NewPump(port Port) *Pump {
	return &Pump{
		port:  port,
		lines: make(chan pumpLine, defaultQueueSize),
		quit:  make(chan struct{}),
		done:  make(chan struct{}),
	}
}

// Start launches the reader goroutine.
func (p *Pump) Start() {
	go p.readLoop()
}

// Drain empties the queue without blocking. It returns the completed lines
// and the raw byte count they consumed.
func (p *Pump) Drain() ([]string, int) {
	var lines []string
	total := 0
	for {
		select {
		case l := <-p.lines:
			lines = append(lines, l.text)
			total += l.raw
		default:
			return lines, total
		}
	}
}

// Done reports whether the reader goroutine has stopped, either because the
// port closed or a read failed.
func (p *Pump) Done() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

// Err returns the read error that stopped the pump. Shutdowns initiated by
// Close and plain end-of-stream report nil.
func (p *Pump) Err() error {
	if !p.Done() {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed || errors.Is(p.err, io.EOF) {
		return nil
	}
	return p.err
}

// Close closes the port and waits for the reader to stop. Lines already
// queued remain drainable. Safe to call more than once.
func (p *Pump) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		<-p.done
		return nil
	}
	p.closed = true
	close(p.quit)
	p.mu.Unlock()

	err := p.port.Close()
	<-p.done
	return err
}

// readLoop reads the port until it closes or errors. Lines split on '\n'
// with a trailing '\r' stripped; whatever is pending when the port stops is
// flushed as a final line.
func (p *Pump) readLoop() {
	defer close(p.done)

	buf := make([]byte, 4096)
	var pending []byte
	pendingRaw := 0

	for {
		n, err := p.port.Read(buf)
		for _, b := range buf[:n] {
			pendingRaw++
			if b == '\n' {
				if !p.emit(string(trimCR(pending)), pendingRaw) {
					return
				}
				pending = pending[:0]
				pendingRaw = 0
				continue
			}
			pending = append(pending, b)
			if len(pending) >= maxPendingLine {
				if !p.emit(string(pending), pendingRaw) {
					return
				}
				pending = pending[:0]
				pendingRaw = 0
			}
		}
		if err != nil {
			if len(pending) > 0 {
				// Best-effort flush; emit would race the quit channel here.
				select {
				case p.lines <- pumpLine{text: string(pending), raw: pendingRaw}:
				default:
				}
			}
			p.mu.Lock()
			p.err = err
			p.mu.Unlock()
			return
		}
	}
}

// emit parks a line in the queue, blocking until there is room. Returns
// false when the pump is closing.
func (p *Pump) emit(text string, raw int) bool {
	select {
	case p.lines <- pumpLine{text: text, raw: raw}:
		return true
	case <-p.quit:
		return false
	}
}

func trimCR(b []byte) []byte {
	if len(b) > 0 && b[len(b)-1] == '\r' {
		return b[:len(b)-1]
	}
	return b
}

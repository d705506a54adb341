package session

import "time"

// DefaultLogCap bounds each session's message log.
const DefaultLogCap = 10000

// Direction classifies a log entry.
type Direction int

const (
	DirRx Direction = iota
	DirTx
	DirSystem
)

// String returns the marker shown in the log gutter.
func (d Direction) String() string {
	switch d {
	case DirTx:
		return "TX"
	case DirSystem:
		return "--"
	default:
		return "RX"
	}
}

// Entry is one logged line.
type Entry struct {
	At   time.Time
	Dir  Direction
	Text string
}

// Log is a bounded, in-order message log with RX/TX byte counters. All
// access happens on the UI goroutine (inbound data is marshaled there
// before it is appended), so the log carries no lock.
type Log struct {
	entries []Entry
	limit   int
	rxBytes int64
	txBytes int64
}

// NewLog creates a log bounded to limit lines.
func NewLog(limit int) *Log {
	if limit <= 0 {
		limit = DefaultLogCap
	}
	return &Log{limit: limit}
}

// Append adds a line; the oldest lines fall off past the limit.
func (l *Log) Append(dir Direction, text string) {
	l.AppendAt(time.Now(), dir, text)
}

// AppendAt is Append with an explicit timestamp.
func (l *Log) AppendAt(at time.Time, dir Direction, text string) {
	l.entries = append(l.entries, Entry{At: at, Dir: dir, Text: text})
	if len(l.entries) > l.limit {
		l.entries = l.entries[len(l.entries)-l.limit:]
	}
}

// SetLimit resizes the retained-line cap, trimming oldest lines when the
// log already holds more. Non-positive limits are ignored.
func (l *Log) SetLimit(limit int) {
	if limit <= 0 {
		return
	}
	l.limit = limit
	if len(l.entries) > l.limit {
		l.entries = l.entries[len(l.entries)-l.limit:]
	}
}

// AddRxBytes records n inbound bytes.
func (l *Log) AddRxBytes(n int) {
	l.rxBytes += int64(n)
}

// AddTxBytes records n outbound bytes.
func (l *Log) AddTxBytes(n int) {
	l.txBytes += int64(n)
}

// RxBytes returns the total inbound byte count.
func (l *Log) RxBytes() int64 {
	return l.rxBytes
}

// TxBytes returns the total outbound byte count.
func (l *Log) TxBytes() int64 {
	return l.txBytes
}

// Len returns the number of retained lines.
func (l *Log) Len() int {
	return len(l.entries)
}

// Tail returns the last n entries, newest last. The returned slice aliases
// the log; callers must not mutate it.
func (l *Log) Tail(n int) []Entry {
	if n <= 0 || len(l.entries) == 0 {
		return nil
	}
	if n >= len(l.entries) {
		return l.entries
	}
	return l.entries[len(l.entries)-n:]
}

// Clear drops all lines and resets the byte counters.
func (l *Log) Clear() {
	l.entries = nil
	l.rxBytes = 0
	l.txBytes = 0
}

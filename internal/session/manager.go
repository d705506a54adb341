package session

import (
	"fmt"
	"time"
)

// Manager owns the ordered session collection and the active session
// index. The collection is never empty: construction seeds one default
// session and removing the last one seeds a fresh replacement. All index
// operations are total; out-of-range input reports failure instead of
// panicking.
type Manager struct {
	sessions []*Session
	active   int
	nextID   int
	logLimit int
}

// NewManager returns a manager holding one default session.
func NewManager() *Manager {
	return &Manager{
		sessions: []*Session{newSession("Session 1")},
		nextID:   1,
		logLimit: DefaultLogCap,
	}
}

// SetLogLimit sets the retained-line cap for every session log, current
// and future. Non-positive limits are ignored.
func (m *Manager) SetLogLimit(n int) {
	if n <= 0 {
		return
	}
	m.logLimit = n
	for _, s := range m.sessions {
		s.Log.SetLimit(n)
	}
}

// Count returns the number of sessions.
func (m *Manager) Count() int {
	return len(m.sessions)
}

// ActiveIndex returns the active session's position.
func (m *Manager) ActiveIndex() int {
	return m.active
}

// Active returns the active session. The collection is never empty, so the
// result is never nil.
func (m *Manager) Active() *Session {
	return m.sessions[m.active]
}

// Get returns the session at i, or nil when out of range.
func (m *Manager) Get(i int) *Session {
	if i < 0 || i >= len(m.sessions) {
		return nil
	}
	return m.sessions[i]
}

// Sessions returns the ordered sessions for iteration. Callers must not
// reorder the slice.
func (m *Manager) Sessions() []*Session {
	return m.sessions
}

// Add appends a disconnected session and makes it active. Empty name falls
// back to a generated default; a port, when given, lands in the session's
// settings and in the default name. Returns the new session's index.
func (m *Manager) Add(port, name string) int {
	id := m.nextID
	m.nextID++

	if name == "" {
		if port == "" {
			name = fmt.Sprintf("Session %d", id+1)
		} else {
			name = fmt.Sprintf("Session %d - %s", id+1, port)
		}
	}
	s := newSession(name)
	s.Log.SetLimit(m.logLimit)
	if port != "" {
		s.Settings.Port = port
	}

	m.sessions = append(m.sessions, s)
	m.active = len(m.sessions) - 1
	return m.active
}

// Remove deletes the session at i. Valid indices always succeed; removing
// the last remaining session seeds a fresh default so the collection stays
// non-empty. Returns false for an out-of-range index.
func (m *Manager) Remove(i int) bool {
	if i < 0 || i >= len(m.sessions) {
		return false
	}
	m.sessions = append(m.sessions[:i], m.sessions[i+1:]...)

	if len(m.sessions) == 0 {
		id := m.nextID
		m.nextID++
		s := newSession(fmt.Sprintf("Session %d", id+1))
		s.Log.SetLimit(m.logLimit)
		m.sessions = append(m.sessions, s)
		m.active = 0
		return true
	}

	if m.active >= len(m.sessions) {
		m.active = len(m.sessions) - 1
	} else if m.active > i {
		m.active--
	}
	return true
}

// SwitchTo makes i the active session. Returns false when out of range.
func (m *Manager) SwitchTo(i int) bool {
	if i < 0 || i >= len(m.sessions) {
		return false
	}
	m.active = i
	return true
}

// Next advances the active session circularly.
func (m *Manager) Next() {
	m.active = (m.active + 1) % len(m.sessions)
}

// Prev retreats the active session circularly.
func (m *Manager) Prev() {
	m.active = (m.active + len(m.sessions) - 1) % len(m.sessions)
}

// Rename sets the session's name. Returns false when out of range.
func (m *Manager) Rename(i int, name string) bool {
	s := m.Get(i)
	if s == nil {
		return false
	}
	s.Name = name
	return true
}

// Duplicate appends a copy of the session at i and makes it active: same
// settings, a derived name, a fresh log, disconnected. Returns the new
// index, or -1 when i is out of range.
func (m *Manager) Duplicate(i int) int {
	src := m.Get(i)
	if src == nil {
		return -1
	}
	m.nextID++

	dup := newSession(src.Name + " (Copy)")
	dup.Log.SetLimit(m.logLimit)
	dup.Settings = src.Settings
	dup.AutoScroll = src.AutoScroll

	m.sessions = append(m.sessions, dup)
	m.active = len(m.sessions) - 1
	return m.active
}

// ExpireNotices drops expired notifications across all sessions.
func (m *Manager) ExpireNotices(now time.Time) {
	for _, s := range m.sessions {
		s.Notices.Active(now)
	}
}

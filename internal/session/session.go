// Package session owns the ordered collection of serial sessions and the
// state each session carries: serial settings, the message log, and
// short-lived notifications. The Manager mutates only the collection;
// session contents are mutated by whichever part of the application
// currently targets the session.
package session

import (
	"github.com/google/uuid"

	"github.com/timvw/port-patrol/internal/serialio"
)

// Session is one independent serial connection context.
type Session struct {
	// ID is stable for the session's lifetime. Positions shift as sessions
	// are removed; the ID never does, so logs and metrics cannot alias two
	// sessions that reused a position.
	ID uuid.UUID

	// Name is the user-visible label, editable through rename.
	Name string

	Settings serialio.Settings
	Log      *Log
	Notices  *Notices

	Connected bool

	// SettingsLocked blocks settings edits while the port is open.
	SettingsLocked bool

	AutoScroll   bool
	ScrollOffset int
}

func newSession(name string) *Session {
	return &Session{
		ID:         uuid.New(),
		Name:       name,
		Settings:   serialio.DefaultSettings(),
		Log:        NewLog(DefaultLogCap),
		Notices:    NewNotices(),
		AutoScroll: true,
	}
}

// CanEditSettings reports whether the settings panel may modify this
// session.
func (s *Session) CanEditSettings() bool {
	return !s.SettingsLocked
}

// Package workspace composes the session collection with the pane layout
// and keeps the two consistent: every command that can change the session
// collection's shape runs a reconciliation pass over the pane mapping
// before returning.
package workspace

import (
	"time"

	"github.com/timvw/port-patrol/internal/layout"
	"github.com/timvw/port-patrol/internal/session"
)

// Workspace is the single owner of the session manager and the pane
// manager. One instance is constructed at startup and handed to the UI;
// there is no ambient global state.
type Workspace struct {
	sessions *session.Manager
	panes    *layout.PaneManager

	showTabs bool
}

// New returns a workspace with one default session shown in a single pane.
func New() *Workspace {
	w := &Workspace{
		sessions: session.NewManager(),
		panes:    layout.NewPaneManager(),
		showTabs: true,
	}
	w.reconcile()
	return w
}

// Sessions exposes the session manager for read paths.
func (w *Workspace) Sessions() *session.Manager {
	return w.sessions
}

// Panes exposes the pane manager for read paths.
func (w *Workspace) Panes() *layout.PaneManager {
	return w.panes
}

// AddSession appends a session, makes it active, and reconciles the pane
// mapping. Returns the new session's index.
func (w *Workspace) AddSession(port, name string) int {
	idx := w.sessions.Add(port, name)
	w.reconcile()
	return idx
}

// RemoveSession removes the session at i and remaps any pane left pointing
// past the end of the shrunken collection. Returns false when i is out of
// range.
func (w *Workspace) RemoveSession(i int) bool {
	if !w.sessions.Remove(i) {
		return false
	}
	w.reconcile()
	return true
}

// DuplicateSession copies the session at i and reconciles. Returns the new
// index, or -1 when i is out of range.
func (w *Workspace) DuplicateSession(i int) int {
	idx := w.sessions.Duplicate(i)
	if idx >= 0 {
		w.reconcile()
	}
	return idx
}

// RenameSession forwards to the session manager.
func (w *Workspace) RenameSession(i int, name string) bool {
	return w.sessions.Rename(i, name)
}

// NextSession advances the active session and reconciles.
func (w *Workspace) NextSession() {
	w.sessions.Next()
	w.reconcile()
}

// PrevSession retreats the active session and reconciles.
func (w *Workspace) PrevSession() {
	w.sessions.Prev()
	w.reconcile()
}

// SwitchTo makes i the active session. Returns false when out of range.
func (w *Workspace) SwitchTo(i int) bool {
	ok := w.sessions.SwitchTo(i)
	w.reconcile()
	return ok
}

// SetLayout switches the pane layout; the pane manager resizes its own
// mapping using the session total it learned at the last reconcile.
func (w *Workspace) SetLayout(m layout.Mode) {
	w.panes.SetLayout(m)
}

// NextLayout cycles to the next layout mode.
func (w *Workspace) NextLayout() {
	w.panes.NextLayout()
}

// PrevLayout cycles to the previous layout mode.
func (w *Workspace) PrevLayout() {
	w.panes.PrevLayout()
}

// FocusNextPane moves pane focus forward, wrapping.
func (w *Workspace) FocusNextPane() {
	w.panes.FocusNextPane()
}

// FocusPrevPane moves pane focus backward, wrapping.
func (w *Workspace) FocusPrevPane() {
	w.panes.FocusPrevPane()
}

// FocusPane focuses a pane slot. Returns false when out of range.
func (w *Workspace) FocusPane(slot int) bool {
	return w.panes.FocusPane(slot)
}

// CycleFocusedPaneSession advances the focused pane through the session
// collection; the workspace supplies the live count.
func (w *Workspace) CycleFocusedPaneSession() {
	w.panes.CycleFocusedSession(w.sessions.Count())
}

// CycleFocusedPaneSessionPrev retreats the focused pane through the
// session collection.
func (w *Workspace) CycleFocusedPaneSessionPrev() {
	w.panes.CycleFocusedSessionPrev(w.sessions.Count())
}

// ActiveSession returns the active session; never nil.
func (w *Workspace) ActiveSession() *session.Session {
	return w.sessions.Active()
}

// FocusedPaneSession resolves the focused pane's session through the
// current collection at call time, never through a cached pointer. Returns
// nil for an empty pane.
func (w *Workspace) FocusedPaneSession() *session.Session {
	idx, ok := w.panes.FocusedSession()
	if !ok {
		return nil
	}
	return w.sessions.Get(idx)
}

// SessionForPane resolves the session shown in a pane slot, or nil for an
// empty or out-of-range slot.
func (w *Workspace) SessionForPane(slot int) *session.Session {
	idx, ok := w.panes.SessionFor(slot)
	if !ok {
		return nil
	}
	return w.sessions.Get(idx)
}

// LayoutMode returns the active layout mode.
func (w *Workspace) LayoutMode() layout.Mode {
	return w.panes.Mode()
}

// PaneCount returns the number of visible panes.
func (w *Workspace) PaneCount() int {
	return w.panes.PaneCount()
}

// FocusedPane returns the focused pane slot.
func (w *Workspace) FocusedPane() int {
	return w.panes.FocusedPane()
}

// IsPaneFocused reports whether a slot has focus.
func (w *Workspace) IsPaneFocused(slot int) bool {
	return w.panes.IsPaneFocused(slot)
}

// Areas returns the pane rectangles for the current layout within bounds.
func (w *Workspace) Areas(bounds layout.Rect) []layout.Rect {
	return w.panes.Areas(bounds)
}

// ShouldShowTabs reports whether the tab bar is worth drawing: enabled and
// more than one session exists.
func (w *Workspace) ShouldShowTabs() bool {
	return w.showTabs && w.sessions.Count() > 1
}

// ShowTabs reports whether the tab bar is enabled, regardless of session
// count.
func (w *Workspace) ShowTabs() bool {
	return w.showTabs
}

// SetShowTabs toggles the tab bar.
func (w *Workspace) SetShowTabs(show bool) {
	w.showTabs = show
}

// ExpireNotices drops expired notifications across all sessions.
func (w *Workspace) ExpireNotices(now time.Time) {
	w.sessions.ExpireNotices(now)
}

// reconcile re-validates the pane mapping against the current collection.
// The pane manager learns the session total, and any mapped index past the
// end of the collection is clamped to the last session. The collection is
// never empty, so clamping always lands on a real session.
func (w *Workspace) reconcile() {
	count := w.sessions.Count()
	w.panes.SetSessionCount(count)
	for slot := 0; slot < w.panes.PaneCount(); slot++ {
		if idx, ok := w.panes.SessionFor(slot); ok && idx >= count {
			w.panes.SetPaneSession(slot, count-1)
		}
	}
}

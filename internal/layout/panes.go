package layout

// paneEmpty marks a slot with no session assigned. Slots only reach this
// state when no sessions exist at assignment time; rendering shows such
// panes as placeholders.
const paneEmpty = -1

// PaneManager tracks the active layout mode, the session index shown in
// each pane slot, and which slot has input focus. Session indices held here
// are weak references into the owner's session collection; the owner must
// reconcile them after any change that shifts or removes sessions.
type PaneManager struct {
	mode          Mode
	paneToSession []int
	focused       int
	sessionCount  int
}

// NewPaneManager returns a manager in Single mode with pane 0 showing
// session 0.
func NewPaneManager() *PaneManager {
	return &PaneManager{
		mode:          Single,
		paneToSession: []int{0},
		sessionCount:  1,
	}
}

// Mode returns the active layout mode.
func (p *PaneManager) Mode() Mode {
	return p.mode
}

// SetLayout switches to mode and resizes the slot mapping: slots beyond the
// new pane count are dropped, newly revealed slots are assigned sessions
// round-robin over the known session total.
func (p *PaneManager) SetLayout(mode Mode) {
	p.mode = mode
	p.adjustPanes()
}

// NextLayout switches to the next mode in cycle order.
func (p *PaneManager) NextLayout() {
	p.SetLayout(p.mode.Next())
}

// PrevLayout switches to the previous mode in cycle order.
func (p *PaneManager) PrevLayout() {
	p.SetLayout(p.mode.Prev())
}

// PaneCount returns the number of visible pane slots.
func (p *PaneManager) PaneCount() int {
	return len(p.paneToSession)
}

// FocusedPane returns the focused slot index.
func (p *PaneManager) FocusedPane() int {
	return p.focused
}

// SessionFor returns the session index shown in slot. ok is false for an
// out-of-range slot or an empty pane.
func (p *PaneManager) SessionFor(slot int) (int, bool) {
	if slot < 0 || slot >= len(p.paneToSession) {
		return 0, false
	}
	idx := p.paneToSession[slot]
	if idx == paneEmpty {
		return 0, false
	}
	return idx, true
}

// FocusedSession returns the session index shown in the focused slot.
func (p *PaneManager) FocusedSession() (int, bool) {
	return p.SessionFor(p.focused)
}

// Mappings returns a copy of the slot mapping. Empty slots are -1.
func (p *PaneManager) Mappings() []int {
	out := make([]int, len(p.paneToSession))
	copy(out, p.paneToSession)
	return out
}

// SetPaneSession assigns a session index to a slot. Out-of-range slots are
// ignored.
func (p *PaneManager) SetPaneSession(slot, session int) {
	if slot >= 0 && slot < len(p.paneToSession) {
		p.paneToSession[slot] = session
	}
}

// FocusNextPane moves focus to the next slot, wrapping.
func (p *PaneManager) FocusNextPane() {
	if n := len(p.paneToSession); n > 0 {
		p.focused = (p.focused + 1) % n
	}
}

// FocusPrevPane moves focus to the previous slot, wrapping.
func (p *PaneManager) FocusPrevPane() {
	if n := len(p.paneToSession); n > 0 {
		p.focused = (p.focused + n - 1) % n
	}
}

// FocusPane focuses a specific slot. Returns false for an out-of-range slot.
func (p *PaneManager) FocusPane(slot int) bool {
	if slot < 0 || slot >= len(p.paneToSession) {
		return false
	}
	p.focused = slot
	return true
}

// IsPaneFocused reports whether slot currently has focus.
func (p *PaneManager) IsPaneFocused(slot int) bool {
	return p.focused == slot
}

// SetSessionCount tells the manager how many sessions exist. New-slot
// assignment and session cycling stay within this total.
func (p *PaneManager) SetSessionCount(n int) {
	if n < 0 {
		n = 0
	}
	p.sessionCount = n
}

// CycleFocusedSession advances the focused slot's session circularly over
// [0, total). No-op when total is zero or the slot is empty.
func (p *PaneManager) CycleFocusedSession(total int) {
	if total <= 0 {
		return
	}
	cur := p.paneToSession[p.focused]
	if cur == paneEmpty {
		return
	}
	p.paneToSession[p.focused] = (cur + 1) % total
}

// CycleFocusedSessionPrev retreats the focused slot's session circularly
// over [0, total). No-op when total is zero or the slot is empty.
func (p *PaneManager) CycleFocusedSessionPrev(total int) {
	if total <= 0 {
		return
	}
	cur := p.paneToSession[p.focused]
	if cur == paneEmpty {
		return
	}
	p.paneToSession[p.focused] = (cur + total - 1) % total
}

// Areas returns the pane rectangles for the current mode. Pure; owns no
// geometry state.
func (p *PaneManager) Areas(bounds Rect) []Rect {
	return p.mode.Areas(bounds)
}

// adjustPanes resizes the mapping to the current mode's pane count. Kept
// slots keep their sessions (slot 0 in particular never loses its
// assignment); new slots take slot mod sessionCount, or stay empty when no
// sessions exist. Focus is clamped into range.
func (p *PaneManager) adjustPanes() {
	want := p.mode.PaneCount()
	if len(p.paneToSession) > want {
		p.paneToSession = p.paneToSession[:want]
	}
	for len(p.paneToSession) < want {
		slot := len(p.paneToSession)
		p.paneToSession = append(p.paneToSession, p.assign(slot))
	}
	if p.focused >= len(p.paneToSession) {
		p.focused = len(p.paneToSession) - 1
	}
}

// assign picks the session for a newly revealed slot.
func (p *PaneManager) assign(slot int) int {
	if p.sessionCount == 0 {
		return paneEmpty
	}
	return slot % p.sessionCount
}

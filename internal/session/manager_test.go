package session

import "testing"

func TestNewManager_SeedsOneSession(t *testing.T) {
	m := NewManager()

	if m.Count() != 1 {
		t.Fatalf("count = %d, want 1", m.Count())
	}
	if m.ActiveIndex() != 0 {
		t.Errorf("active index = %d, want 0", m.ActiveIndex())
	}

	s := m.Active()
	if s.Name != "Session 1" {
		t.Errorf("name = %q, want %q", s.Name, "Session 1")
	}
	if s.Connected {
		t.Error("fresh session reports connected")
	}
	if s.Settings.BaudRate != 9600 {
		t.Errorf("baud = %d, want default 9600", s.Settings.BaudRate)
	}
}

func TestManager_AddBecomesActive(t *testing.T) {
	m := NewManager()

	idx := m.Add("", "")
	if idx != 1 {
		t.Fatalf("Add returned %d, want 1", idx)
	}
	if m.ActiveIndex() != 1 {
		t.Errorf("active index = %d, want 1", m.ActiveIndex())
	}
	if got := m.Active().Name; got != "Session 2" {
		t.Errorf("generated name = %q, want %q", got, "Session 2")
	}
}

func TestManager_AddWithPort(t *testing.T) {
	m := NewManager()

	idx := m.Add("COM3", "")
	s := m.Get(idx)
	if s.Name != "Session 2 - COM3" {
		t.Errorf("generated name = %q, want %q", s.Name, "Session 2 - COM3")
	}
	if s.Settings.Port != "COM3" {
		t.Errorf("settings port = %q, want COM3", s.Settings.Port)
	}
}

func TestManager_AddExplicitName(t *testing.T) {
	m := NewManager()

	idx := m.Add("/dev/ttyUSB0", "bench PSU")
	if got := m.Get(idx).Name; got != "bench PSU" {
		t.Errorf("name = %q, want explicit name kept", got)
	}
}

func TestManager_RemoveInvalidIndex(t *testing.T) {
	m := NewManager()

	if m.Remove(-1) {
		t.Error("Remove(-1) = true")
	}
	if m.Remove(5) {
		t.Error("Remove(5) = true")
	}
	if m.Count() != 1 {
		t.Errorf("count changed to %d", m.Count())
	}
}

func TestManager_RemoveActiveKeepsPosition(t *testing.T) {
	m := NewManager()
	m.Add("", "")
	m.Add("", "")
	m.SwitchTo(1)
	survivor := m.Get(2).ID

	if !m.Remove(1) {
		t.Fatal("Remove(1) failed")
	}
	if m.ActiveIndex() != 1 {
		t.Errorf("active index = %d, want same position 1", m.ActiveIndex())
	}
	if m.Active().ID != survivor {
		t.Error("active is not the session that slid into the removed slot")
	}
}

func TestManager_RemoveActiveLastSlotClamps(t *testing.T) {
	m := NewManager()
	m.Add("", "")
	m.Add("", "")

	if !m.Remove(2) {
		t.Fatal("Remove(2) failed")
	}
	if m.ActiveIndex() != 1 {
		t.Errorf("active index = %d, want previous position 1", m.ActiveIndex())
	}
}

func TestManager_RemoveBeforeActiveShifts(t *testing.T) {
	m := NewManager()
	m.Add("", "")
	m.Add("", "")
	active := m.Active().ID

	if !m.Remove(0) {
		t.Fatal("Remove(0) failed")
	}
	if m.ActiveIndex() != 1 {
		t.Errorf("active index = %d, want 1", m.ActiveIndex())
	}
	if m.Active().ID != active {
		t.Error("active no longer points at the same session after the shift")
	}
}

func TestManager_RemoveLastSeedsFresh(t *testing.T) {
	m := NewManager()
	old := m.Active().ID

	if !m.Remove(0) {
		t.Fatal("Remove(0) on the only session failed")
	}
	if m.Count() != 1 {
		t.Fatalf("count = %d, want re-seeded 1", m.Count())
	}
	if m.ActiveIndex() != 0 {
		t.Errorf("active index = %d, want 0", m.ActiveIndex())
	}
	if m.Active().ID == old {
		t.Error("re-seeded session reuses the removed session's identity")
	}
	if got := m.Active().Name; got != "Session 2" {
		t.Errorf("re-seeded name = %q, want %q", got, "Session 2")
	}
}

func TestManager_NeverEmpty(t *testing.T) {
	m := NewManager()
	m.Add("", "")
	m.Add("", "")

	for i := 0; i < 10; i++ {
		m.Remove(0)
		if m.Count() < 1 {
			t.Fatalf("count dropped to %d after removal %d", m.Count(), i)
		}
		if m.ActiveIndex() < 0 || m.ActiveIndex() >= m.Count() {
			t.Fatalf("active index %d out of range after removal %d", m.ActiveIndex(), i)
		}
	}
}

func TestManager_NextPrevCircular(t *testing.T) {
	m := NewManager()
	m.Add("", "")
	m.Add("", "")
	m.SwitchTo(0)

	for i := 0; i < m.Count(); i++ {
		m.Next()
	}
	if m.ActiveIndex() != 0 {
		t.Errorf("Next composed Count() times moved active to %d", m.ActiveIndex())
	}

	m.Prev()
	if m.ActiveIndex() != 2 {
		t.Errorf("Prev from 0 = %d, want wrap to 2", m.ActiveIndex())
	}
}

func TestManager_NextSingleSessionStays(t *testing.T) {
	m := NewManager()
	m.Next()
	m.Prev()
	if m.ActiveIndex() != 0 {
		t.Errorf("active index = %d on a single-session collection", m.ActiveIndex())
	}
}

func TestManager_SwitchTo(t *testing.T) {
	m := NewManager()
	m.Add("", "")

	if !m.SwitchTo(0) {
		t.Error("SwitchTo(0) = false")
	}
	if m.SwitchTo(2) {
		t.Error("SwitchTo(2) = true with 2 sessions")
	}
	if m.ActiveIndex() != 0 {
		t.Errorf("failed switch moved active to %d", m.ActiveIndex())
	}
}

func TestManager_Rename(t *testing.T) {
	m := NewManager()

	if !m.Rename(0, "UART bridge") {
		t.Fatal("Rename(0) failed")
	}
	if got := m.Get(0).Name; got != "UART bridge" {
		t.Errorf("name = %q", got)
	}
	if m.Rename(3, "x") {
		t.Error("Rename(3) = true")
	}
}

func TestManager_Duplicate(t *testing.T) {
	m := NewManager()
	src := m.Active()
	src.Settings.Port = "/dev/ttyACM1"
	src.Settings.BaudRate = 115200
	src.Connected = true
	src.Log.Append(DirRx, "boot ok")

	idx := m.Duplicate(0)
	if idx != 1 {
		t.Fatalf("Duplicate returned %d, want 1", idx)
	}
	dup := m.Get(idx)

	if dup.Name != "Session 1 (Copy)" {
		t.Errorf("name = %q, want %q", dup.Name, "Session 1 (Copy)")
	}
	if dup.Settings != src.Settings {
		t.Errorf("settings not copied: %+v", dup.Settings)
	}
	if dup.Connected {
		t.Error("duplicate starts connected")
	}
	if dup.Log.Len() != 0 {
		t.Errorf("duplicate log has %d entries, want fresh log", dup.Log.Len())
	}
	if dup.ID == src.ID {
		t.Error("duplicate shares the source session's identity")
	}
	if m.ActiveIndex() != idx {
		t.Errorf("active index = %d, want the duplicate", m.ActiveIndex())
	}
}

func TestManager_DuplicateInvalidIndex(t *testing.T) {
	m := NewManager()
	if got := m.Duplicate(9); got != -1 {
		t.Errorf("Duplicate(9) = %d, want -1", got)
	}
}

func TestManager_SetLogLimitAppliesToNewSessions(t *testing.T) {
	m := NewManager()
	m.SetLogLimit(3)

	idx := m.Add("", "")
	s := m.Get(idx)
	for i := 0; i < 5; i++ {
		s.Log.Append(DirRx, "line")
	}
	if got := s.Log.Len(); got != 3 {
		t.Errorf("new session log len = %d, want 3", got)
	}

	seed := m.Get(0)
	for i := 0; i < 5; i++ {
		seed.Log.Append(DirRx, "line")
	}
	if got := seed.Log.Len(); got != 3 {
		t.Errorf("seed session log len = %d, want 3", got)
	}
}

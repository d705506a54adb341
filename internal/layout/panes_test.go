package layout

import "testing"

func TestNewPaneManager_Defaults(t *testing.T) {
	p := NewPaneManager()

	if p.Mode() != Single {
		t.Errorf("mode = %v, want Single", p.Mode())
	}
	if p.PaneCount() != 1 {
		t.Errorf("pane count = %d, want 1", p.PaneCount())
	}
	if p.FocusedPane() != 0 {
		t.Errorf("focused pane = %d, want 0", p.FocusedPane())
	}
	if idx, ok := p.SessionFor(0); !ok || idx != 0 {
		t.Errorf("SessionFor(0) = %d, %v, want 0, true", idx, ok)
	}
}

func TestPaneManager_LayoutChange(t *testing.T) {
	p := NewPaneManager()

	p.NextLayout()
	if p.Mode() != SplitHorizontal {
		t.Fatalf("mode = %v, want SplitHorizontal", p.Mode())
	}
	if p.PaneCount() != 2 {
		t.Fatalf("pane count = %d, want 2", p.PaneCount())
	}

	p.NextLayout()
	if p.Mode() != SplitVertical {
		t.Fatalf("mode = %v, want SplitVertical", p.Mode())
	}
	if p.PaneCount() != 2 {
		t.Fatalf("pane count = %d, want 2", p.PaneCount())
	}

	p.PrevLayout()
	if p.Mode() != SplitHorizontal {
		t.Fatalf("after PrevLayout mode = %v, want SplitHorizontal", p.Mode())
	}
}

func TestPaneManager_SetLayoutMappingSize(t *testing.T) {
	for _, m := range Modes() {
		p := NewPaneManager()
		p.SetSessionCount(2)
		p.SetLayout(m)

		if p.PaneCount() != m.PaneCount() {
			t.Errorf("%v: mapping has %d entries, want %d", m, p.PaneCount(), m.PaneCount())
		}
		if idx, ok := p.SessionFor(0); !ok || idx != 0 {
			t.Errorf("%v: slot 0 = %d, %v, want retained session 0", m, idx, ok)
		}
	}
}

func TestPaneManager_RoundRobinAssignment(t *testing.T) {
	tests := []struct {
		name     string
		sessions int
		want     []int
	}{
		{"one session repeats", 1, []int{0, 0, 0, 0}},
		{"two sessions alternate", 2, []int{0, 1, 0, 1}},
		{"three sessions wrap", 3, []int{0, 1, 2, 0}},
		{"four sessions distinct", 4, []int{0, 1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPaneManager()
			p.SetSessionCount(tt.sessions)
			p.SetLayout(Grid2x2)

			got := p.Mappings()
			if len(got) != len(tt.want) {
				t.Fatalf("got %d mappings, want %d", len(got), len(tt.want))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("slot %d = %d, want %d", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestPaneManager_ShrinkDropsExcessAndClampsFocus(t *testing.T) {
	p := NewPaneManager()
	p.SetSessionCount(4)
	p.SetLayout(Grid2x2)
	if !p.FocusPane(3) {
		t.Fatal("FocusPane(3) failed on a 4-pane layout")
	}

	p.SetLayout(Single)

	if p.PaneCount() != 1 {
		t.Fatalf("pane count = %d, want 1", p.PaneCount())
	}
	if p.FocusedPane() != 0 {
		t.Errorf("focused pane = %d, want clamped to 0", p.FocusedPane())
	}
	if idx, ok := p.SessionFor(0); !ok || idx != 0 {
		t.Errorf("slot 0 = %d, %v, want retained session 0", idx, ok)
	}
}

func TestPaneManager_FocusCircularity(t *testing.T) {
	p := NewPaneManager()
	p.SetSessionCount(4)
	p.SetLayout(Grid2x2)

	for i := 0; i < p.PaneCount(); i++ {
		p.FocusNextPane()
	}
	if p.FocusedPane() != 0 {
		t.Errorf("focus after full forward cycle = %d, want 0", p.FocusedPane())
	}

	p.FocusPrevPane()
	if p.FocusedPane() != 3 {
		t.Errorf("focus after wrap backwards = %d, want 3", p.FocusedPane())
	}
}

func TestPaneManager_FocusPaneBounds(t *testing.T) {
	p := NewPaneManager()
	p.SetLayout(SplitVertical)

	if !p.FocusPane(1) {
		t.Error("FocusPane(1) = false, want true")
	}
	if p.FocusPane(2) {
		t.Error("FocusPane(2) = true for a 2-pane layout")
	}
	if p.FocusPane(-1) {
		t.Error("FocusPane(-1) = true")
	}
	if p.FocusedPane() != 1 {
		t.Errorf("failed focus calls moved focus to %d", p.FocusedPane())
	}
	if !p.IsPaneFocused(1) {
		t.Error("IsPaneFocused(1) = false after FocusPane(1)")
	}
}

func TestPaneManager_CycleFocusedSession(t *testing.T) {
	p := NewPaneManager()
	p.SetLayout(SplitHorizontal)

	if idx, ok := p.FocusedSession(); !ok || idx != 0 {
		t.Fatalf("initial focused session = %d, %v", idx, ok)
	}

	want := []int{1, 2, 0}
	for _, expected := range want {
		p.CycleFocusedSession(3)
		if idx, _ := p.FocusedSession(); idx != expected {
			t.Fatalf("focused session = %d, want %d", idx, expected)
		}
	}
}

func TestPaneManager_CycleFocusedSessionPrev(t *testing.T) {
	p := NewPaneManager()
	p.SetLayout(SplitHorizontal)

	p.CycleFocusedSessionPrev(3)
	if idx, _ := p.FocusedSession(); idx != 2 {
		t.Fatalf("focused session = %d, want wrap to 2", idx)
	}
	p.CycleFocusedSessionPrev(3)
	if idx, _ := p.FocusedSession(); idx != 1 {
		t.Fatalf("focused session = %d, want 1", idx)
	}
}

func TestPaneManager_CycleZeroSessionsNoop(t *testing.T) {
	p := NewPaneManager()
	p.CycleFocusedSession(0)
	if idx, ok := p.FocusedSession(); !ok || idx != 0 {
		t.Errorf("cycle with zero total changed mapping: %d, %v", idx, ok)
	}
}

func TestPaneManager_CycleEmptySlotIsIdentity(t *testing.T) {
	p := NewPaneManager()
	p.SetSessionCount(0)
	p.SetLayout(Grid2x2)
	if !p.FocusPane(1) {
		t.Fatal("FocusPane(1) failed")
	}
	if _, ok := p.FocusedSession(); ok {
		t.Fatal("slot 1 should be empty with zero sessions")
	}

	for i := 0; i < 3; i++ {
		p.CycleFocusedSession(3)
	}
	if _, ok := p.FocusedSession(); ok {
		t.Error("cycling an empty slot assigned it a session")
	}
}

func TestPaneManager_SetPaneSession(t *testing.T) {
	p := NewPaneManager()
	p.SetSessionCount(3)
	p.SetLayout(SplitVertical)

	p.SetPaneSession(1, 2)
	if idx, _ := p.SessionFor(1); idx != 2 {
		t.Errorf("slot 1 = %d, want 2", idx)
	}

	p.SetPaneSession(5, 0)
	if p.PaneCount() != 2 {
		t.Errorf("out-of-range SetPaneSession changed pane count to %d", p.PaneCount())
	}
}

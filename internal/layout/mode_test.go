package layout

import "testing"

func TestMode_CycleOrder(t *testing.T) {
	want := []Mode{Single, SplitHorizontal, SplitVertical, Grid2x2, Grid1x2, Grid2x1}

	m := Single
	for i, expected := range want {
		if m != expected {
			t.Fatalf("step %d: expected %v, got %v", i, expected, m)
		}
		m = m.Next()
	}
	if m != Single {
		t.Fatalf("cycle did not wrap back to Single, got %v", m)
	}
}

func TestMode_PrevInvertsNext(t *testing.T) {
	for _, m := range Modes() {
		if got := m.Next().Prev(); got != m {
			t.Errorf("%v: Next().Prev() = %v, want %v", m, got, m)
		}
		if got := m.Prev().Next(); got != m {
			t.Errorf("%v: Prev().Next() = %v, want %v", m, got, m)
		}
	}
}

func TestMode_PaneCount(t *testing.T) {
	tests := []struct {
		mode Mode
		want int
	}{
		{Single, 1},
		{SplitHorizontal, 2},
		{SplitVertical, 2},
		{Grid2x2, 4},
		{Grid1x2, 3},
		{Grid2x1, 3},
	}

	for _, tt := range tests {
		if got := tt.mode.PaneCount(); got != tt.want {
			t.Errorf("%v.PaneCount() = %d, want %d", tt.mode, got, tt.want)
		}
	}
}

func TestMode_String(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{Single, "Single"},
		{SplitHorizontal, "Split Horizontal"},
		{SplitVertical, "Split Vertical"},
		{Grid2x2, "Grid 2×2"},
		{Grid1x2, "Grid 1×2"},
		{Grid2x1, "Grid 2×1"},
	}

	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", int(tt.mode), got, tt.want)
		}
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{"", Single, false},
		{"single", Single, false},
		{"Split-Horizontal", SplitHorizontal, false},
		{"vertical", SplitVertical, false},
		{"grid", Grid2x2, false},
		{"2x2", Grid2x2, false},
		{" 1x2 ", Grid1x2, false},
		{"grid-2x1", Grid2x1, false},
		{"diagonal", Single, true},
	}

	for _, tt := range tests {
		got, err := ParseMode(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q): error = %v, wantErr = %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestModes_ReturnsCopy(t *testing.T) {
	modes := Modes()
	modes[0] = Grid2x2

	if Modes()[0] != Single {
		t.Fatal("mutating the Modes() result leaked into the cycle order")
	}
}

package layout

import "testing"

func TestAreas_TilesBoundsExactly(t *testing.T) {
	bounds := []Rect{
		{X: 0, Y: 0, W: 100, H: 40},
		{X: 3, Y: 7, W: 99, H: 39},
		{X: 0, Y: 0, W: 7, H: 5},
		{X: 1, Y: 1, W: 1, H: 1},
	}

	for _, m := range Modes() {
		for _, b := range bounds {
			areas := m.Areas(b)

			if len(areas) != m.PaneCount() {
				t.Fatalf("%v: got %d areas, want %d", m, len(areas), m.PaneCount())
			}

			total := 0
			for i, a := range areas {
				if a.W < 0 || a.H < 0 {
					t.Fatalf("%v area %d has negative size: %+v", m, i, a)
				}
				if a.X < b.X || a.Y < b.Y || a.X+a.W > b.X+b.W || a.Y+a.H > b.Y+b.H {
					t.Fatalf("%v area %d %+v escapes bounds %+v", m, i, a, b)
				}
				total += a.W * a.H
			}
			if total != b.W*b.H {
				t.Errorf("%v areas cover %d cells of %d in %+v", m, total, b.W*b.H, b)
			}

			for i := 0; i < len(areas); i++ {
				for j := i + 1; j < len(areas); j++ {
					if overlaps(areas[i], areas[j]) {
						t.Errorf("%v areas %d and %d overlap: %+v vs %+v", m, i, j, areas[i], areas[j])
					}
				}
			}
		}
	}
}

func TestAreas_Grid2x2Quadrants(t *testing.T) {
	areas := Grid2x2.Areas(Rect{W: 100, H: 40})

	want := []Rect{
		{X: 0, Y: 0, W: 50, H: 20},
		{X: 50, Y: 0, W: 50, H: 20},
		{X: 0, Y: 20, W: 50, H: 20},
		{X: 50, Y: 20, W: 50, H: 20},
	}
	for i, w := range want {
		if areas[i] != w {
			t.Errorf("quadrant %d = %+v, want %+v", i, areas[i], w)
		}
	}
}

func TestAreas_RemainderGoesBottomRight(t *testing.T) {
	odd := Rect{W: 101, H: 41}

	h := SplitHorizontal.Areas(odd)
	if h[0].H != 20 || h[1].H != 21 {
		t.Errorf("SplitHorizontal heights = %d/%d, want 20/21", h[0].H, h[1].H)
	}

	v := SplitVertical.Areas(odd)
	if v[0].W != 50 || v[1].W != 51 {
		t.Errorf("SplitVertical widths = %d/%d, want 50/51", v[0].W, v[1].W)
	}

	g := Grid2x2.Areas(odd)
	br := g[3]
	if br.W != 51 || br.H != 21 {
		t.Errorf("Grid2x2 bottom-right = %dx%d, want 51x21", br.W, br.H)
	}
}

func TestAreas_SingleReturnsBounds(t *testing.T) {
	b := Rect{X: 5, Y: 6, W: 80, H: 24}
	areas := Single.Areas(b)

	if len(areas) != 1 || areas[0] != b {
		t.Fatalf("Single.Areas(%+v) = %+v", b, areas)
	}
}

func TestAreas_Grid1x2Shape(t *testing.T) {
	areas := Grid1x2.Areas(Rect{W: 80, H: 24})

	top := areas[0]
	if top.W != 80 || top.H != 12 || top.Y != 0 {
		t.Errorf("top pane = %+v, want full width at half height", top)
	}
	if areas[1].Y != 12 || areas[2].Y != 12 {
		t.Errorf("bottom panes start at y=%d/%d, want 12", areas[1].Y, areas[2].Y)
	}
	if areas[1].W != 40 || areas[2].W != 40 {
		t.Errorf("bottom pane widths = %d/%d, want 40/40", areas[1].W, areas[2].W)
	}
}

func TestAreas_Grid2x1Shape(t *testing.T) {
	areas := Grid2x1.Areas(Rect{W: 80, H: 24})

	left := areas[0]
	if left.H != 24 || left.W != 40 || left.X != 0 {
		t.Errorf("left pane = %+v, want full height at half width", left)
	}
	if areas[1].X != 40 || areas[2].X != 40 {
		t.Errorf("right panes start at x=%d/%d, want 40", areas[1].X, areas[2].X)
	}
	if areas[1].H != 12 || areas[2].H != 12 {
		t.Errorf("right pane heights = %d/%d, want 12/12", areas[1].H, areas[2].H)
	}
}

func overlaps(a, b Rect) bool {
	if a.W == 0 || a.H == 0 || b.W == 0 || b.H == 0 {
		return false
	}
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

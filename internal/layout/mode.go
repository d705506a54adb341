// Package layout owns the split-pane topology: which layout mode is active,
// which session index each pane slot shows, and how a screen rectangle
// subdivides into pane rectangles. It never touches sessions directly; the
// owner feeds it the session total and reconciles stale indices.
package layout

import (
	"fmt"
	"strings"
)

// Mode is a split-pane topology. The set is closed; cycling walks the fixed
// order of modeOrder.
type Mode int

const (
	// Single shows one pane filling the whole area.
	Single Mode = iota
	// SplitHorizontal stacks two panes top/bottom.
	SplitHorizontal
	// SplitVertical places two panes side by side.
	SplitVertical
	// Grid2x2 shows four equal panes.
	Grid2x2
	// Grid1x2 shows one large pane on top and two small panes below.
	Grid1x2
	// Grid2x1 shows one large pane on the left and two small panes on the right.
	Grid2x1
)

// modeOrder is the cycle order for next/prev layout switching.
var modeOrder = []Mode{Single, SplitHorizontal, SplitVertical, Grid2x2, Grid1x2, Grid2x1}

// Modes returns all layout modes in cycle order.
func Modes() []Mode {
	out := make([]Mode, len(modeOrder))
	copy(out, modeOrder)
	return out
}

// String returns the display name shown in the layout indicator.
func (m Mode) String() string {
	switch m {
	case Single:
		return "Single"
	case SplitHorizontal:
		return "Split Horizontal"
	case SplitVertical:
		return "Split Vertical"
	case Grid2x2:
		return "Grid 2×2"
	case Grid1x2:
		return "Grid 1×2"
	case Grid2x1:
		return "Grid 2×1"
	default:
		return "Unknown"
	}
}

// PaneCount returns the number of pane slots the mode displays.
func (m Mode) PaneCount() int {
	switch m {
	case SplitHorizontal, SplitVertical:
		return 2
	case Grid1x2, Grid2x1:
		return 3
	case Grid2x2:
		return 4
	default:
		return 1
	}
}

// ParseMode maps a config string to a Mode. Empty means Single.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "single":
		return Single, nil
	case "split-horizontal", "horizontal":
		return SplitHorizontal, nil
	case "split-vertical", "vertical":
		return SplitVertical, nil
	case "grid-2x2", "2x2", "grid":
		return Grid2x2, nil
	case "grid-1x2", "1x2":
		return Grid1x2, nil
	case "grid-2x1", "2x1":
		return Grid2x1, nil
	}
	return Single, fmt.Errorf("unknown layout %q", s)
}

// Next returns the mode after m in cycle order, wrapping.
func (m Mode) Next() Mode {
	return modeOrder[(m.ordinal()+1)%len(modeOrder)]
}

// Prev returns the mode before m in cycle order, wrapping.
func (m Mode) Prev() Mode {
	return modeOrder[(m.ordinal()+len(modeOrder)-1)%len(modeOrder)]
}

func (m Mode) ordinal() int {
	for i, mode := range modeOrder {
		if mode == m {
			return i
		}
	}
	return 0
}

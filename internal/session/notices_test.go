package session

import (
	"testing"
	"time"
)

func TestNotices_ActiveDropsExpired(t *testing.T) {
	now := time.Now()
	n := NewNotices()
	n.AddAt(now.Add(-4*time.Second), LevelInfo, "stale")
	n.AddAt(now.Add(-1*time.Second), LevelError, "fresh")

	live := n.Active(now)
	if len(live) != 1 {
		t.Fatalf("Active returned %d notices, want 1", len(live))
	}
	if live[0].Text != "fresh" || live[0].Level != LevelError {
		t.Errorf("surviving notice = %+v", live[0])
	}

	// The expired entry is gone for good.
	if got := n.Active(now); len(got) != 1 {
		t.Errorf("second Active call returned %d notices", len(got))
	}
}

func TestNotices_OrderIsOldestFirst(t *testing.T) {
	now := time.Now()
	n := NewNotices()
	n.AddAt(now.Add(-2*time.Second), LevelInfo, "older")
	n.AddAt(now.Add(-1*time.Second), LevelInfo, "newer")

	live := n.Active(now)
	if len(live) != 2 || live[0].Text != "older" || live[1].Text != "newer" {
		t.Fatalf("Active order = %+v", live)
	}
}

func TestNotices_LevelHelpers(t *testing.T) {
	n := NewNotices()
	n.Info("i")
	n.Success("s")
	n.Warning("w")
	n.Error("e")

	live := n.Active(time.Now())
	if len(live) != 4 {
		t.Fatalf("got %d notices, want 4", len(live))
	}
	want := []Level{LevelInfo, LevelSuccess, LevelWarning, LevelError}
	for i, lvl := range want {
		if live[i].Level != lvl {
			t.Errorf("notice %d level = %v, want %v", i, live[i].Level, lvl)
		}
	}
}

func TestManager_ExpireNotices(t *testing.T) {
	m := NewManager()
	m.Add("", "")
	now := time.Now()
	for _, s := range m.Sessions() {
		s.Notices.AddAt(now.Add(-10*time.Second), LevelInfo, "old news")
	}

	m.ExpireNotices(now)

	for i, s := range m.Sessions() {
		if got := len(s.Notices.Active(now)); got != 0 {
			t.Errorf("session %d still has %d notices", i, got)
		}
	}
}

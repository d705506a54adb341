package session

import (
	"testing"
	"time"
)

func TestLog_AppendAndTail(t *testing.T) {
	l := NewLog(100)
	l.Append(DirRx, "first")
	l.Append(DirTx, "second")
	l.Append(DirSystem, "third")

	if l.Len() != 3 {
		t.Fatalf("Len = %d, want 3", l.Len())
	}

	tail := l.Tail(2)
	if len(tail) != 2 {
		t.Fatalf("Tail(2) returned %d entries", len(tail))
	}
	if tail[0].Text != "second" || tail[0].Dir != DirTx {
		t.Errorf("tail[0] = %+v", tail[0])
	}
	if tail[1].Text != "third" || tail[1].Dir != DirSystem {
		t.Errorf("tail[1] = %+v", tail[1])
	}

	if got := l.Tail(50); len(got) != 3 {
		t.Errorf("Tail larger than log returned %d entries", len(got))
	}
	if got := l.Tail(0); got != nil {
		t.Errorf("Tail(0) = %v, want nil", got)
	}
}

func TestLog_LimitDropsOldest(t *testing.T) {
	l := NewLog(3)
	stamps := []string{"a", "b", "c", "d", "e"}
	for _, s := range stamps {
		l.Append(DirRx, s)
	}

	if l.Len() != 3 {
		t.Fatalf("Len = %d, want 3", l.Len())
	}
	tail := l.Tail(3)
	if tail[0].Text != "c" || tail[2].Text != "e" {
		t.Errorf("retained lines = %q..%q, want c..e", tail[0].Text, tail[2].Text)
	}
}

func TestLog_ByteCountersAndClear(t *testing.T) {
	l := NewLog(10)
	l.Append(DirRx, "in")
	l.AddRxBytes(4)
	l.AddRxBytes(6)
	l.AddTxBytes(3)

	if l.RxBytes() != 10 || l.TxBytes() != 3 {
		t.Errorf("counters = rx %d / tx %d, want 10 / 3", l.RxBytes(), l.TxBytes())
	}

	l.Clear()
	if l.Len() != 0 || l.RxBytes() != 0 || l.TxBytes() != 0 {
		t.Errorf("Clear left len=%d rx=%d tx=%d", l.Len(), l.RxBytes(), l.TxBytes())
	}
}

func TestLog_SetLimitTrims(t *testing.T) {
	l := NewLog(10)
	for _, s := range []string{"a", "b", "c", "d", "e"} {
		l.Append(DirRx, s)
	}

	l.SetLimit(2)
	if l.Len() != 2 {
		t.Fatalf("len after SetLimit(2) = %d, want 2", l.Len())
	}
	tail := l.Tail(2)
	if tail[0].Text != "d" || tail[1].Text != "e" {
		t.Errorf("retained lines = %q, %q, want d, e", tail[0].Text, tail[1].Text)
	}

	l.SetLimit(0)
	if l.Len() != 2 {
		t.Errorf("SetLimit(0) should be ignored, len = %d", l.Len())
	}
}

func TestLog_AppendAtKeepsTimestamp(t *testing.T) {
	l := NewLog(10)
	at := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	l.AppendAt(at, DirRx, "stamped")

	if got := l.Tail(1)[0].At; !got.Equal(at) {
		t.Errorf("entry time = %v, want %v", got, at)
	}
}

package models

import "testing"

func TestNormalizePair(t *testing.T) {
	a, b := NormalizePair(9, 3)
	if a != 3 || b != 9 {
		t.Fatalf("expected (3,9), got (%d,%d)", a, b)
	}
	a2, b2 := NormalizePair(3, 9)
	if a2 != a || b2 != b {
		t.Fatalf("pair not order independent: (%d,%d) vs (%d,%d)", a, b, a2, b2)
	}
}

func TestThreadPeerAndUnread(t *testing.T) {
	th := &MessageThread{UserAID: 3, UserBID: 9, UnreadA: 2, UnreadB: 5}

	if got := th.PeerOf(3); got != 9 {
		t.Fatalf("PeerOf(3) = %d, want 9", got)
	}
	if got := th.PeerOf(9); got != 3 {
		t.Fatalf("PeerOf(9) = %d, want 3", got)
	}
	if got := th.PeerOf(7); got != 0 {
		t.Fatalf("PeerOf(outsider) = %d, want 0", got)
	}

	if got := th.UnreadOf(3); got != 2 {
		t.Fatalf("UnreadOf(3) = %d, want 2", got)
	}
	if got := th.UnreadOf(9); got != 5 {
		t.Fatalf("UnreadOf(9) = %d, want 5", got)
	}
}

package geo

import "testing"

func TestBoxExpand(t *testing.T) {
	var b *Box
	b = b.Expand(NewPoint(1, 1))
	if b.Width != 0 || b.Height != 0 {
		t.Fatalf("expected zero-extent box, got %s", b.ToString())
	}

	b = b.Expand(NewPoint(-1, 3))
	if b.MinX() != -1 || b.MaxX() != 1 || b.MinY() != 1 || b.MaxY() != 3 {
		t.Fatalf("unexpected bounds %s", b.ToString())
	}

	// A point inside the box changes nothing.
	b2 := b.Expand(NewPoint(0, 2))
	if b2.MinX() != b.MinX() || b2.MaxX() != b.MaxX() || b2.MinY() != b.MinY() || b2.MaxY() != b.MaxY() {
		t.Fatalf("interior point changed bounds %s", b2.ToString())
	}
}

func TestBoxCenter(t *testing.T) {
	b := NewBox(NewPoint(0, 0), 4, 2)
	if !b.Center().Equals(NewPoint(2, 1)) {
		t.Fatalf("unexpected center %s", b.Center().ToString())
	}
}

func TestRoundDecimals(t *testing.T) {
	if RoundDecimals(41.66666) != 41.67 {
		t.Fatalf("got %v", RoundDecimals(41.66666))
	}
	if RoundDecimals(-0.004) != 0 {
		t.Fatalf("got %v", RoundDecimals(-0.004))
	}
}

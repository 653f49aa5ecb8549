package trailerOffsets

import "testing"

func TestNextDefaultsToZero(t *testing.T) {
	o := NewOffsets(10)
	if got := o.Next("Дюна 20218.1"); got != 0 {
		t.Fatalf("unseen key must start at 0, got %d", got)
	}
	if o.Len() != 0 {
		t.Error("reading must not create entries")
	}
}

func TestAdvanceIsMonotonic(t *testing.T) {
	o := NewOffsets(10)
	const key = "Дюна 20218.1"
	for i := 1; i <= 9; i++ {
		o.Advance(key)
		if got := o.Next(key); got != i {
			t.Fatalf("after %d rejections expected offset %d, got %d", i, i, got)
		}
	}
}

func TestExhaustionAtCap(t *testing.T) {
	o := NewOffsets(10)
	const key = "Дюна 20218.1"
	for i := 0; i < 10; i++ {
		o.Advance(key)
	}
	if got := o.Next(key); got != Exhausted {
		t.Fatalf("expected Exhausted after 10 rejections, got %d", got)
	}
	// Further rejections are no-ops.
	o.Advance(key)
	o.Advance(key)
	if got := o.Next(key); got != Exhausted {
		t.Fatalf("exhausted key must stay exhausted, got %d", got)
	}
}

func TestKeysAreIndependent(t *testing.T) {
	o := NewOffsets(10)
	o.Advance("a")
	if got := o.Next("b"); got != 0 {
		t.Fatalf("expected fresh key untouched, got %d", got)
	}
	if o.Len() != 1 {
		t.Errorf("expected one stored key, got %d", o.Len())
	}
}

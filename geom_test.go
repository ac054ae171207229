package appf

import "testing"

func TestRectEmpty(t *testing.T) {
	cases := []struct {
		r    Rect
		want bool
	}{
		{Rect{}, true},
		{Rect{Width: 10}, true},
		{Rect{Height: 10}, true},
		{Rect{Width: -5, Height: 10}, true},
		{Rect{X: -100, Y: -100, Width: 1, Height: 1}, false},
		{Rect{Width: 640, Height: 480}, false},
	}
	for _, c := range cases {
		if got := c.r.Empty(); got != c.want {
			t.Errorf("(%+v).Empty() = %v, want %v", c.r, got, c.want)
		}
	}
}

func TestRectUnion(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rect{X: 30, Y: 5, Width: 10, Height: 20}
	want := Rect{X: 0, Y: 0, Width: 40, Height: 25}
	if got := a.Union(b); got != want {
		t.Fatalf("Union = %+v, want %+v", got, want)
	}
	if got := b.Union(a); got != want {
		t.Fatalf("Union is not commutative: %+v, want %+v", got, want)
	}
}

func TestRectUnionEmptyOperand(t *testing.T) {
	a := Rect{X: 5, Y: 40, Width: 5, Height: 5}
	if got := a.Union(Rect{}); got != a {
		t.Fatalf("Union with empty = %+v, want %+v", got, a)
	}
	if got := (Rect{}).Union(a); got != a {
		t.Fatalf("empty Union with rect = %+v, want %+v", got, a)
	}
}

package common

import "testing"

func TestRectIntersects(t *testing.T) {
	cases := []struct {
		name string
		a, b Rect
		want bool
	}{
		{
			name: "overlapping",
			a:    Rect{X: 0, Y: 0, Width: 10, Height: 10},
			b:    Rect{X: 5, Y: 5, Width: 10, Height: 10},
			want: true,
		},
		{
			name: "edge_touching_right",
			a:    Rect{X: 0, Y: 0, Width: 10, Height: 10},
			b:    Rect{X: 10, Y: 0, Width: 10, Height: 10},
			want: false,
		},
		{
			name: "edge_touching_bottom",
			a:    Rect{X: 0, Y: 0, Width: 10, Height: 10},
			b:    Rect{X: 0, Y: 10, Width: 10, Height: 10},
			want: false,
		},
		{
			name: "one_unit_overlap",
			a:    Rect{X: 0, Y: 0, Width: 10, Height: 10},
			b:    Rect{X: 9, Y: 0, Width: 10, Height: 10},
			want: true,
		},
		{
			name: "fully_contained",
			a:    Rect{X: 0, Y: 0, Width: 10, Height: 10},
			b:    Rect{X: 2, Y: 2, Width: 2, Height: 2},
			want: true,
		},
		{
			name: "disjoint",
			a:    Rect{X: 0, Y: 0, Width: 10, Height: 10},
			b:    Rect{X: 100, Y: 100, Width: 10, Height: 10},
			want: false,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.a.Intersects(&c.b); got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
			if got := c.b.Intersects(&c.a); got != c.want {
				t.Fatalf("expected symmetric %v, got %v", c.want, got)
			}
		})
	}
}

func TestRectIntersection(t *testing.T) {
	cases := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{
			name: "partial_overlap",
			a:    Rect{X: 0, Y: 0, Width: 10, Height: 10},
			b:    Rect{X: 5, Y: 2, Width: 10, Height: 10},
			want: Rect{X: 5, Y: 2, Width: 5, Height: 8},
		},
		{
			name: "no_overlap_clamps_to_zero",
			a:    Rect{X: 0, Y: 0, Width: 10, Height: 10},
			b:    Rect{X: 20, Y: 20, Width: 10, Height: 10},
			want: Rect{X: 20, Y: 20, Width: 0, Height: 0},
		},
		{
			name: "contained",
			a:    Rect{X: 0, Y: 0, Width: 10, Height: 10},
			b:    Rect{X: 3, Y: 3, Width: 2, Height: 2},
			want: Rect{X: 3, Y: 3, Width: 2, Height: 2},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.a.Intersection(&c.b)
			if got != c.want {
				t.Fatalf("expected %+v, got %+v", c.want, got)
			}
		})
	}
}

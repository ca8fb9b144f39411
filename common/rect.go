package common

// Vec2 is a 2D point or direction in world space.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned bounding box with its origin at the top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Intersects reports whether two rects overlap. Edge-touching rects do not
// count as intersecting.
func (r *Rect) Intersects(other *Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// Intersection returns the overlapping region of two rects. Width and height
// are clamped to zero when the rects do not overlap.
func (r *Rect) Intersection(other *Rect) Rect {
	x := r.X
	if other.X > x {
		x = other.X
	}
	y := r.Y
	if other.Y > y {
		y = other.Y
	}
	right := r.X + r.Width
	if or := other.X + other.Width; or < right {
		right = or
	}
	bottom := r.Y + r.Height
	if ob := other.Y + other.Height; ob < bottom {
		bottom = ob
	}
	w := right - x
	if w < 0 {
		w = 0
	}
	h := bottom - y
	if h < 0 {
		h = 0
	}
	return Rect{X: x, Y: y, Width: w, Height: h}
}

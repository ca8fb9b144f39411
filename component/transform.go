package component

// TransformType is the component tag for Transform.
const TransformType = "transform"

// Transform stores position, velocity, rotation, and scale in world space.
type Transform struct {
	X, Y     float64
	VX, VY   float64
	Rotation float64
	ScaleX   float64
	ScaleY   float64
}

// NewTransform creates a Transform at the given position with unit scale.
func NewTransform(x, y float64) *Transform {
	return &Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}
}

// Type returns the component tag.
func (t *Transform) Type() string {
	return TransformType
}

// Update integrates velocity. dt is in milliseconds.
func (t *Transform) Update(dt float64) {
	t.X += t.VX * dt / 1000.0
	t.Y += t.VY * dt / 1000.0
}

package entity

// Component is any attachable behavior. Type returns a stable tag used for
// lookup; an entity holds at most one component per tag.
type Component interface {
	Type() string
}

// Updater is implemented by components that need a per-frame tick. dt is the
// frame delta in milliseconds.
type Updater interface {
	Update(dt float64)
}

// Teardowner is implemented by components that need cleanup when removed from
// their entity or when the entity is destroyed.
type Teardowner interface {
	Teardown()
}

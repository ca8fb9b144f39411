package entity

import (
	"log"

	"github.com/google/uuid"
)

// Entity is an identity plus an owned set of components keyed by type tag.
// All game objects are composed from entities.
type Entity struct {
	ID string

	active     bool
	components map[string]Component
	order      []string
}

// New creates an active entity. If id is empty a fresh unique id is generated.
func New(id string) *Entity {
	if id == "" {
		id = uuid.NewString()
	}
	return &Entity{
		ID:         id,
		active:     true,
		components: make(map[string]Component),
	}
}

// Active reports whether the entity is live. Destroyed entities stay inactive
// for the rest of their lifetime.
func (e *Entity) Active() bool {
	return e != nil && e.active
}

// AddComponent attaches c. A second component with the same type tag is
// rejected and the original kept.
func (e *Entity) AddComponent(c Component) {
	if e == nil || c == nil {
		return
	}
	tag := c.Type()
	if _, ok := e.components[tag]; ok {
		log.Printf("entity: duplicate component %q on %s, keeping original", tag, e.ID)
		return
	}
	e.components[tag] = c
	e.order = append(e.order, tag)
}

// GetComponent returns the component stored under tag, or nil.
func (e *Entity) GetComponent(tag string) Component {
	if e == nil {
		return nil
	}
	return e.components[tag]
}

// HasComponent reports whether a component with the given tag is attached.
func (e *Entity) HasComponent(tag string) bool {
	if e == nil {
		return false
	}
	_, ok := e.components[tag]
	return ok
}

// RemoveComponent tears down and evicts the component under tag. It reports
// whether a component was removed.
func (e *Entity) RemoveComponent(tag string) bool {
	if e == nil {
		return false
	}
	c, ok := e.components[tag]
	if !ok {
		return false
	}
	if td, ok := c.(Teardowner); ok {
		td.Teardown()
	}
	delete(e.components, tag)
	for i, t := range e.order {
		if t == tag {
			e.order = append(e.order[:i], e.order[i+1:]...)
			break
		}
	}
	return true
}

// Update ticks every component that implements Updater, in the order the
// components were attached. dt is the frame delta in milliseconds. Inactive
// entities do not update. The order is snapshotted first, so a hook that
// removes components mid-tick cannot skip or double-tick its siblings;
// components removed mid-tick simply stop receiving updates.
func (e *Entity) Update(dt float64) {
	if e == nil || !e.active {
		return
	}
	order := append([]string(nil), e.order...)
	for _, tag := range order {
		c, ok := e.components[tag]
		if !ok {
			continue
		}
		if u, ok := c.(Updater); ok {
			u.Update(dt)
		}
	}
}

// Destroy deactivates the entity, tears down every component, and clears the
// component set. Calling it again is a no-op.
func (e *Entity) Destroy() {
	if e == nil || !e.active {
		return
	}
	e.active = false
	for _, tag := range e.order {
		if td, ok := e.components[tag].(Teardowner); ok {
			td.Teardown()
		}
	}
	e.components = make(map[string]Component)
	e.order = nil
}

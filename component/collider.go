package component

import "github.com/milk9111/skyraid/common"

// ColliderType is the component tag for Collider.
const ColliderType = "collider"

// CollisionEvent describes one side of a contact. It is built fresh for each
// callback invocation and not retained by the collision system.
type CollisionEvent struct {
	OtherID       string
	OtherCollider *Collider
	Intersection  common.Rect
}

// Collider is an axis-aligned bounding box offset from its owning entity's
// position. Layer says what the collider is, Mask says what it reacts to.
// Trigger colliders are non-blocking sensors that track enter/exit
// transitions; solid colliders report overlap through OnCollision and leave
// the response to the callback.
type Collider struct {
	Width   float64
	Height  float64
	OffsetX float64
	OffsetY float64
	Layer   uint32
	Mask    uint32

	OnCollision    func(evt CollisionEvent)
	OnTriggerEnter func(evt CollisionEvent)
	OnTriggerExit  func(evt CollisionEvent)

	trigger bool
	enabled bool

	// entity ids currently overlapping, meaningful only in trigger mode
	contacts map[string]struct{}
}

// NewCollider creates an enabled solid collider on layer 1 that reacts to
// every layer. Offset, layer, mask, and trigger mode are set afterwards.
func NewCollider(width, height float64) *Collider {
	return &Collider{
		Width:    width,
		Height:   height,
		Layer:    1,
		Mask:     MaskAll,
		enabled:  true,
		contacts: make(map[string]struct{}),
	}
}

// Type returns the component tag.
func (c *Collider) Type() string {
	return ColliderType
}

// WorldBounds returns the collider's box in world space, centered on the
// entity position plus the local offset. Recomputed every call so position
// changes are always reflected.
func (c *Collider) WorldBounds(entityX, entityY float64) common.Rect {
	return common.Rect{
		X:      entityX + c.OffsetX - c.Width/2,
		Y:      entityY + c.OffsetY - c.Height/2,
		Width:  c.Width,
		Height: c.Height,
	}
}

// CanCollideWith reports whether this collider's mask accepts the other
// layer. Authorization between two colliders is the OR of both directions;
// the collision system checks both sides.
func (c *Collider) CanCollideWith(otherLayer uint32) bool {
	return c.Mask&otherLayer != 0
}

// SetSize updates the local bounding box.
func (c *Collider) SetSize(width, height float64) {
	c.Width = width
	c.Height = height
}

// SetOffset updates the local offset from the entity position.
func (c *Collider) SetOffset(x, y float64) {
	c.OffsetX = x
	c.OffsetY = y
}

// SetLayer sets what the collider is.
func (c *Collider) SetLayer(layer uint32) {
	c.Layer = layer
}

// SetMask sets which layers the collider reacts to.
func (c *Collider) SetMask(mask uint32) {
	c.Mask = mask
}

// Enabled reports whether the collider participates in detection.
func (c *Collider) Enabled() bool {
	return c != nil && c.enabled
}

// SetEnabled toggles detection. Disabling clears the trigger-contact set so
// stale contacts never survive a mode change.
func (c *Collider) SetEnabled(enabled bool) {
	c.enabled = enabled
	if !enabled {
		c.ClearTriggerContacts()
	}
}

// IsTrigger reports whether the collider is in trigger mode.
func (c *Collider) IsTrigger() bool {
	return c != nil && c.trigger
}

// SetTrigger toggles trigger mode. Turning it off clears the trigger-contact
// set.
func (c *Collider) SetTrigger(trigger bool) {
	c.trigger = trigger
	if !trigger {
		c.ClearTriggerContacts()
	}
}

// AddTriggerContact records an overlapping entity.
func (c *Collider) AddTriggerContact(id string) {
	c.contacts[id] = struct{}{}
}

// RemoveTriggerContact drops an entity from the contact set.
func (c *Collider) RemoveTriggerContact(id string) {
	delete(c.contacts, id)
}

// HasTriggerContact reports whether an entity is in the contact set.
func (c *Collider) HasTriggerContact(id string) bool {
	_, ok := c.contacts[id]
	return ok
}

// ClearTriggerContacts empties the contact set.
func (c *Collider) ClearTriggerContacts() {
	for id := range c.contacts {
		delete(c.contacts, id)
	}
}

// TriggerContacts returns the ids currently in the contact set. Order is
// unspecified.
func (c *Collider) TriggerContacts() []string {
	ids := make([]string, 0, len(c.contacts))
	for id := range c.contacts {
		ids = append(ids, id)
	}
	return ids
}

// Clone returns an independent collider with the same configuration. The
// callbacks are shared references; the contact set starts empty.
func (c *Collider) Clone() *Collider {
	return &Collider{
		Width:          c.Width,
		Height:         c.Height,
		OffsetX:        c.OffsetX,
		OffsetY:        c.OffsetY,
		Layer:          c.Layer,
		Mask:           c.Mask,
		OnCollision:    c.OnCollision,
		OnTriggerEnter: c.OnTriggerEnter,
		OnTriggerExit:  c.OnTriggerExit,
		trigger:        c.trigger,
		enabled:        c.enabled,
		contacts:       make(map[string]struct{}),
	}
}

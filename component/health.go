package component

// HealthType is the component tag for Health.
const HealthType = "health"

// Health is a reusable health component for any entity that can take damage.
type Health struct {
	Max     float64
	Current float64
	Dead    bool

	// remaining invulnerability in milliseconds
	IFrameMs float64

	OnDamage func(h *Health, amount float64)
	OnDeath  func(h *Health)
}

// NewHealth creates a Health component with max/current initialized.
func NewHealth(max float64) *Health {
	if max <= 0 {
		max = 1
	}
	return &Health{Max: max, Current: max}
}

// Type returns the component tag.
func (h *Health) Type() string {
	return HealthType
}

// IsAlive reports whether the entity is alive.
func (h *Health) IsAlive() bool {
	return h != nil && !h.Dead && h.Current > 0
}

// ApplyDamage applies damage unless dead or invulnerable. Returns true if
// damage was applied.
func (h *Health) ApplyDamage(amount float64) bool {
	if h == nil || h.Dead || h.IFrameMs > 0 || amount <= 0 {
		return false
	}
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	if h.OnDamage != nil {
		h.OnDamage(h, amount)
	}
	if h.Current <= 0 {
		h.Dead = true
		if h.OnDeath != nil {
			h.OnDeath(h)
		}
	}
	return true
}

// Heal restores health up to Max.
func (h *Health) Heal(amount float64) {
	if h == nil || h.Dead || amount <= 0 {
		return
	}
	h.Current += amount
	if h.Current > h.Max {
		h.Current = h.Max
	}
}

// StartIFrames grants invulnerability for the given duration in milliseconds.
func (h *Health) StartIFrames(ms float64) {
	if h == nil || ms <= 0 {
		return
	}
	h.IFrameMs = ms
}

// Update ticks down the invulnerability timer.
func (h *Health) Update(dt float64) {
	if h.IFrameMs <= 0 {
		return
	}
	h.IFrameMs -= dt
	if h.IFrameMs < 0 {
		h.IFrameMs = 0
	}
}

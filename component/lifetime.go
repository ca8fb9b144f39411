package component

// LifetimeType is the component tag for Lifetime.
const LifetimeType = "lifetime"

// Lifetime ages out short-lived entities such as projectiles. The host loop
// checks Expired after updating and destroys the entity.
type Lifetime struct {
	AgeMs    float64
	MaxMs    float64
	OnExpire func()

	expired bool
}

// NewLifetime creates a Lifetime that expires after maxMs milliseconds.
func NewLifetime(maxMs float64) *Lifetime {
	return &Lifetime{MaxMs: maxMs}
}

// Type returns the component tag.
func (l *Lifetime) Type() string {
	return LifetimeType
}

// Expired reports whether the lifetime has run out.
func (l *Lifetime) Expired() bool {
	return l != nil && l.expired
}

// Update advances the age. OnExpire fires once when MaxMs is reached.
func (l *Lifetime) Update(dt float64) {
	if l.expired {
		return
	}
	l.AgeMs += dt
	if l.MaxMs > 0 && l.AgeMs >= l.MaxMs {
		l.expired = true
		if l.OnExpire != nil {
			l.OnExpire()
		}
	}
}

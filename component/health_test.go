package component

import "testing"

func TestHealthDamageAndDeath(t *testing.T) {
	h := NewHealth(3)

	var damaged []float64
	died := 0
	h.OnDamage = func(_ *Health, amount float64) { damaged = append(damaged, amount) }
	h.OnDeath = func(*Health) { died++ }

	if !h.ApplyDamage(1) {
		t.Fatalf("expected damage to apply")
	}
	if h.Current != 2 {
		t.Fatalf("expected 2 hp, got %v", h.Current)
	}

	h.StartIFrames(500)
	if h.ApplyDamage(1) {
		t.Fatalf("expected damage blocked during i-frames")
	}
	h.Update(500)
	if h.IFrameMs != 0 {
		t.Fatalf("expected i-frames expired, got %v", h.IFrameMs)
	}

	if !h.ApplyDamage(5) {
		t.Fatalf("expected lethal damage to apply")
	}
	if !h.Dead || h.Current != 0 {
		t.Fatalf("expected dead at 0 hp, got dead=%v hp=%v", h.Dead, h.Current)
	}
	if died != 1 {
		t.Fatalf("expected one death callback, got %d", died)
	}
	if len(damaged) != 2 {
		t.Fatalf("expected two damage callbacks, got %d", len(damaged))
	}

	if h.ApplyDamage(1) {
		t.Fatalf("expected no damage after death")
	}
}

func TestHealthHeal(t *testing.T) {
	h := NewHealth(3)
	h.ApplyDamage(2)
	h.Heal(5)
	if h.Current != 3 {
		t.Fatalf("expected heal clamped to max, got %v", h.Current)
	}
}

func TestLifetimeExpiry(t *testing.T) {
	l := NewLifetime(100)
	expired := 0
	l.OnExpire = func() { expired++ }

	l.Update(60)
	if l.Expired() {
		t.Fatalf("expected not expired at 60ms")
	}
	l.Update(60)
	if !l.Expired() {
		t.Fatalf("expected expired at 120ms")
	}
	l.Update(60)
	if expired != 1 {
		t.Fatalf("expected OnExpire once, got %d", expired)
	}
}

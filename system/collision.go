package system

import (
	"sort"

	"github.com/milk9111/skyraid/common"
	"github.com/milk9111/skyraid/component"
	"github.com/milk9111/skyraid/entity"
)

// CollisionSystem finds all colliding entity pairs each tick, classifies each
// pair as trigger or solid, dispatches callbacks, and diffs trigger contact
// sets across ticks to synthesize enter/exit events.
//
// The only state carried between ticks is the per-entity trigger contact set
// from the previous tick; everything else is recomputed from scratch. The
// system is single-threaded: one Update call runs detect, dispatch, and diff
// to completion, and callbacks fire synchronously in enumeration order so two
// runs over identically ordered entities produce identical event order.
type CollisionSystem struct {
	prevTriggerContacts map[string]map[string]struct{}
	debugRender         bool
}

// NewCollisionSystem creates a CollisionSystem with empty trigger memory.
func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{
		prevTriggerContacts: make(map[string]map[string]struct{}),
	}
}

// SetDebugRender toggles drawing of collider world bounds in Draw.
func (s *CollisionSystem) SetDebugRender(enabled bool) {
	s.debugRender = enabled
}

// ClearState drops all cross-tick trigger memory. Call on scene transitions
// so stale contacts cannot produce exit events in the new scene.
func (s *CollisionSystem) ClearState() {
	s.prevTriggerContacts = make(map[string]map[string]struct{})
}

type collisionEntry struct {
	ent *entity.Entity
	tr  *component.Transform
	col *component.Collider
}

type collisionPair struct {
	a, b         collisionEntry
	intersection common.Rect
}

// Update runs one collision tick over the given entities. dt is the frame
// delta in milliseconds; detection itself is positional and does not consume
// it, but the signature matches the rest of the per-tick surface.
func (s *CollisionSystem) Update(entities []*entity.Entity, dt float64) {
	if s == nil {
		return
	}

	entries := s.collect(entities)

	// Trigger contact sets are rebuilt in full every tick.
	for _, e := range entries {
		if e.col.IsTrigger() {
			e.col.ClearTriggerContacts()
		}
	}

	// The pair list is snapshotted before any callback runs, so a callback
	// that mutates components mid-tick cannot disturb enumeration.
	pairs := s.findPairs(entries)

	for _, p := range pairs {
		s.dispatchPair(p)
	}

	s.diffTriggerContacts(entries)
}

// collect filters to entities exposing both a transform and a collider.
func (s *CollisionSystem) collect(entities []*entity.Entity) []collisionEntry {
	entries := make([]collisionEntry, 0, len(entities))
	for _, ent := range entities {
		if ent == nil || !ent.Active() {
			continue
		}
		tr, ok := ent.GetComponent(component.TransformType).(*component.Transform)
		if !ok || tr == nil {
			continue
		}
		col, ok := ent.GetComponent(component.ColliderType).(*component.Collider)
		if !ok || col == nil {
			continue
		}
		entries = append(entries, collisionEntry{ent: ent, tr: tr, col: col})
	}
	return entries
}

// findPairs enumerates every unordered pair and keeps the overlapping ones.
// Brute-force i < j over the filtered list; detection stays deterministic
// because enumeration order follows the caller's entity order.
func (s *CollisionSystem) findPairs(entries []collisionEntry) []collisionPair {
	var pairs []collisionPair
	for i := 0; i < len(entries); i++ {
		a := entries[i]
		if !a.col.Enabled() {
			continue
		}
		for j := i + 1; j < len(entries); j++ {
			b := entries[j]
			if !b.col.Enabled() {
				continue
			}
			// Either side's mask opting in authorizes the pair.
			if !a.col.CanCollideWith(b.col.Layer) && !b.col.CanCollideWith(a.col.Layer) {
				continue
			}
			ab := a.col.WorldBounds(a.tr.X, a.tr.Y)
			bb := b.col.WorldBounds(b.tr.X, b.tr.Y)
			if !ab.Intersects(&bb) {
				continue
			}
			pairs = append(pairs, collisionPair{a: a, b: b, intersection: ab.Intersection(&bb)})
		}
	}
	return pairs
}

// dispatchPair classifies a pair and invokes callbacks. In a trigger pair
// only trigger colliders accumulate contacts and receive OnCollision; the
// solid partner gets nothing. In a solid pair both sides' OnCollision fire.
func (s *CollisionSystem) dispatchPair(p collisionPair) {
	aTrigger := p.a.col.IsTrigger()
	bTrigger := p.b.col.IsTrigger()

	if aTrigger || bTrigger {
		if aTrigger {
			p.a.col.AddTriggerContact(p.b.ent.ID)
			if p.a.col.OnCollision != nil {
				p.a.col.OnCollision(component.CollisionEvent{
					OtherID:       p.b.ent.ID,
					OtherCollider: p.b.col,
					Intersection:  p.intersection,
				})
			}
		}
		if bTrigger {
			p.b.col.AddTriggerContact(p.a.ent.ID)
			if p.b.col.OnCollision != nil {
				p.b.col.OnCollision(component.CollisionEvent{
					OtherID:       p.a.ent.ID,
					OtherCollider: p.a.col,
					Intersection:  p.intersection,
				})
			}
		}
		return
	}

	if p.a.col.OnCollision != nil {
		p.a.col.OnCollision(component.CollisionEvent{
			OtherID:       p.b.ent.ID,
			OtherCollider: p.b.col,
			Intersection:  p.intersection,
		})
	}
	if p.b.col.OnCollision != nil {
		p.b.col.OnCollision(component.CollisionEvent{
			OtherID:       p.a.ent.ID,
			OtherCollider: p.a.col,
			Intersection:  p.intersection,
		})
	}
}

// diffTriggerContacts compares every trigger collider's rebuilt contact set
// against the previous tick and fires enter/exit callbacks. Ids are sorted
// before dispatch so event order never depends on map iteration. Enter/exit
// events carry a zero-size intersection since the overlap may already be gone
// at exit time.
func (s *CollisionSystem) diffTriggerContacts(entries []collisionEntry) {
	byID := make(map[string]*component.Collider, len(entries))
	for _, e := range entries {
		byID[e.ent.ID] = e.col
	}

	for _, e := range entries {
		if !e.col.IsTrigger() {
			continue
		}
		prev := s.prevTriggerContacts[e.ent.ID]
		current := make(map[string]struct{})
		for _, id := range e.col.TriggerContacts() {
			current[id] = struct{}{}
		}

		if e.col.OnTriggerEnter != nil {
			for _, id := range sortedIDs(current) {
				if _, was := prev[id]; !was {
					e.col.OnTriggerEnter(component.CollisionEvent{OtherID: id, OtherCollider: byID[id]})
				}
			}
		}
		if e.col.OnTriggerExit != nil {
			for _, id := range sortedIDs(prev) {
				if _, still := current[id]; !still {
					// the other collider may already be gone at exit time
					e.col.OnTriggerExit(component.CollisionEvent{OtherID: id, OtherCollider: byID[id]})
				}
			}
		}

		s.prevTriggerContacts[e.ent.ID] = current
	}
}

func sortedIDs(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

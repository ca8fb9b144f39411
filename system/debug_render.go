package system

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/skyraid/entity"
)

var (
	debugSolidColor   = color.RGBA{R: 0, G: 255, B: 0, A: 200}
	debugTriggerColor = color.RGBA{R: 0, G: 200, B: 255, A: 200}
)

// Draw strokes every enabled collider's world bounds onto screen, solid
// colliders in green and triggers in cyan. No-op unless debug rendering was
// enabled through SetDebugRender. Purely a presentation aid; detection does
// not depend on it.
func (s *CollisionSystem) Draw(screen *ebiten.Image, entities []*entity.Entity) {
	if s == nil || !s.debugRender || screen == nil {
		return
	}
	for _, e := range s.collect(entities) {
		if !e.col.Enabled() {
			continue
		}
		b := e.col.WorldBounds(e.tr.X, e.tr.Y)
		clr := debugSolidColor
		if e.col.IsTrigger() {
			clr = debugTriggerColor
		}
		vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), 1.0, clr, false)
	}
}

package main

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/quasilyte/gdata/v2"

	"github.com/milk9111/skyraid/component"
	"github.com/milk9111/skyraid/entity"
	"github.com/milk9111/skyraid/prefabs"
	"github.com/milk9111/skyraid/system"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	tickMs = 1000.0 / 60.0

	saveObject = "save"
	bestProp   = "best_score"
)

var prefabNames = []string{"player", "enemy", "obstacle", "powerup", "projectile"}

type Game struct {
	entities []*entity.Entity
	byID     map[string]*entity.Entity

	collisions *system.CollisionSystem
	specs      map[string]prefabs.EntityBuildSpec
	watcher    *prefabs.Watcher
	saves      *gdata.Manager

	player *entity.Entity

	score int
	best  int
	over  bool
	debug bool

	enemyTimerMs    float64
	obstacleTimerMs float64
	powerupTimerMs  float64
	fireCooldownMs  float64
	scoreTimerMs    float64

	rng *rand.Rand
}

func NewGame(debug bool) *Game {
	g := &Game{
		byID:       make(map[string]*entity.Entity),
		collisions: system.NewCollisionSystem(),
		specs:      make(map[string]prefabs.EntityBuildSpec),
		debug:      debug,
		rng:        rand.New(rand.NewSource(1)),
	}
	g.collisions.SetDebugRender(debug)

	g.loadSpecs()

	if m, err := gdata.Open(gdata.Config{AppName: "skyraid"}); err != nil {
		log.Printf("game: save data unavailable: %v", err)
	} else {
		g.saves = m
		g.best = g.loadBestScore()
	}

	if debug {
		w, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			log.Printf("game: prefab watcher unavailable: %v", err)
		} else {
			g.watcher = w
		}
	}

	g.reset()
	return g
}

func (g *Game) loadSpecs() {
	for _, name := range prefabNames {
		spec, err := prefabs.LoadEntityBuildSpec(name + ".yaml")
		if err != nil {
			log.Printf("game: load prefab %s: %v", name, err)
			continue
		}
		g.specs[name] = spec
	}
}

// reset rebuilds the play field. Cross-tick trigger memory is cleared so a
// new run never sees exit events from the previous one.
func (g *Game) reset() {
	g.entities = nil
	g.byID = make(map[string]*entity.Entity)
	g.collisions.ClearState()
	g.score = 0
	g.over = false
	g.enemyTimerMs = 0
	g.obstacleTimerMs = 0
	g.powerupTimerMs = 0
	g.fireCooldownMs = 0
	g.scoreTimerMs = 0

	player, err := g.spawn("player")
	if err != nil {
		log.Printf("game: spawn player: %v", err)
		return
	}
	g.player = player

	col, _ := player.GetComponent(component.ColliderType).(*component.Collider)
	health, _ := player.GetComponent(component.HealthType).(*component.Health)
	if col == nil || health == nil {
		return
	}
	health.OnDeath = func(*component.Health) {
		g.gameOver()
	}
	col.OnCollision = func(evt component.CollisionEvent) {
		if evt.OtherCollider == nil {
			return
		}
		if evt.OtherCollider.Layer&(component.LayerEnemy|component.LayerObstacle) == 0 {
			return
		}
		if health.ApplyDamage(1) {
			health.StartIFrames(1200)
		}
	}
}

// spawn builds an entity from its prefab spec, registers it, and hooks up the
// gameplay callbacks for its kind.
func (g *Game) spawn(name string) (*entity.Entity, error) {
	spec, ok := g.specs[name]
	if !ok {
		return nil, fmt.Errorf("game: no prefab %q", name)
	}
	e, err := prefabs.BuildEntity("", spec)
	if err != nil {
		return nil, err
	}
	g.entities = append(g.entities, e)
	g.byID[e.ID] = e

	col, _ := e.GetComponent(component.ColliderType).(*component.Collider)
	switch name {
	case "powerup":
		if col != nil {
			col.OnTriggerEnter = func(evt component.CollisionEvent) {
				if ph, ok := g.player.GetComponent(component.HealthType).(*component.Health); ok {
					ph.Heal(1)
				}
				g.score += 50
				e.Destroy()
			}
		}
	case "projectile":
		if col != nil {
			col.OnCollision = func(evt component.CollisionEvent) {
				g.damageOther(evt.OtherID, 1)
				e.Destroy()
			}
		}
	}
	return e, nil
}

func (g *Game) damageOther(id string, amount float64) {
	other, ok := g.byID[id]
	if !ok {
		return
	}
	h, ok := other.GetComponent(component.HealthType).(*component.Health)
	if !ok {
		return
	}
	if h.ApplyDamage(amount) && h.Dead {
		g.score += 100
		other.Destroy()
	}
}

func (g *Game) gameOver() {
	g.over = true
	if g.score > g.best {
		g.best = g.score
		g.saveBestScore(g.best)
	}
}

func (g *Game) Update() error {
	g.pollWatcher()

	if g.over {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.reset()
		}
		return nil
	}

	g.readInput()

	for _, e := range g.entities {
		e.Update(tickMs)
	}
	g.collisions.Update(g.entities, tickMs)

	g.cull()
	g.runSpawners()

	g.scoreTimerMs += tickMs
	for g.scoreTimerMs >= 1000 {
		g.scoreTimerMs -= 1000
		g.score++
	}
	return nil
}

func (g *Game) readInput() {
	tr, _ := g.player.GetComponent(component.TransformType).(*component.Transform)
	if tr == nil {
		return
	}
	tr.VX = 0
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		tr.VX = -320
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		tr.VX = 320
	}
	if tr.X < 14 {
		tr.X = 14
	}
	if tr.X > baseWidth-14 {
		tr.X = baseWidth - 14
	}

	if g.fireCooldownMs > 0 {
		g.fireCooldownMs -= tickMs
	}
	if ebiten.IsKeyPressed(ebiten.KeySpace) && g.fireCooldownMs <= 0 {
		g.fireCooldownMs = 180
		if p, err := g.spawn("projectile"); err == nil {
			if ptr, ok := p.GetComponent(component.TransformType).(*component.Transform); ok {
				ptr.X = tr.X
				ptr.Y = tr.Y - 20
			}
		}
	}
}

// cull drops destroyed, expired, and off-screen entities.
func (g *Game) cull() {
	kept := g.entities[:0]
	for _, e := range g.entities {
		if !e.Active() {
			delete(g.byID, e.ID)
			continue
		}
		if lt, ok := e.GetComponent(component.LifetimeType).(*component.Lifetime); ok && lt.Expired() {
			e.Destroy()
			delete(g.byID, e.ID)
			continue
		}
		if tr, ok := e.GetComponent(component.TransformType).(*component.Transform); ok && e != g.player {
			if tr.Y > baseHeight+64 || tr.Y < -128 {
				e.Destroy()
				delete(g.byID, e.ID)
				continue
			}
		}
		kept = append(kept, e)
	}
	g.entities = kept
}

func (g *Game) runSpawners() {
	g.enemyTimerMs += tickMs
	if g.enemyTimerMs >= 1400 {
		g.enemyTimerMs = 0
		g.spawnFalling("enemy")
	}
	g.obstacleTimerMs += tickMs
	if g.obstacleTimerMs >= 2300 {
		g.obstacleTimerMs = 0
		g.spawnFalling("obstacle")
	}
	g.powerupTimerMs += tickMs
	if g.powerupTimerMs >= 9000 {
		g.powerupTimerMs = 0
		g.spawnFalling("powerup")
	}
}

func (g *Game) spawnFalling(name string) {
	e, err := g.spawn(name)
	if err != nil {
		log.Printf("game: spawn %s: %v", name, err)
		return
	}
	if tr, ok := e.GetComponent(component.TransformType).(*component.Transform); ok {
		tr.X = 40 + g.rng.Float64()*(baseWidth-80)
	}
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case ev, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			switch ev.Kind {
			case prefabs.ReloadScript:
				log.Printf("game: script changed: %s, new spawns pick it up", ev.Path)
			default:
				log.Printf("game: prefab changed: %s, reloading specs", ev.Path)
			}
			g.loadSpecs()
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("game: prefab watcher error: %v", err)
		default:
			return
		}
	}
}

func (g *Game) loadBestScore() int {
	data, err := g.saves.LoadObjectProp(saveObject, bestProp)
	if err != nil || len(data) == 0 {
		return 0
	}
	best, err := strconv.Atoi(string(data))
	if err != nil {
		return 0
	}
	return best
}

func (g *Game) saveBestScore(best int) {
	if g.saves == nil {
		return
	}
	if err := g.saves.SaveObjectProp(saveObject, bestProp, []byte(strconv.Itoa(best))); err != nil {
		log.Printf("game: save best score: %v", err)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 12, G: 12, B: 24, A: 255})

	for _, e := range g.entities {
		tr, ok := e.GetComponent(component.TransformType).(*component.Transform)
		if !ok {
			continue
		}
		col, ok := e.GetComponent(component.ColliderType).(*component.Collider)
		if !ok {
			continue
		}
		b := col.WorldBounds(tr.X, tr.Y)
		vector.FillRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), layerColor(col.Layer), false)
	}

	g.collisions.Draw(screen, g.entities)

	hp := 0.0
	if h, ok := g.player.GetComponent(component.HealthType).(*component.Health); ok {
		hp = h.Current
	}
	msg := fmt.Sprintf("Score: %d    Best: %d    HP: %.0f    FPS: %.1f", g.score, g.best, hp, ebiten.ActualFPS())
	if g.over {
		msg += "    GAME OVER - press R"
	}
	ebitenutil.DebugPrint(screen, msg)
}

func layerColor(layer uint32) color.RGBA {
	switch layer {
	case component.LayerPlayer:
		return color.RGBA{R: 80, G: 220, B: 120, A: 255}
	case component.LayerEnemy:
		return color.RGBA{R: 230, G: 70, B: 70, A: 255}
	case component.LayerObstacle:
		return color.RGBA{R: 150, G: 120, B: 90, A: 255}
	case component.LayerProjectile:
		return color.RGBA{R: 240, G: 240, B: 120, A: 255}
	case component.LayerPowerup:
		return color.RGBA{R: 120, G: 160, B: 255, A: 255}
	}
	return color.RGBA{R: 200, G: 200, B: 200, A: 255}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}

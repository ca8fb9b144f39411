package prefabs

import (
	"testing"

	"github.com/milk9111/skyraid/component"
)

func specFromYAML(t *testing.T, name string) EntityBuildSpec {
	t.Helper()
	spec, err := LoadEntityBuildSpec(name)
	if err != nil {
		t.Fatalf("load %s failed: %v", name, err)
	}
	return spec
}

func TestLoadEmbeddedSpecs(t *testing.T) {
	cases := []struct {
		file string
		name string
	}{
		{"player.yaml", "player"},
		{"enemy.yaml", "enemy"},
		{"obstacle.yaml", "obstacle"},
		{"powerup.yaml", "powerup"},
		{"projectile.yaml", "projectile"},
	}

	for _, c := range cases {
		t.Run(c.file, func(t *testing.T) {
			spec := specFromYAML(t, c.file)
			if spec.Name != c.name {
				t.Fatalf("expected name %q, got %q", c.name, spec.Name)
			}
			if len(spec.Components) == 0 {
				t.Fatalf("expected components in %s", c.file)
			}
		})
	}
}

func TestBuildPlayerEntity(t *testing.T) {
	spec := specFromYAML(t, "player.yaml")
	e, err := BuildEntity("p1", spec)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	if e.ID != "p1" {
		t.Fatalf("expected id p1, got %s", e.ID)
	}

	tr, ok := e.GetComponent(component.TransformType).(*component.Transform)
	if !ok {
		t.Fatalf("expected transform component")
	}
	if tr.X != 640 || tr.Y != 620 {
		t.Fatalf("expected position (640, 620), got (%v, %v)", tr.X, tr.Y)
	}

	col, ok := e.GetComponent(component.ColliderType).(*component.Collider)
	if !ok {
		t.Fatalf("expected collider component")
	}
	if col.Width != 28 || col.Height != 28 {
		t.Fatalf("expected 28x28 collider, got %vx%v", col.Width, col.Height)
	}
	if col.Layer != component.LayerPlayer {
		t.Fatalf("expected player layer, got %d", col.Layer)
	}
	wantMask := component.LayerEnemy | component.LayerObstacle | component.LayerPowerup
	if col.Mask != wantMask {
		t.Fatalf("expected mask %#x, got %#x", wantMask, col.Mask)
	}
	if col.IsTrigger() {
		t.Fatalf("expected player collider solid")
	}

	if _, ok := e.GetComponent(component.HealthType).(*component.Health); !ok {
		t.Fatalf("expected health component")
	}
}

func TestBuildPowerupIsTrigger(t *testing.T) {
	spec := specFromYAML(t, "powerup.yaml")
	e, err := BuildEntity("", spec)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	col, ok := e.GetComponent(component.ColliderType).(*component.Collider)
	if !ok {
		t.Fatalf("expected collider component")
	}
	if !col.IsTrigger() {
		t.Fatalf("expected powerup collider to be a trigger")
	}
}

func TestBuildEnemyHasScript(t *testing.T) {
	spec := specFromYAML(t, "enemy.yaml")
	e, err := BuildEntity("", spec)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if !e.HasComponent(component.ScriptType) {
		t.Fatalf("expected script component on enemy")
	}
}

func TestBuildRejectsUnknown(t *testing.T) {
	t.Run("unknown_component", func(t *testing.T) {
		spec := EntityBuildSpec{
			Name:       "bad",
			Components: map[string]any{"antigravity": map[string]any{}},
		}
		if _, err := BuildEntity("", spec); err == nil {
			t.Fatalf("expected error for unknown component")
		}
	})

	t.Run("unknown_layer", func(t *testing.T) {
		spec := EntityBuildSpec{
			Name: "bad",
			Components: map[string]any{
				"collider": map[string]any{"width": 10, "height": 10, "layer": "ghost"},
			},
		}
		if _, err := BuildEntity("", spec); err == nil {
			t.Fatalf("expected error for unknown layer")
		}
	})
}

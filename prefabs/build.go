package prefabs

import (
	"fmt"

	"github.com/milk9111/skyraid/component"
	"github.com/milk9111/skyraid/entity"
)

type componentBuildFn func(e *entity.Entity, raw any) error

var componentRegistry = map[string]componentBuildFn{
	"transform": addTransform,
	"collider":  addCollider,
	"health":    addHealth,
	"lifetime":  addLifetime,
	"script":    addScript,
}

// componentBuildOrder keeps attachment deterministic; script needs the
// transform to exist first.
var componentBuildOrder = []string{
	"transform",
	"collider",
	"health",
	"lifetime",
	"script",
}

// BuildEntity creates an entity from a prefab spec. An empty id generates a
// fresh one.
func BuildEntity(id string, spec EntityBuildSpec) (*entity.Entity, error) {
	e := entity.New(id)
	for _, name := range componentBuildOrder {
		raw, ok := spec.Components[name]
		if !ok {
			continue
		}
		build, ok := componentRegistry[name]
		if !ok {
			return nil, fmt.Errorf("prefabs: %s: unknown component %q", spec.Name, name)
		}
		if err := build(e, raw); err != nil {
			return nil, fmt.Errorf("prefabs: %s: build %s: %w", spec.Name, name, err)
		}
	}
	for name := range spec.Components {
		if _, ok := componentRegistry[name]; !ok {
			return nil, fmt.Errorf("prefabs: %s: unknown component %q", spec.Name, name)
		}
	}
	return e, nil
}

func addTransform(e *entity.Entity, raw any) error {
	spec, err := DecodeComponentSpec[TransformComponentSpec](raw)
	if err != nil {
		return err
	}
	tr := component.NewTransform(spec.X, spec.Y)
	tr.VX = spec.VX
	tr.VY = spec.VY
	tr.Rotation = spec.Rotation
	if spec.ScaleX != 0 {
		tr.ScaleX = spec.ScaleX
	}
	if spec.ScaleY != 0 {
		tr.ScaleY = spec.ScaleY
	}
	e.AddComponent(tr)
	return nil
}

func addCollider(e *entity.Entity, raw any) error {
	spec, err := DecodeComponentSpec[ColliderComponentSpec](raw)
	if err != nil {
		return err
	}
	col := component.NewCollider(spec.Width, spec.Height)
	col.SetOffset(spec.OffsetX, spec.OffsetY)
	if spec.Layer != "" {
		layer, ok := component.LayerByName(spec.Layer)
		if !ok {
			return fmt.Errorf("unknown layer %q", spec.Layer)
		}
		col.SetLayer(layer)
	}
	if len(spec.Mask) > 0 {
		var mask uint32
		for _, name := range spec.Mask {
			bit, ok := component.LayerByName(name)
			if !ok {
				return fmt.Errorf("unknown mask layer %q", name)
			}
			mask |= bit
		}
		col.SetMask(mask)
	}
	col.SetTrigger(spec.Trigger)
	e.AddComponent(col)
	return nil
}

func addHealth(e *entity.Entity, raw any) error {
	spec, err := DecodeComponentSpec[HealthComponentSpec](raw)
	if err != nil {
		return err
	}
	e.AddComponent(component.NewHealth(spec.Max))
	return nil
}

func addLifetime(e *entity.Entity, raw any) error {
	spec, err := DecodeComponentSpec[LifetimeComponentSpec](raw)
	if err != nil {
		return err
	}
	e.AddComponent(component.NewLifetime(spec.MaxMs))
	return nil
}

func addScript(e *entity.Entity, raw any) error {
	spec, err := DecodeComponentSpec[ScriptComponentSpec](raw)
	if err != nil {
		return err
	}
	tr, _ := e.GetComponent(component.TransformType).(*component.Transform)
	if tr == nil {
		return fmt.Errorf("script %q requires a transform", spec.File)
	}
	src, err := LoadScript(spec.File)
	if err != nil {
		return fmt.Errorf("load script %q: %w", spec.File, err)
	}
	script, err := component.NewScript(spec.File, string(src), tr)
	if err != nil {
		return err
	}
	e.AddComponent(script)
	return nil
}

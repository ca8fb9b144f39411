package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// EntityBuildSpec is the top-level shape of a prefab yaml file: a name plus a
// map of component name to that component's raw config.
type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

// LoadEntityBuildSpec loads and parses a prefab file.
func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	var spec EntityBuildSpec
	data, err := Load(filename)
	if err != nil {
		return spec, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return spec, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

// DecodeComponentSpec re-marshals a raw component config into its typed spec.
func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type TransformComponentSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	VX       float64 `yaml:"vx"`
	VY       float64 `yaml:"vy"`
	Rotation float64 `yaml:"rotation"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
}

type ColliderComponentSpec struct {
	Width   float64  `yaml:"width"`
	Height  float64  `yaml:"height"`
	OffsetX float64  `yaml:"offset_x"`
	OffsetY float64  `yaml:"offset_y"`
	Layer   string   `yaml:"layer"`
	Mask    []string `yaml:"mask"`
	Trigger bool     `yaml:"trigger"`
}

type HealthComponentSpec struct {
	Max float64 `yaml:"max"`
}

type LifetimeComponentSpec struct {
	MaxMs float64 `yaml:"max_ms"`
}

type ScriptComponentSpec struct {
	File string `yaml:"file"`
}

package component

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// ScriptType is the component tag for Script.
const ScriptType = "script"

// Script runs a tengo program each frame to drive an entity's movement. The
// script sees the globals x, y, vx, vy, dt, and age (milliseconds) and may
// reassign x/y/vx/vy; the new values are written back to the transform.
type Script struct {
	Name string

	compiled  *tengo.Compiled
	transform *Transform
	ageMs     float64
	failed    bool
}

// NewScript compiles src and binds it to the given transform.
func NewScript(name, src string, tr *Transform) (*Script, error) {
	if tr == nil {
		return nil, fmt.Errorf("component: script %s: nil transform", name)
	}
	s := tengo.NewScript([]byte(src))
	s.SetImports(stdlib.GetModuleMap("math", "rand"))
	for _, g := range []string{"x", "y", "vx", "vy"} {
		if err := s.Add(g, 0.0); err != nil {
			return nil, fmt.Errorf("component: script %s: add %s: %w", name, g, err)
		}
	}
	if err := s.Add("dt", 0.0); err != nil {
		return nil, fmt.Errorf("component: script %s: add dt: %w", name, err)
	}
	if err := s.Add("age", 0.0); err != nil {
		return nil, fmt.Errorf("component: script %s: add age: %w", name, err)
	}
	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("component: script %s: compile: %w", name, err)
	}
	return &Script{Name: name, compiled: compiled, transform: tr}, nil
}

// Type returns the component tag.
func (s *Script) Type() string {
	return ScriptType
}

// Update runs the script for one frame. A script that errors is disabled and
// logged once rather than spamming every tick.
func (s *Script) Update(dt float64) {
	if s.compiled == nil || s.failed {
		return
	}
	s.ageMs += dt
	tr := s.transform
	_ = s.compiled.Set("x", tr.X)
	_ = s.compiled.Set("y", tr.Y)
	_ = s.compiled.Set("vx", tr.VX)
	_ = s.compiled.Set("vy", tr.VY)
	_ = s.compiled.Set("dt", dt)
	_ = s.compiled.Set("age", s.ageMs)
	if err := s.compiled.Run(); err != nil {
		log.Printf("component: script %s run error, disabling: %v", s.Name, err)
		s.failed = true
		return
	}
	tr.X = s.compiled.Get("x").Float()
	tr.Y = s.compiled.Get("y").Float()
	tr.VX = s.compiled.Get("vx").Float()
	tr.VY = s.compiled.Get("vy").Float()
}

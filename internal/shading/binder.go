// Package shading manages the optional GLSL program of a shape.
//
// A Binder owns three toggles ("GLSL shading", "Phong model", "Toon
// shading"). The program is compiled lazily the first time any toggle is
// on. A compile or link failure is logged once and parks the binder in
// Failed for the rest of its life, after which every operation leaves
// the fixed-function pipeline in charge.
package shading

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/shapeview/internal/engine/gfx"
	"github.com/Faultbox/shapeview/internal/logger"
	"github.com/Faultbox/shapeview/internal/params"
)

// Toggle names as they appear among a shape's options.
const (
	OptionGLSL  = "GLSL shading"
	OptionPhong = "Phong model"
	OptionToon  = "Toon shading"
)

// Uniform names understood by the illumination program.
const (
	UniformFragment = "useFragShader"
	UniformPhong    = "phongModel"
	UniformToon     = "toonShading"
)

// State is the lifecycle of the binder's program.
type State int

const (
	Uninitialized State = iota
	Ready
	Failed
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// UniformBinder writes program uniforms beyond the built-in mode flags.
// It runs every frame the program is active.
type UniformBinder interface {
	BindUniforms(s gfx.Surface, program uint32)
}

// Binder switches a shape between the fixed pipeline and the GLSL program.
type Binder struct {
	GLSL  *params.Bool
	Phong *params.Bool
	Toon  *params.Bool

	// Sources default to the embedded illumination shaders.
	VertexSrc   string
	FragmentSrc string

	custom  UniformBinder
	log     *zap.Logger
	state   State
	err     error
	program uint32

	fragmentLoc int32
	phongLoc    int32
	toonLoc     int32
}

// NewBinder creates a binder with all toggles off. custom may be nil.
func NewBinder(custom UniformBinder) *Binder {
	return &Binder{
		GLSL:        params.NewBool(OptionGLSL, false),
		Phong:       params.NewBool(OptionPhong, false),
		Toon:        params.NewBool(OptionToon, false),
		VertexSrc:   VertexShader,
		FragmentSrc: FragmentShader,
		custom:      custom,
		log:         logger.Named("shading"),
		fragmentLoc: -1,
		phongLoc:    -1,
		toonLoc:     -1,
	}
}

// Register adds the three toggles to set, after whatever it already holds.
func (b *Binder) Register(set *params.Set) {
	set.AddOption(b.GLSL)
	set.AddOption(b.Phong)
	set.AddOption(b.Toon)
}

// IsEnabled reports whether any shading toggle is on.
func (b *Binder) IsEnabled() bool {
	return b.GLSL.Value || b.Phong.Value || b.Toon.Value
}

// State returns the program lifecycle state.
func (b *Binder) State() State {
	return b.state
}

// Err returns the compile or link error that moved the binder to Failed.
func (b *Binder) Err() error {
	return b.err
}

// Program returns the GL program name, zero unless Ready.
func (b *Binder) Program() uint32 {
	return b.program
}

// Initialize compiles and links the program and caches its uniform
// locations. It only acts in Uninitialized; a failure is permanent.
func (b *Binder) Initialize(s gfx.Surface) error {
	switch b.state {
	case Ready:
		return nil
	case Failed:
		return b.err
	}

	program, err := s.CompileProgram(b.VertexSrc, b.FragmentSrc)
	if err != nil {
		b.state = Failed
		b.err = fmt.Errorf("shading program: %w", err)
		b.log.Warn("GLSL unavailable, using fixed pipeline", zap.Error(err))
		return b.err
	}

	b.program = program
	b.fragmentLoc = s.UniformLocation(program, UniformFragment)
	b.phongLoc = s.UniformLocation(program, UniformPhong)
	b.toonLoc = s.UniformLocation(program, UniformToon)
	if b.fragmentLoc < 0 {
		b.log.Debug("uniform not active", zap.String("name", UniformFragment))
	}
	b.state = Ready
	b.log.Debug("program ready", zap.Uint32("program", program))
	return nil
}

// Setup runs once per frame before any geometry is drawn. It initializes
// on first use, then activates the program when it is ready and wanted,
// and deactivates it whenever shading is off. A program that never became
// ready is left alone.
func (b *Binder) Setup(s gfx.Surface) {
	enabled := b.IsEnabled()
	if enabled && b.state == Uninitialized {
		_ = b.Initialize(s)
	}

	if (b.state == Ready && enabled) || !enabled {
		b.activate(s, enabled)
	}
}

func (b *Binder) activate(s gfx.Surface, on bool) {
	if !on {
		s.UseProgram(0)
		return
	}

	s.UseProgram(b.program)
	s.Uniform1i(b.fragmentLoc, 0)
	s.Uniform1i(b.phongLoc, boolInt(b.Phong.Value))
	s.Uniform1i(b.toonLoc, boolInt(b.Toon.Value))
	if b.custom != nil {
		b.custom.BindUniforms(s, b.program)
	}
}

// EnableFragmentStage turns per-fragment lighting on for the next pass.
func (b *Binder) EnableFragmentStage(s gfx.Surface) {
	if b.active() {
		s.Uniform1i(b.fragmentLoc, 1)
	}
}

// DisableFragmentStage returns to pass-through color output.
func (b *Binder) DisableFragmentStage(s gfx.Surface) {
	if b.active() {
		s.Uniform1i(b.fragmentLoc, 0)
	}
}

func (b *Binder) active() bool {
	return b.state == Ready && b.IsEnabled()
}

func boolInt(v bool) int32 {
	if v {
		return 1
	}
	return 0
}

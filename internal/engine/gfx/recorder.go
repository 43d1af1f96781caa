package gfx

import (
	"fmt"
	"maps"
	"slices"

	"github.com/Faultbox/shapeview/pkg/math"
)

// State is a snapshot of the fixed-pipeline state a Recorder tracks.
type State struct {
	Enabled       map[Capability]bool
	FrontMode     PolygonMode
	BackMode      PolygonMode
	Cull          Face
	ColorMask     [4]bool
	LineWidth     float32
	Color         [3]float64
	PolygonOffset [2]float32
	Program       uint32
	Depth         int // matrix stack depth, 1 when balanced

	Lights        map[LightParam]RGBA
	Materials     map[MaterialParam]RGBA
	Shininess     float32
	GlobalAmbient RGBA
	LocalViewer   bool
}

// Batch is one Begin/End block as the recorder saw it.
type Batch struct {
	Primitive Primitive
	Vertices  []math.Vec3 // as submitted
	Eye       []math.Vec3 // transformed by the current matrix
	Normals   []math.Vec3 // current normal at each vertex
	State     State
}

// Recorder is a Surface that draws nothing. It logs every state change,
// tracks the matrix stack and captures submitted geometry so tests can
// inspect a frame.
type Recorder struct {
	// CompileErr, when set, makes every CompileProgram call fail.
	CompileErr error
	// MissingUniforms lists uniform names UniformLocation reports as inactive.
	MissingUniforms []string

	Calls    []string
	Batches  []Batch
	Compiles int

	state    State
	stack    []math.Mat4
	normal   math.Vec3
	current  *Batch
	programs uint32
	uniforms map[int32]string
	values   map[string]float64
}

// NewRecorder returns a recorder in the default GL state.
func NewRecorder() *Recorder {
	return &Recorder{
		state: State{
			Enabled:   make(map[Capability]bool),
			FrontMode: ModeFill,
			BackMode:  ModeFill,
			Cull:      FaceBack,
			ColorMask: [4]bool{true, true, true, true},
			LineWidth: 1,
			Color:     [3]float64{1, 1, 1},
			Lights:    make(map[LightParam]RGBA),
			Materials: make(map[MaterialParam]RGBA),
		},
		stack:    []math.Mat4{math.Identity()},
		normal:   math.Vec3{Z: 1},
		uniforms: make(map[int32]string),
		values:   make(map[string]float64),
	}
}

// State returns a copy of the current state.
func (r *Recorder) State() State {
	s := r.state
	s.Enabled = maps.Clone(r.state.Enabled)
	s.Lights = maps.Clone(r.state.Lights)
	s.Materials = maps.Clone(r.state.Materials)
	s.Depth = len(r.stack)
	return s
}

// Matrix returns the matrix on top of the stack.
func (r *Recorder) Matrix() math.Mat4 {
	return r.stack[len(r.stack)-1]
}

// Uniform returns the last value written to the named uniform.
func (r *Recorder) Uniform(name string) (float64, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Index returns the position of the first call equal to c, or -1.
func (r *Recorder) Index(c string) int {
	return slices.Index(r.Calls, c)
}

// Count returns how many recorded calls equal c.
func (r *Recorder) Count(c string) int {
	n := 0
	for _, call := range r.Calls {
		if call == c {
			n++
		}
	}
	return n
}

// ClearLog drops recorded calls and batches but keeps the state.
func (r *Recorder) ClearLog() {
	r.Calls = r.Calls[:0]
	r.Batches = r.Batches[:0]
}

func (r *Recorder) record(format string, args ...any) {
	r.Calls = append(r.Calls, fmt.Sprintf(format, args...))
}

func (r *Recorder) Enable(c Capability) {
	r.state.Enabled[c] = true
	r.record("Enable(%s)", c)
}

func (r *Recorder) Disable(c Capability) {
	r.state.Enabled[c] = false
	r.record("Disable(%s)", c)
}

func (r *Recorder) Light(light int, p LightParam, v RGBA) {
	if light == 0 {
		r.state.Lights[p] = v
	}
	r.record("Light(%d, %d, %v)", light, p, v)
}

func (r *Recorder) LightModelAmbient(v RGBA) {
	r.state.GlobalAmbient = v
	r.record("LightModelAmbient(%v)", v)
}

func (r *Recorder) LightModelLocalViewer(local bool) {
	r.state.LocalViewer = local
	r.record("LightModelLocalViewer(%t)", local)
}

func (r *Recorder) Material(face Face, p MaterialParam, v RGBA) {
	r.state.Materials[p] = v
	r.record("Material(%s, %d, %v)", face, p, v)
}

func (r *Recorder) Shininess(face Face, s float32) {
	r.state.Shininess = s
	r.record("Shininess(%s, %g)", face, s)
}

func (r *Recorder) PushMatrix() {
	r.stack = append(r.stack, r.Matrix())
	r.record("PushMatrix")
}

// PopMatrix panics on underflow, as the GL stack would raise an error.
func (r *Recorder) PopMatrix() {
	if len(r.stack) == 1 {
		panic("gfx: matrix stack underflow")
	}
	r.stack = r.stack[:len(r.stack)-1]
	r.record("PopMatrix")
}

func (r *Recorder) multiply(m math.Mat4) {
	top := len(r.stack) - 1
	r.stack[top] = r.stack[top].Mul(m)
}

func (r *Recorder) Translate(x, y, z float64) {
	r.multiply(math.Translate(x, y, z))
	r.record("Translate(%g, %g, %g)", x, y, z)
}

func (r *Recorder) Rotate(angleDeg, x, y, z float64) {
	r.multiply(math.RotateAxis(math.V3(x, y, z), math.Radians(angleDeg)))
	r.record("Rotate(%g, %g, %g, %g)", angleDeg, x, y, z)
}

func (r *Recorder) Scale(x, y, z float64) {
	r.multiply(math.Scale(x, y, z))
	r.record("Scale(%g, %g, %g)", x, y, z)
}

func (r *Recorder) PolygonMode(face Face, mode PolygonMode) {
	if face != FaceBack {
		r.state.FrontMode = mode
	}
	if face != FaceFront {
		r.state.BackMode = mode
	}
	r.record("PolygonMode(%s, %s)", face, mode)
}

func (r *Recorder) PolygonOffset(factor, units float32) {
	r.state.PolygonOffset = [2]float32{factor, units}
	r.record("PolygonOffset(%g, %g)", factor, units)
}

func (r *Recorder) CullFace(face Face) {
	r.state.Cull = face
	r.record("CullFace(%s)", face)
}

func (r *Recorder) ColorMask(red, green, blue, alpha bool) {
	r.state.ColorMask = [4]bool{red, green, blue, alpha}
	r.record("ColorMask(%t, %t, %t, %t)", red, green, blue, alpha)
}

func (r *Recorder) LineWidth(w float32) {
	r.state.LineWidth = w
	r.record("LineWidth(%g)", w)
}

func (r *Recorder) Color(red, green, blue float64) {
	r.state.Color = [3]float64{red, green, blue}
	r.record("Color(%g, %g, %g)", red, green, blue)
}

// Begin panics when called inside another Begin/End block.
func (r *Recorder) Begin(p Primitive) {
	if r.current != nil {
		panic("gfx: Begin inside Begin/End")
	}
	r.current = &Batch{Primitive: p, State: r.State()}
}

func (r *Recorder) Normal(n math.Vec3) {
	r.normal = n
}

func (r *Recorder) Vertex(p math.Vec3) {
	if r.current == nil {
		panic("gfx: Vertex outside Begin/End")
	}
	r.current.Vertices = append(r.current.Vertices, p)
	r.current.Eye = append(r.current.Eye, r.Matrix().TransformPoint(p))
	r.current.Normals = append(r.current.Normals, r.normal)
}

// End panics without a matching Begin.
func (r *Recorder) End() {
	if r.current == nil {
		panic("gfx: End without Begin")
	}
	r.Batches = append(r.Batches, *r.current)
	r.current = nil
}

func (r *Recorder) CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	r.Compiles++
	r.record("CompileProgram")
	if r.CompileErr != nil {
		return 0, r.CompileErr
	}
	r.programs++
	return r.programs, nil
}

func (r *Recorder) UseProgram(program uint32) {
	r.state.Program = program
	r.record("UseProgram(%d)", program)
}

func (r *Recorder) UniformLocation(program uint32, name string) int32 {
	if slices.Contains(r.MissingUniforms, name) {
		return -1
	}
	for loc, n := range r.uniforms {
		if n == name {
			return loc
		}
	}
	loc := int32(len(r.uniforms))
	r.uniforms[loc] = name
	return loc
}

func (r *Recorder) uniformName(location int32) string {
	if name, ok := r.uniforms[location]; ok {
		return name
	}
	return fmt.Sprint(location)
}

// Uniform1i writes to location; -1 is silently ignored like in GL.
func (r *Recorder) Uniform1i(location int32, v int32) {
	name := r.uniformName(location)
	if location >= 0 {
		r.values[name] = float64(v)
	}
	r.record("Uniform1i(%s, %d)", name, v)
}

// Uniform1f writes to location; -1 is silently ignored like in GL.
func (r *Recorder) Uniform1f(location int32, v float32) {
	name := r.uniformName(location)
	if location >= 0 {
		r.values[name] = float64(v)
	}
	r.record("Uniform1f(%s, %g)", name, v)
}

var _ Surface = (*Recorder)(nil)
var _ Surface = (*GL)(nil)

package gfx

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/shapeview/pkg/math"
)

func TestRecorderTracksMatrixStack(t *testing.T) {
	r := NewRecorder()

	r.PushMatrix()
	r.Translate(1, 2, 3)
	r.Rotate(90, 0, 0, 1)
	assert.Equal(t, 2, r.State().Depth)

	got := r.Matrix().TransformPoint(math.V3(1, 0, 0))
	assert.True(t, got.ApproxEqual(math.V3(1, 3, 3), 1e-12), "got %v", got)

	r.PopMatrix()
	assert.Equal(t, math.Identity(), r.Matrix())
	assert.Panics(t, r.PopMatrix)
}

func TestRecorderCapturesBatches(t *testing.T) {
	r := NewRecorder()
	r.Scale(2, 2, 2)
	r.Color(0, 0, 1)

	r.Begin(PrimLineStrip)
	r.Normal(math.V3(0, 1, 0))
	r.Vertex(math.V3(1, 0, 0))
	r.Vertex(math.V3(0, 1, 0))
	r.End()

	require.Len(t, r.Batches, 1)
	b := r.Batches[0]
	assert.Equal(t, PrimLineStrip, b.Primitive)
	assert.Equal(t, []math.Vec3{{X: 1}, {Y: 1}}, b.Vertices)
	assert.Equal(t, []math.Vec3{{X: 2}, {Y: 2}}, b.Eye)
	assert.Equal(t, [3]float64{0, 0, 1}, b.State.Color)
}

func TestRecorderRejectsUnbalancedBlocks(t *testing.T) {
	r := NewRecorder()
	assert.Panics(t, r.End)
	assert.Panics(t, func() { r.Vertex(math.Vec3{}) })

	r.Begin(PrimPolygon)
	assert.Panics(t, func() { r.Begin(PrimPolygon) })
}

func TestRecorderPolygonMode(t *testing.T) {
	r := NewRecorder()

	r.PolygonMode(FaceBack, ModeLine)
	s := r.State()
	assert.Equal(t, ModeFill, s.FrontMode)
	assert.Equal(t, ModeLine, s.BackMode)

	r.PolygonMode(FaceFrontAndBack, ModePoint)
	s = r.State()
	assert.Equal(t, ModePoint, s.FrontMode)
	assert.Equal(t, ModePoint, s.BackMode)
}

func TestRecorderPrograms(t *testing.T) {
	r := NewRecorder()

	p, err := r.CompileProgram("v", "f")
	require.NoError(t, err)
	assert.NotZero(t, p)

	loc := r.UniformLocation(p, "useFragShader")
	assert.Equal(t, loc, r.UniformLocation(p, "useFragShader"))
	r.Uniform1i(loc, 1)
	v, ok := r.Uniform("useFragShader")
	require.True(t, ok)
	assert.Equal(t, 1.0, v)

	r.MissingUniforms = []string{"gone"}
	assert.Equal(t, int32(-1), r.UniformLocation(p, "gone"))
	r.Uniform1i(-1, 7)
	_, ok = r.Uniform("gone")
	assert.False(t, ok)

	r.CompileErr = errors.New("link: boom")
	_, err = r.CompileProgram("v", "f")
	assert.Error(t, err)
	assert.Equal(t, 2, r.Compiles)
}

func TestStateIsACopy(t *testing.T) {
	r := NewRecorder()
	s := r.State()
	r.Enable(Lighting)

	assert.False(t, s.Enabled[Lighting])
	assert.True(t, r.State().Enabled[Lighting])
	assert.Equal(t, 1, r.Count("Enable(Lighting)"))
	assert.Equal(t, 0, r.Index("Enable(Lighting)"))
}

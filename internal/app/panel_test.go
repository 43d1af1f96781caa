package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/shapeview/internal/params"
)

type fakeControls struct {
	set *params.Set
}

func (f fakeControls) Params() []*params.Float { return f.set.Params() }
func (f fakeControls) Options() []*params.Bool { return f.set.Options() }
func (f fakeControls) Reset()                  { f.set.Reset() }

func newFakeControls() (fakeControls, *params.Float, *params.Bool) {
	set := params.NewSet()
	angle := set.AddParameter(params.NewFloat("Angle", 0, -90, 90, 5))
	set.AddParameter(params.NewFloat("Size", 1, 0, 2, 0.5))
	wire := set.AddOption(params.NewBool("Wire", false))
	return fakeControls{set: set}, angle, wire
}

func TestPanelWrapsAround(t *testing.T) {
	c, _, _ := newFakeControls()
	p := NewPanel()
	p.Bind(c)
	require.Equal(t, 3, p.Len())

	p.Prev()
	assert.Equal(t, 2, p.Cursor())
	p.Next()
	assert.Equal(t, 0, p.Cursor())
	p.Next()
	p.Next()
	p.Next()
	assert.Equal(t, 0, p.Cursor())
}

func TestPanelSelectedOrder(t *testing.T) {
	c, angle, wire := newFakeControls()
	p := NewPanel()
	p.Bind(c)

	f, b := p.Selected()
	assert.Same(t, angle, f)
	assert.Nil(t, b)

	p.Prev()
	f, b = p.Selected()
	assert.Nil(t, f)
	assert.Same(t, wire, b)
}

func TestPanelNudgeClampsParameters(t *testing.T) {
	c, angle, _ := newFakeControls()
	p := NewPanel()
	p.Bind(c)

	p.Nudge(2)
	assert.InDelta(t, 10, angle.Value, 1e-9)
	p.Nudge(100)
	assert.InDelta(t, 90, angle.Value, 1e-9)
	p.Nudge(-1000)
	assert.InDelta(t, -90, angle.Value, 1e-9)
}

func TestPanelOptions(t *testing.T) {
	c, angle, wire := newFakeControls()
	p := NewPanel()
	p.Bind(c)

	p.Toggle()
	assert.Zero(t, angle.Value, "toggle leaves parameters alone")

	p.Prev()
	p.Toggle()
	assert.True(t, wire.Value)
	p.Nudge(-1)
	assert.False(t, wire.Value)
	p.Nudge(1)
	assert.True(t, wire.Value)
}

func TestPanelReset(t *testing.T) {
	c, angle, wire := newFakeControls()
	p := NewPanel()
	p.Bind(c)

	angle.Set(45)
	wire.Set(true)
	p.Reset()
	assert.Zero(t, angle.Value)
	assert.False(t, wire.Value)
}

func TestPanelBindKeepsCursorWhenItFits(t *testing.T) {
	c, _, _ := newFakeControls()
	p := NewPanel()
	p.Bind(c)
	p.Next()
	p.Next()

	p.Bind(c)
	assert.Equal(t, 2, p.Cursor())

	small := params.NewSet()
	small.AddParameter(params.NewFloat("Only", 0, 0, 1, 0.1))
	p.Bind(fakeControls{set: small})
	assert.Equal(t, 0, p.Cursor())
}

func TestPanelLabel(t *testing.T) {
	c, angle, _ := newFakeControls()
	p := NewPanel()
	assert.Equal(t, "no controls", p.Label())

	p.Bind(c)
	angle.Set(45)
	assert.Equal(t, "1/3 Angle = 45 [-90, 90]", p.Label())

	p.Prev()
	assert.Equal(t, "3/3 Wire: off", p.Label())
}

func TestPanelEmpty(t *testing.T) {
	p := NewPanel()
	p.Bind(fakeControls{set: params.NewSet()})

	p.Next()
	p.Nudge(1)
	p.Toggle()
	assert.Equal(t, 0, p.Cursor())
	assert.Equal(t, "no controls", p.Label())
}

package app

import (
	"fmt"

	"github.com/Faultbox/shapeview/internal/params"
)

// Controls is what a Panel edits. *shape.Shape satisfies it.
type Controls interface {
	Params() []*params.Float
	Options() []*params.Bool
	Reset()
}

// Panel is a keyboard widget over the ordered controls of one shape:
// parameters first, then options, each in registration order.
type Panel struct {
	controls Controls
	params   []*params.Float
	options  []*params.Bool
	cursor   int
}

// NewPanel creates an unbound panel.
func NewPanel() *Panel {
	return &Panel{}
}

// Bind attaches the panel to c. The cursor is kept when it still fits so
// switching between shapes stays on the same row.
func (p *Panel) Bind(c Controls) {
	p.controls = c
	p.params = c.Params()
	p.options = c.Options()
	if p.cursor >= p.Len() {
		p.cursor = 0
	}
}

// Len returns the number of rows.
func (p *Panel) Len() int {
	return len(p.params) + len(p.options)
}

// Cursor returns the selected row.
func (p *Panel) Cursor() int {
	return p.cursor
}

// Next selects the following row, wrapping at the end.
func (p *Panel) Next() {
	p.move(1)
}

// Prev selects the previous row, wrapping at the start.
func (p *Panel) Prev() {
	p.move(-1)
}

func (p *Panel) move(d int) {
	n := p.Len()
	if n == 0 {
		return
	}
	p.cursor = ((p.cursor+d)%n + n) % n
}

// Selected returns the control under the cursor. Exactly one of the
// results is non-nil on a bound, non-empty panel.
func (p *Panel) Selected() (*params.Float, *params.Bool) {
	if p.cursor < len(p.params) {
		return p.params[p.cursor], nil
	}
	if i := p.cursor - len(p.params); i < len(p.options) {
		return nil, p.options[i]
	}
	return nil, nil
}

// Nudge moves the selected parameter by steps. On an option, a positive
// step switches it on and a negative one off.
func (p *Panel) Nudge(steps float64) {
	f, b := p.Selected()
	switch {
	case f != nil:
		f.Nudge(steps)
	case b != nil && steps != 0:
		b.Set(steps > 0)
	}
}

// Toggle flips the selected option. Parameters are left alone.
func (p *Panel) Toggle() {
	if _, b := p.Selected(); b != nil {
		b.Toggle()
	}
}

// Reset restores every control of the bound shape.
func (p *Panel) Reset() {
	if p.controls != nil {
		p.controls.Reset()
	}
}

// Label describes the selected row, e.g. "3/21 Rx = 45 [-180, 180]".
func (p *Panel) Label() string {
	f, b := p.Selected()
	var row string
	switch {
	case f != nil:
		row = f.String()
	case b != nil:
		row = b.String()
	default:
		return "no controls"
	}
	return fmt.Sprintf("%d/%d %s", p.cursor+1, p.Len(), row)
}

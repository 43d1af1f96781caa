// Package params provides named, bounded, resettable controls that UI
// widgets bind to.
package params

import (
	"errors"
	"fmt"
	gomath "math"
)

// ErrUnknown is returned when a preset names a control that is not registered.
var ErrUnknown = errors.New("unknown control")

// Float is a continuous control.
//
// Value is not clamped on assignment: keeping it within [Min, Max] is the
// caller's responsibility. Widgets should use Nudge, which does clamp.
type Float struct {
	Name    string
	Value   float64
	Default float64
	Min     float64
	Max     float64
	Step    float64 // granularity hint for widgets
}

// NewFloat creates a continuous control whose value starts at def.
func NewFloat(name string, def, min, max, step float64) *Float {
	return &Float{
		Name:    name,
		Value:   def,
		Default: def,
		Min:     min,
		Max:     max,
		Step:    step,
	}
}

// Set assigns v without bounds checking.
func (p *Float) Set(v float64) {
	p.Value = v
}

// Nudge moves the value by steps*Step and clamps the result to [Min, Max].
func (p *Float) Nudge(steps float64) {
	p.Value = gomath.Min(p.Max, gomath.Max(p.Min, p.Value+steps*p.Step))
}

// Reset restores the default value.
func (p *Float) Reset() {
	p.Value = p.Default
}

// InRange reports whether the current value lies within [Min, Max].
func (p *Float) InRange() bool {
	return p.Value >= p.Min && p.Value <= p.Max
}

func (p *Float) String() string {
	return fmt.Sprintf("%s = %.3g [%g, %g]", p.Name, p.Value, p.Min, p.Max)
}

// Bool is an on/off display option.
type Bool struct {
	Name    string
	Value   bool
	Default bool
}

// NewBool creates an option whose value starts at def.
func NewBool(name string, def bool) *Bool {
	return &Bool{Name: name, Value: def, Default: def}
}

// Set assigns v.
func (o *Bool) Set(v bool) {
	o.Value = v
}

// Toggle flips the value.
func (o *Bool) Toggle() {
	o.Value = !o.Value
}

// Reset restores the default value.
func (o *Bool) Reset() {
	o.Value = o.Default
}

func (o *Bool) String() string {
	state := "off"
	if o.Value {
		state = "on"
	}
	return fmt.Sprintf("%s: %s", o.Name, state)
}

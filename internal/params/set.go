package params

import (
	"fmt"
	"sort"
)

// Preset holds named values for a subset of the controls in a Set.
type Preset struct {
	Params  map[string]float64 `yaml:"params,omitempty" toml:"params,omitempty"`
	Options map[string]bool    `yaml:"options,omitempty" toml:"options,omitempty"`
}

// Set keeps the controls of one shape in registration order.
type Set struct {
	params  []*Float
	options []*Bool
}

// NewSet creates an empty set.
func NewSet() *Set {
	return &Set{}
}

// AddParameter registers a continuous control and returns it.
func (s *Set) AddParameter(p *Float) *Float {
	s.params = append(s.params, p)
	return p
}

// AddOption registers an option and returns it.
func (s *Set) AddOption(o *Bool) *Bool {
	s.options = append(s.options, o)
	return o
}

// Params returns the continuous controls in registration order.
// The slice is a copy; the controls themselves are shared.
func (s *Set) Params() []*Float {
	return append([]*Float(nil), s.params...)
}

// Options returns the options in registration order.
// The slice is a copy; the options themselves are shared.
func (s *Set) Options() []*Bool {
	return append([]*Bool(nil), s.options...)
}

// Reset restores every control to its default, parameters first, each
// group in registration order.
func (s *Set) Reset() {
	for _, p := range s.params {
		p.Reset()
	}
	for _, o := range s.options {
		o.Reset()
	}
}

// Param returns the first continuous control with the given name.
func (s *Set) Param(name string) (*Float, bool) {
	for _, p := range s.params {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// Option returns the first option with the given name.
func (s *Set) Option(name string) (*Bool, bool) {
	for _, o := range s.options {
		if o.Name == name {
			return o, true
		}
	}
	return nil, false
}

// Apply assigns the preset's values. Every name is checked before anything
// is assigned, so an error leaves the set untouched.
func (s *Set) Apply(pr Preset) error {
	var unknown []string
	for name := range pr.Params {
		if _, ok := s.Param(name); !ok {
			unknown = append(unknown, name)
		}
	}
	for name := range pr.Options {
		if _, ok := s.Option(name); !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("%w: %v", ErrUnknown, unknown)
	}

	for name, v := range pr.Params {
		p, _ := s.Param(name)
		p.Set(v)
	}
	for name, v := range pr.Options {
		o, _ := s.Option(name)
		o.Set(v)
	}
	return nil
}

// Preset captures the current value of every control.
func (s *Set) Preset() Preset {
	pr := Preset{
		Params:  make(map[string]float64, len(s.params)),
		Options: make(map[string]bool, len(s.options)),
	}
	for _, p := range s.params {
		pr.Params[p.Name] = p.Value
	}
	for _, o := range s.options {
		pr.Options[o.Name] = o.Value
	}
	return pr
}

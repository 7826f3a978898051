package core

import (
	"errors"
	"fmt"

	"github.com/automoto/engine2d/shared/sim"
	"gopkg.in/yaml.v3"
)

// ErrEmptyScript is returned for scripts with no steps.
var ErrEmptyScript = errors.New("script has no steps")

// Script is a sequence of held-key segments fed to the world one step at
// a time.
//
//	segments:
//	  - steps: 30
//	    keys: [right]
//	  - steps: 12
//	    keys: [right, up]
type Script struct {
	Segments []Segment `yaml:"segments"`

	inputs []sim.Input
}

// Segment holds Keys for Steps consecutive steps.
type Segment struct {
	Steps int      `yaml:"steps"`
	Keys  []string `yaml:"keys"`
}

// ParseScript decodes and expands a YAML input script.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if err := s.expand(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Hold returns a script that holds keys for n steps.
func Hold(n int, keys ...string) (*Script, error) {
	s := &Script{Segments: []Segment{{Steps: n, Keys: keys}}}
	if err := s.expand(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Script) expand() error {
	s.inputs = s.inputs[:0]
	for i, seg := range s.Segments {
		if seg.Steps < 0 {
			return fmt.Errorf("segment %d: negative step count %d", i, seg.Steps)
		}
		var in sim.Input
		for _, k := range seg.Keys {
			switch k {
			case "left":
				in.Left = true
			case "right":
				in.Right = true
			case "up", "jump":
				in.Up = true
			case "down":
				in.Down = true
			default:
				return fmt.Errorf("segment %d: unknown key %q", i, k)
			}
		}
		for n := 0; n < seg.Steps; n++ {
			s.inputs = append(s.inputs, in)
		}
	}
	if len(s.inputs) == 0 {
		return ErrEmptyScript
	}
	return nil
}

// Len is the number of steps the script covers.
func (s *Script) Len() int {
	return len(s.inputs)
}

// Input returns the keys held during step i. Past the end nothing is held.
func (s *Script) Input(i int) sim.Input {
	if i < 0 || i >= len(s.inputs) {
		return sim.Input{}
	}
	return s.inputs[i]
}

package motion

import (
	"fmt"
	"strings"
)

// Policy selects how the camera behaves when a step would leave its bounds.
type Policy int

const (
	// PolicySoft eases the camera toward the crossed bound, decelerating as it approaches.
	PolicySoft Policy = iota
	// PolicyHard rejects any step that would land outside the bounds; the camera stalls.
	PolicyHard
)

func (p Policy) String() string {
	switch p {
	case PolicySoft:
		return "soft"
	case PolicyHard:
		return "hard"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy maps "soft"/"hard" (case-insensitive) to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "soft", "eased":
		return PolicySoft, nil
	case "hard", "clamp":
		return PolicyHard, nil
	}
	return PolicySoft, fmt.Errorf("unknown clamp policy %q", s)
}

// State is the camera's position along its travel axis.
// Axis is only written by Step (and Snap when restoring a saved position).
type State struct {
	Axis    float64
	Target  float64
	Damping float64 // fraction of the remaining distance covered per frame, (0,1]
	Min     float64
	Max     float64

	velocity float64
}

// NewState places the camera at axis with the target at rest on it.
func NewState(axis, damping, min, max float64) *State {
	return &State{
		Axis:    axis,
		Target:  axis,
		Damping: damping,
		Min:     min,
		Max:     max,
	}
}

// AxisPosition reports the current camera axis value.
func (s *State) AxisPosition() float64 {
	return s.Axis
}

// Velocity is the axis delta applied by the last Step.
func (s *State) Velocity() float64 {
	return s.velocity
}

// Step advances the camera one frame toward Target.
func (s *State) Step(policy Policy) {
	prev := s.Axis
	candidate := s.Axis + (s.Target-s.Axis)*s.Damping

	switch policy {
	case PolicyHard:
		if candidate >= s.Min && candidate <= s.Max {
			s.Axis = candidate
		}
	default:
		if candidate < s.Min {
			s.Axis += (s.Min - s.Axis) * s.Damping
		} else if candidate > s.Max {
			s.Axis += (s.Max - s.Axis) * s.Damping
		} else {
			s.Axis = candidate
		}
	}

	s.velocity = s.Axis - prev
}

// Snap moves the camera and its target to axis, clamped to the bounds.
func (s *State) Snap(axis float64) {
	if axis < s.Min {
		axis = s.Min
	}
	if axis > s.Max {
		axis = s.Max
	}
	s.Axis = axis
	s.Target = axis
	s.velocity = 0
}

// Resting reports whether the camera has effectively reached its target.
func (s *State) Resting(epsilon float64) bool {
	d := s.Target - s.Axis
	return d < epsilon && d > -epsilon
}

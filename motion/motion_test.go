package motion

import (
	"math"
	"testing"
)

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    Policy
		wantErr bool
	}{
		{in: "soft", want: PolicySoft},
		{in: "HARD", want: PolicyHard},
		{in: " eased ", want: PolicySoft},
		{in: "clamp", want: PolicyHard},
		{in: "bouncy", want: PolicySoft, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePolicy(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Expected error=%v, got %v", tt.wantErr, err)
			}
			if got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestStepConvergesMonotonically(t *testing.T) {
	for _, policy := range []Policy{PolicySoft, PolicyHard} {
		t.Run(policy.String(), func(t *testing.T) {
			s := NewState(0, 0.1, -17, 68)
			s.Target = 10

			prevDist := math.Abs(s.Target - s.Axis)
			for i := 0; i < 200; i++ {
				s.Step(policy)
				dist := math.Abs(s.Target - s.Axis)
				if dist > prevDist {
					t.Fatalf("Frame %d: distance grew from %f to %f", i, prevDist, dist)
				}
				if s.Axis > s.Target {
					t.Fatalf("Frame %d: overshot target, axis %f", i, s.Axis)
				}
				prevDist = dist
			}
			if !s.Resting(1e-6) {
				t.Errorf("Expected camera to rest at %f, got %f", s.Target, s.Axis)
			}
		})
	}
}

func TestSoftClampStaysInsideBounds(t *testing.T) {
	s := NewState(60, 0.1, -17, 68)
	s.Target = 1000

	for i := 0; i < 500; i++ {
		s.Step(PolicySoft)
		if s.Axis > s.Max+1e-9 {
			t.Fatalf("Frame %d: axis %f exceeded max %f", i, s.Axis, s.Max)
		}
	}
	if math.Abs(s.Axis-s.Max) > 1e-6 {
		t.Errorf("Expected axis to settle at %f, got %f", s.Max, s.Axis)
	}

	s.Target = -1000
	for i := 0; i < 500; i++ {
		s.Step(PolicySoft)
		if s.Axis < s.Min-1e-9 {
			t.Fatalf("Frame %d: axis %f below min %f", i, s.Axis, s.Min)
		}
	}
	if math.Abs(s.Axis-s.Min) > 1e-6 {
		t.Errorf("Expected axis to settle at %f, got %f", s.Min, s.Axis)
	}
}

func TestSoftClampDecelerates(t *testing.T) {
	s := NewState(60, 0.1, -17, 68)
	s.Target = 1000

	s.Step(PolicySoft)
	first := s.Velocity()
	s.Step(PolicySoft)
	second := s.Velocity()

	if first <= 0 || second <= 0 {
		t.Fatalf("Expected forward motion, got %f then %f", first, second)
	}
	if second >= first {
		t.Errorf("Expected approach to slow down, got %f then %f", first, second)
	}
}

func TestHardClampStalls(t *testing.T) {
	s := NewState(67, 0.1, -17, 68)
	s.Target = 100

	for i := 0; i < 10; i++ {
		s.Step(PolicyHard)
	}
	if s.Axis != 67 {
		t.Errorf("Expected camera to stall at 67, got %f", s.Axis)
	}
	if s.Velocity() != 0 {
		t.Errorf("Expected zero velocity while stalled, got %f", s.Velocity())
	}
}

func TestPoliciesDifferNearBoundary(t *testing.T) {
	soft := NewState(67, 0.1, -17, 68)
	hard := NewState(67, 0.1, -17, 68)
	soft.Target, hard.Target = 100, 100

	soft.Step(PolicySoft)
	hard.Step(PolicyHard)

	if soft.Axis == hard.Axis {
		t.Errorf("Expected policies to diverge, both at %f", soft.Axis)
	}
	if math.Abs(soft.Axis-67.1) > 1e-9 {
		t.Errorf("Expected soft step to 67.1, got %f", soft.Axis)
	}
}

func TestSnapClampsAndRests(t *testing.T) {
	s := NewState(0, 0.1, -17, 68)
	s.Target = 30
	s.Step(PolicySoft)

	s.Snap(90)
	if s.Axis != 68 || s.Target != 68 {
		t.Errorf("Expected axis and target at 68, got %f/%f", s.Axis, s.Target)
	}
	if s.Velocity() != 0 {
		t.Errorf("Expected snap to clear velocity, got %f", s.Velocity())
	}
}

func TestWheelAndDrag(t *testing.T) {
	s := NewState(0, 0.1, -17, 68)
	c := NewController(s, DefaultScales)

	c.Wheel(100)
	if math.Abs(s.Target-1) > 1e-9 {
		t.Errorf("Expected wheel to move target to 1, got %f", s.Target)
	}

	c.Drag(50)
	if math.Abs(s.Target-1) > 1e-9 {
		t.Errorf("Expected drag without press to be ignored, got %f", s.Target)
	}

	c.Press()
	c.Drag(50)
	if math.Abs(s.Target-0.5) > 1e-9 {
		t.Errorf("Expected inverted drag to pull target to 0.5, got %f", s.Target)
	}

	c.Release()
	c.Drag(50)
	if math.Abs(s.Target-0.5) > 1e-9 {
		t.Errorf("Expected drag after release to be ignored, got %f", s.Target)
	}
	if s.Axis != 0 {
		t.Errorf("Expected input to leave axis untouched, got %f", s.Axis)
	}
}

func TestExtremeInputIsAccepted(t *testing.T) {
	s := NewState(0, 0.1, -17, 68)
	c := NewController(s, DefaultScales)

	c.Wheel(1e9)
	if s.Target != 1e7 {
		t.Errorf("Expected unvalidated target 1e7, got %f", s.Target)
	}
	s.Step(PolicySoft)
	if s.Axis > s.Max {
		t.Errorf("Expected step to respect max, got %f", s.Axis)
	}
}

func TestTouchSwipe(t *testing.T) {
	s := NewState(0, 0.1, -17, 68)
	c := NewController(s, Scales{Touch: 0.025})

	if d := c.TouchMove(200); d != 0 {
		t.Errorf("Expected move without touch start to be ignored, got %f", d)
	}

	c.TouchStart()
	if d := c.TouchMove(200); d != 0 {
		t.Errorf("Expected first move to produce no delta, got %f", d)
	}
	if s.Target != 0 {
		t.Errorf("Expected target unchanged after first move, got %f", s.Target)
	}

	d := c.TouchMove(160)
	if math.Abs(d-1) > 1e-9 {
		t.Errorf("Expected swipe left of 40px to add 1, got %f", d)
	}
	if math.Abs(s.Target-1) > 1e-9 {
		t.Errorf("Expected target 1, got %f", s.Target)
	}

	c.TouchEnd()
	if d := c.TouchMove(100); d != 0 {
		t.Errorf("Expected move after touch end to be ignored, got %f", d)
	}

	c.TouchStart()
	c.TouchMove(100)
	if d := c.TouchMove(100); d != 0 {
		t.Errorf("Expected stationary touch to produce no delta, got %f", d)
	}
}

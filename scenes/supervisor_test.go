package scenes

import (
	"errors"
	"testing"

	cfg "github.com/automoto/worldview/config"
)

func TestFrameSupervisorRecovers(t *testing.T) {
	s := newFrameSupervisor(cfg.LoopConfig{})

	err := s.run("update", func() { panic("boom") })
	var frameErr *FrameError
	if !errors.As(err, &frameErr) {
		t.Fatalf("Expected *FrameError, got %v", err)
	}
	if frameErr.Phase != "update" || frameErr.Error() != "update: boom" {
		t.Errorf("Expected \"update: boom\", got %q", frameErr.Error())
	}

	if err := s.run("update", func() {}); err != nil {
		t.Errorf("Expected nil for a clean frame, got %v", err)
	}
}

func TestFrameSupervisorPolicies(t *testing.T) {
	failure := &FrameError{Phase: "update", Value: "boom"}

	tests := []struct {
		name      string
		config    cfg.LoopConfig
		failures  int
		wantFatal bool
	}{
		{"halt stops on first failure", cfg.LoopConfig{FrameErrors: cfg.FrameErrorsHalt, MaxConsecutiveFrameErrors: 3}, 1, true},
		{"skip tolerates failures under the limit", cfg.LoopConfig{FrameErrors: cfg.FrameErrorsSkip, MaxConsecutiveFrameErrors: 3}, 2, false},
		{"skip stops at the limit", cfg.LoopConfig{FrameErrors: cfg.FrameErrorsSkip, MaxConsecutiveFrameErrors: 3}, 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newFrameSupervisor(tt.config)
			var last error
			for i := 0; i < tt.failures; i++ {
				last = s.settle(failure)
			}
			if got := last != nil; got != tt.wantFatal {
				t.Errorf("Expected fatal=%v, got %v (%v)", tt.wantFatal, got, last)
			}
		})
	}
}

func TestFrameSupervisorLimitWrapsCause(t *testing.T) {
	s := newFrameSupervisor(cfg.LoopConfig{FrameErrors: cfg.FrameErrorsSkip, MaxConsecutiveFrameErrors: 1})
	failure := &FrameError{Phase: "draw", Value: "boom"}

	err := s.settle(failure)
	if !errors.Is(err, ErrFrameLimit) {
		t.Errorf("Expected ErrFrameLimit, got %v", err)
	}
	var frameErr *FrameError
	if !errors.As(err, &frameErr) {
		t.Errorf("Expected the frame error to be wrapped, got %v", err)
	}
}

func TestFrameSupervisorResetsOnSuccess(t *testing.T) {
	s := newFrameSupervisor(cfg.LoopConfig{FrameErrors: cfg.FrameErrorsSkip, MaxConsecutiveFrameErrors: 2})
	failure := &FrameError{Phase: "update", Value: "boom"}

	_ = s.settle(failure)
	_ = s.settle(nil)
	if err := s.settle(failure); err != nil {
		t.Errorf("Expected the count to reset after a clean frame, got %v", err)
	}
}

func TestFatalSceneReturnsErrorAfterDraw(t *testing.T) {
	want := errors.New("scene broke")
	fs := NewFatalScene(want)

	if err := fs.Update(); err != nil {
		t.Errorf("Expected nil before the message is shown, got %v", err)
	}
	fs.drawn = true
	if err := fs.Update(); !errors.Is(err, want) {
		t.Errorf("Expected %v, got %v", want, err)
	}
}

package scenes

import (
	"errors"
	"fmt"
	"log"

	cfg "github.com/automoto/worldview/config"
)

// ErrFrameLimit is returned once skip mode has dropped too many frames in a row.
var ErrFrameLimit = errors.New("too many consecutive frame errors")

// FrameError is a panic recovered from one frame's systems or renderers.
type FrameError struct {
	Phase string
	Value any
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("%s: %v", e.Phase, e.Value)
}

// frameSupervisor runs a frame and decides whether a failure ends the loop.
type frameSupervisor struct {
	policy      cfg.FrameErrorPolicy
	max         int
	consecutive int
}

func newFrameSupervisor(c cfg.LoopConfig) *frameSupervisor {
	return &frameSupervisor{policy: c.FrameErrors, max: c.MaxConsecutiveFrameErrors}
}

// run calls fn and turns a panic into a *FrameError.
func (s *frameSupervisor) run(phase string, fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &FrameError{Phase: phase, Value: r}
		}
	}()
	fn()
	return nil
}

// settle records the outcome of a frame. It returns a non-nil error when the
// loop has to stop.
func (s *frameSupervisor) settle(err error) error {
	if err == nil {
		s.consecutive = 0
		return nil
	}
	log.Printf("Warning: Frame failed: %v", err)

	if s.policy != cfg.FrameErrorsSkip {
		return err
	}
	s.consecutive++
	if s.max > 0 && s.consecutive >= s.max {
		return fmt.Errorf("%w (%d): %w", ErrFrameLimit, s.consecutive, err)
	}
	return nil
}

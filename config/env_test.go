package config

import (
	"strings"
	"testing"

	"github.com/automoto/worldview/motion"
)

// restoreGlobals snapshots the globals Apply can touch.
func restoreGlobals(t *testing.T) {
	t.Helper()
	c, cam, ov, sc, mb, loop, dbg, pinned := *C, Camera, Overlay, Scene, MotionBlur, Loop, Debug, Env
	t.Cleanup(func() {
		*C, Camera, Overlay, Scene, MotionBlur, Loop, Debug, Env = c, cam, ov, sc, mb, loop, dbg, pinned
	})
}

func TestLoadEnvKeepsDefaults(t *testing.T) {
	restoreGlobals(t)

	if err := LoadEnv(); err != nil {
		t.Fatalf("load env: %v", err)
	}
	if Camera.Damping != 0.1 {
		t.Errorf("Expected default damping 0.1, got %v", Camera.Damping)
	}
	if Camera.MinBound != -17 || Camera.MaxBound != 68 {
		t.Errorf("Expected bounds [-17, 68], got [%v, %v]", Camera.MinBound, Camera.MaxBound)
	}
	if Camera.Policy != motion.PolicySoft {
		t.Errorf("Expected soft policy by default, got %v", Camera.Policy)
	}
	if Overlay.PixelsPerUnit != 40 {
		t.Errorf("Expected K=40, got %v", Overlay.PixelsPerUnit)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	restoreGlobals(t)
	t.Setenv("WORLDVIEW_CLAMP_POLICY", "hard")
	t.Setenv("WORLDVIEW_DAMPING", "0.25")
	t.Setenv("WORLDVIEW_WHEEL_SCALE", "0.02")
	t.Setenv("WORLDVIEW_MOTION_BLUR", "false")
	t.Setenv("WORLDVIEW_FRAME_ERRORS", "skip")

	if err := LoadEnv(); err != nil {
		t.Fatalf("load env: %v", err)
	}
	if Camera.Policy != motion.PolicyHard {
		t.Errorf("Expected hard policy, got %v", Camera.Policy)
	}
	if Camera.Damping != 0.25 {
		t.Errorf("Expected damping 0.25, got %v", Camera.Damping)
	}
	if Camera.Scales.Wheel != 0.02 {
		t.Errorf("Expected wheel scale 0.02, got %v", Camera.Scales.Wheel)
	}
	if MotionBlur.Enabled {
		t.Error("Expected motion blur disabled")
	}
	if Loop.FrameErrors != FrameErrorsSkip {
		t.Errorf("Expected skip frame errors, got %v", Loop.FrameErrors)
	}
	if !Env.Policy || !Env.MotionBlur {
		t.Errorf("Expected policy and blur pinned, got %+v", Env)
	}
	if Env.Bounds || Env.ShowHUD {
		t.Errorf("Expected bounds and HUD unpinned, got %+v", Env)
	}
}

func TestLoadEnvVariant(t *testing.T) {
	restoreGlobals(t)
	t.Setenv("WORLDVIEW_VARIANT", "day")

	if err := LoadEnv(); err != nil {
		t.Fatalf("load env: %v", err)
	}
	if Scene.FogColor != DayFog {
		t.Errorf("Expected day fog, got %v", Scene.FogColor)
	}
	if Camera.Scales.Touch != 0.02 {
		t.Errorf("Expected day touch scale 0.02, got %v", Camera.Scales.Touch)
	}
	if Camera.Policy != motion.PolicyHard {
		t.Errorf("Expected day variant to clamp hard, got %v", Camera.Policy)
	}
	if !Env.Policy {
		t.Error("Expected variant policy pinned over saved settings")
	}
}

func TestLoadEnvErrors(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		want  string
	}{
		{name: "not a number", key: "WORLDVIEW_DAMPING", value: "fast", want: "parse env:"},
		{name: "damping out of range", key: "WORLDVIEW_DAMPING", value: "1.5", want: "WORLDVIEW_DAMPING"},
		{name: "unknown policy", key: "WORLDVIEW_CLAMP_POLICY", value: "bouncy", want: "WORLDVIEW_CLAMP_POLICY"},
		{name: "unknown variant", key: "WORLDVIEW_VARIANT", value: "dusk", want: "unknown scene variant"},
		{name: "inverted bounds", key: "WORLDVIEW_MIN_BOUND", value: "100", want: "bounds inverted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restoreGlobals(t)
			t.Setenv(tt.key, tt.value)

			err := LoadEnv()
			if err == nil {
				t.Fatal("Expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestParseFrameErrorPolicy(t *testing.T) {
	if p, err := ParseFrameErrorPolicy(""); err != nil || p != FrameErrorsHalt {
		t.Errorf("Expected halt by default, got %v (%v)", p, err)
	}
	if _, err := ParseFrameErrorPolicy("retry"); err == nil {
		t.Error("Expected error for unknown policy")
	}
}

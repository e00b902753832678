package config

import (
	"fmt"

	"github.com/automoto/worldview/motion"
	"github.com/caarlos0/env/v11"
)

// Overrides are the settings that can be changed through WORLDVIEW_* variables.
// Nil fields keep the compiled-in default.
type Overrides struct {
	Variant       string   `env:"WORLDVIEW_VARIANT"`
	Policy        string   `env:"WORLDVIEW_CLAMP_POLICY"`
	FrameErrors   string   `env:"WORLDVIEW_FRAME_ERRORS"`
	Damping       *float64 `env:"WORLDVIEW_DAMPING"`
	MinBound      *float64 `env:"WORLDVIEW_MIN_BOUND"`
	MaxBound      *float64 `env:"WORLDVIEW_MAX_BOUND"`
	WheelScale    *float64 `env:"WORLDVIEW_WHEEL_SCALE"`
	DragScale     *float64 `env:"WORLDVIEW_DRAG_SCALE"`
	TouchScale    *float64 `env:"WORLDVIEW_TOUCH_SCALE"`
	PixelsPerUnit *float64 `env:"WORLDVIEW_PIXELS_PER_UNIT"`
	FogDensity    *float64 `env:"WORLDVIEW_FOG_DENSITY"`
	MotionBlur    *bool    `env:"WORLDVIEW_MOTION_BLUR"`
	ShowHUD       *bool    `env:"WORLDVIEW_DEBUG_HUD"`
	ShowPanel     *bool    `env:"WORLDVIEW_PANEL"`
	Width         *int     `env:"WORLDVIEW_WIDTH"`
	Height        *int     `env:"WORLDVIEW_HEIGHT"`
}

// Pinned records which settings came from the environment. Pinned settings
// beat both the scene file and the settings saved from the last session.
type Pinned struct {
	Policy     bool
	Bounds     bool
	MotionBlur bool
	ShowHUD    bool
	ShowPanel  bool
}

var Env Pinned

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnv parses WORLDVIEW_* variables and applies them to the globals.
func LoadEnv() error {
	var o Overrides
	if err := ParseEnv(&o); err != nil {
		return err
	}
	return Apply(o)
}

// Apply writes the non-empty overrides into the global configuration.
// The variant is applied first so explicit policy and scale overrides win.
func Apply(o Overrides) error {
	if o.Variant != "" {
		if err := ApplyVariant(o.Variant); err != nil {
			return err
		}
		// The variant's clamp policy came from the environment too
		Env.Policy = true
	}
	if o.Policy != "" {
		p, err := motion.ParsePolicy(o.Policy)
		if err != nil {
			return fmt.Errorf("WORLDVIEW_CLAMP_POLICY: %w", err)
		}
		Camera.Policy = p
		Env.Policy = true
	}
	if o.FrameErrors != "" {
		p, err := ParseFrameErrorPolicy(o.FrameErrors)
		if err != nil {
			return fmt.Errorf("WORLDVIEW_FRAME_ERRORS: %w", err)
		}
		Loop.FrameErrors = p
	}

	if o.Damping != nil {
		if *o.Damping <= 0 || *o.Damping > 1 {
			return fmt.Errorf("WORLDVIEW_DAMPING must be in (0,1], got %v", *o.Damping)
		}
		Camera.Damping = *o.Damping
	}
	if o.MinBound != nil {
		Camera.MinBound = *o.MinBound
		Env.Bounds = true
	}
	if o.MaxBound != nil {
		Camera.MaxBound = *o.MaxBound
		Env.Bounds = true
	}
	if Camera.MinBound > Camera.MaxBound {
		return fmt.Errorf("camera bounds inverted: min %v > max %v", Camera.MinBound, Camera.MaxBound)
	}

	setFloat(&Camera.Scales.Wheel, o.WheelScale)
	setFloat(&Camera.Scales.Drag, o.DragScale)
	setFloat(&Camera.Scales.Touch, o.TouchScale)
	setFloat(&Overlay.PixelsPerUnit, o.PixelsPerUnit)
	setFloat(&Scene.FogDensity, o.FogDensity)

	if o.MotionBlur != nil {
		MotionBlur.Enabled = *o.MotionBlur
		Env.MotionBlur = true
	}
	if o.ShowHUD != nil {
		Debug.ShowHUD = *o.ShowHUD
		Env.ShowHUD = true
	}
	if o.ShowPanel != nil {
		Debug.ShowPanel = *o.ShowPanel
		Env.ShowPanel = true
	}
	if o.Width != nil && *o.Width > 0 {
		C.Width = *o.Width
	}
	if o.Height != nil && *o.Height > 0 {
		C.Height = *o.Height
	}
	return nil
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

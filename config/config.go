package config

import (
	"fmt"
	"image/color"

	"github.com/automoto/worldview/gamemath"
	"github.com/automoto/worldview/motion"
	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer every system draws on.
const Default ecs.LayerID = 0

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
	TPS    int
}

// CameraConfig contains camera travel configuration
type CameraConfig struct {
	Start    gamemath.Vec3 // world position; Start.Z is the travel axis
	Damping  float64       // fraction of remaining distance covered per frame (0,1]
	MinBound float64
	MaxBound float64
	Policy   motion.Policy
	Scales   motion.Scales
	Lens     gamemath.Lens

	WheelPixelsPerNotch float64 // browser-style pixels per wheel notch
	KeyPanPixels        float64 // wheel-equivalent pixels per frame while an arrow key is held
	RestEpsilon         float64 // axis distance below which the camera counts as resting
	RestFrames          int     // frames at rest before the position is persisted
}

// OverlayConfig contains overlay card configuration
type OverlayConfig struct {
	PixelsPerUnit float64 // K: pixels per world unit of camera travel
	CardPadding   float64
	CardMaxWidth  float64
	FontSize      float64
	LineSpacing   float64
	CardColor     color.RGBA
	CardHover     color.RGBA
	TextColor     color.RGBA
	LinkColor     color.RGBA
	BobSeconds    float64 // duration of one half of a bobbing cycle
}

// SceneConfig contains fog and lighting configuration
type SceneConfig struct {
	Variant      string
	File         string // embedded TMX scene description
	FogColor     color.RGBA
	FogDensity   float64
	LightRadius  float64 // world-space glow radius of an intensity 1 light
	MaxLightSize float64
}

// PetalConfig contains falling petal configuration
type PetalConfig struct {
	PerRegion int
	FallSpeed float64 // world units per frame
	DriftX    float64
	DriftZ    float64
	SwayRate  float64
	ResetY    float64 // petals below this height respawn
	Size      float64 // world units
	Color     color.RGBA
}

// MotionBlurConfig contains the camera motion blur pass configuration
type MotionBlurConfig struct {
	Enabled bool
	Amount  float64
}

// FrameErrorPolicy decides what happens after a frame panics.
type FrameErrorPolicy int

const (
	// FrameErrorsHalt stops the loop on the first failed frame.
	FrameErrorsHalt FrameErrorPolicy = iota
	// FrameErrorsSkip drops failed frames until too many fail in a row.
	FrameErrorsSkip
)

func (p FrameErrorPolicy) String() string {
	if p == FrameErrorsSkip {
		return "skip"
	}
	return "halt"
}

// ParseFrameErrorPolicy maps "halt"/"skip" to a FrameErrorPolicy.
func ParseFrameErrorPolicy(s string) (FrameErrorPolicy, error) {
	switch s {
	case "halt", "":
		return FrameErrorsHalt, nil
	case "skip":
		return FrameErrorsSkip, nil
	}
	return FrameErrorsHalt, fmt.Errorf("unknown frame error policy %q", s)
}

// LoopConfig contains render loop supervision configuration
type LoopConfig struct {
	FrameErrors               FrameErrorPolicy
	MaxConsecutiveFrameErrors int
}

// LoadingConfig contains the loading veil configuration
type LoadingConfig struct {
	FadeSeconds float64
	Color       color.RGBA
	TextColor   color.RGBA
	Text        string
}

// PanelConfig contains the tuning panel configuration
type PanelConfig struct {
	Background color.RGBA
	TextColor  color.RGBA
	FontSize   float64
	Margin     int
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	ShowHUD   bool
	ShowPanel bool
}

// Global configuration instances
var C *Config
var Camera CameraConfig
var Overlay OverlayConfig
var Scene SceneConfig
var Petals PetalConfig
var MotionBlur MotionBlurConfig
var Loop LoopConfig
var Loading LoadingConfig
var Panel PanelConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	PetalPink    = color.RGBA{R: 255, G: 183, B: 197, A: 255}
	NightFog     = color.RGBA{R: 0x17, G: 0x18, B: 0x43, A: 255}
	DayFog       = color.RGBA{R: 0xff, G: 0xc3, B: 0xd3, A: 255}
)

// Variant bundles the settings that differ between scene forks.
type Variant struct {
	Name       string
	FogColor   color.RGBA
	TouchScale float64
	Policy     motion.Policy
}

// Variants are the known scene forks, keyed by name.
var Variants = map[string]Variant{
	"night": {Name: "night", FogColor: NightFog, TouchScale: 0.025, Policy: motion.PolicySoft},
	"day":   {Name: "day", FogColor: DayFog, TouchScale: 0.02, Policy: motion.PolicyHard},
}

// ApplyVariant switches fog colour, touch scale and clamp policy to the named fork.
func ApplyVariant(name string) error {
	v, ok := Variants[name]
	if !ok {
		return fmt.Errorf("unknown scene variant %q", name)
	}
	Scene.Variant = v.Name
	Scene.FogColor = v.FogColor
	Camera.Scales.Touch = v.TouchScale
	Camera.Policy = v.Policy
	return nil
}

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "worldview",
		TPS:    60,
	}

	// Camera Config
	Camera = CameraConfig{
		Start:    gamemath.Vec3{X: -34, Y: -12, Z: -0.1},
		Damping:  0.1,
		MinBound: -17,
		MaxBound: 64*2 - 60,
		Policy:   motion.PolicySoft,
		Scales:   motion.DefaultScales,
		Lens:     gamemath.Lens{FovY: 60, Near: 0.1, Far: 64},

		WheelPixelsPerNotch: 100,
		KeyPanPixels:        12,
		RestEpsilon:         0.001,
		RestFrames:          30,
	}

	// Overlay Config
	Overlay = OverlayConfig{
		PixelsPerUnit: 40,
		CardPadding:   10,
		CardMaxWidth:  280,
		FontSize:      14,
		LineSpacing:   1.3,
		CardColor:     color.RGBA{R: 12, G: 12, B: 36, A: 200},
		CardHover:     color.RGBA{R: 40, G: 40, B: 90, A: 220},
		TextColor:     White,
		LinkColor:     LightBlue,
		BobSeconds:    1.6,
	}

	// Scene Config
	Scene = SceneConfig{
		Variant:      "night",
		File:         "scenes/viewport.tmx",
		FogColor:     NightFog,
		FogDensity:   0.02,
		LightRadius:  0.5,
		MaxLightSize: 64,
	}

	// Petal Config
	Petals = PetalConfig{
		PerRegion: 20,
		FallSpeed: 0.02,
		DriftX:    0.001,
		DriftZ:    0.003,
		SwayRate:  0.02,
		ResetY:    -15,
		Size:      0.2,
		Color:     PetalPink,
	}

	MotionBlur = MotionBlurConfig{
		Enabled: true,
		Amount:  0.5,
	}

	Loop = LoopConfig{
		FrameErrors:               FrameErrorsHalt,
		MaxConsecutiveFrameErrors: 30,
	}

	Loading = LoadingConfig{
		FadeSeconds: 0.6,
		Color:       NightFog,
		TextColor:   White,
		Text:        "loading",
	}

	Panel = PanelConfig{
		Background: color.RGBA{R: 20, G: 20, B: 30, A: 220},
		TextColor:  White,
		FontSize:   12,
		Margin:     8,
	}

	// Debug Config (defaults, can be overridden by env)
	Debug = DebugConfig{
		ShowHUD:   false,
		ShowPanel: false,
	}
}

package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/worldview/components"
	cfg "github.com/automoto/worldview/config"
	"github.com/automoto/worldview/motion"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Policy          string   `json:"policy"`
	Fullscreen      bool     `json:"fullscreen"`
	ResolutionIndex int      `json:"resolutionIndex"`
	ShowHUD         bool     `json:"showHud"`
	ShowPanel       bool     `json:"showPanel"`
	MotionBlur      bool     `json:"motionBlur"`
	LastAxis        *float64 `json:"lastAxis,omitempty"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. It returns nil, nil when nothing
// has been saved yet.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(cfg.Settings.SaveKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	return decodeSettings(data)
}

func decodeSettings(data []byte) (*SavedSettings, error) {
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(cfg.Settings.SaveKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// CaptureSettings collects the persistable state of the viewer.
func CaptureSettings(camera *components.CameraData, settings *components.SettingsData, blur bool) *SavedSettings {
	saved := &SavedSettings{
		MotionBlur: blur,
	}
	if settings != nil {
		saved.Fullscreen = settings.Fullscreen
		saved.ResolutionIndex = settings.ResolutionIndex
		saved.ShowHUD = settings.ShowHUD
		saved.ShowPanel = settings.ShowPanel
	}
	if camera != nil {
		saved.Policy = camera.Policy.String()
		axis := camera.SavedAxis
		saved.LastAxis = &axis
	}
	return saved
}

// UpdatePersistence writes the settings whenever something marked them dirty.
func UpdatePersistence(e *ecs.ECS) {
	settings := getSettings(e)
	if settings == nil || !settings.Dirty {
		return
	}
	settings.Dirty = false

	camera, _ := getCamera(e)
	_ = SaveSettings(CaptureSettings(camera, settings, cfg.MotionBlur.Enabled))
}

// RestoreSession applies loaded settings to the camera and the settings
// singleton. Settings pinned through the environment are left alone.
// The overlay must already be bound so the restored axis does not move
// its origin.
func RestoreSession(e *ecs.ECS, saved *SavedSettings) {
	if saved == nil {
		return
	}
	camera, _ := getCamera(e)
	restoreSettings(camera, getSettings(e), saved, cfg.Env)

	if !cfg.Env.MotionBlur {
		cfg.MotionBlur.Enabled = saved.MotionBlur
	}
}

// ApplyWindowSettings restores the saved window mode and size.
func ApplyWindowSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	// Apply fullscreen
	ebiten.SetFullscreen(saved.Fullscreen)

	// Apply resolution (only if not fullscreen)
	if !saved.Fullscreen && validResolution(saved.ResolutionIndex) {
		res := cfg.Settings.Resolutions[saved.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}
}

// restoreSettings copies saved state into the camera and settings singletons.
func restoreSettings(camera *components.CameraData, settings *components.SettingsData, saved *SavedSettings, pinned cfg.Pinned) {
	if camera != nil {
		if !pinned.Policy && saved.Policy != "" {
			if p, err := motion.ParsePolicy(saved.Policy); err == nil {
				camera.Policy = p
			} else {
				log.Printf("Warning: Ignoring saved clamp policy: %v", err)
			}
		}
		if saved.LastAxis != nil {
			camera.State.Snap(*saved.LastAxis)
			camera.Eye.Z = camera.State.Axis
			camera.SavedAxis = camera.State.Axis
		}
	}

	if settings != nil {
		settings.Fullscreen = saved.Fullscreen
		if validResolution(saved.ResolutionIndex) {
			settings.ResolutionIndex = saved.ResolutionIndex
		}
		if !pinned.ShowHUD {
			settings.ShowHUD = saved.ShowHUD
		}
		if !pinned.ShowPanel {
			settings.ShowPanel = saved.ShowPanel
		}
	}
}

func validResolution(i int) bool {
	return i >= 0 && i < len(cfg.Settings.Resolutions)
}

package scenes

import (
	"image/color"
	"log"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/automoto/worldview/assets"
	"github.com/automoto/worldview/components"
	cfg "github.com/automoto/worldview/config"
	"github.com/automoto/worldview/fonts"
	"github.com/automoto/worldview/systems"
	"github.com/automoto/worldview/systems/factory"
	"github.com/automoto/worldview/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ViewportScene is the parallax viewport: the fogged world, the overlay
// cards riding on top of it and the debug surfaces.
type ViewportScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	supervisor   *frameSupervisor
	once         sync.Once

	width, height int
	drawErr       error
}

func NewViewportScene(sc SceneChanger) *ViewportScene {
	return &ViewportScene{
		sceneChanger: sc,
		supervisor:   newFrameSupervisor(cfg.Loop),
	}
}

func (vs *ViewportScene) Update() error {
	var setupErr error
	vs.once.Do(func() {
		setupErr = vs.supervisor.run("setup", vs.configure)
	})
	if setupErr != nil {
		// Nothing to keep running without a world
		log.Printf("Warning: Scene setup failed: %v", setupErr)
		vs.sceneChanger.ChangeScene(NewFatalScene(setupErr))
		return nil
	}

	err := vs.drawErr
	vs.drawErr = nil
	if err == nil {
		err = vs.supervisor.run("update", vs.ecs.Update)
	}
	if fatal := vs.supervisor.settle(err); fatal != nil {
		vs.sceneChanger.ChangeScene(NewFatalScene(fatal))
	}
	return nil
}

func (vs *ViewportScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if vs.ecs == nil {
		return
	}
	if err := vs.supervisor.run("draw", func() { vs.ecs.Draw(screen) }); err != nil {
		vs.drawErr = err
	}
}

// SetViewport records the logical screen size. It never touches the camera
// or the overlay; they pick the new size up on the next tick.
func (vs *ViewportScene) SetViewport(width, height int) {
	if width == vs.width && height == vs.height {
		return
	}
	vs.width, vs.height = width, height
	vs.writeViewport()
}

func (vs *ViewportScene) writeViewport() {
	if vs.ecs == nil {
		return
	}
	entry, ok := components.Viewport.First(vs.ecs.World)
	if !ok {
		return
	}
	h := float64(vs.height)
	components.Viewport.SetValue(entry, components.ViewportData{
		Width:       float64(vs.width),
		Height:      h,
		FocalLength: cfg.Camera.Lens.FocalLength(h),
	})
}

func (vs *ViewportScene) configure() {
	if err := assets.LoadShaders(); err != nil {
		log.Printf("Warning: Motion blur disabled, shader failed to compile: %v", err)
	}
	if err := fonts.LoadDefaults(); err != nil {
		panic(err)
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	for _, s := range frameSystems() {
		ecs.AddSystem(s.update)
	}

	ecs.AddRenderer(cfg.Default, systems.DrawWorld)
	ecs.AddRenderer(cfg.Default, systems.DrawMotionBlur)
	ecs.AddRenderer(cfg.Default, systems.DrawOverlay)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawPanel)
	ecs.AddRenderer(cfg.Default, systems.DrawLoading)

	vs.ecs = ecs

	factory.CreateLoading(ecs)
	systems.BeginLoading(ecs)
	defer systems.FinishLoading(ecs)

	factory.CreateInput(ecs)
	factory.CreateSettings(ecs)

	scene := assets.MustLoadScene(cfg.Scene.File)
	factory.CreateScene(ecs, scene)
	vs.writeViewport()

	minBound, maxBound := cfg.Camera.MinBound, cfg.Camera.MaxBound
	if scene.HasBounds && !cfg.Env.Bounds {
		minBound, maxBound = scene.MinBound, scene.MaxBound
	}
	// LoadSettings logs its own failures; a broken file means defaults
	saved, _ := systems.LoadSettings()
	if err := spawnViewer(ecs, scene, minBound, maxBound, saved); err != nil {
		panic(err)
	}
	systems.ApplyWindowSettings(saved)

	for _, light := range scene.Lights {
		factory.CreateLight(ecs, light)
	}
	for _, floor := range scene.Floors {
		factory.CreateFloor(ecs, floor)
	}
	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	for _, region := range scene.PetalRegions {
		factory.CreatePetals(ecs, region, cfg.Petals.PerRegion, rng)
	}

	vs.createPanel()
}

// frameSystem is one update step, named so the order can be checked.
type frameSystem struct {
	name   string
	update ecs.System
}

// frameSystems returns the update systems in run order. Input comes first so
// every later system sees this tick's events, and the overlay projects after
// the camera step so it reads this tick's axis.
func frameSystems() []frameSystem {
	return []frameSystem{
		{"input", systems.UpdateInput},
		{"pointer", systems.UpdatePointer},
		{"settings", systems.UpdateSettings},
		{"petals", systems.UpdatePetals},
		{"camera", systems.UpdateCamera},
		{"overlay", systems.UpdateOverlay},
		{"motion blur", systems.UpdateMotionBlur},
		{"loading", systems.UpdateLoading},
		{"panel", systems.UpdatePanel},
		{"persistence", systems.UpdatePersistence},
	}
}

// spawnViewer creates the camera at the scene start and binds the overlay to
// it, then restores the last session on top. Binding first keeps card origins
// tied to the scene rather than to wherever the last session stopped.
func spawnViewer(e *ecs.ECS, scene *assets.Scene, minBound, maxBound float64, saved *systems.SavedSettings) error {
	cameraEntry := factory.CreateCamera(e, scene.CameraStart, minBound, maxBound)
	camera := components.Camera.Get(cameraEntry)

	if _, err := factory.CreateOverlay(e, camera.State, scene.Cards); err != nil {
		return err
	}
	systems.RestoreSession(e, saved)
	return nil
}

func (vs *ViewportScene) createPanel() {
	titleFace, err := fonts.Face(cfg.Panel.FontSize + 2)
	if err != nil {
		log.Printf("Warning: Tuning panel unavailable: %v", err)
		return
	}
	smallFace, err := fonts.Face(cfg.Panel.FontSize)
	if err != nil {
		log.Printf("Warning: Tuning panel unavailable: %v", err)
		return
	}
	panel := ui.NewTuningPanel(titleFace, smallFace, cfg.Panel.Background, cfg.Panel.TextColor, cfg.Panel.Margin,
		func() { systems.ToggleClampPolicy(vs.ecs) },
		func() { systems.ToggleMotionBlur(vs.ecs) },
		func() { systems.ResetCamera(vs.ecs) },
		func() { systems.CycleResolution(vs.ecs) },
	)
	factory.CreatePanel(vs.ecs, panel)
}

package scenes

import (
	"testing"

	"github.com/automoto/worldview/assets"
	"github.com/automoto/worldview/components"
	cfg "github.com/automoto/worldview/config"
	"github.com/automoto/worldview/gamemath"
	"github.com/automoto/worldview/overlay"
	"github.com/automoto/worldview/systems"
	"github.com/automoto/worldview/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const sceneStart = -0.1

var testViewport = components.ViewportData{Width: 900, Height: 600}

// newTestViewer builds the camera, overlay and viewport of a one-card scene
// the way configure does, restoring saved on top.
func newTestViewer(t *testing.T, saved *systems.SavedSettings) *ecs.ECS {
	t.Helper()
	blur := cfg.MotionBlur
	t.Cleanup(func() { cfg.MotionBlur = blur })

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSettings(e)
	scene := &assets.Scene{
		CameraStart: gamemath.Vec3{Z: sceneStart},
		Cards:       []assets.CardSpawn{{Title: "About", X: 0, Y: 0, Z: 0}},
	}
	sceneEntry := factory.CreateScene(e, scene)
	components.Viewport.SetValue(sceneEntry, testViewport)

	if err := spawnViewer(e, scene, -17, 68, saved); err != nil {
		t.Fatalf("spawn viewer: %v", err)
	}
	return e
}

func testCamera(t *testing.T, e *ecs.ECS) *components.CameraData {
	t.Helper()
	entry, ok := components.Camera.First(e.World)
	if !ok {
		t.Fatal("Expected a camera")
	}
	return components.Camera.Get(entry)
}

func testLayer(t *testing.T, e *ecs.ECS) *overlay.Layer {
	t.Helper()
	entry, ok := components.Overlay.First(e.World)
	if !ok {
		t.Fatal("Expected an overlay")
	}
	return components.Overlay.Get(entry).Layer
}

func firstItem(t *testing.T, layer *overlay.Layer) *overlay.Item {
	t.Helper()
	var first *overlay.Item
	layer.Each(func(it *overlay.Item) {
		if first == nil {
			first = it
		}
	})
	if first == nil {
		t.Fatal("Expected a registered card")
	}
	return first
}

func TestSavedAxisKeepsCardsAnchored(t *testing.T) {
	vp := overlay.Viewport{Width: testViewport.Width, Height: testViewport.Height}
	axis := func(v float64) *float64 { return &v }

	tests := []struct {
		name  string
		saved *systems.SavedSettings
		want  float64 // restored axis
	}{
		{name: "fresh session", saved: nil, want: sceneStart},
		{name: "no saved axis", saved: &systems.SavedSettings{}, want: sceneStart},
		{name: "saved mid scene", saved: &systems.SavedSettings{LastAxis: axis(30)}, want: 30},
		{name: "saved at the near bound", saved: &systems.SavedSettings{LastAxis: axis(-17)}, want: -17},
	}

	var lefts []float64
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestViewer(t, tt.saved)
			camera := testCamera(t, e)
			layer := testLayer(t, e)

			if camera.State.Axis != tt.want {
				t.Errorf("Expected restored axis %v, got %v", tt.want, camera.State.Axis)
			}
			if layer.OriginAxis() != sceneStart {
				t.Errorf("Expected overlay origin at scene start %v, got %v", sceneStart, layer.OriginAxis())
			}

			// Same camera position, same card position, whatever was saved
			camera.State.Snap(12)
			if err := layer.ProjectAll(vp); err != nil {
				t.Fatalf("project: %v", err)
			}
			lefts = append(lefts, firstItem(t, layer).Wrapper().Position().Left)
		})
	}

	for i := 1; i < len(lefts); i++ {
		if lefts[i] != lefts[0] {
			t.Errorf("Expected card left %v for every session, got %v", lefts[0], lefts)
			break
		}
	}
}

func TestFrameSystemsOrder(t *testing.T) {
	index := map[string]int{}
	for i, s := range frameSystems() {
		if s.update == nil {
			t.Errorf("Expected system %q to be set", s.name)
		}
		index[s.name] = i
	}

	if index["input"] != 0 {
		t.Errorf("Expected input to run first, got position %d", index["input"])
	}
	order := []string{"input", "petals", "camera", "overlay", "persistence"}
	for i := 1; i < len(order); i++ {
		before, after := order[i-1], order[i]
		if index[before] >= index[after] {
			t.Errorf("Expected %s before %s, got %d and %d", before, after, index[before], index[after])
		}
	}
}

func TestOverlayProjectsThisTicksAxis(t *testing.T) {
	e := newTestViewer(t, nil)
	camera := testCamera(t, e)
	layer := testLayer(t, e)

	tick := ecs.NewECS(e.World)
	for _, s := range frameSystems() {
		switch s.name {
		case "petals", "camera", "overlay":
			tick.AddSystem(s.update)
		}
	}

	camera.State.Target = 10
	for frame := 1; frame <= 3; frame++ {
		tick.Update()

		if camera.State.Axis == sceneStart {
			t.Fatalf("Expected the camera to move on frame %d", frame)
		}
		item := firstItem(t, layer)
		w, h := item.Wrapper().Size()
		want := overlay.Project(overlay.Input{
			ViewportWidth:  testViewport.Width,
			ViewportHeight: testViewport.Height,
			ElementWidth:   w,
			ElementHeight:  h,
			OriginAxis:     sceneStart,
			CameraAxis:     camera.State.Axis,
			PixelsPerUnit:  layer.PixelsPerUnit(),
		})
		if got := item.Wrapper().Position(); got != want {
			t.Errorf("Expected frame %d card at %+v, got %+v", frame, want, got)
		}
	}
}

func TestSetViewportTouchesOnlyViewport(t *testing.T) {
	e := newTestViewer(t, nil)
	camera := testCamera(t, e)
	layer := testLayer(t, e)

	camera.State.Target = 5
	camera.State.Step(camera.Policy)
	if err := layer.ProjectAll(overlay.Viewport{Width: testViewport.Width, Height: testViewport.Height}); err != nil {
		t.Fatalf("project: %v", err)
	}
	stateBefore := *camera.State
	eyeBefore := camera.Eye
	originBefore := layer.OriginAxis()
	posBefore := firstItem(t, layer).Wrapper().Position()

	vs := &ViewportScene{ecs: e}
	vs.SetViewport(1024, 768)

	entry, ok := components.Viewport.First(e.World)
	if !ok {
		t.Fatal("Expected a viewport")
	}
	want := components.ViewportData{Width: 1024, Height: 768, FocalLength: cfg.Camera.Lens.FocalLength(768)}
	if got := *components.Viewport.Get(entry); got != want {
		t.Errorf("Expected viewport %+v, got %+v", want, got)
	}

	if *camera.State != stateBefore {
		t.Errorf("Expected camera state %+v, got %+v", stateBefore, *camera.State)
	}
	if camera.Eye != eyeBefore {
		t.Errorf("Expected eye %+v, got %+v", eyeBefore, camera.Eye)
	}
	if layer.OriginAxis() != originBefore {
		t.Errorf("Expected overlay origin %v, got %v", originBefore, layer.OriginAxis())
	}
	if got := firstItem(t, layer).Wrapper().Position(); got != posBefore {
		t.Errorf("Expected card to stay at %+v until the next tick, got %+v", posBefore, got)
	}
}

package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"strconv"
	"strings"

	"github.com/automoto/worldview/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
)

var (
	//go:embed all:scenes
	sceneFS embed.FS

	//go:embed all:images
	imageFS embed.FS
)

// Scene is the world description loaded from a TMX file. Object positions
// live in custom properties (wx, wy, wz) because Tiled only knows 2-D.
type Scene struct {
	Name         string
	CameraStart  gamemath.Vec3
	MinBound     float64
	MaxBound     float64
	HasBounds    bool
	Lights       []LightSpawn
	PetalRegions []PetalRegion
	Floors       []FloorSpawn
	Cards        []CardSpawn
	Backdrop     *ebiten.Image // rendered horizon strip, nil until RenderBackdrop
}

type LightSpawn struct {
	Position  gamemath.Vec3
	Color     color.RGBA
	Intensity float64
	Decay     float64
}

// PetalRegion is the box petals respawn in. Min may be greater than Max on
// any axis; spawning interpolates between the two either way.
type PetalRegion struct {
	Min, Max gamemath.Vec3
}

type FloorSpawn struct {
	Position gamemath.Vec3
	Size     gamemath.Vec3
	Color    color.RGBA
}

// CardSpawn is an overlay card. X and Y are pixel offsets from the viewport
// centre, Z is the parallax factor, Bob is the vertical bob amplitude in pixels.
type CardSpawn struct {
	Title string
	Body  string
	Link  string
	X     float64
	Y     float64
	Z     float64
	Bob   float64
}

type SceneLoader struct{}

func NewSceneLoader() *SceneLoader {
	return &SceneLoader{}
}

// LoadScene parses the object groups of an embedded scene file.
func (l *SceneLoader) LoadScene(scenePath string) (*Scene, error) {
	sceneMap, err := tiled.LoadFile(scenePath, tiled.WithFileSystem(sceneFS))
	if err != nil {
		return nil, fmt.Errorf("load scene %s: %w", scenePath, err)
	}

	scene := &Scene{Name: scenePath}
	for _, og := range sceneMap.ObjectGroups {
		switch og.Name {
		case "Camera":
			for _, o := range og.Objects {
				scene.CameraStart = gamemath.Vec3{
					X: o.Properties.GetFloat("wx"),
					Y: o.Properties.GetFloat("wy"),
					Z: o.Properties.GetFloat("wz"),
				}
				minBound := o.Properties.GetFloat("minBound")
				maxBound := o.Properties.GetFloat("maxBound")
				if minBound < maxBound {
					scene.MinBound, scene.MaxBound = minBound, maxBound
					scene.HasBounds = true
				}
			}
		case "Lights":
			for _, o := range og.Objects {
				c, err := parseHexColor(o.Properties.GetString("color"))
				if err != nil {
					return nil, fmt.Errorf("light %d: %w", o.ID, err)
				}
				scene.Lights = append(scene.Lights, LightSpawn{
					Position:  vec3Prop(o, "wx", "wy", "wz"),
					Color:     c,
					Intensity: o.Properties.GetFloat("intensity"),
					Decay:     o.Properties.GetFloat("decay"),
				})
			}
		case "PetalRegions":
			for _, o := range og.Objects {
				scene.PetalRegions = append(scene.PetalRegions, PetalRegion{
					Min: vec3Prop(o, "minX", "minY", "minZ"),
					Max: vec3Prop(o, "maxX", "maxY", "maxZ"),
				})
			}
		case "Floors":
			for _, o := range og.Objects {
				c, err := parseHexColor(o.Properties.GetString("color"))
				if err != nil {
					return nil, fmt.Errorf("floor %d: %w", o.ID, err)
				}
				scene.Floors = append(scene.Floors, FloorSpawn{
					Position: vec3Prop(o, "wx", "wy", "wz"),
					Size:     vec3Prop(o, "sizeX", "sizeY", "sizeZ"),
					Color:    c,
				})
			}
		case "Overlays":
			for _, o := range og.Objects {
				scene.Cards = append(scene.Cards, CardSpawn{
					Title: o.Properties.GetString("title"),
					Body:  o.Properties.GetString("body"),
					Link:  o.Properties.GetString("link"),
					X:     o.Properties.GetFloat("x"),
					Y:     o.Properties.GetFloat("y"),
					Z:     o.Properties.GetFloat("z"),
					Bob:   o.Properties.GetFloat("bob"),
				})
			}
		}
	}

	return scene, nil
}

// RenderBackdrop draws every tile layer flagged with the "render" property
// into one image.
func (l *SceneLoader) RenderBackdrop(scenePath string) (*ebiten.Image, error) {
	sceneMap, err := tiled.LoadFile(scenePath, tiled.WithFileSystem(sceneFS))
	if err != nil {
		return nil, fmt.Errorf("load scene %s: %w", scenePath, err)
	}

	renderer, err := render.NewRendererWithFileSystem(sceneMap, sceneFS)
	if err != nil {
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	backdrop := ebiten.NewImage(sceneMap.Width*sceneMap.TileWidth, sceneMap.Height*sceneMap.TileHeight)
	for i, layer := range sceneMap.Layers {
		if !layer.Properties.GetBool("render") {
			continue
		}
		if err := renderer.RenderLayer(i); err != nil {
			return nil, fmt.Errorf("render layer %s: %w", layer.Name, err)
		}
		layerImage := ebiten.NewImageFromImage(renderer.Result)
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(float32(layer.Opacity))
		backdrop.DrawImage(layerImage, op)
		layerImage.Deallocate()
		renderer.Clear()
	}
	return backdrop, nil
}

// MustLoadScene loads the scene and its backdrop, panicking on failure.
func MustLoadScene(scenePath string) *Scene {
	loader := NewSceneLoader()
	scene, err := loader.LoadScene(scenePath)
	if err != nil {
		panic(err)
	}
	scene.Backdrop, err = loader.RenderBackdrop(scenePath)
	if err != nil {
		panic(err)
	}
	return scene
}

func vec3Prop(o *tiled.Object, x, y, z string) gamemath.Vec3 {
	return gamemath.Vec3{
		X: o.Properties.GetFloat(x),
		Y: o.Properties.GetFloat(y),
		Z: o.Properties.GetFloat(z),
	}
}

// parseHexColor accepts "#rrggbb" and "#aarrggbb" (Tiled's colour order).
func parseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 && len(s) != 8 {
		return color.RGBA{}, fmt.Errorf("bad colour %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad colour %q: %w", s, err)
	}
	a := uint8(0xff)
	if len(s) == 8 {
		a = uint8(v >> 24)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: a}, nil
}

type ImageLoader struct {
	cache      map[string]*ebiten.Image
	frameCache map[string]*ebiten.Image
}

func NewImageLoader() *ImageLoader {
	return &ImageLoader{
		cache:      make(map[string]*ebiten.Image),
		frameCache: make(map[string]*ebiten.Image),
	}
}

func (l *ImageLoader) MustLoadImage(path string) *ebiten.Image {
	if img, ok := l.cache[path]; ok {
		return img
	}

	imgBytes, err := imageFS.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("Failed to read image file %s: %v", path, err))
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		panic(fmt.Sprintf("Failed to create image from bytes for %s: %v", path, err))
	}

	l.cache[path] = img

	return img
}

// GetFrame returns a cached sub-image of a horizontal strip of square-ish frames.
func (l *ImageLoader) GetFrame(path string, frameIndex, frameWidth int) *ebiten.Image {
	key := fmt.Sprintf("%s/%d", path, frameIndex)
	if img, ok := l.frameCache[key]; ok {
		return img
	}

	sheet := l.MustLoadImage(path)
	h := sheet.Bounds().Dy()
	rect := image.Rect(frameIndex*frameWidth, 0, (frameIndex+1)*frameWidth, h)
	frame := sheet.SubImage(rect).(*ebiten.Image)
	l.frameCache[key] = frame

	return frame
}

const (
	PetalAtlas      = "images/petal_atlas.png"
	PetalFrameSize  = 8
	PetalFrameCount = 4
)

var imageLoader = NewImageLoader()

// PetalFrame returns one variant of the petal atlas.
func PetalFrame(index int) *ebiten.Image {
	return imageLoader.GetFrame(PetalAtlas, index%PetalFrameCount, PetalFrameSize)
}

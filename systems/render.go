package systems

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/automoto/worldview/assets"
	"github.com/automoto/worldview/components"
	cfg "github.com/automoto/worldview/config"
	"github.com/automoto/worldview/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image
	petalDrawOp   = &ebiten.DrawImageOptions{}
	backdropOp    = &ebiten.DrawImageOptions{}
)

// glow is one light ready to draw, sorted far to near.
type glow struct {
	x, y   float32
	radius float32
	depth  float64
	color  color.RGBA
}

var glows []glow

func solidSource() *ebiten.Image {
	if whiteSubImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// worldTarget is where the world is drawn: the blur buffer when the blur pass
// is active, the screen otherwise.
func worldTarget(ecs *ecs.ECS, screen *ebiten.Image) *ebiten.Image {
	entry, ok := components.MotionBlur.First(ecs.World)
	if !ok || !motionBlurActive() {
		return screen
	}
	blur := components.MotionBlur.Get(entry)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if blur.Buffer == nil || blur.Buffer.Bounds().Dx() != w || blur.Buffer.Bounds().Dy() != h {
		if blur.Buffer != nil {
			blur.Buffer.Deallocate()
		}
		blur.Buffer = ebiten.NewImage(w, h)
	}
	return blur.Buffer
}

// DrawWorld renders the fogged scene: backdrop, floors, lights and petals.
func DrawWorld(ecs *ecs.ECS, screen *ebiten.Image) {
	camera, ok := getCamera(ecs)
	if !ok {
		return
	}
	target := worldTarget(ecs, screen)
	target.Fill(cfg.Scene.FogColor)

	vw, vh := float64(target.Bounds().Dx()), float64(target.Bounds().Dy())
	lens := cfg.Camera.Lens
	focal := lens.FocalLength(vh)

	drawBackdrop(ecs, target, camera.Eye.Z, vw, vh)

	components.Floor.Each(ecs.World, func(entry *donburi.Entry) {
		drawFloor(target, components.Floor.Get(entry), camera.Eye, lens, vw, vh)
	})

	glows = glows[:0]
	components.Light.Each(ecs.World, func(entry *donburi.Entry) {
		light := components.Light.Get(entry)
		sx, sy, depth, ok := lens.Project(light.Position, camera.Eye, vw, vh)
		if !ok {
			return
		}
		radius := cfg.Scene.LightRadius * math.Sqrt(light.Intensity) * focal / depth
		radius = math.Min(radius, cfg.Scene.MaxLightSize)
		fog := gamemath.FogExp2(cfg.Scene.FogDensity, depth) / (1 + 0.05*light.Decay*depth)
		glows = append(glows, glow{
			x:      float32(sx),
			y:      float32(sy),
			radius: float32(radius),
			depth:  depth,
			color:  fade(light.Color, fog),
		})
	})
	sort.Slice(glows, func(i, j int) bool { return glows[i].depth > glows[j].depth })
	for _, g := range glows {
		halo := g.color
		halo.A /= 4
		halo.R, halo.G, halo.B = halo.R/4, halo.G/4, halo.B/4
		vector.FillCircle(target, g.x, g.y, g.radius, halo, true)
		vector.FillCircle(target, g.x, g.y, g.radius/4, g.color, true)
	}

	components.Petal.Each(ecs.World, func(entry *donburi.Entry) {
		drawPetal(target, components.Petal.Get(entry), camera.Eye, lens, vw, vh)
	})
}

// drawBackdrop lays the horizon strip along the bottom of the view, scrolling
// it slowly against the camera so it reads as far away.
func drawBackdrop(ecs *ecs.ECS, target *ebiten.Image, axis, vw, vh float64) {
	entry, ok := components.Scene.First(ecs.World)
	if !ok {
		return
	}
	scene := components.Scene.Get(entry).Scene
	if scene == nil || scene.Backdrop == nil {
		return
	}
	bw := float64(scene.Backdrop.Bounds().Dx())
	bh := float64(scene.Backdrop.Bounds().Dy())
	if bw == 0 || bh == 0 {
		return
	}
	scale := vh / 4 / bh
	tileW := bw * scale
	shift := math.Mod(-axis*4, tileW)
	if shift > 0 {
		shift -= tileW
	}
	for x := shift; x < vw; x += tileW {
		backdropOp.GeoM.Reset()
		backdropOp.GeoM.Scale(scale, scale)
		backdropOp.GeoM.Translate(x, vh-bh*scale)
		backdropOp.ColorScale.Reset()
		backdropOp.ColorScale.ScaleAlpha(0.8)
		target.DrawImage(scene.Backdrop, backdropOp)
	}
}

// drawFloor fills the projected top face of a floor box.
func drawFloor(target *ebiten.Image, floor *components.FloorData, eye gamemath.Vec3, lens gamemath.Lens, vw, vh float64) {
	top := floor.Position.Y + floor.Size.Y/2
	hx, hz := floor.Size.X/2, floor.Size.Z/2
	corners := [4]gamemath.Vec3{
		{X: floor.Position.X - hx, Y: top, Z: floor.Position.Z - hz},
		{X: floor.Position.X + hx, Y: top, Z: floor.Position.Z - hz},
		{X: floor.Position.X + hx, Y: top, Z: floor.Position.Z + hz},
		{X: floor.Position.X - hx, Y: top, Z: floor.Position.Z + hz},
	}

	var path vector.Path
	for i, c := range corners {
		sx, sy, _, ok := lens.Project(c, eye, vw, vh)
		if !ok {
			return
		}
		if i == 0 {
			path.MoveTo(float32(sx), float32(sy))
		} else {
			path.LineTo(float32(sx), float32(sy))
		}
	}
	path.Close()

	depth := floor.Position.X - eye.X
	c := mixFog(floor.Color, cfg.Scene.FogColor, gamemath.FogExp2(cfg.Scene.FogDensity, depth))
	r, g, b, a := float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR, vs[i].ColorG, vs[i].ColorB, vs[i].ColorA = r, g, b, a
	}
	target.DrawTriangles(vs, is, solidSource(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func drawPetal(target *ebiten.Image, petal *components.PetalData, eye gamemath.Vec3, lens gamemath.Lens, vw, vh float64) {
	sx, sy, depth, ok := lens.Project(petal.Position, eye, vw, vh)
	if !ok {
		return
	}
	frameIndex := 0
	if petal.Flipbook != nil {
		frameIndex = petal.Flipbook.Frame()
	}
	frame := assets.PetalFrame(frameIndex)

	size := cfg.Petals.Size * petal.Scale * lens.FocalLength(vh) / depth
	scale := size / assets.PetalFrameSize
	half := float64(assets.PetalFrameSize) / 2

	petalDrawOp.GeoM.Reset()
	petalDrawOp.GeoM.Translate(-half, -half)
	petalDrawOp.GeoM.Rotate(petal.Rotation)
	petalDrawOp.GeoM.Scale(scale, scale)
	petalDrawOp.GeoM.Translate(sx, sy)
	petalDrawOp.ColorScale.Reset()
	petalDrawOp.ColorScale.ScaleAlpha(float32(gamemath.FogExp2(cfg.Scene.FogDensity, depth)))
	target.DrawImage(frame, petalDrawOp)
}

// mixFog blends c toward fog, keeping visibility (1 = no fog) of c.
func mixFog(c, fog color.RGBA, visibility float64) color.RGBA {
	v := math.Max(0, math.Min(1, visibility))
	mix := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a)*v + float64(b)*(1-v)))
	}
	return color.RGBA{R: mix(c.R, fog.R), G: mix(c.G, fog.G), B: mix(c.B, fog.B), A: 255}
}

// fade scales a colour and its alpha by k as premultiplied colour.
func fade(c color.RGBA, k float64) color.RGBA {
	k = math.Max(0, math.Min(1, k))
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: uint8(float64(c.A) * k),
	}
}

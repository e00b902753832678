package factory

import (
	"math"
	"math/rand/v2"

	"github.com/automoto/worldview/archetypes"
	"github.com/automoto/worldview/assets"
	"github.com/automoto/worldview/assets/animations"
	"github.com/automoto/worldview/components"
	"github.com/automoto/worldview/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// petalFlipTicks is how long a petal shows each atlas frame.
const petalFlipTicks = 12

// CreatePetals spawns count petals scattered through region.
func CreatePetals(ecs *ecs.ECS, region assets.PetalRegion, count int, rng *rand.Rand) []*donburi.Entry {
	petals := make([]*donburi.Entry, 0, count)
	for i := 0; i < count; i++ {
		petal := archetypes.Petal.Spawn(ecs)
		components.Petal.SetValue(petal, NewPetal(region, rng))
		petals = append(petals, petal)
	}
	return petals
}

// NewPetal builds a petal at a random spot in region with a random atlas
// variant, rotation and scale.
func NewPetal(region assets.PetalRegion, rng *rand.Rand) components.PetalData {
	p := components.PetalData{
		Region:   region,
		Rotation: rng.Float64() * math.Pi,
		Scale:    rng.Float64()*0.5 + 0.5,
		Flipbook: animations.NewFlipbook(0, assets.PetalFrameCount-1, petalFlipTicks+rng.IntN(petalFlipTicks), rng.IntN(assets.PetalFrameCount)),
	}
	p.Position = RandomPetalPosition(region, rng)
	return p
}

// RandomPetalPosition picks a respawn point in region. The vertical pick
// overshoots the region up to ten times its height, so petals start at
// staggered heights above it.
func RandomPetalPosition(region assets.PetalRegion, rng *rand.Rand) gamemath.Vec3 {
	return gamemath.Vec3{
		X: gamemath.Lerp(region.Min.X, region.Max.X, rng.Float64()),
		Y: gamemath.Lerp(region.Min.Y, region.Max.Y, rng.Float64()*10),
		Z: gamemath.Lerp(region.Min.Z, region.Max.Z, rng.Float64()),
	}
}

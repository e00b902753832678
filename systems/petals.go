package systems

import (
	"math"
	"math/rand/v2"

	"github.com/automoto/worldview/components"
	cfg "github.com/automoto/worldview/config"
	"github.com/automoto/worldview/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var petalRand = rand.New(rand.NewPCG(0x5eed, 0x9e7a1))

// UpdatePetals drifts every petal one tick and respawns the ones that fell
// out of the scene.
func UpdatePetals(ecs *ecs.ECS) {
	components.Petal.Each(ecs.World, func(entry *donburi.Entry) {
		StepPetal(components.Petal.Get(entry), cfg.Petals, petalRand)
	})
}

// StepPetal applies one tick of fall, wind drift and sway to p.
func StepPetal(p *components.PetalData, c cfg.PetalConfig, rng *rand.Rand) {
	p.Position.Y -= c.FallSpeed
	p.Position.X += c.DriftX
	p.Position.Z += c.DriftZ
	p.Rotation += math.Sin(p.Position.Y*0.1) * c.SwayRate
	if p.Flipbook != nil {
		p.Flipbook.Update()
	}

	if p.Position.Y <= c.ResetY {
		p.Position = factory.RandomPetalPosition(p.Region, rng)
	}
}

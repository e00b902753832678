package factory

import (
	"log"

	"github.com/automoto/worldview/archetypes"
	"github.com/automoto/worldview/assets"
	"github.com/automoto/worldview/components"
	cfg "github.com/automoto/worldview/config"
	"github.com/automoto/worldview/fonts"
	"github.com/automoto/worldview/overlay"
	"github.com/automoto/worldview/ui"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateOverlay spawns the overlay layer and registers one card per spawn,
// in file order. The layer is bound to camera straight away.
func CreateOverlay(ecs *ecs.ECS, camera overlay.Camera, cards []assets.CardSpawn) (*donburi.Entry, error) {
	titleFace, err := fonts.Face(cfg.Overlay.FontSize + 4)
	if err != nil {
		return nil, err
	}
	bodyFace, err := fonts.Face(cfg.Overlay.FontSize)
	if err != nil {
		return nil, err
	}
	style := ui.CardStyle{
		TitleFace:   titleFace,
		BodyFace:    bodyFace,
		Padding:     cfg.Overlay.CardPadding,
		MaxWidth:    cfg.Overlay.CardMaxWidth,
		LineSpacing: cfg.Overlay.LineSpacing,
		Background:  cfg.Overlay.CardColor,
		Hover:       cfg.Overlay.CardHover,
		TextColor:   cfg.Overlay.TextColor,
		LinkColor:   cfg.Overlay.LinkColor,
	}

	layer := overlay.NewLayer(cfg.Overlay.PixelsPerUnit)
	data := components.OverlayData{Layer: layer}
	for _, spawn := range cards {
		card := ui.NewTextCard(spawn.Title, spawn.Body, spawn.Link, style)
		card.OnActivate = openLink

		spec := overlay.Spec{
			X: overlay.Constant(spawn.X),
			Y: overlay.Constant(spawn.Y),
			Z: overlay.Constant(spawn.Z),
		}
		if spawn.Bob > 0 {
			bob := ui.NewBob(spawn.Y, spawn.Bob, cfg.Overlay.BobSeconds)
			spec.Y = overlay.Dynamic(bob)
			data.Bobs = append(data.Bobs, bob)
		}
		layer.Register(card, spec)
	}

	if err := layer.Bind(camera); err != nil {
		return nil, err
	}

	entry := archetypes.Overlay.Spawn(ecs)
	components.Overlay.SetValue(entry, data)
	return entry, nil
}

func openLink(link string) {
	if err := ui.OpenLink(link); err != nil {
		log.Printf("Warning: Could not open %s: %v", link, err)
	}
}

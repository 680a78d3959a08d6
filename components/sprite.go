package components

import (
	"github.com/automoto/windowwalker/shared/motion"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// SpritesData is the frame set shared by every walker.
type SpritesData struct {
	Set    motion.SpriteSet[*ebiten.Image]
	Width  float64
	Height float64
}

var Sprites = donburi.NewComponentType[SpritesData]()

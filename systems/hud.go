package systems

import (
	"fmt"

	cfg "github.com/automoto/windowwalker/config"
	"github.com/automoto/windowwalker/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // freetype faces need text v1
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const hudMargin = 10

// DrawHUD shows the pause banner in the bottom-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Paused {
		return
	}

	msg := "PAUSED  (P resume, N step, R reset)"
	if n := len(WalkerStates(ecs)); n > 1 {
		msg = fmt.Sprintf("PAUSED  %d walkers  (P resume, N step, R reset)", n)
	}

	h := screen.Bounds().Dy()
	vector.FillRect(screen, hudMargin, float32(h-hudMargin-24), float32(len(msg)*8+12), 24, cfg.BlackOverlay, false)
	text.Draw(screen, msg, fonts.Regular.Get(), hudMargin+6, h-hudMargin-7, cfg.White)
}

package systems

import (
	"log"

	"github.com/automoto/windowwalker/components"
	cfg "github.com/automoto/windowwalker/config"
	"github.com/automoto/windowwalker/core"
	"github.com/automoto/windowwalker/desktop"
	"github.com/automoto/windowwalker/shared/motion"
	"github.com/automoto/windowwalker/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateWalkers advances each walker once every TickInterval worth of
// frames. A failed window query keeps the walker where it is until the
// next tick.
func UpdateWalkers(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	step := settings.StepRequested
	settings.StepRequested = false

	if settings.Paused && !step {
		return
	}

	framesPerTick := core.FramesPerTick(cfg.Walker.TickInterval, ebiten.TPS())

	tags.Walker.Each(ecs.World, func(e *donburi.Entry) {
		w := components.Walker.Get(e)
		if !settings.Paused {
			w.Clock++
			if w.Clock < framesPerTick {
				return
			}
		}
		w.Clock = 0

		if err := w.Tick(); err != nil {
			log.Printf("[walker %d] tick skipped: %v", w.Index, err)
		}
	})
}

// ResetWalkers sends every walker back to the re-entry origin.
func ResetWalkers(ecs *ecs.ECS) {
	tags.Walker.Each(ecs.World, func(e *donburi.Entry) {
		w := components.Walker.Get(e)
		w.Reset()
		w.Clock = 0
	})
	ShowMessage(ecs, "walkers reset", false)
}

// ApplyWalkerConfig pushes the current walker config into every walker
// and the shared sprite size. The re-entry origin is recomputed from the
// desktop bounds.
func ApplyWalkerConfig(ecs *ecs.ECS) {
	d := GetDesktop(ecs)
	if d == nil {
		return
	}
	params := cfg.Walker.Params(desktop.Origin(d.Bounds))
	tags.Walker.Each(ecs.World, func(e *donburi.Entry) {
		components.Walker.Get(e).SetParams(params)
	})

	if entry, ok := components.Sprites.First(ecs.World); ok {
		sprites := components.Sprites.Get(entry)
		sprites.Width = float64(cfg.Walker.FrameWidth)
		sprites.Height = float64(cfg.Walker.FrameHeight)
	}
}

// WalkerStates returns a snapshot of every walker's state in spawn order.
func WalkerStates(ecs *ecs.ECS) []motion.State {
	var states []motion.State
	tags.Walker.Each(ecs.World, func(e *donburi.Entry) {
		states = append(states, components.Walker.Get(e).State())
	})
	return states
}

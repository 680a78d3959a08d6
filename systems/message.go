package systems

import (
	"github.com/automoto/windowwalker/components"
	cfg "github.com/automoto/windowwalker/config"
	"github.com/automoto/windowwalker/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // freetype faces need text v1
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// ShowMessage puts a notice at the top of the screen, replacing any
// notice already showing.
func ShowMessage(ecs *ecs.ECS, msg string, isError bool) {
	state := getOrCreateMessageState(ecs)
	state.Text = msg
	state.IsError = isError
	state.DisplayTimer = cfg.Message.DisplayFrames
}

// UpdateMessage counts down the active notice
func UpdateMessage(ecs *ecs.ECS) {
	state := getOrCreateMessageState(ecs)
	if state.DisplayTimer == 0 {
		return
	}
	state.DisplayTimer--
	if state.DisplayTimer == 0 {
		state.Text = ""
	}
}

// DrawMessage renders the active notice at the top center of the screen
func DrawMessage(ecs *ecs.ECS, screen *ebiten.Image) {
	state := getOrCreateMessageState(ecs)
	if state.DisplayTimer == 0 || state.Text == "" {
		return
	}

	face := fonts.Regular.Get()
	bounds := text.BoundString(face, state.Text) //nolint:staticcheck // freetype faces need text v1

	padding := float32(cfg.Message.BoxPadding)
	boxWidth := float32(bounds.Dx()) + padding*2
	boxHeight := float32(bounds.Dy()) + padding*2
	boxX := (float32(screen.Bounds().Dx()) - boxWidth) / 2
	boxY := float32(cfg.Message.TopMargin)

	vector.FillRect(screen, boxX, boxY, boxWidth, boxHeight, cfg.Message.BoxColor, false)

	textColor := cfg.Message.TextColor
	if state.IsError {
		textColor = cfg.Message.ErrorColor
	}
	text.Draw(screen, state.Text, face, int(boxX+padding), int(boxY+padding)+bounds.Dy(), textColor)
}

func getOrCreateMessageState(ecs *ecs.ECS) *components.MessageStateData {
	entry, ok := components.MessageState.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.MessageState))
	}
	return components.MessageState.Get(entry)
}

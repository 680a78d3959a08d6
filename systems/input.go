package systems

import (
	"github.com/automoto/windowwalker/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// keyBindings maps each action to the keys that trigger it.
var keyBindings = map[components.ActionID][]ebiten.Key{
	components.ActionPause: {ebiten.KeyP, ebiten.KeySpace},
	components.ActionStep:  {ebiten.KeyN},
	components.ActionReset: {ebiten.KeyR},
	components.ActionDebug: {ebiten.KeyF1, ebiten.KeyD},
	components.ActionQuit:  {ebiten.KeyEscape, ebiten.KeyQ},
}

// UpdateInput polls raw input and updates the Input component.
// Must run BEFORE the systems that read actions.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [components.ActionCount]bool{}

	for actionID, keys := range keyBindings {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		input.Current[components.ActionToggleWindow] = true
	}
	input.CursorX, input.CursorY = ebiten.CursorPosition()
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id components.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

package systems

import (
	"log"
	"os"

	"github.com/automoto/windowwalker/components"
	cfg "github.com/automoto/windowwalker/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings applies the keyboard toggles. Runs after UpdateInput.
func UpdateSettings(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	input := getOrCreateInput(ecs)

	if GetAction(input, components.ActionPause).JustPressed {
		SetPaused(ecs, !settings.Paused)
	}
	if GetAction(input, components.ActionStep).JustPressed {
		RequestStep(ecs)
	}
	if GetAction(input, components.ActionReset).JustPressed {
		ResetWalkers(ecs)
	}
	if GetAction(input, components.ActionDebug).JustPressed {
		settings.Debug = !settings.Debug
		if settings.Debug {
			ShowMessage(ecs, "debug overlay on", false)
		}
	}
	if GetAction(input, components.ActionQuit).JustPressed || settings.QuitRequested {
		if settings.Watcher != nil {
			_ = settings.Watcher.Close()
		}
		os.Exit(0)
	}
}

func SetPaused(ecs *ecs.ECS, paused bool) {
	settings := GetOrCreateSettings(ecs)
	settings.Paused = paused
	log.Printf("[walker] paused=%v", paused)
}

// RequestStep advances every walker by one motion tick on the next update.
// It only has an effect while paused.
func RequestStep(ecs *ecs.ECS) {
	GetOrCreateSettings(ecs).StepRequested = true
}

func RequestQuit(ecs *ecs.ECS) {
	GetOrCreateSettings(ecs).QuitRequested = true
}

func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	if _, ok := components.Settings.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(ent, components.SettingsData{
			Debug: cfg.Debug.Enabled,
		})
	}

	ent, _ := components.Settings.First(ecs.World)
	return components.Settings.Get(ent)
}

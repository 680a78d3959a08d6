package components

import (
	"github.com/automoto/windowwalker/config"
	"github.com/yohamta/donburi"
)

// SettingsData stores the runtime toggles of a scene
type SettingsData struct {
	Paused        bool
	Debug         bool
	StepRequested bool // advance one motion tick while paused
	QuitRequested bool

	PointerCaptured bool // the cursor is over UI, not the desktop

	Watcher *config.Watcher // nil when no config file was given
}

var Settings = donburi.NewComponentType[SettingsData]()

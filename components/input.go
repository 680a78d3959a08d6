package components

import (
	"github.com/yohamta/donburi"
)

// ActionID represents a logical user action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionPause
	ActionStep
	ActionReset
	ActionDebug
	ActionQuit
	ActionToggleWindow
	ActionCount // Must be last - used for array sizing
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
type InputData struct {
	Current  [ActionCount]bool
	Previous [ActionCount]bool

	CursorX, CursorY int
}

var Input = donburi.NewComponentType[InputData]()

package components

import "github.com/yohamta/donburi"

// MessageStateData is a singleton holding the notice on screen
type MessageStateData struct {
	Text         string
	IsError      bool
	DisplayTimer int // frames remaining; 0 hides the notice
}

var MessageState = donburi.NewComponentType[MessageStateData]()

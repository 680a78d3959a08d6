package tags

import "github.com/yohamta/donburi"

var (
	Walker  = donburi.NewTag().SetName("Walker")
	Desktop = donburi.NewTag().SetName("Desktop")
)

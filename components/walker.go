package components

import (
	"github.com/automoto/windowwalker/core"
	"github.com/yohamta/donburi"
)

type WalkerData struct {
	*core.Walker
	Index int // spawn order, used for debug labels
	Clock int // frames since the last motion tick
}

var Walker = donburi.NewComponentType[WalkerData]()

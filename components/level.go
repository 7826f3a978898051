package components

import (
	"github.com/automoto/engine2d/shared/leveldata"
	"github.com/yohamta/donburi"
)

// LevelData is the level sequence a scene plays, in order.
type LevelData struct {
	Source string
	Levels []*leveldata.Level
}

var Level = donburi.NewComponentType[LevelData]()

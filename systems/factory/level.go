package factory

import (
	"github.com/automoto/engine2d/archetypes"
	"github.com/automoto/engine2d/components"
	"github.com/automoto/engine2d/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateLevel(ecs *ecs.ECS, source string, levels []*leveldata.Level) *donburi.Entry {
	if len(levels) == 0 {
		panic("no levels found in " + source)
	}

	level := archetypes.Level.Spawn(ecs)
	components.Level.Set(level, &components.LevelData{
		Source: source,
		Levels: levels,
	})
	return level
}

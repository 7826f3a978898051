package factory

import (
	"github.com/automoto/engine2d/archetypes"
	"github.com/automoto/engine2d/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBody spawns the entity drawn for body index. Body 0 is the player.
func CreateBody(ecs *ecs.ECS, index int) *donburi.Entry {
	a := archetypes.Enemy
	if index == 0 {
		a = archetypes.Player
	}
	body := a.Spawn(ecs)
	components.Body.SetValue(body, components.BodyData{Index: index})
	return body
}

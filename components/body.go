package components

import "github.com/yohamta/donburi"

// BodyData links an entity to a body of the simulated world.
type BodyData struct {
	Index int
}

var Body = donburi.NewComponentType[BodyData]()

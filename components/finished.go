package components

import "github.com/yohamta/donburi"

// FinishedData stores the state of the all-levels-complete overlay
type FinishedData struct {
	IsFinished bool
	Ticks      uint64 // world tick when the run ended
}

var Finished = donburi.NewComponentType[FinishedData]()

package components

import "github.com/yohamta/donburi"

// SettingsData holds runtime toggles.
type SettingsData struct {
	Debug     bool
	ShowCells bool
}

var Settings = donburi.NewComponentType[SettingsData]()

package systems

import (
	"github.com/automoto/engine2d/components"
	cfg "github.com/automoto/engine2d/config"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the debug overlay toggle.
func UpdateSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
		log.Debug("debug overlay", "enabled", settings.Debug)
	}
}

// GetOrCreateSettings returns the singleton Settings component, seeded from
// config.Debug on first use.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	if _, ok := components.Settings.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(ent, components.SettingsData{
			Debug:     cfg.Debug.Enabled,
			ShowCells: cfg.Debug.ShowCells,
		})
	}

	ent, _ := components.Settings.First(e.World)
	return components.Settings.Get(ent)
}

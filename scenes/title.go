package scenes

import (
	"sync"

	cfg "github.com/automoto/engine2d/config"
	"github.com/automoto/engine2d/systems"
	"github.com/automoto/engine2d/ui"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
	Quit()
}

// TitleScene displays the title menu
type TitleScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	titleUI      *ui.TitleUI
	status       string
	next         interface{}
	once         sync.Once
}

// NewTitleScene creates a new title scene
func NewTitleScene(sc SceneChanger) *TitleScene {
	return &TitleScene{sceneChanger: sc}
}

// NewTitleSceneWithStatus opens the title screen showing msg, used when a
// scene could not start.
func NewTitleSceneWithStatus(sc SceneChanger, msg string) *TitleScene {
	return &TitleScene{sceneChanger: sc, status: msg}
}

func (ts *TitleScene) Update() {
	ts.once.Do(ts.configure)
	ts.ecs.Update()
	if ts.titleUI != nil {
		ts.titleUI.Update()
	}

	if systems.ActionJustPressed(ts.ecs, cfg.ActionMenuSelect) && ts.next == nil {
		ts.next = NewWorldScene(ts.sceneChanger, SourceLevels)
	}
	if systems.ActionJustPressed(ts.ecs, cfg.ActionMenuBack) {
		ts.sceneChanger.Quit()
		return
	}

	if ts.next != nil {
		log.Debug("leaving title screen")
		ts.sceneChanger.ChangeScene(ts.next)
	}
}

func (ts *TitleScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Menu.BackgroundColor)

	if ts.titleUI == nil {
		return
	}
	ts.titleUI.UI.Draw(screen)
}

func (ts *TitleScene) configure() {
	ts.ecs = ecs.NewECS(donburi.NewWorld())
	ts.ecs.AddSystem(systems.UpdateInput)
	// Keys still held from the previous scene must not count as new presses.
	systems.UpdateInput(ts.ecs)

	titleUI, err := ui.NewTitleUI(
		func() { ts.next = NewWorldScene(ts.sceneChanger, SourceLevels) },
		func() { ts.next = NewWorldScene(ts.sceneChanger, SourceDemo) },
		func() { ts.sceneChanger.Quit() },
	)
	if err != nil {
		log.Error("title menu unavailable", "error", err)
		return
	}
	titleUI.SetStatus(ts.status)
	ts.titleUI = titleUI
}

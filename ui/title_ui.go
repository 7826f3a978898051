package ui

import (
	"bytes"
	"fmt"

	"github.com/automoto/engine2d/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// TitleUI is the title screen menu.
type TitleUI struct {
	UI *ebitenui.UI

	OnPlay func()
	OnDemo func()
	OnQuit func()

	statusLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewTitleUI(onPlay, onDemo, onQuit func()) (*TitleUI, error) {
	ui := &TitleUI{
		OnPlay: onPlay,
		OnDemo: onDemo,
		OnQuit: onQuit,
	}
	if err := ui.loadFonts(); err != nil {
		return nil, err
	}
	ui.buildUI()
	return ui, nil
}

func (ui *TitleUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("failed to load UI font: %w", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 32}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 14}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 10}
	return nil
}

func (ui *TitleUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(config.Menu.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(config.Menu.Title, &ui.titleFace, &widget.LabelColor{
			Idle: config.Menu.TitleColor,
		}),
	))
	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(config.Menu.Subtitle, &ui.normalFace, &widget.LabelColor{
			Idle: config.Menu.ButtonText,
		}),
	))

	contentContainer.AddChild(ui.button("Play", func() { call(ui.OnPlay) }))
	contentContainer.AddChild(ui.button("AABB demo", func() { call(ui.OnDemo) }))
	contentContainer.AddChild(ui.button("Quit", func() { call(ui.OnQuit) }))

	ui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.smallFace, &widget.LabelColor{
			Idle: config.Red,
		}),
	)
	contentContainer.AddChild(ui.statusLabel)

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *TitleUI) button(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(160, 28)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(config.Menu.ButtonIdle),
			Hover:   image.NewNineSliceColor(config.Menu.ButtonHover),
			Pressed: image.NewNineSliceColor(config.Menu.ButtonPressed),
		}),
		widget.ButtonOpts.Text(label, &ui.normalFace, &widget.ButtonTextColor{
			Idle:    config.Menu.ButtonText,
			Hover:   config.Menu.ButtonText,
			Pressed: config.Menu.ButtonText,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func call(fn func()) {
	if fn != nil {
		fn()
	}
}

// SetStatus shows an error or notice under the buttons.
func (ui *TitleUI) SetStatus(msg string) {
	if ui.statusLabel != nil {
		ui.statusLabel.Label = msg
	}
}

func (ui *TitleUI) Update() {
	ui.UI.Update()
}

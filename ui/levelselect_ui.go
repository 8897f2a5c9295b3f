package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"log"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	cfg "github.com/automoto/mazerunner/config"
	"github.com/automoto/mazerunner/systems"
)

// LevelSelectUI lists the catalog levels with their best grades. Levels past
// the unlocked one are shown disabled.
type LevelSelectUI struct {
	UI *ebitenui.UI

	OnPlay     func(levelIndex int)
	OnPlayFile func(path string)
	OnQuit     func()

	levels   []cfg.LevelEntry
	progress *systems.SavedProgress

	fileInput   *widget.TextInput
	statusLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewLevelSelectUI(levels []cfg.LevelEntry, progress *systems.SavedProgress, onPlay func(int), onPlayFile func(string), onQuit func()) *LevelSelectUI {
	ui := &LevelSelectUI{
		OnPlay:     onPlay,
		OnPlayFile: onPlayFile,
		OnQuit:     onQuit,
		levels:     levels,
		progress:   progress,
	}
	ui.loadFonts()
	ui.buildUI()
	return ui
}

func (ui *LevelSelectUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 28}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 16}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 12}
}

func (ui *LevelSelectUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text(cfg.C.Title, &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	contentContainer.AddChild(ui.buildLevelList())
	contentContainer.AddChild(ui.buildFilePanel())

	ui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 200, 100, 255},
		}),
	)
	contentContainer.AddChild(ui.statusLabel)

	contentContainer.AddChild(ui.buildButtons())

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *LevelSelectUI) buildLevelList() *widget.Container {
	padding := widget.Insets{Top: 8, Bottom: 8, Left: 10, Right: 10}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{30, 30, 45, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	for i, entry := range ui.levels {
		label, unlocked := LevelLabel(i, entry, ui.progress)
		levelIndex := i
		btn := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(320, 30)),
			widget.ButtonOpts.Image(&widget.ButtonImage{
				Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 90, 255}),
				Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 120, 255}),
				Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 70, 255}),
				Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
			}),
			widget.ButtonOpts.Text(label, &ui.normalFace, &widget.ButtonTextColor{
				Idle:     color.RGBA{255, 255, 255, 255},
				Hover:    color.RGBA{255, 255, 200, 255},
				Pressed:  color.RGBA{200, 200, 150, 255},
				Disabled: color.RGBA{100, 100, 100, 255},
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if ui.OnPlay != nil {
					ui.OnPlay(levelIndex)
				}
			}),
		)
		if !unlocked {
			btn.GetWidget().Disabled = true
		}
		panel.AddChild(btn)
	}

	return panel
}

func (ui *LevelSelectUI) buildFilePanel() *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	fileLabel := widget.NewLabel(
		widget.LabelOpts.Text("Level file:", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	)
	row.AddChild(fileLabel)

	ui.fileInput = widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(180, 22)),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     image.NewNineSliceColor(color.RGBA{50, 50, 70, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 50, 255}),
		}),
		widget.TextInputOpts.Face(&ui.smallFace),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          color.RGBA{255, 255, 255, 255},
			Disabled:      color.RGBA{128, 128, 128, 255},
			Caret:         color.RGBA{255, 255, 255, 255},
			DisabledCaret: color.RGBA{128, 128, 128, 255},
		}),
		widget.TextInputOpts.Placeholder("maps/custom.tmx"),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(4)),
	)
	row.AddChild(ui.fileInput)

	loadBtn := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(70, 24)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     image.NewNineSliceColor(color.RGBA{40, 100, 40, 255}),
			Hover:    image.NewNineSliceColor(color.RGBA{60, 140, 60, 255}),
			Pressed:  image.NewNineSliceColor(color.RGBA{30, 80, 30, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 50, 40, 255}),
		}),
		widget.ButtonOpts.Text("Load", &ui.smallFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    color.RGBA{200, 255, 200, 255},
			Pressed:  color.RGBA{150, 200, 150, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			path := strings.TrimSpace(ui.fileInput.GetText())
			if path == "" {
				ui.SetStatus("Enter a .properties or .tmx path")
				return
			}
			if ui.OnPlayFile != nil {
				ui.OnPlayFile(path)
			}
		}),
	)
	row.AddChild(loadBtn)

	return row
}

func (ui *LevelSelectUI) buildButtons() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	quitButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(80, 28)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		}),
		widget.ButtonOpts.Text("Quit", &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 200, 200, 255},
			Pressed: color.RGBA{200, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnQuit != nil {
				ui.OnQuit()
			}
		}),
	)
	container.AddChild(quitButton)

	return container
}

// LevelLabel returns the button text for a catalog level and whether it can
// be started.
func LevelLabel(index int, entry cfg.LevelEntry, progress *systems.SavedProgress) (string, bool) {
	name := entry.Name
	if name == "" {
		name = entry.File
	}
	if !progress.IsUnlocked(index) {
		return fmt.Sprintf("%d. %s  (locked)", index+1, name), false
	}
	grade := progress.BestGrade(index)
	if grade == "" {
		grade = "-"
	}
	return fmt.Sprintf("%d. %s  [%s]", index+1, name, grade), true
}

func (ui *LevelSelectUI) SetStatus(msg string) {
	if ui.statusLabel != nil {
		ui.statusLabel.Label = msg
	}
}

func (ui *LevelSelectUI) Update() {
	ui.UI.Update()
}

package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"

	"github.com/automoto/windowwalker/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/gofont/goregular"
)

// ControlPanel is the sandbox's on-screen pause, step and reset controls.
type ControlPanel struct {
	UI  *ebitenui.UI
	ecs *ecs.ECS

	panel       *widget.Container
	pauseButton *widget.Button
	debugButton *widget.Button
	stateLabel  *widget.Label

	normalFace text.Face
	smallFace  text.Face
}

// NewControlPanel creates the panel for the walkers in e
func NewControlPanel(e *ecs.ECS) *ControlPanel {
	cp := &ControlPanel{ecs: e}

	cp.loadFonts()
	cp.buildUI()

	return cp
}

func (cp *ControlPanel) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	cp.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
	cp.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   10,
	}
}

func (cp *ControlPanel) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Top: 6, Bottom: 6, Left: 8, Right: 8}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 220})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	buttons := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)

	cp.pauseButton = cp.button("Pause", func() {
		settings := systems.GetOrCreateSettings(cp.ecs)
		systems.SetPaused(cp.ecs, !settings.Paused)
	})
	buttons.AddChild(cp.pauseButton)
	buttons.AddChild(cp.button("Step", func() {
		systems.SetPaused(cp.ecs, true)
		systems.RequestStep(cp.ecs)
	}))
	buttons.AddChild(cp.button("Reset", func() {
		systems.ResetWalkers(cp.ecs)
	}))
	cp.debugButton = cp.button("Debug", func() {
		settings := systems.GetOrCreateSettings(cp.ecs)
		settings.Debug = !settings.Debug
	})
	buttons.AddChild(cp.debugButton)
	buttons.AddChild(cp.button("Quit", func() {
		systems.RequestQuit(cp.ecs)
	}))
	panel.AddChild(buttons)

	cp.stateLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &cp.smallFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 210, 255},
		}),
	)
	panel.AddChild(cp.stateLabel)

	hint := widget.NewLabel(
		widget.LabelOpts.Text("click a window to hide or show it", &cp.smallFace, &widget.LabelColor{
			Idle: color.RGBA{140, 140, 150, 255},
		}),
	)
	panel.AddChild(hint)

	rootContainer.AddChild(panel)
	cp.panel = panel

	cp.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (cp *ControlPanel) button(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(56, 22)),
		widget.ButtonOpts.Image(cp.buttonImage()),
		widget.ButtonOpts.Text(label, &cp.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (cp *ControlPanel) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// Update refreshes the labels and runs the ebitenui update.
func (cp *ControlPanel) Update() {
	settings := systems.GetOrCreateSettings(cp.ecs)

	if textWidget := cp.pauseButton.Text(); textWidget != nil {
		if settings.Paused {
			textWidget.Label = "Resume"
		} else {
			textWidget.Label = "Pause"
		}
	}
	if textWidget := cp.debugButton.Text(); textWidget != nil {
		if settings.Debug {
			textWidget.Label = "Debug*"
		} else {
			textWidget.Label = "Debug"
		}
	}

	lines := make([]string, 0, 4)
	for i, s := range systems.WalkerStates(cp.ecs) {
		lines = append(lines, fmt.Sprintf("#%d %v", i, s))
	}
	cp.stateLabel.Label = strings.Join(lines, "\n")

	cp.UI.Update()
}

// Contains reports whether a screen point is over the panel, so clicks on
// it are not treated as window toggles.
func (cp *ControlPanel) Contains(x, y int) bool {
	r := cp.panel.GetWidget().Rect
	return x >= r.Min.X && x < r.Max.X && y >= r.Min.Y && y < r.Max.Y
}

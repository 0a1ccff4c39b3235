package ui

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	cfg "github.com/automoto/stackdrop/config"
)

// GameOverUI holds the ebitenui name entry form shown when the final
// score earns a ranking spot
type GameOverUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnSubmit func(name string)

	// Widget references for updates
	nameInput *widget.TextInput
	saveBtn   *widget.Button

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face

	// Initialization tracking
	initialized bool
}

// NewGameOverUI creates the name entry form with ebitenui
func NewGameOverUI(onSubmit func(name string)) *GameOverUI {
	gui := &GameOverUI{
		OnSubmit: onSubmit,
	}

	gui.loadFonts()
	gui.buildUI()

	return gui
}

func (gui *GameOverUI) loadFonts() {
	// Load fonts using go fonts
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	// Store as text.Face interface for ebitenui compatibility
	gui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   20,
	}
	gui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   14,
	}
}

func (gui *GameOverUI) buildUI() {
	// Root container fills the screen but stays transparent so the
	// results screen shows through behind the form
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	// Centered panel holding the form
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{30, 30, 45, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("NEW HIGH SCORE", &gui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 100, 255},
		}),
	)
	panel.AddChild(titleLabel)

	promptLabel := widget.NewLabel(
		widget.LabelOpts.Text("Enter your name:", &gui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	)
	panel.AddChild(promptLabel)

	gui.nameInput = widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(160, 22)),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     image.NewNineSliceColor(color.RGBA{50, 50, 70, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 50, 255}),
		}),
		widget.TextInputOpts.Face(&gui.normalFace),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          color.RGBA{255, 255, 255, 255},
			Disabled:      color.RGBA{128, 128, 128, 255},
			Caret:         color.RGBA{255, 255, 255, 255},
			DisabledCaret: color.RGBA{128, 128, 128, 255},
		}),
		widget.TextInputOpts.Placeholder("Player"),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(4)),
	)
	panel.AddChild(gui.nameInput)

	gui.saveBtn = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(120, 26)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     image.NewNineSliceColor(color.RGBA{40, 100, 40, 255}),
			Hover:    image.NewNineSliceColor(color.RGBA{60, 140, 60, 255}),
			Pressed:  image.NewNineSliceColor(color.RGBA{30, 80, 30, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 50, 40, 255}),
		}),
		widget.ButtonOpts.Text("Save", &gui.normalFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    color.RGBA{200, 255, 200, 255},
			Pressed:  color.RGBA{150, 200, 150, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if gui.OnSubmit != nil {
				gui.OnSubmit(gui.enteredName())
			}
		}),
	)
	panel.AddChild(gui.saveBtn)

	rootContainer.AddChild(panel)

	gui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
	// Note: Don't focus the input here - widgets aren't validated yet
}

// enteredName returns the typed name capped at the table's length limit
func (gui *GameOverUI) enteredName() string {
	name := gui.nameInput.GetText()
	if len(name) > cfg.GameOver.MaxNameLength {
		name = name[:cfg.GameOver.MaxNameLength]
	}
	return name
}

// Update calls the UI's Update method
func (gui *GameOverUI) Update() {
	gui.UI.Update()
	// Focus the input on first frame after widgets are validated
	if !gui.initialized {
		gui.initialized = true
		gui.nameInput.Focus(true)
	}
}

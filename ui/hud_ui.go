package ui

import (
	"bytes"
	"fmt"
	"image/color"

	cfg "github.com/automoto/pugtreats/config"
	"github.com/automoto/pugtreats/game"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// HUDUI holds the ebitenui labels for the round counters
type HUDUI struct {
	UI *ebitenui.UI

	timeLabel   *widget.Label
	treatsLabel *widget.Label
	healthLabel *widget.Label

	normalFace text.Face
}

// NewHUDUI builds the counter panel in the top-right corner.
func NewHUDUI() (*HUDUI, error) {
	hui := &HUDUI{}
	if err := hui.loadFonts(); err != nil {
		return nil, err
	}
	hui.buildUI()
	return hui, nil
}

func (hui *HUDUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return err
	}
	hui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.HUD.FontSize,
	}
	return nil
}

func (hui *HUDUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{0, 0, 0, 110})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(6)),
			widget.RowLayoutOpts.Spacing(2),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	hui.timeLabel = hui.newLabel()
	hui.treatsLabel = hui.newLabel()
	hui.healthLabel = hui.newLabel()
	panel.AddChild(hui.timeLabel)
	panel.AddChild(hui.treatsLabel)
	panel.AddChild(hui.healthLabel)

	rootContainer.AddChild(panel)

	hui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (hui *HUDUI) newLabel() *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text("", &hui.normalFace, &widget.LabelColor{
			Idle: cfg.HUD.TextColor,
		}),
	)
}

// Update refreshes the labels from a HUD snapshot and updates the UI.
func (hui *HUDUI) Update(hud game.HUDState) {
	hui.timeLabel.Label = fmt.Sprintf("Time  %.1f", hud.TimeRemaining)
	hui.treatsLabel.Label = fmt.Sprintf("Treats  %d / %d", hud.RemainingPickups, hud.TotalPickups)
	hui.healthLabel.Label = fmt.Sprintf("Health  %.0f", hud.Health)
	hui.UI.Update()
}

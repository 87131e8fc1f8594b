package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"InkBoard/internal/ink"
	"InkBoard/internal/state"
)

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.NRGBA
	OnTapped func(color.NRGBA)
}

func newColorSwatch(c color.NRGBA, tapped func(color.NRGBA)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(32, 32))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

var styleNames = []string{"Solid", "Dashed", "Dotted", "Double"}

func styleFromName(name string) ink.Style {
	switch name {
	case "Dashed":
		return ink.StyleDashed
	case "Dotted":
		return ink.StyleDotted
	case "Double":
		return ink.StyleDouble
	}
	return ink.StyleSolid
}

// --- The Main Toolbar ---
func NewToolbar(board *BoardWidget, settings *state.Settings, onExport func()) fyne.CanvasObject {
	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentCreateIcon(), func() {
			board.SetTool(ToolPen)
		}), // Pen
		widget.NewToolbarAction(theme.DeleteIcon(), func() {
			board.SetTool(ToolEraser)
		}), // Eraser
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() {
			if onExport != nil {
				onExport()
			}
		}), // Export PDF
	)

	// --- Color Palette ---
	onColorTapped := func(c color.NRGBA) {
		settings.Update(func(t *state.ToolSettings) { t.Color = c })
	}
	colorBox := container.NewHBox(
		newColorSwatch(color.NRGBA{A: 255}, onColorTapped),
		newColorSwatch(color.NRGBA{R: 255, A: 255}, onColorTapped),         // Red
		newColorSwatch(color.NRGBA{G: 255, A: 255}, onColorTapped),         // Green
		newColorSwatch(color.NRGBA{B: 255, A: 255}, onColorTapped),         // Blue
		newColorSwatch(color.NRGBA{R: 255, G: 255, A: 255}, onColorTapped), // Yellow
	)

	// --- Stroke Style ---
	styleSelect := widget.NewSelect(styleNames, func(name string) {
		settings.Update(func(t *state.ToolSettings) { t.Style = styleFromName(name) })
	})
	styleSelect.SetSelected("Solid")

	// --- Stroke Width Slider ---
	strokeSlider := widget.NewSlider(1.0, 50.0)
	strokeSlider.SetValue(float64(settings.Snapshot().BaseWidth))
	strokeSlider.OnChanged = func(val float64) {
		settings.Update(func(t *state.ToolSettings) { t.BaseWidth = float32(val) })
	}
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(120, 35)), strokeSlider)

	// --- Pressure Toggle ---
	pressureCheck := widget.NewCheck("Pressure", func(on bool) {
		settings.Update(func(t *state.ToolSettings) { t.PressureEnabled = on })
	})
	pressureCheck.SetChecked(settings.Snapshot().PressureEnabled)

	// --- Eraser Controls ---
	eraserSlider := widget.NewSlider(5.0, 100.0)
	eraserSlider.SetValue(float64(settings.Snapshot().EraserWidth))
	eraserSlider.OnChanged = func(val float64) {
		settings.Update(func(t *state.ToolSettings) { t.EraserWidth = float32(val) })
	}
	eraserContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(120, 35)), eraserSlider)

	preciseCheck := widget.NewCheck("Precise", func(on bool) {
		settings.Update(func(t *state.ToolSettings) { t.PreciseMode = on })
	})

	// --- Assemble everything ---
	return container.NewHBox(
		widget.NewLabel("Tool:"),
		tb,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colorBox,
		widget.NewSeparator(),
		widget.NewLabel("Style:"),
		styleSelect,
		widget.NewLabel("Size:"),
		sliderContainer,
		pressureCheck,
		widget.NewSeparator(),
		widget.NewLabel("Eraser:"),
		eraserContainer,
		preciseCheck,
		layout.NewSpacer(),
	)
}

package ui

import (
	"image/color"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"InkBoard/internal/erase"
	"InkBoard/internal/gesture"
	"InkBoard/internal/ink"
	"InkBoard/internal/state"
)

// Tool selects what a primary-button drag does on the board.
type Tool int

const (
	ToolPen Tool = iota
	ToolEraser
)

// previewInterval throttles preview rebuilds during a drag. Input
// samples are never dropped, only the redraw is deferred.
const previewInterval = 16 * time.Millisecond

// Mice report no pressure, so the estimator sees the resting value and
// falls back to velocity when pressure is enabled.
const mousePressure = 0.5

type BoardWidget struct {
	widget.BaseWidget
	board    *state.Board
	settings *state.Settings
	viewport *state.Viewport
	engine   *erase.Engine

	tool        Tool
	drawSess    *gesture.DrawSession
	eraseSess   *gesture.EraseSession
	cursorPos   ink.Point
	erasing     bool
	lastPreview time.Time

	OnNotice func(msg string)
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ fyne.Focusable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)

func NewBoardWidget(board *state.Board, settings *state.Settings, engine *erase.Engine) *BoardWidget {
	b := &BoardWidget{
		board:    board,
		settings: settings,
		viewport: state.NewViewport(),
		engine:   engine,
	}
	b.ExtendBaseWidget(b)
	return b
}

func (b *BoardWidget) SetTool(t Tool) {
	b.tool = t
	b.Refresh()
}

func (b *BoardWidget) Tool() Tool { return b.tool }

func (b *BoardWidget) notify(msg string) {
	if b.OnNotice != nil {
		b.OnNotice(msg)
	}
}

func (b *BoardWidget) docPos(screen fyne.Position) ink.Point {
	return b.viewport.ToDocument(ink.Pt(screen.X, screen.Y))
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	pos := b.docPos(e.Position)
	settings := b.settings.Snapshot()
	switch b.tool {
	case ToolPen:
		b.drawSess = gesture.NewDrawSession(settings, pos, time.Now(), mousePressure)
	case ToolEraser:
		b.eraseSess = gesture.NewEraseSession(settings, b.board, b.engine, b.notify, pos)
		b.cursorPos = pos
		b.erasing = true
	}
	b.lastPreview = time.Now()
	b.Refresh()
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	pos := b.docPos(e.Position)
	switch {
	case b.drawSess != nil:
		b.drawSess.Move(pos, time.Now(), mousePressure)
	case b.eraseSess != nil:
		b.eraseSess.Move(pos)
		b.cursorPos = pos
	default:
		// No gesture in flight, drag pans the viewport.
		b.viewport.PanBy(e.Dragged.DX, e.Dragged.DY)
		b.Refresh()
		return
	}
	if time.Since(b.lastPreview) >= previewInterval {
		b.lastPreview = time.Now()
		b.Refresh()
	}
}

func (b *BoardWidget) DragEnd() {}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	switch {
	case b.drawSess != nil:
		stroke, err := b.drawSess.Finish()
		b.drawSess = nil
		if err != nil {
			log.Printf("[UI] Discarding stroke: %v", err)
		} else {
			b.board.Insert(&state.StrokeElement{Stroke: stroke})
		}
	case b.eraseSess != nil:
		b.eraseSess.Finish()
		b.eraseSess = nil
		b.erasing = false
	}
	b.Refresh()
}

// CancelGesture abandons the gesture in flight without touching the board.
func (b *BoardWidget) CancelGesture() {
	if b.drawSess != nil {
		b.drawSess.Cancel()
		b.drawSess = nil
	}
	if b.eraseSess != nil {
		b.eraseSess.Cancel()
		b.eraseSess = nil
		b.erasing = false
	}
	b.Refresh()
}

func (b *BoardWidget) Scrolled(e *fyne.ScrollEvent) {
	if e.Scrolled.DY > 0 {
		b.viewport.ZoomBy(1.1)
	} else if e.Scrolled.DY < 0 {
		b.viewport.ZoomBy(1 / 1.1)
	}
	b.Refresh()
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent)    {}
func (b *BoardWidget) MouseOut()                      {}
func (b *BoardWidget) MouseMoved(*desktop.MouseEvent) {}

// TypedKey abandons the gesture in flight on Escape. The board keeps key
// focus so the cancellation works mid-drag.
func (b *BoardWidget) TypedKey(e *fyne.KeyEvent) {
	if e.Name == fyne.KeyEscape {
		b.CancelGesture()
	}
}

func (b *BoardWidget) TypedRune(rune) {}
func (b *BoardWidget) FocusGained()   {}
func (b *BoardWidget) FocusLost()     {}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: b}
	r.background = canvas.NewRectangle(color.White)
	return r
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	b := r.board
	objects := []fyne.CanvasObject{r.background}

	for _, el := range b.board.Elements() {
		faded := b.eraseSess != nil && b.eraseSess.Marked(el.ElementID())
		objects = append(objects, renderElement(el, b.viewport, faded)...)
	}

	if b.drawSess != nil {
		if preview := b.drawSess.Preview(); preview != nil {
			if prims, err := ink.BuildGeometry(preview); err == nil {
				objects = append(objects, renderPrimitives(prims, b.viewport, false)...)
			}
		}
	}

	if b.erasing {
		objects = append(objects, r.eraserCursor())
	}
	return objects
}

// eraserCursor outlines the brush footprint under the pointer.
func (r *boardWidgetRenderer) eraserCursor() fyne.CanvasObject {
	b := r.board
	settings := b.settings.Snapshot()
	rad := settings.EraserWidth / 2 * b.viewport.Zoom
	center := toScreen(b.viewport, b.cursorPos)

	cursor := canvas.NewCircle(color.Transparent)
	cursor.StrokeColor = color.Gray{Y: 100}
	cursor.StrokeWidth = 1
	cursor.Position1 = fyne.NewPos(center.X-rad, center.Y-rad)
	cursor.Position2 = fyne.NewPos(center.X+rad, center.Y+rad)
	return cursor
}

func (r *boardWidgetRenderer) Refresh() {
	canvas.Refresh(r.board)
}

func (r *boardWidgetRenderer) Destroy() {}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

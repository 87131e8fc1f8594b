package ui

import (
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"InkBoard/internal/erase"
	"InkBoard/internal/export"
	"InkBoard/internal/state"
)

func RunApp() {
	myApp := app.New()
	myWindow := myApp.NewWindow("InkBoard")
	myWindow.Resize(fyne.NewSize(1024, 768))

	boardState := state.NewBoard()
	settings := state.NewSettings()
	engine := erase.NewEngine()

	board := NewBoardWidget(boardState, settings, engine)

	statusBar := widget.NewLabel("Ready")
	board.OnNotice = func(msg string) {
		statusBar.SetText(msg)
	}

	onExport := func() {
		name := fmt.Sprintf("inkboard-%s.pdf", time.Now().Format("20060102-150405"))
		if err := export.WritePDF(name, boardState); err != nil {
			log.Printf("[EXPORT] PDF export failed: %v", err)
			statusBar.SetText("Export failed")
			return
		}
		statusBar.SetText("Exported " + name)
	}

	toolbar := NewToolbar(board, settings, onExport)

	content := container.NewBorder(toolbar, statusBar, nil, nil, board)

	myWindow.SetContent(content)
	myWindow.Canvas().Focus(board)
	myWindow.ShowAndRun()
}

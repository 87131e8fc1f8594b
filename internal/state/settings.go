package state

import (
	"image/color"
	"sync"

	"InkBoard/internal/ink"
)

// ToolSettings is the snapshot a gesture reads at pointer-down. Settings may
// change mid-gesture in the store; the snapshot keeps the gesture consistent.
type ToolSettings struct {
	BaseWidth       float32
	Color           color.NRGBA
	Style           ink.Style
	Brush           ink.BrushShape
	PressureEnabled bool

	EraserWidth float32
	EraserShape ink.BrushShape
	PreciseMode bool
}

// Settings is the mutable per-board tool configuration, owned by the UI and
// read by gestures.
type Settings struct {
	mu  sync.RWMutex
	cur ToolSettings
}

func NewSettings() *Settings {
	return &Settings{cur: ToolSettings{
		BaseWidth:       3,
		Color:           color.NRGBA{A: 255},
		Style:           ink.StyleSolid,
		Brush:           ink.BrushCircle,
		PressureEnabled: true,
		EraserWidth:     20,
		EraserShape:     ink.BrushCircle,
	}}
}

// Snapshot returns the current settings by value.
func (s *Settings) Snapshot() ToolSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur
}

// Update applies a mutation to the settings atomically.
func (s *Settings) Update(fn func(*ToolSettings)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.cur)
}

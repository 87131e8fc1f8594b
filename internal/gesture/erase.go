package gesture

import (
	"log"

	"github.com/chewxy/math32"

	"InkBoard/internal/erase"
	"InkBoard/internal/ink"
	"InkBoard/internal/state"
)

// EraseSession tracks one erase gesture. In fast mode hits are queued as the
// pointer moves (rendered faded) and removed in one batch on release. In
// precise mode the session records the swept path and hands it to the erase
// engine once, when the gesture completes.
type EraseSession struct {
	settings state.ToolSettings
	board    *state.Board
	engine   *erase.Engine
	notify   erase.Notice

	sweep  []ink.Point
	marked map[string]state.Element
}

// NewEraseSession starts an erase gesture at the given document position.
func NewEraseSession(settings state.ToolSettings, board *state.Board, engine *erase.Engine, notify erase.Notice, pos ink.Point) *EraseSession {
	s := &EraseSession{
		settings: settings,
		board:    board,
		engine:   engine,
		notify:   notify,
		marked:   make(map[string]state.Element),
	}
	s.Move(pos)
	return s
}

// Move feeds one eraser sample. Malformed samples are dropped.
func (s *EraseSession) Move(pos ink.Point) {
	if !pos.IsFinite() {
		return
	}
	var prev ink.Point
	hasPrev := len(s.sweep) > 0
	if hasPrev {
		prev = s.sweep[len(s.sweep)-1]
	}
	s.sweep = append(s.sweep, pos)
	if s.settings.PreciseMode {
		return
	}

	// Fast mode: queue whatever the brush touches, testing along the whole
	// segment since the previous sample so a quick flick cannot hop over a
	// thin stroke between two samples.
	radius := s.settings.EraserWidth / 2
	steps := 1
	if hasPrev && radius > 0 {
		if d := prev.Distance(pos); d > radius {
			steps = int(math32.Ceil(d / radius))
		}
	}
	for k := 1; k <= steps; k++ {
		p := pos
		if hasPrev {
			p = prev.Lerp(pos, float32(k)/float32(steps))
		}
		s.markHits(p, radius)
	}
}

// markHits queues everything the brush touches at one test position. A
// marked element is never re-tested within the same gesture.
func (s *EraseSession) markHits(pos ink.Point, radius float32) {
	rmin := pos.Sub(ink.Pt(radius, radius))
	rmax := pos.Add(ink.Pt(radius, radius))
	for _, el := range erase.Hits(pos, radius, s.board.ElementsNear(rmin, rmax)) {
		if _, done := s.marked[el.ElementID()]; !done {
			s.marked[el.ElementID()] = el
		}
	}
}

// Marked reports whether an element is queued for removal, so the renderer
// can fade it during the gesture.
func (s *EraseSession) Marked(id string) bool {
	_, ok := s.marked[id]
	return ok
}

// Finish completes the gesture: fast mode batch-removes the queued
// elements, precise mode runs the boolean subtraction once for the whole
// sweep. The sweep and marks are cleared either way.
func (s *EraseSession) Finish() {
	defer s.clear()
	if s.settings.PreciseMode {
		res := s.engine.Erase(s.board, s.sweep, s.settings.EraserWidth, s.settings.EraserShape, s.notify)
		log.Printf("[ERASE] Precise gesture: %d removed, %d split, %d failed, %d fallback",
			res.Removed, res.Split, res.Failed, res.Fallback)
		return
	}
	if len(s.marked) == 0 {
		return
	}
	batch := make([]state.Element, 0, len(s.marked))
	for _, el := range s.marked {
		batch = append(batch, el)
	}
	s.board.Remove(batch)
	log.Printf("[ERASE] Fast gesture removed %d elements", len(batch))
}

// Cancel discards the marks and sweep without mutating the board.
func (s *EraseSession) Cancel() {
	s.clear()
}

func (s *EraseSession) clear() {
	s.sweep = nil
	s.marked = make(map[string]state.Element)
}

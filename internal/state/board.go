package state

import (
	"log"
	"sync"

	"InkBoard/internal/ink"
)

// Board is the element collection for one whiteboard. Each mutating call is
// transactional from the caller's perspective: the collection is never
// observable in a half-applied state.
type Board struct {
	mu       sync.RWMutex
	order    []string
	elements map[string]Element
}

func NewBoard() *Board {
	return &Board{elements: make(map[string]Element)}
}

// Insert adds an element; ownership transfers to the board.
func (b *Board) Insert(el Element) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := el.ElementID()
	if _, exists := b.elements[id]; !exists {
		b.order = append(b.order, id)
	}
	b.elements[id] = el
	log.Printf("[BOARD] Inserted element %s (%d total)", id, len(b.order))
}

// Remove deletes the given elements in one step. Unknown elements are
// ignored.
func (b *Board) Remove(els []Element) {
	if len(els) == 0 {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, el := range els {
		b.removeLocked(el.ElementID())
	}
	log.Printf("[BOARD] Removed %d elements (%d remain)", len(els), len(b.order))
}

// Replace swaps one element for zero or more replacements, keeping the
// replacements at the original's position in draw order.
func (b *Board) Replace(old Element, repl []Element) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := old.ElementID()
	pos := -1
	for i, oid := range b.order {
		if oid == id {
			pos = i
			break
		}
	}
	if pos < 0 {
		// Unknown target: insert the replacements at the end rather than
		// losing them.
		for _, el := range repl {
			b.order = append(b.order, el.ElementID())
			b.elements[el.ElementID()] = el
		}
		return
	}

	delete(b.elements, id)
	ids := make([]string, 0, len(repl))
	for _, el := range repl {
		ids = append(ids, el.ElementID())
		b.elements[el.ElementID()] = el
	}
	b.order = append(b.order[:pos], append(ids, b.order[pos+1:]...)...)
	log.Printf("[BOARD] Replaced element %s with %d remnants", id, len(repl))
}

func (b *Board) removeLocked(id string) {
	if _, ok := b.elements[id]; !ok {
		return
	}
	delete(b.elements, id)
	for i, oid := range b.order {
		if oid == id {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

// Elements returns the elements in draw order.
func (b *Board) Elements() []Element {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]Element, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, b.elements[id])
	}
	return out
}

// ElementsNear returns the elements whose bounds overlap the given region.
// It scopes hit-testing and erasing; callers must not rely on it for
// correctness beyond bounds overlap.
func (b *Board) ElementsNear(min, max ink.Point) []Element {
	b.mu.RLock()
	defer b.mu.RUnlock()
	var out []Element
	for _, id := range b.order {
		el := b.elements[id]
		emin, emax := el.Bounds()
		if emax.X < min.X || max.X < emin.X || emax.Y < min.Y || max.Y < emin.Y {
			continue
		}
		out = append(out, el)
	}
	return out
}

// Len returns the number of elements on the board.
func (b *Board) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.order)
}

// Clear removes every element.
func (b *Board) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.order = nil
	b.elements = make(map[string]Element)
	log.Printf("[BOARD] Cleared")
}

package erase

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"InkBoard/internal/ink"
)

// ErrBooleanFailed reports that a subtraction could not be computed safely
// (degenerate or self-intersecting geometry). The caller must leave the
// target shape untouched; a failed boolean never partially mutates anything.
var ErrBooleanFailed = errors.New("erase: boolean subtraction failed")

// Area below which a remnant ring is considered a sliver and discarded.
const minRingArea = 0.01

// Subtract removes a convex clip ring from a simple subject ring, returning
// zero, one or many remnant rings. changed is false when the clip misses the
// subject entirely, in which case out holds the subject exactly as given.
//
// The construction is cut-and-traverse: boundary intersections are found
// pairwise, spliced into both rings, classified as exits or entries of the
// clip region, then remnants are walked subject-forward outside the clip and
// clip-backward along each erased notch.
func Subtract(subject, clip []ink.Point) (out [][]ink.Point, changed bool, err error) {
	subj, err := normalizeRing(subject)
	if err != nil {
		return nil, false, err
	}
	clp, err := normalizeRing(clip)
	if err != nil {
		return nil, false, err
	}

	nodes, err := intersectRings(subj, clp)
	if err != nil {
		return nil, false, err
	}

	if len(nodes) == 0 {
		switch {
		case pointInRing(subj[0], clp):
			// Subject fully swallowed by the eraser.
			return nil, true, nil
		case pointInRing(clp[0], subj):
			ring, err := keyhole(subj, clp)
			if err != nil {
				return nil, false, err
			}
			return [][]ink.Point{ring}, true, nil
		default:
			return [][]ink.Point{subject}, false, nil
		}
	}
	if len(nodes)%2 != 0 {
		// A boundary touch rather than a crossing slipped through.
		return nil, false, fmt.Errorf("%w: odd intersection count", ErrBooleanFailed)
	}

	rings, err := traverse(subj, clp, nodes)
	if err != nil {
		return nil, false, err
	}
	return rings, true, nil
}

// xnode is one proper boundary crossing between subject and clip.
type xnode struct {
	pt             ink.Point
	alphaS, alphaC float32 // edge index + parameter along each ring
	subjIdx        int     // position in the augmented subject cycle
	clipIdx        int     // position in the augmented clip cycle
	exit           bool    // subject leaves the clip region here
	visited        bool
}

// cycleItem is a vertex or crossing in an augmented ring cycle.
type cycleItem struct {
	pt   ink.Point
	node *xnode
}

// intersectRings finds all proper crossings between two rings. Any
// degenerate contact (vertex on edge, collinear overlap) aborts the
// operation; the sweep slabs are jittered specifically to make such contacts
// vanishingly rare.
func intersectRings(subj, clp []ink.Point) ([]*xnode, error) {
	var nodes []*xnode
	for i := range subj {
		a0 := subj[i]
		a1 := subj[(i+1)%len(subj)]
		for j := range clp {
			b0 := clp[j]
			b1 := clp[(j+1)%len(clp)]
			t, u, kind := segIntersect(a0, a1, b0, b1)
			switch kind {
			case xDegenerate:
				return nil, fmt.Errorf("%w: degenerate boundary contact", ErrBooleanFailed)
			case xProper:
				nodes = append(nodes, &xnode{
					pt:     a0.Lerp(a1, t),
					alphaS: float32(i) + t,
					alphaC: float32(j) + u,
				})
			}
		}
	}
	return nodes, nil
}

const (
	xNone = iota
	xProper
	xDegenerate
)

// segIntersect intersects segments a0a1 and b0b1. Parameters strictly inside
// both segments are proper; touches at or near endpoints, and collinear
// overlaps, are degenerate.
func segIntersect(a0, a1, b0, b1 ink.Point) (t, u float32, kind int) {
	d1 := a1.Sub(a0)
	d2 := b1.Sub(b0)
	denom := d1.Cross(d2)
	scale := d1.Length() * d2.Length()
	if math32.Abs(denom) <= 1e-9*scale {
		// Parallel. Collinear overlap is degenerate; otherwise no contact.
		w := b0.Sub(a0)
		if math32.Abs(d1.Cross(w)) <= 1e-6*scale && parallelOverlap(a0, a1, b0, b1) {
			return 0, 0, xDegenerate
		}
		return 0, 0, xNone
	}
	w := b0.Sub(a0)
	t = w.Cross(d2) / denom
	u = w.Cross(d1) / denom
	const eps = 1e-5
	if t < -eps || t > 1+eps || u < -eps || u > 1+eps {
		return 0, 0, xNone
	}
	if t < eps || t > 1-eps || u < eps || u > 1-eps {
		return 0, 0, xDegenerate
	}
	return t, u, xProper
}

func parallelOverlap(a0, a1, b0, b1 ink.Point) bool {
	d := a1.Sub(a0)
	len2 := d.Dot(d)
	if len2 == 0 {
		return false
	}
	t0 := b0.Sub(a0).Dot(d) / len2
	t1 := b1.Sub(a0).Dot(d) / len2
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	return t1 > 0 && t0 < 1
}

// traverse walks out the remnant rings of subject minus clip.
func traverse(subj, clp []ink.Point, nodes []*xnode) ([][]ink.Point, error) {
	subjCycle := buildCycle(subj, nodes, true)
	clipCycle := buildCycle(clp, nodes, false)

	// Classify each crossing: the subject exits the clip region when the
	// sub-arc that follows it lies outside the clip.
	for _, n := range nodes {
		next := subjCycle[(n.subjIdx+1)%len(subjCycle)]
		mid := n.pt.Lerp(next.pt, 0.5)
		n.exit = !pointInRing(mid, clp)
	}

	var rings [][]ink.Point
	limit := 4 * (len(subjCycle) + len(clipCycle))

	for _, start := range nodes {
		if start.visited || !start.exit {
			continue
		}
		var ring []ink.Point
		cur := start
		onSubject := true
		steps := 0
		for {
			steps++
			if steps > limit {
				return nil, fmt.Errorf("%w: traversal did not close", ErrBooleanFailed)
			}
			cur.visited = true
			ring = append(ring, cur.pt)
			if onSubject {
				idx := cur.subjIdx
				for {
					idx = (idx + 1) % len(subjCycle)
					it := subjCycle[idx]
					if it.node != nil {
						cur = it.node
						break
					}
					ring = append(ring, it.pt)
				}
			} else {
				// The clip boundary is walked in reverse: it bounds the
				// notch the eraser carved out of the subject.
				idx := cur.clipIdx
				for {
					idx = (idx - 1 + len(clipCycle)) % len(clipCycle)
					it := clipCycle[idx]
					if it.node != nil {
						cur = it.node
						break
					}
					ring = append(ring, it.pt)
				}
			}
			if cur == start {
				break
			}
			onSubject = !onSubject
		}
		if ring = compactRing(ring); len(ring) >= 3 && math32.Abs(ringArea(ring)) >= minRingArea {
			rings = append(rings, ring)
		}
	}
	return rings, nil
}

// buildCycle splices the crossings into a ring's vertex sequence, ordered by
// their parameter along each edge, and records each node's position.
func buildCycle(ring []ink.Point, nodes []*xnode, subject bool) []cycleItem {
	perEdge := make([][]*xnode, len(ring))
	for _, n := range nodes {
		alpha := n.alphaC
		if subject {
			alpha = n.alphaS
		}
		i := int(alpha)
		perEdge[i] = append(perEdge[i], n)
	}
	var cycle []cycleItem
	for i, pt := range ring {
		cycle = append(cycle, cycleItem{pt: pt})
		edge := perEdge[i]
		// Insertion sort by parameter; edges rarely carry more than two.
		for k := 1; k < len(edge); k++ {
			for m := k; m > 0 && alphaOf(edge[m], subject) < alphaOf(edge[m-1], subject); m-- {
				edge[m], edge[m-1] = edge[m-1], edge[m]
			}
		}
		for _, n := range edge {
			if subject {
				n.subjIdx = len(cycle)
			} else {
				n.clipIdx = len(cycle)
			}
			cycle = append(cycle, cycleItem{pt: n.pt, node: n})
		}
	}
	return cycle
}

func alphaOf(n *xnode, subject bool) float32 {
	if subject {
		return n.alphaS
	}
	return n.alphaC
}

// keyhole joins a clip ring wholly interior to the subject onto the subject
// boundary through a zero-width bridge, so the remnant stays one simple ring
// instead of carrying a hole.
func keyhole(subj, clp []ink.Point) ([]ink.Point, error) {
	// Rightmost clip vertex, then a +X ray from it to the subject boundary.
	r := 0
	for i, p := range clp {
		if p.X > clp[r].X {
			r = i
		}
	}
	cv := clp[r]

	bestDist := math32.Inf(1)
	bestEdge := -1
	var q ink.Point
	for i := range subj {
		a := subj[i]
		b := subj[(i+1)%len(subj)]
		if (a.Y > cv.Y) == (b.Y > cv.Y) {
			continue
		}
		u := (cv.Y - a.Y) / (b.Y - a.Y)
		if u < 1e-4 || u > 1-1e-4 {
			return nil, fmt.Errorf("%w: keyhole ray hits a vertex", ErrBooleanFailed)
		}
		x := a.X + u*(b.X-a.X)
		if d := x - cv.X; d > 0 && d < bestDist {
			bestDist = d
			bestEdge = i
			q = ink.Pt(x, cv.Y)
		}
	}
	if bestEdge < 0 {
		return nil, fmt.Errorf("%w: keyhole ray found no boundary", ErrBooleanFailed)
	}

	out := make([]ink.Point, 0, len(subj)+len(clp)+4)
	out = append(out, subj[:bestEdge+1]...)
	out = append(out, q, cv)
	// The interior clip is traced clockwise so it reads as a hole.
	for k := 1; k <= len(clp); k++ {
		out = append(out, clp[(r-k+len(clp))%len(clp)])
	}
	out = append(out, q)
	out = append(out, subj[bestEdge+1:]...)
	return out, nil
}

// normalizeRing dedups consecutive points, drops a repeated closing point
// and orients the ring counter-clockwise.
func normalizeRing(ring []ink.Point) ([]ink.Point, error) {
	out := make([]ink.Point, 0, len(ring))
	for _, p := range ring {
		if !p.IsFinite() {
			return nil, fmt.Errorf("%w: non-finite ring point", ErrBooleanFailed)
		}
		if len(out) > 0 && p.Distance(out[len(out)-1]) < 1e-6 {
			continue
		}
		out = append(out, p)
	}
	for len(out) > 1 && out[0].Distance(out[len(out)-1]) < 1e-6 {
		out = out[:len(out)-1]
	}
	if len(out) < 3 {
		return nil, fmt.Errorf("%w: ring has fewer than 3 points", ErrBooleanFailed)
	}
	if a := ringArea(out); a < 0 {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	} else if a == 0 {
		return nil, fmt.Errorf("%w: zero-area ring", ErrBooleanFailed)
	}
	return out, nil
}

// compactRing removes consecutive duplicates left by traversal splices.
func compactRing(ring []ink.Point) []ink.Point {
	out := ring[:0]
	for _, p := range ring {
		if len(out) > 0 && p.Distance(out[len(out)-1]) < 1e-6 {
			continue
		}
		out = append(out, p)
	}
	for len(out) > 1 && out[0].Distance(out[len(out)-1]) < 1e-6 {
		out = out[:len(out)-1]
	}
	return out
}

// ringArea is the signed shoelace area; positive for counter-clockwise.
func ringArea(ring []ink.Point) float32 {
	var a float32
	j := len(ring) - 1
	for i := 0; i < len(ring); i++ {
		a += ring[j].Cross(ring[i])
		j = i
	}
	return a / 2
}

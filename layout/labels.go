package layout

import (
	"math"
	"math/rand/v2"
	"sort"

	"github.com/tdewolff/canvas"
)

// Strategy returns the left edge of a label of width w, or false if the label does not fit.
type Strategy func(w float64) (float64, bool)

// Place returns the position given by the first strategy that fits together with its index. The index is -1 if no strategy fits.
func Place(w float64, strategies ...Strategy) (float64, int) {
	for i, strategy := range strategies {
		if x, ok := strategy(w); ok {
			return x, i
		}
	}
	return 0.0, -1
}

// Slot is the anchor of a label relative to a pair of selectors.
type Slot int

// see Slot
const (
	Center Slot = iota
	Left
	Right
)

func (slot Slot) String() string {
	switch slot {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "center"
}

// Bracket is a pair of selectors at X0 <= X1 on a surface of the given width. Padding is the distance kept between a label and a selector.
type Bracket struct {
	X0, X1  float64
	Width   float64
	Padding float64
}

// Gap returns the distance between the selectors.
func (b Bracket) Gap() float64 {
	return b.X1 - b.X0
}

func (b Bracket) mid() float64 {
	return (b.X0 + b.X1) / 2.0
}

// Between places a label inside the bracket. A center label fits if the gap exceeds its width and is centered, left and right labels also need room for the padding and hug their selector.
func (b Bracket) Between(slot Slot) Strategy {
	return func(w float64) (float64, bool) {
		switch slot {
		case Left:
			return b.X0 + b.Padding, w+b.Padding < b.Gap()
		case Right:
			return b.X1 - b.Padding - w, w+b.Padding < b.Gap()
		}
		return b.mid() - w/2.0, w < b.Gap()
	}
}

// RightOf places a label to the right of the right selector if it stays within the surface.
func (b Bracket) RightOf() Strategy {
	return func(w float64) (float64, bool) {
		x := b.X1 + b.Padding
		return x, x+w <= b.Width
	}
}

// LeftOf places a label to the left of the left selector if it stays within the surface.
func (b Bracket) LeftOf() Strategy {
	return func(w float64) (float64, bool) {
		x := b.X0 - b.Padding - w
		return x, 0.0 <= x
	}
}

// Fallback centers a label on the bracket, it always fits but may overlap the selectors or other labels.
func (b Bracket) Fallback() Strategy {
	return func(w float64) (float64, bool) {
		return b.mid() - w/2.0, true
	}
}

// Strategies returns the placement strategies for slot in order of priority: between the selectors, right of the right selector, left of the left selector, and centered.
func (b Bracket) Strategies(slot Slot) []Strategy {
	return []Strategy{b.Between(slot), b.RightOf(), b.LeftOf(), b.Fallback()}
}

func overlapX(a, b canvas.Rect) float64 {
	return math.Max(0.0, math.Min(a.X1, b.X1)-math.Max(a.X0, b.X0))
}

func overlapY(a, b canvas.Rect) float64 {
	return math.Max(0.0, math.Min(a.Y1, b.Y1)-math.Max(a.Y0, b.Y0))
}

func shiftX(r canvas.Rect, dx float64) canvas.Rect {
	r.X0 += dx
	r.X1 += dx
	return r
}

// Separate nudges horizontally overlapping labels apart so that neighbours are at least padding apart. Labels are visited once from left to right and each overlap is split evenly, so a crowded row may keep overlaps. The input order is kept in the result.
func Separate(labels []canvas.Rect, padding float64) []canvas.Rect {
	out := make([]canvas.Rect, len(labels))
	copy(out, labels)

	order := make([]int, len(out))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return out[order[i]].X0 < out[order[j]].X0
	})
	for k := 1; k < len(order); k++ {
		a, b := order[k-1], order[k]
		if d := out[a].X1 + padding - out[b].X0; 0.0 < d {
			out[a] = shiftX(out[a], -d/2.0)
			out[b] = shiftX(out[b], d/2.0)
		}
	}
	return out
}

// Anneal moves labels horizontally using simulated annealing so that they overlap less with each other and with others, stay close to their original position, and stay within the horizontal extent of bounds. The random source is seeded so that equal input gives equal output.
func Anneal(bounds canvas.Rect, labels, others []canvas.Rect, seed uint64) []canvas.Rect {
	if len(labels) == 0 {
		return nil
	}
	N := 200
	Temperature := 100.0
	StepSize := (bounds.X1 - bounds.X0) / 100.0
	rng := rand.New(rand.NewPCG(seed, seed))

	// ensure bounds encompasses all labels
	for _, label := range labels {
		bounds.X0 = math.Min(bounds.X0, label.X0)
		bounds.X1 = math.Max(bounds.X1, label.X1)
	}

	energy := func(current []canvas.Rect) float64 {
		E := 0.0
		for i, label := range current {
			if label.X0 < bounds.X0 || bounds.X1 < label.X1 {
				return math.Inf(1.0)
			}

			overlap := 0.0
			for j, other := range current {
				if i != j {
					overlap += overlapX(label, other) * overlapY(label, other)
				}
			}
			for _, other := range others {
				overlap += overlapX(label, other) * overlapY(label, other)
			}
			E += math.Abs(label.X0-labels[i].X0) + 100.0*overlap
		}
		return E
	}

	current := make([]canvas.Rect, len(labels))
	copy(current, labels)
	currentE := energy(current)

	best := make([]canvas.Rect, len(labels))
	copy(best, labels)
	bestE := currentE

	candidate := make([]canvas.Rect, len(labels))
	for i := 0; i < N; i++ {
		T := Temperature / float64(i+1)

		copy(candidate, current)
		index := rng.IntN(len(candidate))
		candidate[index] = shiftX(candidate[index], rng.NormFloat64()*StepSize)
		candidateE := energy(candidate)

		if candidateE < bestE || rng.Float64() < math.Exp((currentE-candidateE)/T) {
			if candidateE < bestE {
				copy(best, candidate)
				bestE = candidateE
			}
			copy(current, candidate)
			currentE = candidateE
		}
	}
	return best
}

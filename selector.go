package relief

import (
	"fmt"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/relief/layout"
)

// SelectorOptions configures the selector glyphs and the placement of their labels.
type SelectorOptions struct {
	Height       float64 // length of the tick below the baseline
	StubLength   float64 // length of the horizontal stub
	LabelPadding float64 // distance between a label and a selector
	NudgePadding float64 // minimum distance between labels of one row
	RowGap       float64 // vertical gap between the selectors and label rows

	// Style styles the selector glyphs, unset fields default to DefaultStyle.
	Style DrawStyle

	// Font is used for the labels, unset fields default to DefaultFont.
	Font Font

	// Anneal runs a seeded simulated annealing pass after placement to reduce remaining overlaps.
	Anneal bool
	Seed   uint64
}

// DefaultSelectorOptions holds the defaults for unset (zero) selector options.
var DefaultSelectorOptions = SelectorOptions{
	Height:       10.0,
	StubLength:   6.0,
	LabelPadding: 4.0,
	NudgePadding: 4.0,
	RowGap:       4.0,
}

func (opts SelectorOptions) withDefaults() SelectorOptions {
	if opts.Height <= 0.0 {
		opts.Height = DefaultSelectorOptions.Height
	}
	if opts.StubLength <= 0.0 {
		opts.StubLength = DefaultSelectorOptions.StubLength
	}
	if opts.LabelPadding <= 0.0 {
		opts.LabelPadding = DefaultSelectorOptions.LabelPadding
	}
	if opts.NudgePadding <= 0.0 {
		opts.NudgePadding = DefaultSelectorOptions.NudgePadding
	}
	if opts.RowGap <= 0.0 {
		opts.RowGap = DefaultSelectorOptions.RowGap
	}
	opts.Style = opts.Style.Merge(DefaultStyle)
	opts.Font = opts.Font.orDefault(DefaultFont)
	return opts
}

// SelectorLabels holds the texts around a selector pair, empty texts are not drawn. Center, Left and Right form the first row below the selectors, LeftSecondary and RightSecondary the second row.
type SelectorLabels struct {
	Center, Left, Right           string
	LeftSecondary, RightSecondary string
}

// PlacementRule is the placement strategy that positioned a label.
type PlacementRule int

// see PlacementRule
const (
	RuleBetween PlacementRule = iota
	RuleRightOf
	RuleLeftOf
	RuleFallback
)

func (rule PlacementRule) String() string {
	switch rule {
	case RuleBetween:
		return "between"
	case RuleRightOf:
		return "right-of"
	case RuleLeftOf:
		return "left-of"
	}
	return "fallback"
}

// LabelPlacement is the computed position of a selector label. Bounds spans the text horizontally and from one font size above its baseline at Bounds.Y1.
type LabelPlacement struct {
	Text      string
	Slot      layout.Slot
	Secondary bool
	Rule      PlacementRule
	Bounds    canvas.Rect
}

// Anchor returns the left end of the text's baseline.
func (p LabelPlacement) Anchor() canvas.Point {
	return canvas.Point{X: p.Bounds.X0, Y: p.Bounds.Y1}
}

type selectorLayout struct {
	x0, x1     float64
	baseline   float64
	placements []LabelPlacement
}

func (e *Engine) layoutSelectors(markers []DataPoint, labels SelectorLabels, cfg AxisConfig, opts SelectorOptions) (selectorLayout, error) {
	if len(markers) != 2 {
		return selectorLayout{}, fmt.Errorf("%w: selectors need exactly two markers, got %d", ErrInvalidInput, len(markers))
	}
	t, err := e.Transform(cfg)
	if err != nil {
		return selectorLayout{}, err
	}

	x0, x1 := t.X(markers[0].Time), t.X(markers[1].Time)
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	sl := selectorLayout{
		x0:       x0,
		x1:       x1,
		baseline: t.Baseline(),
	}

	bracket := layout.Bracket{
		X0:      x0,
		X1:      x1,
		Width:   e.width,
		Padding: opts.LabelPadding,
	}
	rows := []struct {
		secondary bool
		slots     []layout.Slot
		texts     []string
	}{
		{false, []layout.Slot{layout.Center, layout.Left, layout.Right}, []string{labels.Center, labels.Left, labels.Right}},
		{true, []layout.Slot{layout.Left, layout.Right}, []string{labels.LeftSecondary, labels.RightSecondary}},
	}

	size := opts.Font.Size
	y := sl.baseline + opts.Height + opts.RowGap + size
	for _, row := range rows {
		placements := []LabelPlacement{}
		rects := []canvas.Rect{}
		for i, text := range row.texts {
			if text == "" {
				continue
			}
			w := e.d.TextWidth(text, opts.Font)
			x, rule := layout.Place(w, bracket.Strategies(row.slots[i])...)
			rect := canvas.Rect{X0: x, Y0: y - size, X1: x + w, Y1: y}
			placements = append(placements, LabelPlacement{
				Text:      text,
				Slot:      row.slots[i],
				Secondary: row.secondary,
				Rule:      PlacementRule(rule),
				Bounds:    rect,
			})
			rects = append(rects, rect)
		}
		for i, rect := range layout.Separate(rects, opts.NudgePadding) {
			placements[i].Bounds = rect
		}
		sl.placements = append(sl.placements, placements...)
		y += size + opts.RowGap
	}

	if opts.Anneal && 0 < len(sl.placements) {
		rects := make([]canvas.Rect, len(sl.placements))
		for i, p := range sl.placements {
			rects[i] = p.Bounds
		}
		bottom := sl.baseline + opts.Height
		others := []canvas.Rect{
			{X0: x0, Y0: sl.baseline, X1: x0 + opts.StubLength, Y1: bottom},
			{X0: x1 - opts.StubLength, Y0: sl.baseline, X1: x1, Y1: bottom},
		}
		bounds := canvas.Rect{X0: 0.0, Y0: 0.0, X1: e.width, Y1: e.height}
		for i, rect := range layout.Anneal(bounds, rects, others, opts.Seed) {
			sl.placements[i].Bounds = rect
		}
	}
	return sl, nil
}

// LayoutSelectorLabels returns the label positions DrawSelectors would use, without drawing the labels. Text is measured on the engine's surface.
func (e *Engine) LayoutSelectorLabels(markers []DataPoint, labels SelectorLabels, cfg AxisConfig, opts SelectorOptions) ([]LabelPlacement, error) {
	sl, err := e.layoutSelectors(markers, labels, cfg, opts.withDefaults())
	if err != nil {
		return nil, err
	}
	return sl.placements, nil
}

// DrawSelectors draws a bracket-shaped selector below the baseline at both markers, the left one opening to the right and the right one opening to the left, and places the labels around them. It returns ErrInvalidInput unless exactly two markers are given.
func (e *Engine) DrawSelectors(markers []DataPoint, labels SelectorLabels, cfg AxisConfig, opts SelectorOptions) error {
	opts = opts.withDefaults()
	sl, err := e.layoutSelectors(markers, labels, cfg, opts)
	if err != nil {
		return err
	}

	bottom := sl.baseline + opts.Height
	e.d.DrawPolyline([]canvas.Point{
		{X: sl.x0, Y: sl.baseline},
		{X: sl.x0, Y: bottom},
		{X: sl.x0 + opts.StubLength, Y: bottom},
	}, opts.Style)
	e.d.DrawPolyline([]canvas.Point{
		{X: sl.x1, Y: sl.baseline},
		{X: sl.x1, Y: bottom},
		{X: sl.x1 - opts.StubLength, Y: bottom},
	}, opts.Style)

	text := DrawStyle{
		Font:  &opts.Font,
		Color: opts.Font.Color,
		Align: AlignLeft,
	}
	for _, p := range sl.placements {
		e.d.DrawText(p.Text, p.Anchor(), text)
	}
	return nil
}

package relief

import (
	"image/color"

	"github.com/tdewolff/canvas"
)

// Align is the horizontal alignment of text relative to its anchor.
type Align int

// see Align
const (
	AlignDefault Align = iota
	AlignLeft
	AlignCenter
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	}
	return "default"
}

// Font describes a text face. Size is in surface units, i.e. pixels.
type Font struct {
	Size   float64
	Family string
	Color  color.Color
}

// DefaultFont is a 12px black sans-serif face.
var DefaultFont = Font{
	Size:   12.0,
	Family: "sans-serif",
	Color:  canvas.Black,
}

// orDefault fills the unset fields of f from def.
func (f Font) orDefault(def Font) Font {
	if f.Size <= 0.0 {
		f.Size = def.Size
	}
	if f.Family == "" {
		f.Family = def.Family
	}
	if f.Color == nil {
		f.Color = def.Color
	}
	return f
}

// Solid is the dash pattern that resets a surface to solid strokes. A nil LineDash leaves the dash pattern as is.
var Solid = []float64{}

// DrawStyle holds optional style overrides. Zero values are unset: nil colors, a zero line width, a nil font, a nil dash pattern, a zero angle and AlignDefault.
type DrawStyle struct {
	Color     color.Color
	FillColor color.Color
	LineWidth float64
	Font      *Font
	LineDash  []float64
	Angle     float64 // degrees, clockwise on screen
	Align     Align
}

// DefaultStyle holds the engine defaults used by the renderers for every unset field.
var DefaultStyle = DrawStyle{
	Color:     canvas.Black,
	FillColor: canvas.Black,
	LineWidth: 1.0,
	Font:      &DefaultFont,
	LineDash:  Solid,
	Align:     AlignLeft,
}

// Merge returns s with its unset fields taken from def. Angle is never inherited.
func (s DrawStyle) Merge(def DrawStyle) DrawStyle {
	if s.Color == nil {
		s.Color = def.Color
	}
	if s.FillColor == nil {
		s.FillColor = def.FillColor
	}
	if s.LineWidth <= 0.0 {
		s.LineWidth = def.LineWidth
	}
	if s.Font == nil {
		s.Font = def.Font
	} else if def.Font != nil {
		font := s.Font.orDefault(*def.Font)
		s.Font = &font
	}
	if s.LineDash == nil {
		s.LineDash = def.LineDash
	}
	if s.Align == AlignDefault {
		s.Align = def.Align
	}
	return s
}

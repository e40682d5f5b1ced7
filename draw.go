package relief

import "github.com/tdewolff/canvas"

// Drawer wraps a Surface with line, circle and text primitives. Only the set fields of a style are applied to the surface, unset fields keep the state left by earlier calls.
type Drawer struct {
	s Surface
}

// NewDrawer returns a drawer for s.
func NewDrawer(s Surface) *Drawer {
	return &Drawer{s}
}

// Surface returns the underlying surface.
func (d *Drawer) Surface() Surface {
	return d.s
}

func (d *Drawer) applyStroke(style DrawStyle) {
	if style.Color != nil {
		d.s.SetStrokeColor(style.Color)
	}
	if 0.0 < style.LineWidth {
		d.s.SetStrokeWidth(style.LineWidth)
	}
	if style.LineDash != nil {
		d.s.SetDashes(style.LineDash)
	}
}

func (d *Drawer) applyText(style DrawStyle) {
	if style.Font != nil {
		d.s.SetFont(*style.Font)
	}
	if style.Color != nil {
		d.s.SetFillColor(style.Color)
	} else if style.Font != nil && style.Font.Color != nil {
		d.s.SetFillColor(style.Font.Color)
	}
	if style.Align != AlignDefault {
		d.s.SetTextAlign(style.Align)
	}
}

// DrawLine strokes the segment from p1 to p2.
func (d *Drawer) DrawLine(p1, p2 canvas.Point, style DrawStyle) {
	d.applyStroke(style)
	d.s.MoveTo(p1.X, p1.Y)
	d.s.LineTo(p2.X, p2.Y)
	d.s.Stroke()
}

// DrawPolyline strokes a connected path through points. A single point results in a lone move-to.
func (d *Drawer) DrawPolyline(points []canvas.Point, style DrawStyle) {
	if len(points) == 0 {
		return
	}
	d.applyStroke(style)
	d.s.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		d.s.LineTo(p.X, p.Y)
	}
	d.s.Stroke()
}

// DrawCircle draws a circle of radius r around center. It is filled first when the style has a fill color, and then stroked.
func (d *Drawer) DrawCircle(center canvas.Point, r float64, style DrawStyle) {
	if style.FillColor != nil {
		d.s.SetFillColor(style.FillColor)
		d.s.Arc(center.X, center.Y, r)
		d.s.Fill()
	}
	d.applyStroke(style)
	d.s.Arc(center.X, center.Y, r)
	d.s.Stroke()
}

// DrawText draws text anchored at pos on its baseline. A non-zero angle rotates the text around its anchor, the rotation is scoped to this call.
func (d *Drawer) DrawText(text string, pos canvas.Point, style DrawStyle) {
	d.applyText(style)
	if style.Angle == 0.0 {
		d.s.FillText(text, pos.X, pos.Y)
		return
	}
	d.s.Push()
	d.s.Translate(pos.X, pos.Y)
	d.s.Rotate(style.Angle)
	d.s.FillText(text, 0.0, 0.0)
	d.s.Pop()
}

// TextWidth returns the width of text in font. The font stays set on the surface.
func (d *Drawer) TextWidth(text string, font Font) float64 {
	d.s.SetFont(font)
	return d.s.TextWidth(text)
}

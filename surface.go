package relief

import "image/color"

// Surface is a fixed-size 2D drawing target in pixel coordinates with the origin at the top-left and y growing downwards. It keeps the sequential drawing state (stroke and fill colors, stroke width, dash pattern, font and text alignment) between calls, while Push and Pop save and restore that state together with the view transformation.
//
// Paths are built with MoveTo, LineTo, Arc and Close, and are consumed by Stroke or Fill. A Surface is not safe for concurrent use.
type Surface interface {
	Size() (float64, float64)

	SetStrokeColor(color.Color)
	SetFillColor(color.Color)
	SetStrokeWidth(float64)
	SetDashes([]float64)
	SetFont(Font)
	SetTextAlign(Align)

	Push()
	Pop()
	Translate(x, y float64)
	Rotate(deg float64)

	MoveTo(x, y float64)
	LineTo(x, y float64)
	Arc(x, y, r float64)
	Close()
	Stroke()
	Fill()

	FillText(s string, x, y float64)
	TextWidth(s string) float64
}

package relief

import (
	"fmt"
	"image/color"
	"strings"
	"unicode/utf8"

	"github.com/tdewolff/canvas"
)

// Op is a single recorded Surface call.
type Op struct {
	Name  string
	Args  []float64
	Text  string
	Color color.Color
	Font  Font
	Align Align
}

func (op Op) String() string {
	sb := strings.Builder{}
	sb.WriteString(op.Name)
	for i, arg := range op.Args {
		if i == 0 {
			sb.WriteString(" ")
		} else {
			sb.WriteString(",")
		}
		fmt.Fprintf(&sb, "%.4g", arg)
	}
	if op.Text != "" {
		fmt.Fprintf(&sb, " %q", op.Text)
	}
	if op.Color != nil {
		r, g, b, a := op.Color.RGBA()
		fmt.Fprintf(&sb, " rgba(%d,%d,%d,%d)", r>>8, g>>8, b>>8, a>>8)
	}
	return sb.String()
}

// RecordedPath is a path as it was stroked or filled, in surface coordinates.
type RecordedPath struct {
	Points []canvas.Point
	Closed bool
	Filled bool // filled if true, stroked otherwise
	Color  color.Color
	Width  float64
	Dashes []float64
}

// RecordedText is a text as it was drawn, with its anchor in surface coordinates and the accumulated rotation of the view.
type RecordedText struct {
	Text  string
	X, Y  float64
	Angle float64
	Width float64
	Font  Font
	Align Align
	Color color.Color
}

type recorderState struct {
	stroke, fill color.Color
	width        float64
	dashes       []float64
	font         Font
	align        Align
	view         canvas.Matrix
	angle        float64
}

// Recorder is a Surface that draws nothing but records every call. Text is measured as GlyphWidth times the font size per rune, making layouts predictable. It is used to test the renderers and to compare drawing sequences.
type Recorder struct {
	W, H       float64
	GlyphWidth float64
	Ops        []Op

	state recorderState
	stack []recorderState
	path  *RecordedPath
	paths []RecordedPath
	texts []RecordedText
}

// NewRecorder returns a recorder for a surface of width w and height h.
func NewRecorder(w, h float64) *Recorder {
	return &Recorder{
		W:          w,
		H:          h,
		GlyphWidth: 0.5,
		state: recorderState{
			stroke: canvas.Black,
			fill:   canvas.Black,
			width:  1.0,
			font:   DefaultFont,
			align:  AlignLeft,
			view:   canvas.Identity,
		},
	}
}

func (r *Recorder) record(op Op) {
	r.Ops = append(r.Ops, op)
}

// Paths returns all stroked and filled paths in drawing order.
func (r *Recorder) Paths() []RecordedPath {
	return r.paths
}

// Texts returns all drawn texts in drawing order.
func (r *Recorder) Texts() []RecordedText {
	return r.texts
}

// Count returns the number of recorded calls with the given name.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Name == name {
			n++
		}
	}
	return n
}

func (r *Recorder) Size() (float64, float64) {
	return r.W, r.H
}

func (r *Recorder) SetStrokeColor(col color.Color) {
	r.state.stroke = col
	r.record(Op{Name: "SetStrokeColor", Color: col})
}

func (r *Recorder) SetFillColor(col color.Color) {
	r.state.fill = col
	r.record(Op{Name: "SetFillColor", Color: col})
}

func (r *Recorder) SetStrokeWidth(width float64) {
	r.state.width = width
	r.record(Op{Name: "SetStrokeWidth", Args: []float64{width}})
}

func (r *Recorder) SetDashes(dashes []float64) {
	r.state.dashes = append([]float64{}, dashes...)
	r.record(Op{Name: "SetDashes", Args: r.state.dashes})
}

func (r *Recorder) SetFont(font Font) {
	r.state.font = font
	r.record(Op{Name: "SetFont", Args: []float64{font.Size}, Text: font.Family, Color: font.Color, Font: font})
}

func (r *Recorder) SetTextAlign(align Align) {
	r.state.align = align
	r.record(Op{Name: "SetTextAlign", Align: align})
}

func (r *Recorder) Push() {
	r.stack = append(r.stack, r.state)
	r.record(Op{Name: "Push"})
}

func (r *Recorder) Pop() {
	if 0 < len(r.stack) {
		r.state = r.stack[len(r.stack)-1]
		r.stack = r.stack[:len(r.stack)-1]
	}
	r.record(Op{Name: "Pop"})
}

func (r *Recorder) Translate(x, y float64) {
	r.state.view = r.state.view.Translate(x, y)
	r.record(Op{Name: "Translate", Args: []float64{x, y}})
}

func (r *Recorder) Rotate(deg float64) {
	r.state.view = r.state.view.Rotate(deg)
	r.state.angle += deg
	r.record(Op{Name: "Rotate", Args: []float64{deg}})
}

func (r *Recorder) addPoint(x, y float64) {
	if r.path == nil {
		r.path = &RecordedPath{}
	}
	r.path.Points = append(r.path.Points, r.state.view.Dot(canvas.Point{X: x, Y: y}))
}

func (r *Recorder) MoveTo(x, y float64) {
	r.addPoint(x, y)
	r.record(Op{Name: "MoveTo", Args: []float64{x, y}})
}

func (r *Recorder) LineTo(x, y float64) {
	r.addPoint(x, y)
	r.record(Op{Name: "LineTo", Args: []float64{x, y}})
}

func (r *Recorder) Arc(x, y, radius float64) {
	r.addPoint(x, y)
	r.record(Op{Name: "Arc", Args: []float64{x, y, radius}})
}

func (r *Recorder) Close() {
	if r.path != nil {
		r.path.Closed = true
	}
	r.record(Op{Name: "Close"})
}

func (r *Recorder) flush(filled bool) {
	if r.path == nil {
		return
	}
	r.path.Filled = filled
	r.path.Width = r.state.width
	r.path.Dashes = r.state.dashes
	if filled {
		r.path.Color = r.state.fill
	} else {
		r.path.Color = r.state.stroke
	}
	r.paths = append(r.paths, *r.path)
	r.path = nil
}

func (r *Recorder) Stroke() {
	r.record(Op{Name: "Stroke"})
	r.flush(false)
}

func (r *Recorder) Fill() {
	r.record(Op{Name: "Fill"})
	r.flush(true)
}

func (r *Recorder) FillText(s string, x, y float64) {
	p := r.state.view.Dot(canvas.Point{X: x, Y: y})
	r.texts = append(r.texts, RecordedText{
		Text:  s,
		X:     p.X,
		Y:     p.Y,
		Angle: r.state.angle,
		Width: r.TextWidth(s),
		Font:  r.state.font,
		Align: r.state.align,
		Color: r.state.fill,
	})
	r.record(Op{Name: "FillText", Args: []float64{x, y}, Text: s})
}

func (r *Recorder) TextWidth(s string) float64 {
	return r.GlyphWidth * r.state.font.Size * float64(utf8.RuneCountInString(s))
}

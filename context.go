package relief

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/tdewolff/canvas"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// ptPerPx converts pixel font sizes to points, since one canvas unit (millimeter) is drawn as one pixel.
const ptPerPx = 72.0 / 25.4

// FontSet resolves font family names to loaded canvas font families. The generic families "sans-serif", "serif" and "monospace" are backed by embedded fonts, unknown names fall back to "sans-serif".
type FontSet struct {
	families map[string]*canvas.FontFamily
}

// NewFontSet returns a font set with the embedded generic families loaded.
func NewFontSet() (*FontSet, error) {
	fs := &FontSet{
		families: map[string]*canvas.FontFamily{},
	}
	embedded := []struct {
		name string
		b    []byte
	}{
		{"sans-serif", goregular.TTF},
		{"serif", lmroman10regular.TTF},
		{"monospace", gomono.TTF},
	}
	for _, font := range embedded {
		family := canvas.NewFontFamily(font.name)
		if err := family.LoadFont(font.b, 0, canvas.FontRegular); err != nil {
			return nil, fmt.Errorf("load %s font: %w", font.name, err)
		}
		fs.families[font.name] = family
	}
	return fs, nil
}

// Register adds or replaces a font family under the given name.
func (fs *FontSet) Register(name string, family *canvas.FontFamily) {
	fs.families[strings.ToLower(name)] = family
}

// Family returns the font family for name.
func (fs *FontSet) Family(name string) *canvas.FontFamily {
	if family, ok := fs.families[strings.ToLower(name)]; ok {
		return family
	}
	return fs.families["sans-serif"]
}

// Face returns the font face for font drawn in color col.
func (fs *FontSet) Face(font Font, col color.Color) *canvas.FontFace {
	if col == nil {
		col = canvas.Black
	}
	return fs.Family(font.Family).Face(font.Size*ptPerPx, col, canvas.FontRegular, canvas.FontNormal)
}

type canvasState struct {
	font  Font
	align Align
	fill  color.Color
	view  canvas.Matrix
	angle float64
}

// CanvasSurface is a Surface that draws onto a canvas.Canvas, where one canvas unit is one pixel. Pixel coordinates are flipped so that the origin is at the top-left, text stays upright and is rotated only through Rotate.
type CanvasSurface struct {
	ctx   *canvas.Context
	fonts *FontSet
	w, h  float64

	state canvasState
	stack []canvasState
	path  *canvas.Path
}

// NewCanvasSurface returns a surface drawing onto c with the fonts of fs.
func NewCanvasSurface(c *canvas.Canvas, fs *FontSet) *CanvasSurface {
	ctx := canvas.NewContext(c)
	ctx.SetFillColor(canvas.Black)
	ctx.SetStrokeColor(canvas.Black)
	ctx.SetStrokeWidth(1.0)
	return &CanvasSurface{
		ctx:   ctx,
		fonts: fs,
		w:     c.W,
		h:     c.H,
		state: canvasState{
			font:  DefaultFont,
			align: AlignLeft,
			fill:  canvas.Black,
			view:  canvas.Identity.Translate(0.0, c.H).Scale(1.0, -1.0),
		},
		path: &canvas.Path{},
	}
}

func (s *CanvasSurface) Size() (float64, float64) {
	return s.w, s.h
}

func (s *CanvasSurface) SetStrokeColor(col color.Color) {
	s.ctx.SetStrokeColor(col)
}

func (s *CanvasSurface) SetFillColor(col color.Color) {
	s.state.fill = col
	s.ctx.SetFillColor(col)
}

func (s *CanvasSurface) SetStrokeWidth(width float64) {
	s.ctx.SetStrokeWidth(width)
}

func (s *CanvasSurface) SetDashes(dashes []float64) {
	s.ctx.SetDashes(0.0, dashes...)
}

func (s *CanvasSurface) SetFont(font Font) {
	s.state.font = font
}

func (s *CanvasSurface) SetTextAlign(align Align) {
	s.state.align = align
}

func (s *CanvasSurface) Push() {
	s.stack = append(s.stack, s.state)
	s.ctx.Push()
}

func (s *CanvasSurface) Pop() {
	if len(s.stack) == 0 {
		return
	}
	s.state = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	s.ctx.Pop()
}

func (s *CanvasSurface) Translate(x, y float64) {
	s.state.view = s.state.view.Translate(x, y)
}

func (s *CanvasSurface) Rotate(deg float64) {
	s.state.view = s.state.view.Rotate(deg)
	s.state.angle += deg
}

func (s *CanvasSurface) point(x, y float64) canvas.Point {
	return s.state.view.Dot(canvas.Point{X: x, Y: y})
}

func (s *CanvasSurface) MoveTo(x, y float64) {
	p := s.point(x, y)
	s.path.MoveTo(p.X, p.Y)
}

func (s *CanvasSurface) LineTo(x, y float64) {
	p := s.point(x, y)
	s.path.LineTo(p.X, p.Y)
}

func (s *CanvasSurface) Arc(x, y, r float64) {
	p := s.point(x, y)
	s.path = s.path.Append(canvas.Circle(r).Translate(p.X, p.Y))
}

func (s *CanvasSurface) Close() {
	s.path.Close()
}

func (s *CanvasSurface) Stroke() {
	s.ctx.Push()
	s.ctx.SetFillColor(canvas.Transparent)
	s.ctx.DrawPath(0.0, 0.0, s.path)
	s.ctx.Pop()
	s.path = &canvas.Path{}
}

func (s *CanvasSurface) Fill() {
	s.ctx.Push()
	s.ctx.SetStrokeColor(canvas.Transparent)
	s.ctx.DrawPath(0.0, 0.0, s.path)
	s.ctx.Pop()
	s.path = &canvas.Path{}
}

func (s *CanvasSurface) FillText(str string, x, y float64) {
	halign := canvas.Left
	switch s.state.align {
	case AlignCenter:
		halign = canvas.Center
	case AlignRight:
		halign = canvas.Right
	}
	text := canvas.NewTextLine(s.fonts.Face(s.state.font, s.state.fill), str, halign)

	p := s.point(x, y)
	s.ctx.Push()
	s.ctx.ComposeView(canvas.Identity.Translate(p.X, p.Y).Rotate(-s.state.angle))
	s.ctx.DrawText(0.0, 0.0, text)
	s.ctx.Pop()
}

func (s *CanvasSurface) TextWidth(str string) float64 {
	return s.fonts.Face(s.state.font, s.state.fill).TextWidth(str)
}

package relief

import (
	"image/color"
	"math"
	"strings"

	"github.com/tdewolff/canvas"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/font/liberation"
	"gonum.org/v1/plot/vg"
)

// vgVariants maps generic family names to Liberation variants.
var vgVariants = map[string]font.Variant{
	"sans-serif": "Sans",
	"serif":      "Serif",
	"monospace":  "Mono",
}

type vgState struct {
	stroke, fill color.Color
	width        float64
	dashes       []float64
	font         Font
	align        Align
	view         canvas.Matrix
	angle        float64
}

// VGSurface is a Surface that draws onto a gonum.org/v1/plot/vg canvas, such as the ones from vgimg, vgsvg or vgpdf. One point on the vg canvas is one pixel, so raster canvases should use 72 DPI. Text uses the Liberation fonts.
type VGSurface struct {
	c     vg.CanvasSizer
	cache *font.Cache
	w, h  float64

	state vgState
	stack []vgState
	path  vg.Path
}

// NewVGSurface returns a surface drawing onto c.
func NewVGSurface(c vg.CanvasSizer) *VGSurface {
	w, h := c.Size()
	s := &VGSurface{
		c:     c,
		cache: font.NewCache(liberation.Collection()),
		w:     float64(w),
		h:     float64(h),
		state: vgState{
			stroke: canvas.Black,
			fill:   canvas.Black,
			width:  1.0,
			font:   DefaultFont,
			align:  AlignLeft,
			view:   canvas.Identity,
		},
	}
	s.c.SetLineWidth(vg.Length(s.state.width))
	return s
}

func (s *VGSurface) face() font.Face {
	variant, ok := vgVariants[strings.ToLower(s.state.font.Family)]
	if !ok {
		variant = vgVariants["sans-serif"]
	}
	size := vg.Length(s.state.font.Size)
	return s.cache.Lookup(font.Font{Typeface: "Liberation", Variant: variant, Size: size}, size)
}

func (s *VGSurface) Size() (float64, float64) {
	return s.w, s.h
}

func (s *VGSurface) SetStrokeColor(col color.Color) {
	s.state.stroke = col
}

func (s *VGSurface) SetFillColor(col color.Color) {
	s.state.fill = col
}

func (s *VGSurface) SetStrokeWidth(width float64) {
	s.state.width = width
	s.c.SetLineWidth(vg.Length(width))
}

func (s *VGSurface) SetDashes(dashes []float64) {
	s.state.dashes = append([]float64{}, dashes...)
	pattern := make([]vg.Length, len(dashes))
	for i, dash := range dashes {
		pattern[i] = vg.Length(dash)
	}
	s.c.SetLineDash(pattern, 0.0)
}

func (s *VGSurface) SetFont(f Font) {
	s.state.font = f
}

func (s *VGSurface) SetTextAlign(align Align) {
	s.state.align = align
}

func (s *VGSurface) Push() {
	s.stack = append(s.stack, s.state)
	s.c.Push()
}

func (s *VGSurface) Pop() {
	if len(s.stack) == 0 {
		return
	}
	s.state = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	s.c.Pop()
}

func (s *VGSurface) Translate(x, y float64) {
	s.state.view = s.state.view.Translate(x, y)
}

func (s *VGSurface) Rotate(deg float64) {
	s.state.view = s.state.view.Rotate(deg)
	s.state.angle += deg
}

// point maps surface coordinates to the vg canvas, which has its origin at the bottom-left.
func (s *VGSurface) point(x, y float64) vg.Point {
	p := s.state.view.Dot(canvas.Point{X: x, Y: y})
	return vg.Point{X: vg.Length(p.X), Y: vg.Length(s.h - p.Y)}
}

func (s *VGSurface) MoveTo(x, y float64) {
	s.path.Move(s.point(x, y))
}

func (s *VGSurface) LineTo(x, y float64) {
	s.path.Line(s.point(x, y))
}

func (s *VGSurface) Arc(x, y, r float64) {
	center := s.point(x, y)
	s.path.Move(vg.Point{X: center.X + vg.Length(r), Y: center.Y})
	s.path.Arc(center, vg.Length(r), 0.0, math.Pi)
	s.path.Arc(center, vg.Length(r), math.Pi, math.Pi)
}

func (s *VGSurface) Close() {
	s.path.Close()
}

func (s *VGSurface) Stroke() {
	s.c.SetColor(s.state.stroke)
	s.c.Stroke(s.path)
	s.path = nil
}

func (s *VGSurface) Fill() {
	s.c.SetColor(s.state.fill)
	s.c.Fill(s.path)
	s.path = nil
}

func (s *VGSurface) FillText(str string, x, y float64) {
	dx := 0.0
	if s.state.align == AlignCenter {
		dx = -s.TextWidth(str) / 2.0
	} else if s.state.align == AlignRight {
		dx = -s.TextWidth(str)
	}

	s.c.Push()
	s.c.SetColor(s.state.fill)
	s.c.Translate(s.point(x, y))
	// vg angles run counter-clockwise with the y-axis up
	s.c.Rotate(-s.state.angle * math.Pi / 180.0)
	s.c.FillString(s.face(), vg.Point{X: vg.Length(dx)}, str)
	s.c.Pop()
}

func (s *VGSurface) TextWidth(str string) float64 {
	face := s.face()
	return float64(face.Width(str))
}

package relief

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"

	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/golang/freetype/truetype"
	"github.com/tdewolff/canvas"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// TrueTypeFonts resolves font family names to parsed TrueType fonts for the go-chart backend. Unknown names fall back to "sans-serif".
type TrueTypeFonts map[string]*truetype.Font

// NewTrueTypeFonts returns the embedded generic families "sans-serif", "serif" and "monospace".
func NewTrueTypeFonts() (TrueTypeFonts, error) {
	fonts := TrueTypeFonts{}
	for name, b := range map[string][]byte{
		"sans-serif": goregular.TTF,
		"serif":      lmroman10regular.TTF,
		"monospace":  gomono.TTF,
	} {
		f, err := truetype.Parse(b)
		if err != nil {
			return nil, fmt.Errorf("parse %s font: %w", name, err)
		}
		fonts[name] = f
	}
	return fonts, nil
}

func (fonts TrueTypeFonts) lookup(name string) *truetype.Font {
	if f, ok := fonts[strings.ToLower(name)]; ok {
		return f
	}
	return fonts["sans-serif"]
}

func chartColor(col color.Color) drawing.Color {
	if col == nil {
		return drawing.ColorTransparent
	}
	c := color.NRGBAModel.Convert(col).(color.NRGBA)
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

type chartState struct {
	stroke, fill color.Color
	width        float64
	dashes       []float64
	font         Font
	align        Align
	view         canvas.Matrix
	angle        float64
}

// ChartSurface is a Surface that draws onto a github.com/wcharczuk/go-chart renderer, such as chart.PNG or chart.SVG. Coordinates are rounded to whole pixels by the renderer.
type ChartSurface struct {
	r     chart.Renderer
	fonts TrueTypeFonts
	w, h  float64

	state chartState
	stack []chartState
}

// NewChartSurface returns a surface of width w and height h in pixels drawing onto a renderer created by rp.
func NewChartSurface(rp chart.RendererProvider, w, h int, fonts TrueTypeFonts) (*ChartSurface, error) {
	r, err := rp(w, h)
	if err != nil {
		return nil, err
	}
	s := &ChartSurface{
		r:     r,
		fonts: fonts,
		w:     float64(w),
		h:     float64(h),
		state: chartState{
			stroke: canvas.Black,
			fill:   canvas.Black,
			width:  1.0,
			font:   DefaultFont,
			align:  AlignLeft,
			view:   canvas.Identity,
		},
	}
	s.apply()
	return s, nil
}

// apply pushes the whole state to the renderer, which has no state stack of its own.
func (s *ChartSurface) apply() {
	s.r.SetStrokeColor(chartColor(s.state.stroke))
	s.r.SetFillColor(chartColor(s.state.fill))
	s.r.SetStrokeWidth(s.state.width)
	s.r.SetStrokeDashArray(s.state.dashes)
	s.SetFont(s.state.font)
}

// Save writes the image in the format of the renderer.
func (s *ChartSurface) Save(w io.Writer) error {
	return s.r.Save(w)
}

func (s *ChartSurface) Size() (float64, float64) {
	return s.w, s.h
}

func (s *ChartSurface) SetStrokeColor(col color.Color) {
	s.state.stroke = col
	s.r.SetStrokeColor(chartColor(col))
}

func (s *ChartSurface) SetFillColor(col color.Color) {
	s.state.fill = col
	s.r.SetFillColor(chartColor(col))
}

func (s *ChartSurface) SetStrokeWidth(width float64) {
	s.state.width = width
	s.r.SetStrokeWidth(width)
}

func (s *ChartSurface) SetDashes(dashes []float64) {
	s.state.dashes = append([]float64{}, dashes...)
	s.r.SetStrokeDashArray(s.state.dashes)
}

func (s *ChartSurface) SetFont(font Font) {
	s.state.font = font
	s.r.SetFont(s.fonts.lookup(font.Family))
	// go-chart sizes fonts in points at the renderer's DPI
	s.r.SetFontSize(font.Size * 72.0 / s.r.GetDPI())
}

func (s *ChartSurface) SetTextAlign(align Align) {
	s.state.align = align
}

func (s *ChartSurface) Push() {
	s.stack = append(s.stack, s.state)
}

func (s *ChartSurface) Pop() {
	if len(s.stack) == 0 {
		return
	}
	s.state = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	s.apply()
}

func (s *ChartSurface) Translate(x, y float64) {
	s.state.view = s.state.view.Translate(x, y)
}

func (s *ChartSurface) Rotate(deg float64) {
	s.state.view = s.state.view.Rotate(deg)
	s.state.angle += deg
}

func (s *ChartSurface) point(x, y float64) (int, int) {
	p := s.state.view.Dot(canvas.Point{X: x, Y: y})
	return int(math.Round(p.X)), int(math.Round(p.Y))
}

func (s *ChartSurface) MoveTo(x, y float64) {
	s.r.MoveTo(s.point(x, y))
}

func (s *ChartSurface) LineTo(x, y float64) {
	s.r.LineTo(s.point(x, y))
}

// Arc adds a full circle as two half arcs, since a single arc of 2π degenerates in SVG.
func (s *ChartSurface) Arc(x, y, r float64) {
	cx, cy := s.point(x, y)
	s.r.ArcTo(cx, cy, r, r, 0.0, math.Pi)
	s.r.ArcTo(cx, cy, r, r, math.Pi, math.Pi)
}

func (s *ChartSurface) Close() {
	s.r.Close()
}

func (s *ChartSurface) Stroke() {
	s.r.Stroke()
}

func (s *ChartSurface) Fill() {
	s.r.Fill()
}

func (s *ChartSurface) FillText(str string, x, y float64) {
	w := s.TextWidth(str)
	dx := 0.0
	if s.state.align == AlignCenter {
		dx = -w / 2.0
	} else if s.state.align == AlignRight {
		dx = -w
	}

	// the alignment offset runs along the rotated baseline
	sin, cos := math.Sincos(s.state.angle * math.Pi / 180.0)
	p := s.state.view.Dot(canvas.Point{X: x, Y: y})
	px, py := int(math.Round(p.X+dx*cos)), int(math.Round(p.Y+dx*sin))

	s.r.SetFontColor(chartColor(s.state.fill))
	if s.state.angle != 0.0 {
		rad := math.Mod(s.state.angle*math.Pi/180.0, 2.0*math.Pi)
		if rad < 0.0 {
			rad += 2.0 * math.Pi
		}
		s.r.SetTextRotation(rad)
		s.r.Text(str, px, py)
		s.r.ClearTextRotation()
		return
	}
	s.r.Text(str, px, py)
}

func (s *ChartSurface) TextWidth(str string) float64 {
	if str == "" {
		return 0.0
	}
	return float64(s.r.MeasureText(str).Width())
}

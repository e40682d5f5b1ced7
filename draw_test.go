package relief

import (
	"testing"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/test"
)

func TestDrawLine(t *testing.T) {
	r := NewRecorder(100.0, 100.0)
	d := NewDrawer(r)
	d.DrawLine(canvas.Point{X: 1.0, Y: 2.0}, canvas.Point{X: 30.0, Y: 40.0}, DrawStyle{Color: canvas.Red, LineWidth: 3.0, LineDash: []float64{4.0, 2.0}})

	paths := r.Paths()
	test.T(t, len(paths), 1)
	test.T(t, paths[0].Points, []canvas.Point{{X: 1.0, Y: 2.0}, {X: 30.0, Y: 40.0}})
	test.T(t, paths[0].Color, canvas.Red)
	test.Float(t, paths[0].Width, 3.0)
	test.T(t, paths[0].Dashes, []float64{4.0, 2.0})
}

func TestDrawStatePersists(t *testing.T) {
	r := NewRecorder(100.0, 100.0)
	d := NewDrawer(r)
	d.DrawLine(canvas.Point{}, canvas.Point{X: 1.0}, DrawStyle{Color: canvas.Red, LineWidth: 3.0, LineDash: []float64{1.0}})
	d.DrawLine(canvas.Point{}, canvas.Point{X: 1.0}, DrawStyle{})
	d.DrawLine(canvas.Point{}, canvas.Point{X: 1.0}, DrawStyle{LineDash: Solid})

	paths := r.Paths()
	test.T(t, paths[1].Color, canvas.Red)
	test.Float(t, paths[1].Width, 3.0)
	test.T(t, paths[1].Dashes, []float64{1.0})
	test.T(t, len(paths[2].Dashes), 0)
	test.T(t, r.Count("SetStrokeColor"), 1)
}

func TestDrawPolyline(t *testing.T) {
	r := NewRecorder(100.0, 100.0)
	d := NewDrawer(r)

	d.DrawPolyline(nil, DrawStyle{Color: canvas.Red})
	test.T(t, len(r.Ops), 0)

	d.DrawPolyline([]canvas.Point{{X: 5.0, Y: 5.0}}, DrawStyle{})
	test.T(t, r.Count("MoveTo"), 1)
	test.T(t, r.Count("LineTo"), 0)

	d.DrawPolyline([]canvas.Point{{X: 0.0, Y: 0.0}, {X: 10.0, Y: 0.0}, {X: 10.0, Y: 10.0}}, DrawStyle{})
	test.T(t, r.Count("LineTo"), 2)
	test.T(t, r.Paths()[1].Points[2], canvas.Point{X: 10.0, Y: 10.0})
}

func TestDrawCircle(t *testing.T) {
	r := NewRecorder(100.0, 100.0)
	d := NewDrawer(r)
	d.DrawCircle(canvas.Point{X: 50.0, Y: 50.0}, 10.0, DrawStyle{Color: canvas.Blue, FillColor: canvas.Yellow})

	names := []string{}
	for _, op := range r.Ops {
		names = append(names, op.Name)
	}
	test.T(t, names, []string{"SetFillColor", "Arc", "Fill", "SetStrokeColor", "Arc", "Stroke"})

	paths := r.Paths()
	test.T(t, paths[0].Color, canvas.Yellow)
	test.T(t, paths[1].Color, canvas.Blue)
	test.T(t, r.Ops[1].Args, []float64{50.0, 50.0, 10.0})
}

func TestDrawText(t *testing.T) {
	r := NewRecorder(100.0, 100.0)
	d := NewDrawer(r)
	font := Font{Size: 20.0, Family: "serif", Color: canvas.Green}
	d.DrawText("abc", canvas.Point{X: 10.0, Y: 20.0}, DrawStyle{Font: &font, Align: AlignRight})

	text := r.Texts()[0]
	test.String(t, text.Text, "abc")
	test.Float(t, text.X, 10.0)
	test.Float(t, text.Y, 20.0)
	test.Float(t, text.Width, 30.0)
	test.T(t, text.Font, font)
	test.T(t, text.Align, AlignRight)
	test.T(t, text.Color, canvas.Green)

	// an explicit color has priority over the font color
	d.DrawText("abc", canvas.Point{}, DrawStyle{Font: &font, Color: canvas.Red})
	test.T(t, r.Texts()[1].Color, canvas.Red)
	test.T(t, r.Texts()[1].Align, AlignRight)
}

func TestDrawTextRotated(t *testing.T) {
	r := NewRecorder(100.0, 100.0)
	d := NewDrawer(r)
	d.DrawText("up", canvas.Point{X: 10.0, Y: 80.0}, DrawStyle{Angle: -90.0})
	d.DrawText("flat", canvas.Point{X: 30.0, Y: 40.0}, DrawStyle{})

	texts := r.Texts()
	test.Float(t, texts[0].X, 10.0)
	test.Float(t, texts[0].Y, 80.0)
	test.Float(t, texts[0].Angle, -90.0)
	test.Float(t, texts[1].X, 30.0)
	test.Float(t, texts[1].Y, 40.0)
	test.Float(t, texts[1].Angle, 0.0)
	test.T(t, r.Count("Push"), 1)
	test.T(t, r.Count("Pop"), 1)
}

func TestDrawerTextWidth(t *testing.T) {
	r := NewRecorder(100.0, 100.0)
	d := NewDrawer(r)
	test.Float(t, d.TextWidth("abcd", Font{Size: 10.0}), 20.0)
	test.Float(t, d.TextWidth("", DefaultFont), 0.0)
	test.Float(t, d.TextWidth("é", DefaultFont), 6.0)
}

func TestStyleMerge(t *testing.T) {
	font := Font{Size: 8.0}
	s := DrawStyle{Color: canvas.Red, Font: &font, Angle: 45.0}.Merge(DefaultStyle)
	test.T(t, s.Color, canvas.Red)
	test.T(t, s.FillColor, DefaultStyle.FillColor)
	test.Float(t, s.LineWidth, 1.0)
	test.Float(t, s.Font.Size, 8.0)
	test.String(t, s.Font.Family, "sans-serif")
	test.T(t, s.Font.Color, canvas.Black)
	test.Float(t, s.Angle, 45.0)
	test.T(t, s.Align, AlignLeft)
	test.Float(t, font.Size, 8.0)
	test.String(t, font.Family, "")

	s = DrawStyle{}.Merge(DrawStyle{Angle: 90.0})
	test.Float(t, s.Angle, 0.0)
}

func TestRecorderDeterministic(t *testing.T) {
	chart := testChart()
	r1, r2 := NewRecorder(400.0, 240.0), NewRecorder(400.0, 240.0)
	test.Error(t, New(r1).DrawChart(chart))
	test.Error(t, New(r2).DrawChart(chart))
	test.That(t, 0 < len(r1.Ops))
	test.T(t, len(r1.Ops), len(r2.Ops))
	for i := range r1.Ops {
		test.String(t, r1.Ops[i].String(), r2.Ops[i].String(), i)
	}
	test.T(t, r1.Paths(), r2.Paths())
	test.T(t, r1.Texts(), r2.Texts())
}

func TestOpString(t *testing.T) {
	test.String(t, Op{Name: "MoveTo", Args: []float64{1.0, 2.5}}.String(), "MoveTo 1,2.5")
	test.String(t, Op{Name: "FillText", Args: []float64{0.0, 0.0}, Text: "a"}.String(), `FillText 0,0 "a"`)
	test.String(t, Op{Name: "SetStrokeColor", Color: canvas.Red}.String(), "SetStrokeColor rgba(255,0,0,255)")
}

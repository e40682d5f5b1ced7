package relief

import (
	"image/color"

	"github.com/tdewolff/canvas"
)

// ConnectDataPoints strokes a polyline through points in their given order, using straight segments only. An empty slice draws nothing and a single point draws a path without segments.
func (e *Engine) ConnectDataPoints(points []DataPoint, cfg AxisConfig, style DrawStyle) error {
	if len(points) == 0 {
		return nil
	}
	t, err := e.Transform(cfg)
	if err != nil {
		return err
	}

	coords := make([]canvas.Point, len(points))
	for i, p := range points {
		coords[i] = t.Point(p)
	}
	e.d.DrawPolyline(coords, style.Merge(DefaultStyle))
	return nil
}

// FillAreaUnderCurve fills the region between the curve through points and the baseline of the X axis. Parts of the curve below the baseline are filled towards it as well, so this is not the geometric area under the curve.
func (e *Engine) FillAreaUnderCurve(points []DataPoint, cfg AxisConfig, fill color.Color) error {
	if len(points) == 0 {
		return nil
	}
	t, err := e.Transform(cfg)
	if err != nil {
		return err
	}
	if fill == nil {
		fill = DefaultStyle.FillColor
	}

	baseline := t.Baseline()
	e.s.SetFillColor(fill)
	e.s.MoveTo(t.X(points[0].Time), baseline)
	for _, p := range points {
		q := t.Point(p)
		e.s.LineTo(q.X, q.Y)
	}
	e.s.LineTo(t.X(points[len(points)-1].Time), baseline)
	e.s.Close()
	e.s.Fill()
	return nil
}

// DrawDataPoints draws a circular marker of radius r at every point.
func (e *Engine) DrawDataPoints(points []DataPoint, cfg AxisConfig, r float64, style DrawStyle) error {
	if len(points) == 0 {
		return nil
	}
	t, err := e.Transform(cfg)
	if err != nil {
		return err
	}

	fill := style.FillColor
	style = style.Merge(DefaultStyle)
	style.FillColor = fill
	for _, p := range points {
		e.d.DrawCircle(t.Point(p), r, style)
	}
	return nil
}

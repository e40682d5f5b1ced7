package relief

import (
	"math"

	"github.com/tdewolff/canvas"
)

// Interpolate returns the elevation of curve at time t by linear interpolation over the first segment whose right end is at or after t. Times before the first point extrapolate along the first segment. It returns false if no segment reaches t. The curve must be sorted by time, otherwise the first matching segment is used.
func Interpolate(curve []DataPoint, t float64) (float64, bool) {
	for i := 1; i < len(curve); i++ {
		if t <= curve[i].Time {
			p0, p1 := curve[i-1], curve[i]
			if p1.Time == p0.Time {
				return p1.Elevation, true
			}
			return p0.Elevation + (t-p0.Time)/(p1.Time-p0.Time)*(p1.Elevation-p0.Elevation), true
		}
	}
	return 0.0, false
}

// DrawVerticalLineToTrajectoryWithLimits draws for every marker a vertical line at the marker's time, from the baseline up to the reference curve's interpolated elevation. The upper end is limited to the plotting rectangle. Markers beyond the last time of the reference curve are skipped.
func (e *Engine) DrawVerticalLineToTrajectoryWithLimits(markers, reference []DataPoint, cfg AxisConfig, style DrawStyle) error {
	t, err := e.Transform(cfg)
	if err != nil {
		return err
	}
	style = style.Merge(DefaultStyle)

	plot := t.Plot()
	baseline := t.Baseline()
	for _, marker := range markers {
		elevation, ok := Interpolate(reference, marker.Time)
		if !ok {
			continue
		}
		x := t.X(marker.Time)
		y := math.Max(plot.Y0, math.Min(baseline, t.Y(elevation)))
		e.d.DrawLine(canvas.Point{X: x, Y: baseline}, canvas.Point{X: x, Y: y}, style)
	}
	return nil
}

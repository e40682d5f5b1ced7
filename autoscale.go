package relief

import (
	"math"

	"github.com/tdewolff/canvas"
	"gonum.org/v1/plot"
)

// Bounds returns the extent of all series with the time range in X0,X1 and the elevation range in Y0,Y1. It returns false if the series hold no points.
func Bounds(series ...[]DataPoint) (canvas.Rect, bool) {
	r := canvas.Rect{X0: math.Inf(1.0), Y0: math.Inf(1.0), X1: math.Inf(-1.0), Y1: math.Inf(-1.0)}
	n := 0
	for _, points := range series {
		for _, p := range points {
			r.X0 = math.Min(r.X0, p.Time)
			r.X1 = math.Max(r.X1, p.Time)
			r.Y0 = math.Min(r.Y0, p.Elevation)
			r.Y1 = math.Max(r.Y1, p.Elevation)
			n++
		}
	}
	return r, 0 < n
}

// AutoScale returns a scale enclosing [min,max] whose step is the major tick spacing chosen by gonum/plot, with bounds rounded outwards to a multiple of the step. Equal bounds are widened by one unit.
func AutoScale(min, max float64) (Scale, error) {
	if min == max {
		min, max = min-0.5, max+0.5
	}
	if err := validateBounds(min, max); err != nil {
		return Scale{}, err
	}

	major := []float64{}
	for _, tick := range (plot.DefaultTicks{}).Ticks(min, max) {
		if !tick.IsMinor() {
			major = append(major, tick.Value)
		}
	}
	step := max - min
	if 2 <= len(major) {
		step = major[1] - major[0]
	}

	s := Scale{
		Min:  math.Floor(min/step) * step,
		Max:  math.Ceil(max/step) * step,
		Step: step,
	}
	if step < 1.0 {
		s.ShowDecimals = true
		s.DecimalPlaces = int(math.Ceil(-math.Log10(step) - tickEpsilon))
	}
	return s, nil
}

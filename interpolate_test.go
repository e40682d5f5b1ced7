package relief

import (
	"errors"
	"testing"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/test"
)

func TestInterpolate(t *testing.T) {
	curve := []DataPoint{{0.0, 0.0}, {10.0, 100.0}, {20.0, 50.0}, {20.0, 80.0}, {30.0, 80.0}}
	var tts = []struct {
		t  float64
		e  float64
		ok bool
	}{
		{5.0, 50.0, true},
		{0.0, 0.0, true},
		{10.0, 100.0, true},
		{15.0, 75.0, true},
		{20.0, 50.0, true},
		{25.0, 80.0, true},
		{30.0, 80.0, true},
		{-5.0, -50.0, true}, // extrapolated along the first segment
		{30.5, 0.0, false},
	}
	for _, tt := range tts {
		e, ok := Interpolate(curve, tt.t)
		test.T(t, ok, tt.ok, tt.t)
		test.Float(t, e, tt.e, tt.t)
	}

	_, ok := Interpolate(nil, 0.0)
	test.That(t, !ok)
	_, ok = Interpolate([]DataPoint{{0.0, 10.0}}, 0.0)
	test.That(t, !ok)

	// zero-length segment
	e, ok := Interpolate([]DataPoint{{5.0, 10.0}, {5.0, 30.0}}, 5.0)
	test.That(t, ok)
	test.Float(t, e, 30.0)
}

func TestInterpolateExact(t *testing.T) {
	e, ok := Interpolate([]DataPoint{{0.0, 0.0}, {10.0, 100.0}}, 5.0)
	test.That(t, ok)
	test.T(t, e, 50.0)
}

func lineTestConfig() AxisConfig {
	return AxisConfig{
		X:       Scale{Min: 0.0, Max: 10.0, Step: 1.0},
		Y:       Scale{Min: 0.0, Max: 100.0, Step: 10.0},
		Padding: Padding{Top: 10.0, Bottom: 10.0, Left: 10.0, Right: 10.0},
	}
}

func TestDrawVerticalLineToTrajectoryWithLimits(t *testing.T) {
	r := NewRecorder(120.0, 120.0)
	e := New(r)
	cfg := lineTestConfig()

	reference := []DataPoint{{0.0, 0.0}, {10.0, 100.0}}
	markers := []DataPoint{{5.0, 0.0}, {2.0, 999.0}, {11.0, 0.0}}
	test.Error(t, e.DrawVerticalLineToTrajectoryWithLimits(markers, reference, cfg, DrawStyle{Color: canvas.Gray, LineDash: []float64{2.0, 2.0}}))

	paths := r.Paths()
	test.T(t, len(paths), 2)
	test.T(t, paths[0].Points, []canvas.Point{{X: 60.0, Y: 110.0}, {X: 60.0, Y: 60.0}})
	test.T(t, paths[1].Points, []canvas.Point{{X: 30.0, Y: 110.0}, {X: 30.0, Y: 90.0}})
	test.T(t, paths[0].Color, canvas.Gray)
	test.T(t, paths[0].Dashes, []float64{2.0, 2.0})
}

func TestDrawVerticalLineOutOfRange(t *testing.T) {
	r := NewRecorder(120.0, 120.0)
	e := New(r)
	reference := []DataPoint{{0.0, 0.0}, {10.0, 100.0}}
	test.Error(t, e.DrawVerticalLineToTrajectoryWithLimits([]DataPoint{{10.5, 0.0}}, reference, lineTestConfig(), DrawStyle{}))
	test.T(t, r.Count("Stroke"), 0)
	test.T(t, r.Count("MoveTo"), 0)
}

func TestDrawVerticalLineLimits(t *testing.T) {
	r := NewRecorder(120.0, 120.0)
	e := New(r)
	reference := []DataPoint{{0.0, -50.0}, {10.0, 250.0}}
	test.Error(t, e.DrawVerticalLineToTrajectoryWithLimits([]DataPoint{{0.0, 0.0}, {10.0, 0.0}}, reference, lineTestConfig(), DrawStyle{}))

	paths := r.Paths()
	test.T(t, len(paths), 2)
	test.T(t, paths[0].Points, []canvas.Point{{X: 10.0, Y: 110.0}, {X: 10.0, Y: 110.0}})
	test.T(t, paths[1].Points, []canvas.Point{{X: 110.0, Y: 110.0}, {X: 110.0, Y: 10.0}})
}

func TestDrawVerticalLineInvalidScale(t *testing.T) {
	cfg := lineTestConfig()
	cfg.X.Min, cfg.X.Max = 10.0, 0.0
	err := New(NewRecorder(120.0, 120.0)).DrawVerticalLineToTrajectoryWithLimits(nil, nil, cfg, DrawStyle{})
	test.That(t, errors.Is(err, ErrInvalidScale))
}

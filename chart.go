package relief

import (
	"image/color"
)

// Chart is a complete relief and trajectory profile: the relief drawn as a filled curve, the trajectory as a line, vertical lines from the baseline to the trajectory at every marker, and a selector pair at the markers, which must then be exactly two.
type Chart struct {
	Axes AxisConfig

	Relief      []DataPoint
	ReliefStyle DrawStyle
	ReliefFill  color.Color // no fill when nil

	Trajectory      []DataPoint
	TrajectoryStyle DrawStyle

	Markers   []DataPoint
	LineStyle DrawStyle // vertical marker lines

	Labels   SelectorLabels
	Selector SelectorOptions
}

// DrawChart draws all layers of chart in order: axes, relief fill, relief line, trajectory line, marker lines and selectors. The transform is validated up front, but drawing is not transactional and a selector error leaves the earlier layers drawn.
func (e *Engine) DrawChart(chart Chart) error {
	if _, err := e.Transform(chart.Axes); err != nil {
		return err
	}

	if err := e.DrawAxes(chart.Axes); err != nil {
		return err
	}
	if chart.ReliefFill != nil {
		if err := e.FillAreaUnderCurve(chart.Relief, chart.Axes, chart.ReliefFill); err != nil {
			return err
		}
	}
	if err := e.ConnectDataPoints(chart.Relief, chart.Axes, chart.ReliefStyle); err != nil {
		return err
	}
	if err := e.ConnectDataPoints(chart.Trajectory, chart.Axes, chart.TrajectoryStyle); err != nil {
		return err
	}
	if len(chart.Markers) == 0 {
		return nil
	}
	if err := e.DrawVerticalLineToTrajectoryWithLimits(chart.Markers, chart.Trajectory, chart.Axes, chart.LineStyle); err != nil {
		return err
	}
	return e.DrawSelectors(chart.Markers, chart.Labels, chart.Axes, chart.Selector)
}

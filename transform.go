package relief

import (
	"errors"
	"fmt"
	"math"

	"github.com/tdewolff/canvas"
	"golang.org/x/text/language"
)

// ErrInvalidScale is returned when scale bounds cannot be mapped to pixels, i.e. when Max is not strictly larger than Min or when either bound is not finite.
var ErrInvalidScale = errors.New("invalid scale")

// ErrInvalidInput is returned for malformed drawing input, such as a selector call with other than two markers.
var ErrInvalidInput = errors.New("invalid input")

// DataPoint is a sample of a relief or trajectory series in domain units.
type DataPoint struct {
	Time      float64
	Elevation float64
}

// Scale defines the domain bounds and the tick spacing of an axis.
type Scale struct {
	Min, Max float64
	Step     float64

	// DecimalPlaces is the number of decimals of tick labels when ShowDecimals is set, it defaults to 1.
	DecimalPlaces int
	ShowDecimals  bool

	// LabelOffset is the distance between the tick mark and its label, it defaults to DefaultLabelOffset.
	LabelOffset float64

	// Language formats tick labels with the decimal and grouping separators of a locale. The zero value formats plain numbers.
	Language language.Tag
}

// Validate returns ErrInvalidScale if the bounds are not finite or if Max does not exceed Min.
func (s Scale) Validate() error {
	return validateBounds(s.Min, s.Max)
}

// Span returns Max-Min.
func (s Scale) Span() float64 {
	return s.Max - s.Min
}

func validateBounds(min, max float64) error {
	if math.IsNaN(min) || math.IsInf(min, 0) || math.IsNaN(max) || math.IsInf(max, 0) {
		return fmt.Errorf("%w: non-finite bounds [%v,%v]", ErrInvalidScale, min, max)
	} else if max == min {
		return fmt.Errorf("%w: zero span at %v", ErrInvalidScale, min)
	} else if max < min {
		return fmt.Errorf("%w: reversed bounds [%v,%v]", ErrInvalidScale, min, max)
	}
	return nil
}

// Padding holds the pixel margins reserved for axis furniture around the plotting rectangle.
type Padding struct {
	Top, Bottom, Left, Right float64
}

// ScaleValue maps v in [min,max] linearly onto [start,end].
func ScaleValue(v, min, max, start, end float64) (float64, error) {
	if err := validateBounds(min, max); err != nil {
		return 0.0, err
	}
	return start + (v-min)/(max-min)*(end-start), nil
}

// ScaleValueFlipped maps v in [min,max] linearly onto [end,start], which is the mapping of the elevation axis since pixel y grows downwards.
func ScaleValueFlipped(v, min, max, start, end float64) (float64, error) {
	if err := validateBounds(min, max); err != nil {
		return 0.0, err
	}
	return end - (v-min)/(max-min)*(end-start), nil
}

// Transform maps (time, elevation) domain values to pixel coordinates within the padded plotting rectangle of a width x height surface. It is validated on construction so that its methods cannot fail.
type Transform struct {
	width, height float64
	padding       Padding
	x, y          Scale
}

// NewTransform returns the transform for the given surface size, padding and scales.
func NewTransform(width, height float64, padding Padding, x, y Scale) (Transform, error) {
	if err := x.Validate(); err != nil {
		return Transform{}, fmt.Errorf("x axis: %w", err)
	} else if err := y.Validate(); err != nil {
		return Transform{}, fmt.Errorf("y axis: %w", err)
	} else if padding.Top < 0.0 || padding.Bottom < 0.0 || padding.Left < 0.0 || padding.Right < 0.0 {
		return Transform{}, fmt.Errorf("%w: negative padding %+v", ErrInvalidInput, padding)
	}
	return Transform{
		width:   width,
		height:  height,
		padding: padding,
		x:       x,
		y:       y,
	}, nil
}

// X returns the horizontal pixel position of time v.
func (t Transform) X(v float64) float64 {
	x0, x1 := t.padding.Left, t.width-t.padding.Right
	return x0 + (v-t.x.Min)/t.x.Span()*(x1-x0)
}

// Y returns the vertical pixel position of elevation v.
func (t Transform) Y(v float64) float64 {
	y0, y1 := t.padding.Top, t.height-t.padding.Bottom
	return y1 - (v-t.y.Min)/t.y.Span()*(y1-y0)
}

// Point returns the pixel position of a data point.
func (t Transform) Point(p DataPoint) canvas.Point {
	return canvas.Point{X: t.X(p.Time), Y: t.Y(p.Elevation)}
}

// Baseline returns the pixel y-coordinate of the X axis.
func (t Transform) Baseline() float64 {
	return t.height - t.padding.Bottom
}

// Plot returns the plotting rectangle, in pixels with Y0 at the top edge.
func (t Transform) Plot() canvas.Rect {
	return canvas.Rect{
		X0: t.padding.Left,
		Y0: t.padding.Top,
		X1: t.width - t.padding.Right,
		Y1: t.height - t.padding.Bottom,
	}
}

// Size returns the surface size the transform was built for.
func (t Transform) Size() (float64, float64) {
	return t.width, t.height
}

// Scales returns the X and Y scales.
func (t Transform) Scales() (Scale, Scale) {
	return t.x, t.y
}

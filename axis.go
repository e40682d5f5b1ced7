package relief

import (
	"math"
	"strconv"
	"strings"

	"github.com/tdewolff/canvas"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Axis defaults.
const (
	DefaultTickLength  = 5.0
	DefaultLabelOffset = 5.0

	// MaxTicks bounds the number of ticks of one axis, scales producing more ticks are drawn without ticks.
	MaxTicks = 10000
)

// tickEpsilon absorbs rounding in (max-min)/step so that a step dividing the span exactly always reaches max.
const tickEpsilon = 1e-9

// AxisConfig configures the axes and the coordinate transform shared by all layers of a chart.
type AxisConfig struct {
	X, Y    Scale
	Padding Padding

	XTitle, YTitle string

	// XStyle and YStyle style the axis lines and tick marks, unset fields default to DefaultStyle.
	XStyle, YStyle DrawStyle

	// Font is used for tick labels and titles, unset fields default to DefaultFont.
	Font Font

	// TickLength is the length of tick marks, it defaults to DefaultTickLength.
	TickLength float64
}

func (cfg AxisConfig) withDefaults() AxisConfig {
	cfg.Font = cfg.Font.orDefault(DefaultFont)
	if cfg.TickLength <= 0.0 {
		cfg.TickLength = DefaultTickLength
	}
	cfg.XStyle = cfg.XStyle.Merge(DefaultStyle)
	cfg.YStyle = cfg.YStyle.Merge(DefaultStyle)
	return cfg
}

// Ticks returns the tick values of s: Min, Min+Step, ... up to and including Max. It returns nil for an invalid scale, for a non-positive step or when there would be more than MaxTicks ticks.
func Ticks(s Scale) []float64 {
	if s.Validate() != nil || !(0.0 < s.Step) || math.IsInf(s.Step, 0) {
		return nil
	}

	n := math.Floor(s.Span()/s.Step + tickEpsilon)
	if MaxTicks <= n {
		return nil
	}
	ticks := make([]float64, 0, int(n)+1)
	for i := 0; i <= int(n); i++ {
		v := s.Min + float64(i)*s.Step
		if s.Max < v {
			v = s.Max
		}
		ticks = append(ticks, v)
	}
	return ticks
}

// Label formats a tick value, either with DecimalPlaces decimals when ShowDecimals is set or rounded to an integer. Negative values that round to zero are written without sign.
func (s Scale) Label(v float64) string {
	prec := 0
	if s.ShowDecimals {
		prec = s.DecimalPlaces
		if prec <= 0 {
			prec = 1
		}
	} else {
		v = math.Round(v)
	}
	label := strconv.FormatFloat(v, 'f', prec, 64)
	if zero, _ := strconv.ParseFloat(label, 64); zero == 0.0 {
		v = 0.0
		label = strings.TrimPrefix(label, "-")
	}
	if s.Language != language.Und {
		return message.NewPrinter(s.Language).Sprint(number.Decimal(v, number.Scale(prec)))
	}
	return label
}

func (s Scale) labelOffset() float64 {
	if s.LabelOffset <= 0.0 {
		return DefaultLabelOffset
	}
	return s.LabelOffset
}

// DrawAxes draws both axis lines with their tick marks, tick labels and titles.
func (e *Engine) DrawAxes(cfg AxisConfig) error {
	t, err := e.Transform(cfg)
	if err != nil {
		return err
	}
	cfg = cfg.withDefaults()
	plot := t.Plot()

	e.d.DrawLine(canvas.Point{X: plot.X0, Y: plot.Y1}, canvas.Point{X: plot.X1, Y: plot.Y1}, cfg.XStyle)
	e.d.DrawLine(canvas.Point{X: plot.X0, Y: plot.Y0}, canvas.Point{X: plot.X0, Y: plot.Y1}, cfg.YStyle)

	text := DrawStyle{
		Font:  &cfg.Font,
		Color: cfg.Font.Color,
	}

	text.Align = AlignCenter
	labelY := plot.Y1 + cfg.TickLength + cfg.X.labelOffset() + cfg.Font.Size
	for _, v := range Ticks(cfg.X) {
		x := t.X(v)
		e.d.DrawLine(canvas.Point{X: x, Y: plot.Y1}, canvas.Point{X: x, Y: plot.Y1 + cfg.TickLength}, cfg.XStyle)
		e.d.DrawText(cfg.X.Label(v), canvas.Point{X: x, Y: labelY}, text)
	}

	text.Align = AlignRight
	labelX := plot.X0 - cfg.TickLength - cfg.Y.labelOffset()
	for _, v := range Ticks(cfg.Y) {
		y := t.Y(v)
		e.d.DrawLine(canvas.Point{X: plot.X0 - cfg.TickLength, Y: y}, canvas.Point{X: plot.X0, Y: y}, cfg.YStyle)
		e.d.DrawText(cfg.Y.Label(v), canvas.Point{X: labelX, Y: y + cfg.Font.Size/3.0}, text)
	}

	text.Align = AlignCenter
	if cfg.XTitle != "" {
		e.d.DrawText(cfg.XTitle, canvas.Point{X: (plot.X0 + plot.X1) / 2.0, Y: e.height - cfg.Font.Size/2.0}, text)
	}
	if cfg.YTitle != "" {
		text.Angle = -90.0
		e.d.DrawText(cfg.YTitle, canvas.Point{X: cfg.Font.Size, Y: (plot.Y0 + plot.Y1) / 2.0}, text)
	}
	return nil
}

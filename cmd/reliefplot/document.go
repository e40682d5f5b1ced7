package main

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/tdewolff/relief"
	reliefTrack "github.com/tdewolff/relief/track"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

type point struct {
	Time      float64 `yaml:"time"`
	Elevation float64 `yaml:"elevation"`
}

type scale struct {
	Min           float64 `yaml:"min"`
	Max           float64 `yaml:"max"`
	Step          float64 `yaml:"step"`
	DecimalPlaces int     `yaml:"decimal_places"`
	ShowDecimals  bool    `yaml:"show_decimals"`
	LabelOffset   float64 `yaml:"label_offset"`
	Language      string  `yaml:"language"`
}

type font struct {
	Size   float64 `yaml:"size"`
	Family string  `yaml:"family"`
	Color  string  `yaml:"color"`
}

type style struct {
	Color     string    `yaml:"color"`
	FillColor string    `yaml:"fill_color"`
	LineWidth float64   `yaml:"line_width"`
	LineDash  []float64 `yaml:"line_dash"`
	Font      *font     `yaml:"font"`
}

type axes struct {
	X          *scale         `yaml:"x"`
	Y          *scale         `yaml:"y"`
	Padding    relief.Padding `yaml:"padding"`
	XTitle     string         `yaml:"x_title"`
	YTitle     string         `yaml:"y_title"`
	XStyle     style          `yaml:"x_style"`
	YStyle     style          `yaml:"y_style"`
	Font       font           `yaml:"font"`
	TickLength float64        `yaml:"tick_length"`
}

// track is a geographic track giving the relief, either as coordinates of the form [x, y, elevation] in the reference system with the given EPSG code, or as an OpenStreetMap XML file whose first way is used.
type track struct {
	EPSG        int         `yaml:"epsg"`
	Coordinates [][]float64 `yaml:"coordinates"`
	OSM         string      `yaml:"osm"`
}

type labels struct {
	Center         string `yaml:"center"`
	Left           string `yaml:"left"`
	Right          string `yaml:"right"`
	LeftSecondary  string `yaml:"left_secondary"`
	RightSecondary string `yaml:"right_secondary"`
}

type selector struct {
	Height       float64 `yaml:"height"`
	StubLength   float64 `yaml:"stub_length"`
	LabelPadding float64 `yaml:"label_padding"`
	NudgePadding float64 `yaml:"nudge_padding"`
	RowGap       float64 `yaml:"row_gap"`
	Style        style   `yaml:"style"`
	Font         font    `yaml:"font"`
	Anneal       bool    `yaml:"anneal"`
	Seed         uint64  `yaml:"seed"`
}

// document is the YAML (or JSON) input of reliefplot.
type document struct {
	Relief         []point  `yaml:"relief"`
	Track          *track   `yaml:"track"`
	Trajectory     []point  `yaml:"trajectory"`
	SortTrajectory bool     `yaml:"sort_trajectory"`
	Markers        []point  `yaml:"markers"`
	Labels         labels   `yaml:"labels"`
	Axes           axes     `yaml:"axes"`
	Selector       selector `yaml:"selector"`

	ReliefStyle     style  `yaml:"relief_style"`
	ReliefFill      string `yaml:"relief_fill"`
	TrajectoryStyle style  `yaml:"trajectory_style"`
	LineStyle       style  `yaml:"line_style"`

	dir string // relative paths are resolved against dir
}

func loadDocument(r io.Reader) (*document, error) {
	doc := &document{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return doc, nil
}

func parseColor(s string) (color.Color, error) {
	if s == "" {
		return nil, nil
	}
	return relief.ParseColor(s)
}

func (f font) font() (relief.Font, error) {
	col, err := parseColor(f.Color)
	if err != nil {
		return relief.Font{}, err
	}
	return relief.Font{
		Size:   f.Size,
		Family: f.Family,
		Color:  col,
	}, nil
}

func (s style) style() (relief.DrawStyle, error) {
	col, err := parseColor(s.Color)
	if err != nil {
		return relief.DrawStyle{}, err
	}
	fill, err := parseColor(s.FillColor)
	if err != nil {
		return relief.DrawStyle{}, err
	}
	ds := relief.DrawStyle{
		Color:     col,
		FillColor: fill,
		LineWidth: s.LineWidth,
		LineDash:  s.LineDash,
	}
	if s.Font != nil {
		f, err := s.Font.font()
		if err != nil {
			return relief.DrawStyle{}, err
		}
		ds.Font = &f
	}
	return ds, nil
}

func (s *scale) scale(min, max float64) (relief.Scale, error) {
	if s == nil || s.Step == 0.0 && s.Min == 0.0 && s.Max == 0.0 {
		auto, err := relief.AutoScale(min, max)
		if err != nil {
			return relief.Scale{}, err
		}
		if s != nil {
			auto.LabelOffset = s.LabelOffset
			if auto.Language, err = s.language(); err != nil {
				return relief.Scale{}, err
			}
		}
		return auto, nil
	}
	tag, err := s.language()
	if err != nil {
		return relief.Scale{}, err
	}
	return relief.Scale{
		Min:           s.Min,
		Max:           s.Max,
		Step:          s.Step,
		DecimalPlaces: s.DecimalPlaces,
		ShowDecimals:  s.ShowDecimals,
		LabelOffset:   s.LabelOffset,
		Language:      tag,
	}, nil
}

func (s *scale) language() (language.Tag, error) {
	if s.Language == "" {
		return language.Und, nil
	}
	tag, err := language.Parse(s.Language)
	if err != nil {
		return language.Und, fmt.Errorf("%w: language %q: %v", relief.ErrInvalidInput, s.Language, err)
	}
	return tag, nil
}

func (t *track) profile(dir string) ([]relief.DataPoint, error) {
	var tr reliefTrack.Track
	if t.OSM != "" {
		filename := t.OSM
		if !filepath.IsAbs(filename) {
			filename = filepath.Join(dir, filename)
		}
		f, err := os.Open(filename)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		o, err := reliefTrack.ReadOSM(f)
		if err != nil {
			return nil, err
		}
		if tr, err = reliefTrack.FromOSM(o); err != nil {
			return nil, err
		}
	} else {
		points := make([][3]float64, len(t.Coordinates))
		for i, c := range t.Coordinates {
			if len(c) != 3 {
				return nil, fmt.Errorf("%w: track coordinate %d needs x, y and elevation", relief.ErrInvalidInput, i)
			}
			points[i] = [3]float64{c[0], c[1], c[2]}
		}
		var err error
		if tr, err = reliefTrack.New(points, t.EPSG); err != nil {
			return nil, err
		}
	}
	return tr.Profile()
}

func dataPoints(points []point) []relief.DataPoint {
	out := make([]relief.DataPoint, len(points))
	for i, p := range points {
		out[i] = relief.DataPoint{Time: p.Time, Elevation: p.Elevation}
	}
	return out
}

// Chart converts the document to a chart, scales missing from the document are derived from the data.
func (doc *document) Chart() (relief.Chart, error) {
	chart := relief.Chart{
		Relief:     dataPoints(doc.Relief),
		Trajectory: dataPoints(doc.Trajectory),
		Markers:    dataPoints(doc.Markers),
		Labels:     relief.SelectorLabels(doc.Labels),
	}
	if doc.Track != nil {
		if 0 < len(chart.Relief) {
			return relief.Chart{}, fmt.Errorf("%w: both relief and track given", relief.ErrInvalidInput)
		}
		var err error
		if chart.Relief, err = doc.Track.profile(doc.dir); err != nil {
			return relief.Chart{}, fmt.Errorf("track: %w", err)
		}
	}
	if doc.SortTrajectory {
		sort.SliceStable(chart.Trajectory, func(i, j int) bool {
			return chart.Trajectory[i].Time < chart.Trajectory[j].Time
		})
	}

	bounds, ok := relief.Bounds(chart.Relief, chart.Trajectory)
	if !ok && (doc.Axes.X == nil || doc.Axes.Y == nil) {
		return relief.Chart{}, fmt.Errorf("%w: no data to derive a scale from", relief.ErrInvalidInput)
	}

	var err error
	if chart.Axes.X, err = doc.Axes.X.scale(bounds.X0, bounds.X1); err != nil {
		return relief.Chart{}, fmt.Errorf("x axis: %w", err)
	}
	if chart.Axes.Y, err = doc.Axes.Y.scale(bounds.Y0, bounds.Y1); err != nil {
		return relief.Chart{}, fmt.Errorf("y axis: %w", err)
	}
	chart.Axes.Padding = doc.Axes.Padding
	chart.Axes.XTitle = doc.Axes.XTitle
	chart.Axes.YTitle = doc.Axes.YTitle
	chart.Axes.TickLength = doc.Axes.TickLength
	if chart.Axes.XStyle, err = doc.Axes.XStyle.style(); err != nil {
		return relief.Chart{}, err
	}
	if chart.Axes.YStyle, err = doc.Axes.YStyle.style(); err != nil {
		return relief.Chart{}, err
	}
	if chart.Axes.Font, err = doc.Axes.Font.font(); err != nil {
		return relief.Chart{}, err
	}

	if chart.ReliefStyle, err = doc.ReliefStyle.style(); err != nil {
		return relief.Chart{}, err
	}
	if chart.ReliefFill, err = parseColor(doc.ReliefFill); err != nil {
		return relief.Chart{}, err
	}
	if chart.TrajectoryStyle, err = doc.TrajectoryStyle.style(); err != nil {
		return relief.Chart{}, err
	}
	if chart.LineStyle, err = doc.LineStyle.style(); err != nil {
		return relief.Chart{}, err
	}

	chart.Selector = relief.SelectorOptions{
		Height:       doc.Selector.Height,
		StubLength:   doc.Selector.StubLength,
		LabelPadding: doc.Selector.LabelPadding,
		NudgePadding: doc.Selector.NudgePadding,
		RowGap:       doc.Selector.RowGap,
		Anneal:       doc.Selector.Anneal,
		Seed:         doc.Selector.Seed,
	}
	if chart.Selector.Style, err = doc.Selector.Style.style(); err != nil {
		return relief.Chart{}, err
	}
	if chart.Selector.Font, err = doc.Selector.Font.font(); err != nil {
		return relief.Chart{}, err
	}
	return chart, nil
}

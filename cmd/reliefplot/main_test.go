package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tdewolff/relief"
	"github.com/tdewolff/test"
	"golang.org/x/text/language"
)

func TestLoadDocument(t *testing.T) {
	f, err := os.Open("testdata/profile.yaml")
	test.Error(t, err)
	defer f.Close()

	doc, err := loadDocument(f)
	test.Error(t, err)
	test.T(t, len(doc.Relief), 7)
	test.T(t, len(doc.Trajectory), 4)
	test.T(t, len(doc.Markers), 2)

	chart, err := doc.Chart()
	test.Error(t, err)
	test.T(t, chart.Axes.X, relief.Scale{Min: 0.0, Max: 60.0, Step: 10.0})
	test.T(t, chart.Axes.Padding, relief.Padding{Top: 20.0, Bottom: 70.0, Left: 60.0, Right: 20.0})
	test.String(t, chart.Axes.YTitle, "Elevation (m)")
	test.T(t, chart.ReliefFill, relief.MustParseColor("burlywood"))
	test.T(t, chart.TrajectoryStyle.LineDash, []float64{6.0, 3.0})
	test.T(t, chart.Axes.Font.Color, relief.MustParseColor("#333"))
	test.T(t, chart.Selector.Style.Color, relief.MustParseColor("crimson"))
	test.T(t, chart.LineStyle.FillColor, nil)
	test.String(t, chart.Labels.RightSecondary, "330 m")
	test.T(t, chart.Markers[1], relief.DataPoint{Time: 45.0})
}

func TestDocumentAutoScale(t *testing.T) {
	doc, err := loadDocument(strings.NewReader(`
relief: [{time: 0, elevation: 10}, {time: 8, elevation: 35}]
trajectory: [{time: 6, elevation: 50}, {time: 2, elevation: 40}]
sort_trajectory: true
axes:
  y: {min: 0, max: 100, step: 25}
`))
	test.Error(t, err)
	chart, err := doc.Chart()
	test.Error(t, err)

	test.T(t, chart.Axes.Y, relief.Scale{Min: 0.0, Max: 100.0, Step: 25.0})
	test.That(t, chart.Axes.X.Min <= 0.0 && 8.0 <= chart.Axes.X.Max, chart.Axes.X)
	test.That(t, 0.0 < chart.Axes.X.Step)
	test.Float(t, chart.Trajectory[0].Time, 2.0)
	test.Float(t, chart.Trajectory[1].Time, 6.0)
}

func TestDocumentErrors(t *testing.T) {
	_, err := loadDocument(strings.NewReader("relief: []\nunknown: 1\n"))
	test.That(t, err != nil)

	doc, err := loadDocument(strings.NewReader("markers: [{time: 1}]\n"))
	test.Error(t, err)
	_, err = doc.Chart()
	test.That(t, errors.Is(err, relief.ErrInvalidInput))

	doc, err = loadDocument(strings.NewReader("relief: [{time: 0, elevation: 1}, {time: 1, elevation: 2}]\nrelief_fill: notacolor\n"))
	test.Error(t, err)
	_, err = doc.Chart()
	test.That(t, errors.Is(err, relief.ErrInvalidInput))

	doc, err = loadDocument(strings.NewReader("relief: [{time: 0, elevation: 1}, {time: 1, elevation: 2}]\naxes:\n  x: {min: 5, max: 1, step: 1}\n"))
	test.Error(t, err)
	chart, err := doc.Chart()
	test.Error(t, err)
	_, err = render(chart, 100.0, 100.0, "")
	test.That(t, errors.Is(err, relief.ErrInvalidScale))
}

func TestDocumentTrack(t *testing.T) {
	f, err := os.Open("testdata/track.yaml")
	test.Error(t, err)
	defer f.Close()

	doc, err := loadDocument(f)
	test.Error(t, err)
	doc.dir = "testdata"
	chart, err := doc.Chart()
	test.Error(t, err)

	test.T(t, len(chart.Relief), 3)
	test.Float(t, chart.Relief[0].Time, 0.0)
	test.Float(t, chart.Relief[1].Elevation, 1450.0)
	test.That(t, chart.Relief[1].Time < chart.Relief[2].Time)
	test.T(t, chart.Axes.X.Language, language.German)
	test.That(t, chart.Axes.X.Min <= 0.0 && chart.Relief[2].Time <= chart.Axes.X.Max, chart.Axes.X)

	doc, err = loadDocument(strings.NewReader(`
track:
  epsg: 4326
  coordinates: [[0, 0, 100], [0, 0.01, 150], [0.01, 0.01, 120]]
`))
	test.Error(t, err)
	chart, err = doc.Chart()
	test.Error(t, err)
	test.T(t, len(chart.Relief), 3)
	test.That(t, 1.0 < chart.Relief[2].Time && chart.Relief[2].Time < 3.0, chart.Relief[2])

	for _, tt := range []string{
		"track: {coordinates: [[0, 0]]}\n",
		"relief: [{time: 0, elevation: 1}]\ntrack: {coordinates: [[0, 0, 1]]}\n",
		"track: {coordinates: [[0, 0, 1]]}\naxes: {x: {language: \"!!\"}}\n",
	} {
		doc, err = loadDocument(strings.NewReader(tt))
		test.Error(t, err)
		_, err = doc.Chart()
		test.That(t, errors.Is(err, relief.ErrInvalidInput), tt)
	}
}

func TestCheckBackend(t *testing.T) {
	test.Error(t, checkBackend("canvas", "out.pdf"))
	test.Error(t, checkBackend("gochart", "OUT.SVG"))
	test.Error(t, checkBackend("gonum", "out.tiff"))
	test.That(t, checkBackend("gochart", "out.pdf") != nil)
	test.That(t, checkBackend("cairo", "out.png") != nil)
}

func TestRunBackends(t *testing.T) {
	dir := t.TempDir()
	for _, backend := range []string{"canvas", "gochart", "gonum"} {
		for _, ext := range []string{".svg", ".png"} {
			output := filepath.Join(dir, backend+ext)
			cmd := Render{
				Width:      400.0,
				Height:     240.0,
				Resolution: 1.0,
				Background: "white",
				Backend:    backend,
				Output:     output,
				Quiet:      true,
				Input:      "testdata/track.yaml",
			}
			test.Error(t, cmd.Run(), backend, ext)

			info, err := os.Stat(output)
			test.Error(t, err)
			test.That(t, 0 < info.Size(), output)
		}
	}
}

func TestRunMinify(t *testing.T) {
	dir := t.TempDir()
	plain, minified := filepath.Join(dir, "plain.svg"), filepath.Join(dir, "minified.svg")
	for _, output := range []string{plain, minified} {
		cmd := Render{
			Width:      400.0,
			Height:     240.0,
			Resolution: 1.0,
			Backend:    "canvas",
			Output:     output,
			Minify:     output == minified,
			Quiet:      true,
			Input:      "testdata/profile.yaml",
		}
		test.Error(t, cmd.Run())
	}

	a, err := os.ReadFile(plain)
	test.Error(t, err)
	b, err := os.ReadFile(minified)
	test.Error(t, err)
	test.That(t, len(b) < len(a), len(a), len(b))
	test.That(t, strings.Contains(string(b), "<svg"))
}

func TestRun(t *testing.T) {
	output := filepath.Join(t.TempDir(), "profile.svg")
	cmd := Render{
		Width:      400.0,
		Height:     240.0,
		Resolution: 1.0,
		Background: "white",
		Backend:    "canvas",
		Output:     output,
		Quiet:      true,
		Input:      "testdata/profile.yaml",
	}
	test.Error(t, cmd.Run())

	b, err := os.ReadFile(output)
	test.Error(t, err)
	test.That(t, strings.Contains(string(b), "<svg"))
}

func TestRender(t *testing.T) {
	chart := relief.Chart{
		Axes: relief.AxisConfig{
			X: relief.Scale{Min: 0.0, Max: 10.0, Step: 5.0},
			Y: relief.Scale{Min: 0.0, Max: 10.0, Step: 5.0},
		},
		Relief: []relief.DataPoint{{Time: 0.0, Elevation: 2.0}, {Time: 10.0, Elevation: 8.0}},
	}
	c, err := render(chart, 120.0, 80.0, "#eee")
	test.Error(t, err)
	test.Float(t, c.W, 120.0)
	test.Float(t, c.H, 80.0)

	_, err = render(chart, 120.0, 80.0, "nocolor")
	test.That(t, errors.Is(err, relief.ErrInvalidInput))
}

package main

import (
	"bytes"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
	"github.com/tdewolff/minify/v2"
	minifySVG "github.com/tdewolff/minify/v2/svg"
	"github.com/tdewolff/relief"
	"github.com/wcharczuk/go-chart/v2"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

// backends lists the file extensions every rendering backend can write.
var backends = map[string][]string{
	"canvas":  {".png", ".jpg", ".jpeg", ".gif", ".tif", ".tiff", ".svg", ".svgz", ".pdf", ".tex", ".pgf"},
	"gochart": {".png", ".svg"},
	"gonum":   {".png", ".jpg", ".jpeg", ".tif", ".tiff", ".svg", ".pdf"},
}

func checkBackend(backend, filename string) error {
	exts, ok := backends[backend]
	if !ok {
		return fmt.Errorf("unknown backend %q", backend)
	}
	ext := strings.ToLower(filepath.Ext(filename))
	for _, e := range exts {
		if e == ext {
			return nil
		}
	}
	return fmt.Errorf("backend %s cannot write %q files", backend, ext)
}

func background(s relief.Surface, bg color.Color) {
	w, h := s.Size()
	s.SetFillColor(bg)
	s.MoveTo(0.0, 0.0)
	s.LineTo(w, 0.0)
	s.LineTo(w, h)
	s.LineTo(0.0, h)
	s.Close()
	s.Fill()
}

func parseBackground(s string) (color.Color, error) {
	if s == "" {
		return nil, nil
	}
	return relief.ParseColor(s)
}

// render draws profile with the canvas backend.
func render(profile relief.Chart, width, height float64, bg string) (*canvas.Canvas, error) {
	col, err := parseBackground(bg)
	if err != nil {
		return nil, err
	}
	fonts, err := relief.NewFontSet()
	if err != nil {
		return nil, err
	}

	c := canvas.New(width, height)
	s := relief.NewCanvasSurface(c, fonts)
	if col != nil {
		background(s, col)
	}
	if err := relief.New(s).DrawChart(profile); err != nil {
		return nil, err
	}
	return c, nil
}

func writeCanvas(filename string, profile relief.Chart, width, height, resolution float64, bg string) error {
	c, err := render(profile, width, height, bg)
	if err != nil {
		return err
	}
	return renderers.Write(filename, c, canvas.DPMM(resolution))
}

func writeGoChart(filename string, profile relief.Chart, width, height int, bg string) error {
	col, err := parseBackground(bg)
	if err != nil {
		return err
	}
	fonts, err := relief.NewTrueTypeFonts()
	if err != nil {
		return err
	}

	rp := chart.PNG
	if strings.ToLower(filepath.Ext(filename)) == ".svg" {
		rp = chart.SVG
	}
	s, err := relief.NewChartSurface(rp, width, height, fonts)
	if err != nil {
		return err
	}
	if col != nil {
		background(s, col)
	}
	if err := relief.New(s).DrawChart(profile); err != nil {
		return err
	}

	buf := &bytes.Buffer{}
	if err := s.Save(buf); err != nil {
		return err
	}
	return os.WriteFile(filename, buf.Bytes(), 0644)
}

func writeGonum(filename string, profile relief.Chart, width, height float64, bg string) error {
	col, err := parseBackground(bg)
	if err != nil {
		return err
	}

	w, h := vg.Length(width), vg.Length(height)
	var c vg.CanvasWriterTo
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".svg":
		c = vgsvg.New(w, h)
	case ".pdf":
		c = vgpdf.New(w, h)
	case ".jpg", ".jpeg":
		c = vgimg.JpegCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(72))}
	case ".tif", ".tiff":
		c = vgimg.TiffCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(72))}
	default:
		c = vgimg.PngCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(72))}
	}

	s := relief.NewVGSurface(c)
	if col != nil {
		background(s, col)
	}
	if err := relief.New(s).DrawChart(profile); err != nil {
		return err
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if _, err := c.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// minifyFile minifies an SVG file in place.
func minifyFile(filename string) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	m := minify.New()
	m.AddFunc("image/svg+xml", minifySVG.Minify)
	out, err := m.Bytes("image/svg+xml", b)
	if err != nil {
		return fmt.Errorf("minify %s: %w", filename, err)
	}
	return os.WriteFile(filename, out, 0644)
}

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/browser"
	"github.com/tdewolff/argp"
)

type Render struct {
	Width      float64 `short:"W" default:"800" desc:"Image width in pixels"`
	Height     float64 `short:"H" default:"400" desc:"Image height in pixels"`
	Resolution float64 `short:"r" default:"1" desc:"Output pixels per image pixel for raster formats of the canvas backend"`
	Background string  `short:"b" default:"white" desc:"Background color, CSS name or hex, empty for none"`
	Backend    string  `short:"B" default:"canvas" desc:"Rendering backend: canvas, gochart or gonum"`
	Output     string  `short:"o" default:"profile.png" desc:"Output filename, the extension selects the format"`
	Minify     bool    `short:"m" desc:"Minify SVG output"`
	Open       bool    `desc:"Open the output file in the default viewer"`
	Quiet      bool    `short:"q" desc:"Do not report the output file"`
	Input      string  `index:"0" desc:"Input YAML or JSON document"`
}

func main() {
	root := argp.NewCmd(&Render{}, "Relief and trajectory profile renderer")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Render) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	} else if cmd.Width <= 0.0 || cmd.Height <= 0.0 {
		fmt.Println("ERROR: width and height must be positive")
		return argp.ShowUsage
	} else if err := checkBackend(cmd.Backend, cmd.Output); err != nil {
		return err
	}

	f, err := os.Open(cmd.Input)
	if err != nil {
		return err
	}
	defer f.Close()

	doc, err := loadDocument(f)
	if err != nil {
		return err
	}
	doc.dir = filepath.Dir(cmd.Input)
	chart, err := doc.Chart()
	if err != nil {
		return err
	}

	switch cmd.Backend {
	case "gochart":
		err = writeGoChart(cmd.Output, chart, int(cmd.Width+0.5), int(cmd.Height+0.5), cmd.Background)
	case "gonum":
		err = writeGonum(cmd.Output, chart, cmd.Width, cmd.Height, cmd.Background)
	default:
		err = writeCanvas(cmd.Output, chart, cmd.Width, cmd.Height, cmd.Resolution, cmd.Background)
	}
	if err != nil {
		return err
	}
	if cmd.Minify && strings.ToLower(filepath.Ext(cmd.Output)) == ".svg" {
		if err := minifyFile(cmd.Output); err != nil {
			return err
		}
	}

	if !cmd.Quiet {
		fmt.Fprintf(os.Stderr, "wrote %s using the %s backend\n", cmd.Output, cmd.Backend)
	}
	if cmd.Open {
		return browser.OpenFile(cmd.Output)
	}
	return nil
}

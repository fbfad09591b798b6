package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/lfstrange/sigmakit"
	"github.com/lfstrange/sigmakit/calib"
	"github.com/lfstrange/sigmakit/event"
	"github.com/lfstrange/sigmakit/pid"
	"github.com/lfstrange/sigmakit/sigma"
	"github.com/lfstrange/sigmakit/species"
)

var (
	paramFile = flag.String("paramfile", "", "JSON parametrization file; built-in defaults when empty")
	speciesCS = flag.String("species", "", "comma-separated species labels to force on; auto when empty")
	plotSp    = flag.String("plot", "Pi", "species label of the separation map to draw")
	title     = flag.String("title", "", "plot title")
	output    = flag.String("output", "out.png", "output file")
)

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options] <event-input-file>

options:
`,
	)
	flag.PrintDefaults()
}

func main() {
	flag.Usage = printUsage
	flag.Parse()
	if flag.NArg() != 1 {
		printUsage()
		log.Fatal("Invalid arguments")
	}

	store, err := event.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	resp := loadResponse()
	task, err := pid.NewTask(resp, taskConfig(), sigma.PIDRequirements{})
	if err != nil {
		log.Fatal(err)
	}

	qa := pid.NewQA(pid.DefaultQAConfig(), task)
	for ci := range store.Collisions {
		coll := &store.Collisions[ci]
		tracks := make([]event.Track, 0, len(store.TracksOf(coll.ID)))
		for _, ti := range store.TracksOf(coll.ID) {
			tracks = append(tracks, store.Tracks[ti])
		}
		task.Process(tracks)
		qa.FillEvent(coll, tracks)
	}

	sp, err := species.FromLabel(*plotSp)
	if err != nil {
		log.Fatal(err)
	}
	if !task.Enabled(sp) {
		log.Fatalf("species %s is not enabled", sp)
	}
	drawSeparationMap(qa, sp)
}

func loadResponse() *pid.Response {
	if *paramFile == "" {
		resp, err := pid.NewResponse(calib.DefaultBetheBloch(), calib.DefaultTPCReso())
		if err != nil {
			log.Fatal(err)
		}
		return resp
	}
	cfg := pid.DefaultLoadConfig()
	cfg.ParamFile = *paramFile
	resp, err := pid.Load(context.Background(), cfg)
	if err != nil {
		log.Fatal(err)
	}
	return resp
}

func taskConfig() pid.Config {
	cfg := pid.DefaultConfig()
	if *speciesCS == "" {
		return cfg
	}
	for i := range cfg.Toggles {
		cfg.Toggles[i] = pid.Off
	}
	for _, label := range strings.Split(*speciesCS, ",") {
		sp, err := species.FromLabel(strings.TrimSpace(label))
		if err != nil {
			log.Fatal(err)
		}
		cfg.Toggles[sp] = pid.On
	}
	return cfg
}

func drawSeparationMap(qa *pid.QA, sp species.ID) {
	p := plot.New()
	p.Title.Text = *title
	p.X.Label.Text = "p (GeV)"
	p.Y.Label.Text = "n-sigma (" + sp.String() + ")"
	p.X.Tick.Marker = sigmakit.PreciseTicks{NSuggestedTicks: 5}
	p.Y.Tick.Marker = sigmakit.PreciseTicks{NSuggestedTicks: 5}

	img := vgimg.New(670, 400)
	dc := draw.New(img)
	dc0 := draw.Crop(dc, 0, -70, 0, 0)
	dc1 := draw.Crop(dc, 620, 0, 0, 0)

	colorMap := moreland.ExtendedBlackBody()
	pal := colorMap.Palette(1000)
	heatMap := plotter.NewHeatMap(qa.Registry().H2D("nsigma/"+sp.String()).GridXYZ(), pal)
	colorMap.SetMin(heatMap.Min)
	colorMap.SetMax(heatMap.Max)
	p.Add(heatMap)

	p.Draw(dc0)

	p = plot.New()
	colorBar := &plotter.ColorBar{ColorMap: colorMap}
	colorBar.Vertical = true
	p.Add(colorBar)
	p.HideX()
	p.Y.Padding = 0

	p.Draw(dc1)

	w, err := os.Create(*output)
	if err != nil {
		log.Panic(err)
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err = png.WriteTo(w); err != nil {
		log.Panic(err)
	}
}

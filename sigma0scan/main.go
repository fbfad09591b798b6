package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pkg/profile"
	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/lfstrange/sigmakit"
	"github.com/lfstrange/sigmakit/event"
	"github.com/lfstrange/sigmakit/sigma"
)

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options] <event-input-files>...

options:
`,
	)
	flag.PrintDefaults()
}

var (
	title  = flag.String("title", "", "plot title")
	output = flag.String("output", "out.png", "output file")
	window = flag.Float64("window", 0.05, "sigma0 mass window (GeV)")
	maxRap = flag.Float64("maxrap", 0.5, "maximum absolute sigma0 rapidity")
	seed   = flag.Int64("seed", 1, "seed of the like-sign slot generator")
	useML  = flag.Bool("ml", false, "select with confidence scores instead of standard cuts")

	centEdges sigmakit.EdgeListFlag
)

func main() {
	defer profile.Start().Stop()

	flag.Var(&centEdges, "centedge", "centrality class edge (repeatable)")
	flag.Usage = printUsage
	flag.Parse()
	if flag.NArg() < 1 {
		printUsage()
		log.Fatal("Invalid arguments")
	}

	p := plot.New()
	p.Title.Text = *title
	p.X.Label.Text = "Mass (GeV)"
	p.X.Tick.Marker = sigmakit.PreciseTicks{NSuggestedTicks: 5}
	p.Y.Tick.Marker = sigmakit.PreciseTicks{NSuggestedTicks: 5}

	for i, filename := range flag.Args() {
		hist := makeSigmaMassHist(filename)

		h := hplot.NewH1D(hist)
		h.LineStyle.Color = sigmakit.LineColor(i)
		if flag.NArg() == 1 {
			h.Infos.Style = hplot.HInfoSummary
		}

		p.Add(h)
	}

	if err := p.Save(6*vg.Inch, 4*vg.Inch, *output); err != nil {
		log.Fatal(err)
	}
}

func makeSigmaMassHist(filename string) *hbook.H1D {
	store, err := event.ReadFile(filename)
	if err != nil {
		log.Fatal(err)
	}

	cfg := sigma.DefaultConfig()
	cfg.SigmaWindow = *window
	cfg.SigmaMaxRap = *maxRap
	cfg.Seed = *seed
	if *useML {
		cfg.Mode = sigma.ModeML
	}
	if len(centEdges.Edges) > 0 {
		cfg.CentEdges = centEdges.Edges
	}

	builder, err := sigma.NewBuilder(cfg)
	if err != nil {
		log.Fatal(err)
	}

	tables := sigma.NewTables()
	if err := builder.Process(store, tables); err != nil {
		log.Fatal(err)
	}

	for s := 0; s < sigma.NStages; s++ {
		log.Printf("%s: %s: %d", filename, sigma.Stage(s), builder.Funnel().Count(sigma.Stage(s)))
	}
	log.Printf("%s: accepted candidates: %d", filename, builder.NCandidates())

	hist := hbook.NewH1D(200, 1.16, 1.23)
	for _, core := range tables.Cores {
		hist.Fill(core.Mass, 1)
	}
	return hist
}

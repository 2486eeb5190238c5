package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/Flokey82/genvoronoimap"
	"github.com/Flokey82/genvoronoimap/various"
)

var (
	seed      int64   = 12345
	numPoints int     = 1024
	width     float64 = 1280
	height    float64 = 700
	waterLine float64 = 0.0
	noiseType string  = "simplex"
	addr      string  = ":3333"
)

func init() {
	flag.Int64Var(&seed, "seed", seed, "the map seed")
	flag.IntVar(&numPoints, "num_points", numPoints, "number of points")
	flag.Float64Var(&width, "width", width, "width of the map")
	flag.Float64Var(&height, "height", height, "height of the map")
	flag.Float64Var(&waterLine, "water_line", waterLine, "water line")
	flag.StringVar(&noiseType, "noise", noiseType, "noise variant (simplex or perlin)")
	flag.StringVar(&addr, "addr", addr, "listen address")
}

func main() {
	flag.Parse()

	// Initialize the config.
	cfg := genvoronoimap.NewConfig()
	cfg.NumPoints = numPoints
	cfg.Bounds = various.NewRect(0, 0, width, height)
	cfg.WaterLine = waterLine
	cfg.NoiseVariant = noiseType

	// Initialize the map.
	srv, err := newServer(seed, cfg)
	if err != nil {
		log.Fatal(err)
	}

	// Start the server.
	log.Fatal(http.ListenAndServe(addr, srv.router()))
}

package main

import (
	"flag"
	"log"
	"os"
	"runtime/pprof"

	"github.com/Flokey82/genvoronoimap"
	"github.com/Flokey82/genvoronoimap/various"
)

var cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
var memprofile = flag.String("memprofile", "", "write memory profile to this file")

var (
	seed       = flag.Int64("seed", 1234, "the map seed")
	numPoints  = flag.Int("num_points", 1024, "number of points / cells")
	width      = flag.Float64("width", 1280, "width of the map")
	height     = flag.Float64("height", 700, "height of the map")
	waterLine  = flag.Float64("water_line", 0.0, "elevation at or below which terrain is submerged")
	noiseType  = flag.String("noise", "simplex", "noise variant (simplex or perlin)")
	pngPath    = flag.String("png", "", "write the rendered map to this PNG file")
	geojsonOut = flag.String("geojson", "", "write the cells as GeoJSON to this file")
	mode       = flag.String("mode", "terrain", "display mode (terrain, biome, elevation, moisture, temperature)")
)

func main() {
	flag.Parse()
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	cfg := genvoronoimap.NewConfig()
	cfg.NumPoints = *numPoints
	cfg.Bounds = various.NewRect(0, 0, *width, *height)
	cfg.WaterLine = *waterLine
	cfg.NoiseVariant = *noiseType

	m, err := genvoronoimap.NewMapFromConfig(*seed, cfg)
	if err != nil {
		log.Fatal(err)
	}

	if *pngPath != "" {
		dm, err := genvoronoimap.ParseDisplayMode(*mode)
		if err != nil {
			log.Fatal(err)
		}
		if err := m.ExportPng(*pngPath, dm, int(*width), int(*height)); err != nil {
			log.Fatal(err)
		}
	}
	if *geojsonOut != "" {
		data, err := m.GeoJSONCells()
		if err != nil {
			log.Fatal(err)
		}
		if err := os.WriteFile(*geojsonOut, data, 0o644); err != nil {
			log.Fatal(err)
		}
	}

	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
		return
	}
}

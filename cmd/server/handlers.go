package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"image"
	"image/png"
	"log"
	"net/http"
	"strconv"
	"sync/atomic"

	"github.com/Flokey82/genvoronoimap"
	"github.com/gorilla/mux"
)

// server serves the current map. Regeneration builds a new map and swaps it
// in, so a map is never modified while it is being served.
type server struct {
	cfg     genvoronoimap.Config
	current atomic.Pointer[genvoronoimap.Map]
}

func newServer(seed int64, cfg *genvoronoimap.Config) (*server, error) {
	m, err := genvoronoimap.NewMapFromConfig(seed, cfg)
	if err != nil {
		return nil, err
	}
	s := &server{cfg: *cfg}
	s.current.Store(m)
	return s, nil
}

func (s *server) router() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/map.png", s.mapHandler).Methods(http.MethodGet)
	router.HandleFunc("/cells.geojson", s.cellsHandler).Methods(http.MethodGet)
	router.HandleFunc("/rivers.geojson", s.riversHandler).Methods(http.MethodGet)
	router.HandleFunc("/noise/{field}.png", s.noiseHandler).Methods(http.MethodGet)
	router.HandleFunc("/regenerate", s.regenerateHandler).Methods(http.MethodPost)
	router.HandleFunc("/stats", s.statsHandler).Methods(http.MethodGet)
	return router
}

func (s *server) mapHandler(res http.ResponseWriter, req *http.Request) {
	m := s.current.Load()

	// Get the url parameter 'd'.
	d := req.URL.Query().Get("d")
	if d == "" {
		d = "terrain"
	}
	mode, err := genvoronoimap.ParseDisplayMode(d)
	if err != nil {
		http.Error(res, err.Error(), http.StatusBadRequest)
		return
	}
	img, err := m.RenderImage(mode, int(m.Bounds.Width()), int(m.Bounds.Height()))
	if err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}
	writeImage(res, img)
}

func (s *server) noiseHandler(res http.ResponseWriter, req *http.Request) {
	m := s.current.Load()
	switch mux.Vars(req)["field"] {
	case "elevation":
		writeImage(res, genvoronoimap.RenderNoise(m.Elevation))
	case "temperature":
		writeImage(res, genvoronoimap.RenderNoise(m.Temperature))
	default:
		http.NotFound(res, req)
	}
}

func (s *server) cellsHandler(res http.ResponseWriter, req *http.Request) {
	data, err := s.current.Load().GeoJSONCells()
	writeJSON(res, data, err)
}

func (s *server) riversHandler(res http.ResponseWriter, req *http.Request) {
	data, err := s.current.Load().GeoJSONRivers()
	writeJSON(res, data, err)
}

func (s *server) statsHandler(res http.ResponseWriter, req *http.Request) {
	data, err := json.Marshal(s.current.Load().Stats())
	writeJSON(res, data, err)
}

func (s *server) regenerateHandler(res http.ResponseWriter, req *http.Request) {
	cfg := s.cfg
	seed := s.current.Load().Seed + 1
	if v := req.URL.Query().Get("seed"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			http.Error(res, "invalid seed", http.StatusBadRequest)
			return
		}
		seed = n
	}
	if v := req.URL.Query().Get("num_points"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			http.Error(res, "invalid num_points", http.StatusBadRequest)
			return
		}
		cfg.NumPoints = n
	}

	m, err := genvoronoimap.NewMapFromConfig(seed, &cfg)
	if errors.Is(err, genvoronoimap.ErrInvalidConfig) {
		http.Error(res, err.Error(), http.StatusBadRequest)
		return
	} else if err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}
	s.current.Store(m)

	data, err := json.Marshal(m.Stats())
	writeJSON(res, data, err)
}

func writeJSON(res http.ResponseWriter, data []byte, err error) {
	if err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}
	res.Header().Set("Content-Type", "application/json")
	res.Header().Set("Content-Length", strconv.Itoa(len(data)))
	res.Write(data)
}

// writeImage writes the image to the response writer.
func writeImage(w http.ResponseWriter, img image.Image) {
	buffer := new(bytes.Buffer)
	if err := png.Encode(buffer, img); err != nil {
		log.Println("unable to encode image.")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(buffer.Bytes())))
	if _, err := w.Write(buffer.Bytes()); err != nil {
		log.Println("unable to write image.")
	}
}

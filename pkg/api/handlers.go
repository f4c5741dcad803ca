package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/GabrielleBarskyGiles/AtomDB/pkg/element"
	"github.com/GabrielleBarskyGiles/AtomDB/pkg/species"
	"github.com/GabrielleBarskyGiles/AtomDB/pkg/spline"
	"github.com/GabrielleBarskyGiles/AtomDB/pkg/store"
)

// Server holds the query-server state
type Server struct {
	store   SpeciesLoader
	config  ServerConfig
	metrics *Metrics
}

// NewServer creates a new query server
func NewServer(store SpeciesLoader, config ServerConfig, metrics *Metrics) *Server {
	return &Server{
		store:   store,
		config:  config,
		metrics: metrics,
	}
}

// handleHealth reports server liveness
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.metrics != nil {
		s.metrics.RecordHealthCheck(true)
	}
	writeSuccess(w, map[string]string{"status": "healthy"})
}

// handleGetSpecies loads one species record and returns it as JSON,
// derived charge and multiplicity included.
func (s *Server) handleGetSpecies(w http.ResponseWriter, r *http.Request) {
	key, ok := s.speciesKey(w, r)
	if !ok {
		return
	}
	rec, ok := s.loadSpecies(w, key)
	if !ok {
		return
	}
	writeSuccess(w, rec)
}

// handleSpline loads a record, reconstructs the requested channel, and
// evaluates it at the requested points.
//
// Query parameters: channel (dens|d_dens|lapl|ked), spin (a|b|ab|m,
// default ab), points (comma-separated radii, required), log (optional
// override of the channel's default log-domain flag).
func (s *Server) handleSpline(w http.ResponseWriter, r *http.Request) {
	key, ok := s.speciesKey(w, r)
	if !ok {
		return
	}

	family, err := species.ParseChannelFamily(r.URL.Query().Get("channel"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	spinName := r.URL.Query().Get("spin")
	if spinName == "" {
		spinName = "ab"
	}
	spin, err := species.ParseSpin(spinName)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	points, err := parsePoints(r.URL.Query().Get("points"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	opts := []spline.Option{}
	logMode := spline.DefaultLog(family)
	if raw := r.URL.Query().Get("log"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "log must be a boolean")
			return
		}
		logMode = v
		opts = append(opts, spline.WithLog(v))
	}

	rec, ok := s.loadSpecies(w, key)
	if !ok {
		return
	}

	values, err := spline.Evaluate(rec, family, spin, points, opts...)
	if s.metrics != nil {
		s.metrics.RecordSpline(family.String(), spin.String(), err == nil)
	}
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, species.ErrChannelUnavailable) {
			status = http.StatusNotFound
		}
		writeError(w, status, err.Error())
		return
	}

	writeSuccess(w, SplineResponse{
		Channel: family.String(),
		Spin:    spin.String(),
		Log:     logMode,
		Points:  points,
		Values:  values,
	})
}

// speciesKey parses the species key from the URL path
func (s *Server) speciesKey(w http.ResponseWriter, r *http.Request) (store.Key, bool) {
	charge, err := strconv.Atoi(chi.URLParam(r, "charge"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "charge must be an integer")
		return store.Key{}, false
	}
	mult, err := strconv.Atoi(chi.URLParam(r, "mult"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "mult must be an integer")
		return store.Key{}, false
	}
	nexc, err := strconv.Atoi(chi.URLParam(r, "nexc"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "nexc must be an integer")
		return store.Key{}, false
	}
	return store.Key{
		Elem:    chi.URLParam(r, "elem"),
		Charge:  charge,
		Mult:    mult,
		Nexc:    nexc,
		Dataset: chi.URLParam(r, "dataset"),
	}, true
}

// loadSpecies loads a record and writes the error response on failure
func (s *Server) loadSpecies(w http.ResponseWriter, key store.Key) (*species.Record, bool) {
	start := time.Now()
	rec, err := s.store.Load(key)
	if s.metrics != nil {
		s.metrics.RecordLoad(key.Dataset, err == nil, time.Since(start))
	}
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, store.ErrNotFound) {
			status = http.StatusNotFound
		}
		var lookupErr *element.LookupError
		if errors.As(err, &lookupErr) {
			status = http.StatusBadRequest
		}
		writeError(w, status, err.Error())
		return nil, false
	}
	return rec, true
}

func parsePoints(raw string) ([]float64, error) {
	if raw == "" {
		return nil, errors.New("points is required")
	}
	parts := strings.Split(raw, ",")
	points := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, errors.New("points must be comma-separated numbers")
		}
		points[i] = v
	}
	return points, nil
}

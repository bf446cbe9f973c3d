// Package server exposes the estimation engine over HTTP: one POST per
// estimation, JSON in and out, with permissive CORS and optional static
// assets for a browser front end.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/pborman/uuid"
	"github.com/sirupsen/logrus"
	"github.com/uber-go/tally/v4"

	"github.com/inference-sim/cloudlet-sim/sim"
)

const (
	// RunSimulationPath is the estimation endpoint.
	RunSimulationPath = "/run-simulation"
	// RequestIDHeader carries the per-request ID on every response.
	RequestIDHeader = "X-Request-Id"

	maxRequestBytes = 1 << 20
)

// simulationRequest is the wire payload: the configuration plus an
// optional seed for reproducible runs.
type simulationRequest struct {
	sim.SimulationConfig
	Seed *int64 `json:"seed,omitempty"`
}

// errorResponse is the failure payload.
type errorResponse struct {
	Error      string               `json:"error"`
	Message    string               `json:"message"`
	Violations []sim.FieldViolation `json:"violations,omitempty"`
}

// Config controls optional server behavior.
type Config struct {
	StaticDir string // served at "/" when set and present on disk
}

// Server handles estimation requests.
type Server struct {
	engine  *sim.Engine
	seeds   *SeedSource
	metrics *Metrics
	config  Config
}

// New creates a Server. scope may be tally.NoopScope.
func New(engine *sim.Engine, seeds *SeedSource, scope tally.Scope, config Config) *Server {
	return &Server{
		engine:  engine,
		seeds:   seeds,
		metrics: NewMetrics(scope),
		config:  config,
	}
}

// Handler returns the HTTP handler with every route mounted.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST "+RunSimulationPath, s.runSimulation)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	if dir := s.config.StaticDir; dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			logrus.Infof("Serving static assets from %s", dir)
			mux.Handle("GET /", http.FileServer(http.Dir(dir)))
		} else {
			logrus.Warnf("Static directory %q not found, static assets disabled", dir)
		}
	}
	return withCORS(mux)
}

// withCORS allows any origin and answers preflight requests.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		if r.Method == http.MethodOptions {
			h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			h.Set("Access-Control-Allow-Headers", "Content-Type")
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) runSimulation(w http.ResponseWriter, r *http.Request) {
	sw := s.metrics.Latency.Start()
	defer sw.Stop()

	requestID := uuid.New()
	w.Header().Set(RequestIDHeader, requestID)
	log := logrus.WithField("request_id", requestID)

	var req simulationRequest
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		s.metrics.RequestsInvalid.Inc(1)
		log.WithError(err).Warn("Malformed simulation request")
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "Malformed simulation request.",
			Message: err.Error(),
		})
		return
	}

	seed := s.seeds.Next()
	if req.Seed != nil {
		seed = *req.Seed
	}
	log = log.WithField("seed", seed)
	log.Infof("Received simulation request: %d VMs, %d Cloudlets.", req.VMCount, req.CloudletCount)

	started := time.Now()
	result, err := s.engine.Run(req.SimulationConfig, sim.NewSimulationKey(seed))
	if err != nil {
		var cfgErr *sim.ConfigurationError
		if errors.As(err, &cfgErr) {
			s.metrics.RequestsInvalid.Inc(1)
			log.WithError(err).Warn("Rejected simulation request")
			writeJSON(w, http.StatusBadRequest, errorResponse{
				Error:      "Invalid simulation configuration.",
				Message:    err.Error(),
				Violations: cfgErr.Violations,
			})
			return
		}
		s.metrics.RequestsFail.Inc(1)
		log.WithError(err).Error("Simulation failed")
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error:   "Error processing simulation request.",
			Message: err.Error(),
		})
		return
	}

	s.metrics.Requests.Inc(1)
	s.metrics.VMsUnallocated.Update(float64(sim.UnallocatedVMs(result.HostLayout, req.VMCount)))
	writeJSON(w, http.StatusOK, result)
	log.WithField("elapsed", time.Since(started)).Info("Simulation finished. Sent results back to client.")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Warn("Failed to write response")
	}
}

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"fitness-tracker/internal/models"
	"fitness-tracker/internal/observability"
	"fitness-tracker/internal/parser"
	"fitness-tracker/internal/training"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Options controls request handling
type Options struct {
	Validate bool // reject packages failing parser.ValidatePackage
	MaxBatch int  // maximum packages accepted by the batch endpoint
}

// Server represents the API server
type Server struct {
	opts   Options
	logger *slog.Logger
	router *mux.Router
}

// NewServer creates a new API server
func NewServer(opts Options, logger *slog.Logger) *Server {
	if opts.MaxBatch <= 0 {
		opts.MaxBatch = 100
	}
	s := &Server{
		opts:   opts,
		logger: logger,
		router: mux.NewRouter(),
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	s.router.HandleFunc("/health", s.handleHealth).Methods("GET")
	s.router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	api := s.router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/workout-types", s.handleWorkoutTypes).Methods("GET")
	api.HandleFunc("/workouts", s.handleComputeWorkout).Methods("POST")
	api.HandleFunc("/workouts/batch", s.handleBatchWorkouts).Methods("POST")

	s.router.Use(s.loggingMiddleware)
	s.router.Use(jsonMiddleware)
}

// Handler returns the router wrapped with panic recovery
func (s *Server) Handler() http.Handler {
	return handlers.RecoveryHandler(handlers.RecoveryLogger(recoveryLogger{s.logger}))(s.router)
}

// Middleware
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}

func jsonMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

type recoveryLogger struct {
	logger *slog.Logger
}

func (l recoveryLogger) Println(v ...interface{}) {
	l.logger.Error("panic recovered", "error", fmt.Sprint(v...))
}

// Response helpers
type apiResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Meta    *meta       `json:"meta,omitempty"`
}

type meta struct {
	Total  int `json:"total,omitempty"`
	Failed int `json:"failed,omitempty"`
}

// writeResponse marshals before writing the status so that an encoding
// failure still reaches the client as a 500.
func writeResponse(w http.ResponseWriter, status int, resp apiResponse) {
	body, err := json.Marshal(resp)
	if err != nil {
		status = http.StatusInternalServerError
		body, _ = json.Marshal(apiResponse{Success: false, Error: "failed to encode response"})
	}
	w.WriteHeader(status)
	w.Write(append(body, '\n'))
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	writeResponse(w, status, apiResponse{Success: true, Data: data})
}

func respondError(w http.ResponseWriter, status int, message string) {
	writeResponse(w, status, apiResponse{Success: false, Error: message})
}

func respondWithMeta(w http.ResponseWriter, data interface{}, m *meta) {
	writeResponse(w, http.StatusOK, apiResponse{Success: true, Data: data, Meta: m})
}

// errorStatus maps a compute error to its HTTP status
func errorStatus(err error) int {
	if errors.Is(err, training.ErrNonFiniteMetric) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusBadRequest
}

// compute validates, dispatches and summarises one package
func (s *Server) compute(pkg models.WorkoutPackage) (models.Report, error) {
	if s.opts.Validate {
		if errs := parser.ValidatePackage(&pkg); len(errs) > 0 {
			observability.RecordRejected(observability.ReasonValidation)
			return models.Report{}, errors.New(strings.Join(errs, "; "))
		}
	}

	w, err := training.ResolvePackage(pkg)
	if err != nil {
		switch {
		case errors.Is(err, training.ErrInvalidWorkoutCode):
			observability.RecordRejected(observability.ReasonInvalidCode)
		case errors.Is(err, training.ErrArityMismatch):
			observability.RecordRejected(observability.ReasonArity)
		}
		return models.Report{}, err
	}

	report := training.NewReport(pkg.WorkoutType, w)
	if err := training.CheckFinite(report.Summary); err != nil {
		observability.RecordRejected(observability.ReasonNonFinite)
		return models.Report{}, err
	}

	observability.RecordComputed(pkg.WorkoutType)
	return report, nil
}

// Handlers
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleWorkoutTypes(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, training.Types())
}

func (s *Server) handleComputeWorkout(w http.ResponseWriter, r *http.Request) {
	var pkg models.WorkoutPackage
	if err := json.NewDecoder(r.Body).Decode(&pkg); err != nil {
		observability.RecordRejected(observability.ReasonDecode)
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	report, err := s.compute(pkg)
	if err != nil {
		s.logger.Debug("workout rejected", "workout_type", pkg.WorkoutType, "error", err)
		respondError(w, errorStatus(err), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, report)
}

func (s *Server) handleBatchWorkouts(w http.ResponseWriter, r *http.Request) {
	var pkgs []models.WorkoutPackage
	if err := json.NewDecoder(r.Body).Decode(&pkgs); err != nil {
		observability.RecordRejected(observability.ReasonDecode)
		respondError(w, http.StatusBadRequest, "invalid JSON array")
		return
	}

	if len(pkgs) == 0 {
		respondError(w, http.StatusBadRequest, "empty array")
		return
	}
	if len(pkgs) > s.opts.MaxBatch {
		respondError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("batch exceeds %d packages", s.opts.MaxBatch))
		return
	}

	result := models.BatchResult{Reports: make([]models.Report, 0, len(pkgs))}
	for i, pkg := range pkgs {
		report, err := s.compute(pkg)
		if err != nil {
			result.Errors = append(result.Errors, models.BatchError{Index: i, Error: err.Error()})
			continue
		}
		result.Reports = append(result.Reports, report)
	}

	respondWithMeta(w, result, &meta{Total: len(pkgs), Failed: len(result.Errors)})
}

// Package api - Thin, deterministic API layer
// The API is ONLY responsible for: input ingestion, engine invocation,
// output serialization, and optional persistence write-back. The API
// NEVER performs quantity logic.
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"material-quantity/core/coverage"
	"material-quantity/core/resolver"
	"material-quantity/core/types"
	"material-quantity/db"
	"material-quantity/internal/logging"
)

// Server is the API server
type Server struct {
	mux                 *http.ServeMux
	version             string
	store               *db.Store
	defaultWastePercent float64
	log                 *zap.Logger
}

// NewServer creates a new API server (without database)
func NewServer(version string, defaultWastePercent float64) *Server {
	return NewServerWithStore(version, defaultWastePercent, nil)
}

// NewServerWithStore creates a new API server with a project store
func NewServerWithStore(version string, defaultWastePercent float64, store *db.Store) *Server {
	s := &Server{
		mux:                 http.NewServeMux(),
		version:             version,
		store:               store,
		defaultWastePercent: defaultWastePercent,
		log:                 logging.Named("api"),
	}
	s.registerRoutes()
	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	// Core endpoints
	s.mux.HandleFunc("POST /v1/resolve", s.handleResolve)
	s.mux.HandleFunc("POST /v1/resolve/batch", s.handleResolveBatch)

	// Supporting endpoints
	s.mux.HandleFunc("GET /v1/coverage", s.handleCoverage)
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
}

// handleResolve handles POST /v1/resolve - one material, one result.
// Domain failures are 200s with success=false: a material the engine
// cannot resolve is a valid, expected outcome, not a transport error.
func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	var in types.ResolverInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}
	if in.InputValue < 0 {
		s.writeError(w, "VALIDATION_ERROR", "input_value must be >= 0", http.StatusBadRequest)
		return
	}
	if in.WastePercent != nil && *in.WastePercent < 0 {
		s.writeError(w, "VALIDATION_ERROR", "waste_percent must be >= 0", http.StatusBadRequest)
		return
	}
	if in.CoverageRate != nil && in.ContainerUnit == "" {
		s.writeError(w, "VALIDATION_ERROR", "container_unit is required when coverage_rate is overridden", http.StatusBadRequest)
		return
	}

	res := resolver.Resolve(in)
	s.writeJSON(w, res, http.StatusOK)
}

// handleResolveBatch handles POST /v1/resolve/batch
func (s *Server) handleResolveBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	var req BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}
	if req.BaseArea < 0 {
		s.writeError(w, "VALIDATION_ERROR", "base_area must be >= 0", http.StatusBadRequest)
		return
	}
	if req.WastePercent != nil && *req.WastePercent < 0 {
		s.writeError(w, "VALIDATION_ERROR", "waste_percent must be >= 0", http.StatusBadRequest)
		return
	}
	for _, item := range req.Materials {
		if item == nil {
			s.writeError(w, "VALIDATION_ERROR", "materials must not contain null entries", http.StatusBadRequest)
			return
		}
		if item.BaseQuantity != nil && *item.BaseQuantity < 0 {
			s.writeError(w, "VALIDATION_ERROR",
				fmt.Sprintf("material %q: base_quantity must be >= 0", item.Name), http.StatusBadRequest)
			return
		}
		if item.CoverageRate != nil && item.ContainerUnit == "" {
			s.writeError(w, "VALIDATION_ERROR",
				fmt.Sprintf("material %q: container_unit is required when coverage_rate is overridden", item.Name), http.StatusBadRequest)
			return
		}
	}

	inputHash := computeInputHash(&req)
	requestID := uuid.NewString()

	// The versioning gate runs before the engine: legacy projects are
	// frozen and must never be re-resolved.
	var projectID uuid.UUID
	if req.ProjectID != "" {
		if s.store == nil {
			s.writeError(w, "NO_STORE", "project_id given but no database configured", http.StatusServiceUnavailable)
			return
		}
		var err error
		projectID, err = uuid.Parse(req.ProjectID)
		if err != nil {
			s.writeError(w, "VALIDATION_ERROR", "invalid project_id", http.StatusBadRequest)
			return
		}
		project, err := s.store.GetProject(ctx, projectID)
		if err != nil {
			s.writeError(w, "PROJECT_NOT_FOUND", err.Error(), http.StatusNotFound)
			return
		}
		if !project.UsesResolver() {
			s.writeError(w, "LEGACY_PROJECT",
				"project predates the quantity resolver and is frozen on legacy quantities", http.StatusConflict)
			return
		}
	}

	waste := s.defaultWastePercent
	if req.WastePercent != nil {
		waste = *req.WastePercent
	}

	result := resolver.ResolveBatch(req.Materials, req.BaseArea, waste)
	s.log.Info("batch resolved",
		zap.String("request_id", requestID),
		zap.Int("resolved", len(result.Resolved)),
		zap.Int("failed", len(result.Failed)))

	if req.ProjectID != "" {
		if err := s.store.SaveMaterials(ctx, projectID, req.Materials); err != nil {
			s.writeError(w, "STORAGE_ERROR", err.Error(), http.StatusInternalServerError)
			return
		}
	}

	resp := fromBatchResult(result)
	resp.Metadata = &ResponseMetadata{
		RequestID:     requestID,
		InputHash:     inputHash,
		EngineVersion: s.version,
		DurationMs:    time.Since(start).Milliseconds(),
	}
	s.writeJSON(w, resp, http.StatusOK)
}

// handleCoverage handles GET /v1/coverage - an auditable dump of the
// physics constants the engine converts with.
func (s *Server) handleCoverage(w http.ResponseWriter, r *http.Request) {
	table := make(map[string]types.CoverageRate, len(coverage.Keys()))
	for _, key := range coverage.Keys() {
		rate, _ := coverage.Lookup(key)
		table[key] = rate
	}
	s.writeJSON(w, map[string]interface{}{
		"rates": table,
		"count": len(table),
	}, http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version":     s.version,
		"engine":      "material-quantity",
		"api_version": "v1",
	}, http.StatusOK)
}

func (s *Server) writeJSON(w http.ResponseWriter, v interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("failed to encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, code, message string, status int) {
	s.writeJSON(w, ErrorResponse{Code: code, Message: message}, status)
}

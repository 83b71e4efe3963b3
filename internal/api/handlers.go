package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/specband/specband/pkg/coloring"
	"github.com/specband/specband/pkg/netgen"
	"github.com/specband/specband/pkg/report"
)

// AssignmentResponse is the /v1/assignments response body.
type AssignmentResponse struct {
	RunID      string          `json:"run_id"`
	GraphHash  string          `json:"graph_hash"`
	Snapshot   report.Snapshot `json:"snapshot"`
	Efficiency float64         `json:"efficiency"`
	Stats      StatsResponse   `json:"stats"`
}

// StatsResponse carries run timing and cache information.
type StatsResponse struct {
	Nodes        int    `json:"nodes"`
	Edges        int    `json:"edges"`
	GenerateTime string `json:"generate_time"`
	ColorTime    string `json:"color_time"`
	NetworkHit   bool   `json:"network_cached"`
	SnapshotHit  bool   `json:"snapshot_cached"`
}

// errorResponse is the JSON error body.
type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, req *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleAssignments(w http.ResponseWriter, req *http.Request) {
	opts := s.defaults
	opts.Logger = s.logger

	dec := json.NewDecoder(req.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&opts); err != nil {
		s.writeError(w, req, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := opts.ValidateAndSetDefaults(); err != nil {
		s.writeError(w, req, http.StatusBadRequest, err.Error())
		return
	}

	runID := uuid.NewString()
	logger := s.logger.With("run_id", runID)
	opts.Logger = logger

	start := time.Now()
	result, err := s.runner.Execute(req.Context(), opts)
	if err != nil {
		status := http.StatusInternalServerError
		if isOptionsError(err) {
			status = http.StatusBadRequest
		}
		s.writeError(w, req, status, err.Error())
		return
	}

	logger.Info("assignment complete",
		"algorithm", result.Snapshot.Algorithm,
		"frequencies", result.Snapshot.ChromaticNumber,
		"duration", time.Since(start).Round(time.Millisecond))

	writeJSON(w, http.StatusOK, AssignmentResponse{
		RunID:      runID,
		GraphHash:  result.GraphHash,
		Snapshot:   result.Snapshot,
		Efficiency: report.SnapshotEfficiency(result.Snapshot),
		Stats: StatsResponse{
			Nodes:        result.Stats.NodeCount,
			Edges:        result.Stats.EdgeCount,
			GenerateTime: result.Stats.GenerateTime.String(),
			ColorTime:    result.Stats.ColorTime.String(),
			NetworkHit:   result.CacheInfo.GenerateHit,
			SnapshotHit:  result.CacheInfo.ColorHit,
		},
	})
}

// isOptionsError reports whether the pipeline failure was caused by bad
// caller input rather than an internal fault.
func isOptionsError(err error) bool {
	return errors.Is(err, coloring.ErrUnknownAlgorithm) ||
		errors.Is(err, netgen.ErrInvalidCount) ||
		errors.Is(err, netgen.ErrInvalidRadius) ||
		errors.Is(err, netgen.ErrInvalidGrid) ||
		errors.Is(err, netgen.ErrInvalidConnectivity) ||
		errors.Is(err, netgen.ErrInvalidAttachment)
}

func (s *Server) writeError(w http.ResponseWriter, req *http.Request, status int, msg string) {
	writeJSON(w, status, errorResponse{
		Error:     msg,
		RequestID: middleware.GetReqID(req.Context()),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

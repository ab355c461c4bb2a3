package admin

import (
	"net/http"
	"runtime"
	"time"
)

type healthResponse struct {
	Status    string `json:"status"`
	GoVersion string `json:"go_version"`
	Uptime    string `json:"uptime"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	reqID := requestIDFromContext(r.Context())
	respondOK(w, reqID, healthResponse{
		Status:    "healthy",
		GoVersion: runtime.Version(),
		Uptime:    time.Since(s.startTime).Round(time.Second).String(),
	})
}

type pendingResponse struct {
	Pending        int   `json:"pending"`
	TotalSubmitted int64 `json:"total_submitted"`
	TotalCompleted int64 `json:"total_completed"`
}

func (s *Server) handlePending(w http.ResponseWriter, r *http.Request) {
	reqID := requestIDFromContext(r.Context())
	respondOK(w, reqID, pendingResponse{
		Pending:        s.coord.GetPendingJobs(),
		TotalSubmitted: s.coord.TotalSubmitted(),
		TotalCompleted: s.coord.TotalCompleted(),
	})
}

type workerUtilization struct {
	Index         int     `json:"index"`
	ActivePercent float64 `json:"active_percent"`
	IdlePercent   float64 `json:"idle_percent"`
}

type utilizationResponse struct {
	Workers []workerUtilization `json:"workers"`
}

func (s *Server) handleUtilization(w http.ResponseWriter, r *http.Request) {
	reqID := requestIDFromContext(r.Context())
	util := s.coord.Utilization()
	out := make([]workerUtilization, len(util))
	for i, u := range util {
		out[i] = workerUtilization{
			Index:         u.Index,
			ActivePercent: u.ActivePercent(),
			IdlePercent:   u.IdlePercent(),
		}
	}
	respondOK(w, reqID, utilizationResponse{Workers: out})
}

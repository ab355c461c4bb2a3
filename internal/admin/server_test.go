package admin

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/loomwork/loom/pkg/engine"
)

func testServer(t *testing.T) (*Server, *engine.Coordinator) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}))
	coord := engine.New(2)
	coord.Resume()
	t.Cleanup(coord.Close)
	return New(coord, logger), coord
}

func doGet(t *testing.T, srv *Server, path string) envelope {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("GET %s: status=%d, want 200, body=%s", path, w.Code, w.Body.String())
	}
	var env envelope
	if err := json.NewDecoder(w.Body).Decode(&env); err != nil {
		t.Fatalf("GET %s: invalid JSON: %v", path, err)
	}
	return env
}

func TestHandleHealth(t *testing.T) {
	srv, _ := testServer(t)
	env := doGet(t, srv, "/healthz")
	if env.RequestID == "" {
		t.Error("request_id is empty")
	}

	data, _ := json.Marshal(env.Data)
	var health healthResponse
	if err := json.Unmarshal(data, &health); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if health.Status != "healthy" {
		t.Errorf("status = %q, want healthy", health.Status)
	}
}

func TestHandlePending(t *testing.T) {
	srv, coord := testServer(t)

	done := make(chan struct{})
	if err := coord.Submit(engine.NewJob("j", func() { close(done) })); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	<-done
	coord.WaitForAllJobs()

	env := doGet(t, srv, "/pending")
	data, _ := json.Marshal(env.Data)
	var p pendingResponse
	if err := json.Unmarshal(data, &p); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if p.Pending != 0 {
		t.Errorf("pending = %d, want 0", p.Pending)
	}
	if p.TotalSubmitted != 1 || p.TotalCompleted != 1 {
		t.Errorf("submitted/completed = %d/%d, want 1/1", p.TotalSubmitted, p.TotalCompleted)
	}
}

func TestHandleUtilization(t *testing.T) {
	srv, coord := testServer(t)
	must(t, coord.Submit(engine.NewJob("j", func() {})))
	coord.WaitForAllJobs()

	env := doGet(t, srv, "/utilization")
	data, _ := json.Marshal(env.Data)
	var u utilizationResponse
	if err := json.Unmarshal(data, &u); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(u.Workers) != 2 {
		t.Fatalf("len(Workers) = %d, want 2", len(u.Workers))
	}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}

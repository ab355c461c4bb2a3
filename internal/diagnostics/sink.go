// Package diagnostics provides an optional, durable engine.EventSink
// backed by SQLite. It exists purely for offline analysis of a demo
// run (the stress scenario in particular): the scheduling state itself
// is never persisted, only a log of job lifecycle events, so attaching
// or omitting a Sink never changes what the Coordinator does.
package diagnostics

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/loomwork/loom/internal/logging"
	"github.com/loomwork/loom/pkg/engine"

	_ "modernc.org/sqlite"
)

// Sink is a SQLite-backed engine.EventSink. Writes are buffered onto a
// bounded channel and drained by a single background goroutine, so
// OnStart/OnFinish never block a worker on disk I/O.
type Sink struct {
	db     *sql.DB
	logger *slog.Logger
	events chan event
	done   chan struct{}
}

type event struct {
	jobID   string
	jobName string
	kind    string // "started" or "finished"
	at      time.Time
}

// Open creates (or opens) a SQLite database at path and returns a Sink
// ready to receive events. Use ":memory:" for a throwaway database in
// tests. bufSize bounds the in-flight event channel; when full, OnStart
// and OnFinish drop the event rather than block the calling worker.
func Open(path string, bufSize int, logger *slog.Logger) (*Sink, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma wal: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	s := &Sink{
		db:     db,
		logger: logging.ForComponent(logger, "diagnostics"),
		events: make(chan event, bufSize),
		done:   make(chan struct{}),
	}
	go s.run()
	return s, nil
}

func migrate(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS job_events (
		id       INTEGER PRIMARY KEY AUTOINCREMENT,
		job_id   TEXT NOT NULL,
		job_name TEXT NOT NULL,
		kind     TEXT NOT NULL,
		at       TEXT NOT NULL
	)`)
	return err
}

func (s *Sink) run() {
	defer close(s.done)
	for e := range s.events {
		_, err := s.db.Exec(
			`INSERT INTO job_events (job_id, job_name, kind, at) VALUES (?, ?, ?, ?)`,
			e.jobID, e.jobName, e.kind, e.at.Format(time.RFC3339Nano),
		)
		if err != nil {
			s.logger.Error("record job event", "job_name", e.jobName, "kind", e.kind, "error", err)
		}
	}
}

// OnStart implements engine.EventSink.
func (s *Sink) OnStart(job *engine.Job) {
	s.record(job, "started")
}

// OnFinish implements engine.EventSink.
func (s *Sink) OnFinish(job *engine.Job) {
	s.record(job, "finished")
}

func (s *Sink) record(job *engine.Job, kind string) {
	select {
	case s.events <- event{jobID: job.ID.String(), jobName: job.Name, kind: kind, at: time.Now()}:
	default:
		s.logger.Warn("diagnostics event dropped, buffer full", "job_name", job.Name, "kind", kind)
	}
}

// Count returns the number of events of kind recorded so far.
func (s *Sink) Count(ctx context.Context, kind string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM job_events WHERE kind = ?`, kind).Scan(&n)
	return n, err
}

// Close drains any buffered events and closes the underlying database.
func (s *Sink) Close() error {
	close(s.events)
	<-s.done
	return s.db.Close()
}

var _ engine.EventSink = (*Sink)(nil)

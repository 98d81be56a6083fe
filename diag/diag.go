// Package diag records the outcome of each bootstrap stage so that
// degradations which are deliberately non-fatal at startup (a missing
// trust bundle, an untranslated UI) are still visible afterwards,
// locally and in telemetry.
package diag

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Status classifies a stage outcome.
type Status string

const (
	StatusOK       Status = "ok"
	StatusSkipped  Status = "skipped"  // stage not applicable on this board
	StatusDegraded Status = "degraded" // stage completed with reduced function
)

// Entry is one recorded stage outcome.
type Entry struct {
	Timestamp string `json:"timestamp"`
	Stage     string `json:"stage"`
	Status    Status `json:"status"`
	Detail    string `json:"detail,omitempty"`
}

// Report is the startup summary posted to the telemetry endpoint.
type Report struct {
	DeviceID string  `json:"device_id"`
	Board    string  `json:"board"`
	Version  string  `json:"version"`
	Entries  []Entry `json:"entries"`
}

// Recorder collects stage outcomes during bootstrap. Safe for
// concurrent use, though bootstrap itself is strictly sequential.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
	log     *zap.SugaredLogger
}

// NewRecorder returns a recorder that echoes entries to the given
// logger. The logger may be nil.
func NewRecorder(log *zap.SugaredLogger) *Recorder {
	return &Recorder{log: log}
}

// Record adds a stage outcome.
func (r *Recorder) Record(stage string, status Status, detail string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry := Entry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Stage:     stage,
		Status:    status,
		Detail:    detail,
	}
	r.entries = append(r.entries, entry)

	if r.log == nil {
		return
	}
	switch status {
	case StatusDegraded:
		r.log.Warnw("startup stage degraded", "stage", stage, "detail", detail)
	default:
		r.log.Debugw("startup stage", "stage", stage, "status", string(status), "detail", detail)
	}
}

// OK records a successful stage.
func (r *Recorder) OK(stage, detail string) { r.Record(stage, StatusOK, detail) }

// Skipped records a stage that did not apply on this board.
func (r *Recorder) Skipped(stage, detail string) { r.Record(stage, StatusSkipped, detail) }

// Degraded records a stage that completed with reduced function.
func (r *Recorder) Degraded(stage, detail string) { r.Record(stage, StatusDegraded, detail) }

// Entries returns a copy of the recorded entries in record order.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// HasDegraded reports whether any stage recorded a degradation.
func (r *Recorder) HasDegraded() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.entries {
		if e.Status == StatusDegraded {
			return true
		}
	}
	return false
}

// Report assembles the startup summary for upload.
func (r *Recorder) Report(deviceID, board, version string) Report {
	return Report{
		DeviceID: deviceID,
		Board:    board,
		Version:  version,
		Entries:  r.Entries(),
	}
}

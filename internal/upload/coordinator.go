package upload

import (
	"context"
	"io"
	"sync"
)

// Blob is one uploadable file: the original filename, the content length in
// bytes, and a way to (re)open the content. Open must return a fresh reader
// on every call so a failed transfer can be retried from the start.
type Blob struct {
	Filename string
	Size     int64
	Open     func() (io.ReadCloser, error)
}

// Uploader stores one blob under the given object name, reporting fractional
// progress (0-100) through onProgress, and returns the durable URL of the
// stored object.
type Uploader interface {
	Upload(ctx context.Context, objectName string, blob Blob, onProgress func(float64)) (string, error)
}

// Tracker aggregates per-file progress for one submission batch. Each
// in-flight file registers under its own key; the batch figure is the
// unweighted arithmetic mean of all tracked percentages. The policy is a
// simple mean over active transfers: a small file moves the batch number as
// much as a large one. Byte-weighted progress is intentionally not used.
type Tracker struct {
	mu       sync.Mutex
	progress map[string]float64
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{progress: make(map[string]float64)}
}

// Set records the current percentage for one file.
func (t *Tracker) Set(key string, pct float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.progress[key] = pct
}

// Overall returns the mean percentage across all tracked files, or 0 when
// nothing is tracked yet.
func (t *Tracker) Overall() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.progress) == 0 {
		return 0
	}
	var sum float64
	for _, p := range t.progress {
		sum += p
	}
	return sum / float64(len(t.progress))
}

// Reset clears all tracked progress for a fresh batch.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.progress = make(map[string]float64)
}

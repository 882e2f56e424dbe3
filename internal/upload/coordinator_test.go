package upload

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTracker_OverallIsUnweightedMean(t *testing.T) {
	tests := []struct {
		name     string
		progress map[string]float64
		want     float64
	}{
		{"empty", nil, 0},
		{"single_file", map[string]float64{"a": 40}, 40},
		{"half_and_done", map[string]float64{"a": 50, "b": 100}, 75},
		{"three_files", map[string]float64{"a": 0, "b": 60, "c": 90}, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTracker()
			for k, v := range tt.progress {
				tr.Set(k, v)
			}
			assert.InDelta(t, tt.want, tr.Overall(), 1e-9)
		})
	}
}

func TestTracker_SetOverwritesPerFile(t *testing.T) {
	tr := NewTracker()
	tr.Set("a", 10)
	tr.Set("a", 80)
	tr.Set("b", 20)
	assert.InDelta(t, 50, tr.Overall(), 1e-9)
}

func TestTracker_Reset(t *testing.T) {
	tr := NewTracker()
	tr.Set("a", 100)
	tr.Reset()
	assert.Zero(t, tr.Overall())
}

func TestTracker_ConcurrentUpdates(t *testing.T) {
	tr := NewTracker()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		key := string(rune('a' + i))
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := 0; p <= 100; p++ {
				tr.Set(key, float64(p))
			}
		}()
	}
	wg.Wait()
	assert.InDelta(t, 100, tr.Overall(), 1e-9)
}

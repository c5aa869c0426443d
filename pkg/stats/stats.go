// Package stats reports runtime statistics of the process while a
// simulation is running.
package stats

import (
	"context"
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	BYTE = 1 << (10 * iota)
	KILOBYTE
	MEGABYTE
)

// Runtime is a reading of the memory usage and number of goroutines of the
// process.
type Runtime struct {
	TotalAllocMB float64 `json:"total_alloc_mb"`
	HeapAllocMB  float64 `json:"heap_alloc_mb"`
	Mallocs      uint64  `json:"mallocs"`
	Frees        uint64  `json:"frees"`
	NumGoroutine int     `json:"num_goroutine"`
}

// ReadRuntime returns the current runtime statistics.
func ReadRuntime() Runtime {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return Runtime{
		TotalAllocMB: toMegabytes(memStats.TotalAlloc),
		HeapAllocMB:  toMegabytes(memStats.HeapAlloc),
		Mallocs:      memStats.Mallocs,
		Frees:        memStats.Frees,
		NumGoroutine: runtime.NumGoroutine(),
	}
}

// LogRuntimeStatistics starts a goroutine that periodically logs the
// runtime statistics until ctx is done. A non positive interval disables
// it.
func LogRuntimeStatistics(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				logRuntime(ReadRuntime())
			case <-ctx.Done():
				return
			}
		}
	}()
}

func logRuntime(s Runtime) {
	log.WithField("goroutines", s.NumGoroutine).Infof(
		"Total allocated: %.3fMB, Heap allocated: %.3fMB, "+
			"Allocated objects count: %v, Freed objects count: %v",
		s.TotalAllocMB, s.HeapAllocMB, s.Mallocs, s.Frees,
	)
}

func toMegabytes(bytes uint64) float64 {
	return float64(bytes) / MEGABYTE
}

package stats

import (
	"context"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func TestReadRuntime(t *testing.T) {
	s := ReadRuntime()
	require.Positive(t, s.NumGoroutine)
	require.Positive(t, s.TotalAllocMB)
	require.GreaterOrEqual(t, s.Mallocs, s.Frees)
}

func TestLogRuntimeStatistics(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	ctx, cancel := context.WithCancel(context.Background())
	LogRuntimeStatistics(ctx, 10*time.Millisecond)

	require.Eventually(t, func() bool {
		for _, entry := range hook.AllEntries() {
			if entry.Level == log.InfoLevel && entry.Data["goroutines"] != nil {
				return true
			}
		}
		return false
	}, time.Second, 10*time.Millisecond)
	cancel()
}

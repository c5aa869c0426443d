package metrics_test

import (
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/imetandy/emission-testing/internal/core/domain"
	"github.com/imetandy/emission-testing/internal/infrastructure/metrics"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	m := metrics.New()
	pool, err := domain.NewPool(decimal.NewFromInt(1000), decimal.NewFromInt(1000))
	require.NoError(t, err)

	require.NoError(t, pool.Trade(decimal.NewFromInt(100), domain.SideA))
	m.ObserveTrade(domain.SideA, pool.Snapshot())

	require.NoError(t, pool.SetSignal(decimal.NewFromInt(25), decimal.RequireFromString("20.8")))
	pool.RefreshRatio()
	m.ObserveRatioRefresh(pool.Snapshot())

	families, err := m.Registry().Gather()
	require.NoError(t, err)
	require.Len(t, families, 8)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), `amm_trades_total{side="A"} 1`)
	require.Contains(t, string(body), "amm_reserve_a 1100")
	require.Contains(t, string(body), "amm_ratio_refreshes_total 1")

	path := filepath.Join(t.TempDir(), "stats")
	require.NoError(t, m.DumpToFile(path))
	dump, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(dump), "amm_price_a_in_b_adjusted")
}

func TestObserveSnapshotDoesNotCount(t *testing.T) {
	m := metrics.New()
	pool, err := domain.NewPool(decimal.NewFromInt(1000), decimal.NewFromInt(4000))
	require.NoError(t, err)

	m.ObserveSnapshot(pool.Snapshot())

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "amm_reserve_b 4000")
	require.Contains(t, string(body), "amm_ratio_refreshes_total 0")
	require.NotContains(t, string(body), "amm_trades_total{")
}

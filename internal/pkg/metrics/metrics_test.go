package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/prisonadmin/internal/db"
)

func TestRecordHTTPRequest(t *testing.T) {
	registry := prometheus.NewRegistry()
	m, err := NewHTTPMetrics(registry)
	require.NoError(t, err)

	m.RecordHTTPRequest("GET", "/inmates", 200, 0.01)
	m.RecordHTTPRequest("GET", "/inmates", 200, 0.02)
	m.RecordHTTPRequest("POST", "/remove-inmate", 400, 0.01)
	m.RecordHTTPRequest("POST", "/init-db", 500, 0.5)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/inmates", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.operationErrors.WithLabelValues("/remove-inmate", "client")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.operationErrors.WithLabelValues("/init-db", "server")))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.operationErrors.WithLabelValues("/inmates", "client")))
}

func TestNewHTTPMetricsRejectsDoubleRegistration(t *testing.T) {
	registry := prometheus.NewRegistry()
	_, err := NewHTTPMetrics(registry)
	require.NoError(t, err)

	_, err = NewHTTPMetrics(registry)
	assert.Error(t, err)
}

func TestPoolCollector(t *testing.T) {
	registry := prometheus.NewRegistry()
	snap := db.PoolSnapshot{
		AcquiredConns:   2,
		IdleConns:       1,
		TotalConns:      3,
		MaxConns:        3,
		AcquireCount:    10,
		AcquireDuration: 1500 * time.Millisecond,
	}
	_, err := NewPoolCollector(registry, func() db.PoolSnapshot { return snap })
	require.NoError(t, err)

	expected := `
# HELP prisonadmin_db_pool_acquired_connections Connections currently borrowed
# TYPE prisonadmin_db_pool_acquired_connections gauge
prisonadmin_db_pool_acquired_connections 2
# HELP prisonadmin_db_pool_max_connections Upper bound of the pool
# TYPE prisonadmin_db_pool_max_connections gauge
prisonadmin_db_pool_max_connections 3
`
	err = testutil.GatherAndCompare(registry, strings.NewReader(expected),
		"prisonadmin_db_pool_acquired_connections", "prisonadmin_db_pool_max_connections")
	assert.NoError(t, err)

	count, err := testutil.GatherAndCount(registry)
	require.NoError(t, err)
	assert.Equal(t, 7, count)
}

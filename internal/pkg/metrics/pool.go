package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/yigit/prisonadmin/internal/db"
)

// PoolCollector exports connection pool counters, read at scrape time.
type PoolCollector struct {
	snapshot func() db.PoolSnapshot

	acquired     *prometheus.Desc
	idle         *prometheus.Desc
	total        *prometheus.Desc
	max          *prometheus.Desc
	acquireCount *prometheus.Desc
	emptyAcquire *prometheus.Desc
	acquireWait  *prometheus.Desc
}

// NewPoolCollector creates and registers a pool collector
func NewPoolCollector(registry *prometheus.Registry, snapshot func() db.PoolSnapshot) (*PoolCollector, error) {
	c := &PoolCollector{
		snapshot:     snapshot,
		acquired:     prometheus.NewDesc("prisonadmin_db_pool_acquired_connections", "Connections currently borrowed", nil, nil),
		idle:         prometheus.NewDesc("prisonadmin_db_pool_idle_connections", "Idle connections in the pool", nil, nil),
		total:        prometheus.NewDesc("prisonadmin_db_pool_total_connections", "Open connections in the pool", nil, nil),
		max:          prometheus.NewDesc("prisonadmin_db_pool_max_connections", "Upper bound of the pool", nil, nil),
		acquireCount: prometheus.NewDesc("prisonadmin_db_pool_acquires_total", "Successful connection acquisitions", nil, nil),
		emptyAcquire: prometheus.NewDesc("prisonadmin_db_pool_empty_acquires_total", "Acquisitions that had to wait for a connection", nil, nil),
		acquireWait:  prometheus.NewDesc("prisonadmin_db_pool_acquire_seconds_total", "Cumulative time spent acquiring connections", nil, nil),
	}
	if err := registry.Register(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Describe implements the Collector interface
func (c *PoolCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.acquired
	ch <- c.idle
	ch <- c.total
	ch <- c.max
	ch <- c.acquireCount
	ch <- c.emptyAcquire
	ch <- c.acquireWait
}

// Collect implements the Collector interface
func (c *PoolCollector) Collect(ch chan<- prometheus.Metric) {
	s := c.snapshot()
	ch <- prometheus.MustNewConstMetric(c.acquired, prometheus.GaugeValue, float64(s.AcquiredConns))
	ch <- prometheus.MustNewConstMetric(c.idle, prometheus.GaugeValue, float64(s.IdleConns))
	ch <- prometheus.MustNewConstMetric(c.total, prometheus.GaugeValue, float64(s.TotalConns))
	ch <- prometheus.MustNewConstMetric(c.max, prometheus.GaugeValue, float64(s.MaxConns))
	ch <- prometheus.MustNewConstMetric(c.acquireCount, prometheus.CounterValue, float64(s.AcquireCount))
	ch <- prometheus.MustNewConstMetric(c.emptyAcquire, prometheus.CounterValue, float64(s.EmptyAcquireCount))
	ch <- prometheus.MustNewConstMetric(c.acquireWait, prometheus.CounterValue, s.AcquireDuration.Seconds())
}

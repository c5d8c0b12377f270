package database

import (
	"database/sql"

	"github.com/prometheus/client_golang/prometheus"
)

// StatsCollector exports pool statistics as Prometheus metrics.
type StatsCollector struct {
	db     *sql.DB
	dbName string

	maxOpen      *prometheus.Desc
	open         *prometheus.Desc
	inUse        *prometheus.Desc
	idle         *prometheus.Desc
	waitCount    *prometheus.Desc
	waitDuration *prometheus.Desc
}

// NewStatsCollector creates a collector for the given pool. Register it on
// the default registerer alongside the process collectors.
func NewStatsCollector(db *sql.DB, dbName string) *StatsCollector {
	labels := prometheus.Labels{"db_name": dbName}
	return &StatsCollector{
		db:     db,
		dbName: dbName,
		maxOpen: prometheus.NewDesc(
			"db_pool_max_open_connections",
			"Maximum number of open connections to the database.",
			nil, labels,
		),
		open: prometheus.NewDesc(
			"db_pool_open_connections",
			"Number of established connections both in use and idle.",
			nil, labels,
		),
		inUse: prometheus.NewDesc(
			"db_pool_in_use_connections",
			"Number of connections currently in use.",
			nil, labels,
		),
		idle: prometheus.NewDesc(
			"db_pool_idle_connections",
			"Number of idle connections.",
			nil, labels,
		),
		waitCount: prometheus.NewDesc(
			"db_pool_wait_count_total",
			"Total number of connections waited for.",
			nil, labels,
		),
		waitDuration: prometheus.NewDesc(
			"db_pool_wait_duration_seconds_total",
			"Total time blocked waiting for a new connection.",
			nil, labels,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *StatsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.maxOpen
	ch <- c.open
	ch <- c.inUse
	ch <- c.idle
	ch <- c.waitCount
	ch <- c.waitDuration
}

// Collect implements prometheus.Collector.
func (c *StatsCollector) Collect(ch chan<- prometheus.Metric) {
	stats := c.db.Stats()
	ch <- prometheus.MustNewConstMetric(c.maxOpen, prometheus.GaugeValue, float64(stats.MaxOpenConnections))
	ch <- prometheus.MustNewConstMetric(c.open, prometheus.GaugeValue, float64(stats.OpenConnections))
	ch <- prometheus.MustNewConstMetric(c.inUse, prometheus.GaugeValue, float64(stats.InUse))
	ch <- prometheus.MustNewConstMetric(c.idle, prometheus.GaugeValue, float64(stats.Idle))
	ch <- prometheus.MustNewConstMetric(c.waitCount, prometheus.CounterValue, float64(stats.WaitCount))
	ch <- prometheus.MustNewConstMetric(c.waitDuration, prometheus.CounterValue, stats.WaitDuration.Seconds())
}

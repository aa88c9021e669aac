// Package metrics exports sink statistics to Prometheus.
package metrics

import (
	"sort"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/philipp01105/sharedlog/core"
	"github.com/philipp01105/sharedlog/handler"
)

// Collector reads handler.Stats snapshots at scrape time and exposes
// them as counters. Sinks are registered by name.
type Collector struct {
	written *prometheus.Desc
	failed  *prometheus.Desc

	mu    sync.RWMutex
	sinks map[string]handler.StatsProvider
}

// NewCollector creates a Collector whose metric names start with
// namespace.
func NewCollector(namespace string) *Collector {
	return &Collector{
		written: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "sink", "entries_written_total"),
			"Total number of entries written by a sink",
			[]string{"sink", "level"}, nil,
		),
		failed: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "sink", "write_failures_total"),
			"Total number of failed sink writes",
			[]string{"sink"}, nil,
		),
		sinks: make(map[string]handler.StatsProvider),
	}
}

// Register adds a sink under name, replacing any sink already
// registered with that name.
func (c *Collector) Register(name string, sink handler.StatsProvider) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sinks[name] = sink
}

// Unregister removes the sink registered under name
func (c *Collector) Unregister(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sinks, name)
}

// Describe implements prometheus.Collector
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.written
	ch <- c.failed
}

// Collect implements prometheus.Collector
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.mu.RLock()
	names := make([]string, 0, len(c.sinks))
	for name := range c.sinks {
		names = append(names, name)
	}
	sinks := make(map[string]handler.StatsProvider, len(c.sinks))
	for name, s := range c.sinks {
		sinks[name] = s
	}
	c.mu.RUnlock()
	sort.Strings(names)

	for _, name := range names {
		snap := sinks[name].Stats()
		for level := core.AllLevel; level <= core.OffLevel; level++ {
			n, ok := snap.Written[level]
			if !ok {
				continue
			}
			ch <- prometheus.MustNewConstMetric(c.written, prometheus.CounterValue,
				float64(n), name, level.String())
		}
		ch <- prometheus.MustNewConstMetric(c.failed, prometheus.CounterValue,
			float64(snap.Failed), name)
	}
}

var _ prometheus.Collector = (*Collector)(nil)

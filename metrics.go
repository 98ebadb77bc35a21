// Copyright 2026 The Atom Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package atom

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	descSymbols = prometheus.NewDesc("atom_symbols",
		"Number of distinct interned strings.", nil, nil)
	descBytes = prometheus.NewDesc("atom_symbol_bytes",
		"Total bytes of interned string content.", nil, nil)
	descHits = prometheus.NewDesc("atom_intern_hits_total",
		"Intern calls that found an existing entry.", nil, nil)
	descMisses = prometheus.NewDesc("atom_intern_misses_total",
		"Intern calls that created a new entry.", nil, nil)
)

// statsCollector exposes symbol table statistics as prometheus metrics.
type statsCollector struct {
	t *table
}

// NewStatsCollector returns a prometheus collector reporting size and
// traffic of the process-wide symbol table. Register it with any prometheus
// registry; collection takes only the table read lock.
func NewStatsCollector() prometheus.Collector {
	return &statsCollector{t: global}
}

func (c *statsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- descSymbols
	ch <- descBytes
	ch <- descHits
	ch <- descMisses
}

func (c *statsCollector) Collect(ch chan<- prometheus.Metric) {
	c.t.mu.RLock()
	count := c.t.count
	c.t.mu.RUnlock()

	ch <- prometheus.MustNewConstMetric(descSymbols, prometheus.GaugeValue, float64(count))
	ch <- prometheus.MustNewConstMetric(descBytes, prometheus.GaugeValue, float64(atomic.LoadInt64(&c.t.bytes)))
	ch <- prometheus.MustNewConstMetric(descHits, prometheus.CounterValue, float64(atomic.LoadUint64(&c.t.hits)))
	ch <- prometheus.MustNewConstMetric(descMisses, prometheus.CounterValue, float64(atomic.LoadUint64(&c.t.misses)))
}

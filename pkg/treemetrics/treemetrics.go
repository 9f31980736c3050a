// Package treemetrics exposes the structural counters of a tree as
// Prometheus metrics.
package treemetrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mythicalcodelabs/yggdrasil/pkg/btree"
)

// Source is anything that can snapshot tree statistics. All four container
// flavors satisfy it.
type Source interface {
	Stats() btree.Stats
}

// Collector reads a Source on every scrape and reports its structure gauges
// and rebalance counters. Register one per tree, distinguished by the tree
// label.
type Collector struct {
	name string
	src  Source

	records   *prometheus.Desc
	height    *prometheus.Desc
	nodes     *prometheus.Desc
	splits    *prometheus.Desc
	merges    *prometheus.Desc
	rotations *prometheus.Desc
}

// NewCollector creates a collector for one tree. The name becomes the value
// of the tree label on every metric.
func NewCollector(name string, src Source) *Collector {
	labels := prometheus.Labels{"tree": name}
	return &Collector{
		name: name,
		src:  src,
		records: prometheus.NewDesc(
			"yggdrasil_tree_records",
			"Number of records currently stored in the tree",
			nil, labels,
		),
		height: prometheus.NewDesc(
			"yggdrasil_tree_height",
			"Levels in the tree; 1 for a single leaf, 0 when empty",
			nil, labels,
		),
		nodes: prometheus.NewDesc(
			"yggdrasil_tree_nodes",
			"Number of allocated tree nodes",
			nil, labels,
		),
		splits: prometheus.NewDesc(
			"yggdrasil_tree_splits_total",
			"Node splits performed since the tree was created",
			nil, labels,
		),
		merges: prometheus.NewDesc(
			"yggdrasil_tree_merges_total",
			"Node merges performed since the tree was created",
			nil, labels,
		),
		rotations: prometheus.NewDesc(
			"yggdrasil_tree_rotations_total",
			"Sibling borrows performed since the tree was created",
			nil, labels,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.records
	ch <- c.height
	ch <- c.nodes
	ch <- c.splits
	ch <- c.merges
	ch <- c.rotations
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.src.Stats()
	ch <- prometheus.MustNewConstMetric(c.records, prometheus.GaugeValue, float64(s.Size))
	ch <- prometheus.MustNewConstMetric(c.height, prometheus.GaugeValue, float64(s.Height))
	ch <- prometheus.MustNewConstMetric(c.nodes, prometheus.GaugeValue, float64(s.Nodes))
	ch <- prometheus.MustNewConstMetric(c.splits, prometheus.CounterValue, float64(s.Splits))
	ch <- prometheus.MustNewConstMetric(c.merges, prometheus.CounterValue, float64(s.Merges))
	ch <- prometheus.MustNewConstMetric(c.rotations, prometheus.CounterValue, float64(s.Rotations))
}

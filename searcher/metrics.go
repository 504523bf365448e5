package searcher

import (
	"sync/atomic"
	"time"
)

type SearchMetrics struct {
	Duration   time.Duration
	Episodes   int64 // Top-level descents
	Playouts   int64 // Random playouts run
	Terminals  int64 // Descents ending on a filled board
	Expansions int64 // Nodes whose children were created
	TreeSize   int
	TreeResets int64
}

type MetricsCollector interface {
	Start()
	AddEpisode()
	AddPlayouts(n int)
	AddTerminal()
	AddExpansion()
	ResetTree()
	Complete(treeSize int) SearchMetrics
}

type metricsCollector struct {
	startTime  time.Time
	episodes   atomic.Int64
	playouts   atomic.Int64
	terminals  atomic.Int64
	expansions atomic.Int64
	treeResets atomic.Int64
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

// Start clears the per-move counters. Tree resets are counted over the collector's lifetime.
func (m *metricsCollector) Start() {
	m.startTime = time.Now()
	m.episodes.Store(0)
	m.playouts.Store(0)
	m.terminals.Store(0)
	m.expansions.Store(0)
}

func (m *metricsCollector) AddEpisode() {
	m.episodes.Add(1)
}

func (m *metricsCollector) AddPlayouts(n int) {
	m.playouts.Add(int64(n))
}

func (m *metricsCollector) AddTerminal() {
	m.terminals.Add(1)
}

func (m *metricsCollector) AddExpansion() {
	m.expansions.Add(1)
}

func (m *metricsCollector) ResetTree() {
	m.treeResets.Add(1)
}

func (m *metricsCollector) Complete(treeSize int) SearchMetrics {
	return SearchMetrics{
		Duration:   time.Since(m.startTime),
		Episodes:   m.episodes.Load(),
		Playouts:   m.playouts.Load(),
		Terminals:  m.terminals.Load(),
		Expansions: m.expansions.Load(),
		TreeSize:   treeSize,
		TreeResets: m.treeResets.Load(),
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start()          {}
func (m *noMetricsCollector) AddEpisode()     {}
func (m *noMetricsCollector) AddPlayouts(int) {}
func (m *noMetricsCollector) AddTerminal()    {}
func (m *noMetricsCollector) AddExpansion()   {}
func (m *noMetricsCollector) ResetTree()      {}
func (m *noMetricsCollector) Complete(treeSize int) SearchMetrics {
	return SearchMetrics{TreeSize: treeSize}
}

package planner

import (
	"sync/atomic"
	"time"
)

// DecisionMetrics summarises the work behind one decision.
type DecisionMetrics struct {
	StartTime time.Time
	Duration  time.Duration
	Options   int64
	Playouts  int64
	Cutoffs   int64
}

type MetricsCollector interface {
	Start()
	AddOption()
	AddPlayout()
	AddCutoff()
	Complete() DecisionMetrics
}

type metricsCollector struct {
	startTime time.Time
	options   atomic.Int64
	playouts  atomic.Int64
	cutoffs   atomic.Int64
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

// Start resets the counters for a new decision.
func (m *metricsCollector) Start() {
	m.startTime = time.Now()
	m.options.Store(0)
	m.playouts.Store(0)
	m.cutoffs.Store(0)
}

func (m *metricsCollector) AddOption() {
	m.options.Add(1)
}

func (m *metricsCollector) AddPlayout() {
	m.playouts.Add(1)
}

// AddCutoff counts a playout stopped by the step cap.
func (m *metricsCollector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *metricsCollector) Complete() DecisionMetrics {
	return DecisionMetrics{
		StartTime: m.startTime,
		Duration:  time.Since(m.startTime),
		Options:   m.options.Load(),
		Playouts:  m.playouts.Load(),
		Cutoffs:   m.cutoffs.Load(),
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start()                    {}
func (m *noMetricsCollector) AddOption()                {}
func (m *noMetricsCollector) AddPlayout()               {}
func (m *noMetricsCollector) AddCutoff()                {}
func (m *noMetricsCollector) Complete() DecisionMetrics { return DecisionMetrics{} }

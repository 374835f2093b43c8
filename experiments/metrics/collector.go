package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Strategy   string
	Duration   time.Duration
	Iterations int // MCTS iterations
	Nodes      int // Positions entered by the search
	Leaves     int // Positions evaluated
	Cutoffs    int // Alpha-beta cutoffs
	CacheHits  int // Best-move cache hits used for ordering
}

type MoveMetric struct {
	Step      int
	Side      string
	Operation string
	SearchMetric
}

type GameMetric struct {
	Black      string // Strategy name
	White      string // Strategy name
	Winner     string // Side name, empty on a draw
	Reason     string
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

type Collector interface {
	Start(strategy string)
	AddIteration()
	AddNode()
	AddLeaf()
	AddCutoff()
	AddCacheHit()
	Complete() SearchMetric
}

type collector struct {
	strategy   string
	startTime  time.Time
	iterations atomic.Int64
	nodes      atomic.Int64
	leaves     atomic.Int64
	cutoffs    atomic.Int64
	cacheHits  atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new search.
func (m *collector) Start(strategy string) {
	m.strategy = strategy
	m.startTime = time.Now()
	m.iterations.Store(0)
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.cutoffs.Store(0)
	m.cacheHits.Store(0)
}

func (m *collector) AddIteration() {
	m.iterations.Add(1)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) AddCacheHit() {
	m.cacheHits.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Strategy:   m.strategy,
		Duration:   time.Since(m.startTime),
		Iterations: int(m.iterations.Load()),
		Nodes:      int(m.nodes.Load()),
		Leaves:     int(m.leaves.Load()),
		Cutoffs:    int(m.cutoffs.Load()),
		CacheHits:  int(m.cacheHits.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(strategy string)  {}
func (m *dummyCollector) AddIteration()          {}
func (m *dummyCollector) AddNode()               {}
func (m *dummyCollector) AddLeaf()               {}
func (m *dummyCollector) AddCutoff()             {}
func (m *dummyCollector) AddCacheHit()           {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }

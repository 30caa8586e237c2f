package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Goroutines int
	Depth      int
	Policies   int
	Duration   time.Duration
	Nodes      int // States simulated
	Leaves     int // States evaluated
	Cutoffs    int // Leaves forced by the time budget
}

type TurnMetric struct {
	Turn    int
	Policy  string
	Value   int
	Score   int
	Humans  int
	Zombies int
	SearchMetric
}

type GameMetric struct {
	Game       string
	Won        bool
	Score      int
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalTurns int
}

// Collector gathers search statistics. Implementations must be safe for
// concurrent use by the branches of one search.
type Collector interface {
	Start(goroutines, depth, policies int)
	AddNode()
	AddLeaf()
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	goroutines int
	depth      int
	policies   int
	startTime  time.Time
	nodes      atomic.Int64
	leaves     atomic.Int64
	cutoffs    atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines, depth, policies int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.depth = depth
	m.policies = policies
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.cutoffs.Store(0)
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

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines: m.goroutines,
		Depth:      m.depth,
		Policies:   m.policies,
		Duration:   time.Since(m.startTime),
		Nodes:      int(m.nodes.Load()),
		Leaves:     int(m.leaves.Load()),
		Cutoffs:    int(m.cutoffs.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines, depth, policies int) {}
func (m *dummyCollector) AddNode()                              {}
func (m *dummyCollector) AddLeaf()                              {}
func (m *dummyCollector) AddCutoff()                            {}
func (m *dummyCollector) Complete() SearchMetric                { return SearchMetric{} }

package main

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/sync/errgroup"

	"qdense/quantum"
)

// OperationStats is the timing summary of one named operation.
type OperationStats struct {
	Name  string
	Count int64
	Total time.Duration
	Min   time.Duration
	Max   time.Duration
	Avg   time.Duration
}

// Profiler collects wall-clock timings per operation name. Safe for concurrent use.
type Profiler struct {
	mu    sync.Mutex
	stats map[string]*OperationStats
	now   func() time.Time
}

func NewProfiler() *Profiler {
	return &Profiler{
		stats: make(map[string]*OperationStats),
		now:   time.Now,
	}
}

// Time runs fn and records its duration under name. Failed runs are not recorded.
func (p *Profiler) Time(name string, fn func() error) error {
	start := p.now()
	if err := fn(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	p.record(name, p.now().Sub(start))
	return nil
}

func (p *Profiler) record(name string, d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	s, ok := p.stats[name]
	if !ok {
		s = &OperationStats{Name: name, Min: d, Max: d}
		p.stats[name] = s
	}
	s.Count++
	s.Total += d
	s.Min = min(s.Min, d)
	s.Max = max(s.Max, d)
	s.Avg = s.Total / time.Duration(s.Count)
}

// Stats returns a snapshot of all operations, sorted by name.
func (p *Profiler) Stats() []OperationStats {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]OperationStats, 0, len(p.stats))
	for _, s := range p.stats {
		out = append(out, *s)
	}
	slices.SortFunc(out, func(a, b OperationStats) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return out
}

// Render writes the timing table.
func (p *Profiler) Render(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Operation", "Runs", "Avg", "Min", "Max"})
	for _, s := range p.Stats() {
		table.Append([]string{
			s.Name,
			strconv.FormatInt(s.Count, 10),
			s.Avg.String(),
			s.Min.String(),
			s.Max.String(),
		})
	}
	table.Render()
}

// benchScenario is one timed workload. Each run builds its own register.
type benchScenario struct {
	name string
	run  func() error
}

// benchScenarios returns one gate of each kind on an n-qubit register plus
// the GHZ and Deutsch–Jozsa circuits.
func benchScenarios(n int) []benchScenario {
	single := func(g quantum.Gate) func() error {
		return func() error {
			reg, err := quantum.New(n)
			if err != nil {
				return err
			}
			return reg.Apply(g)
		}
	}
	circuit := func(c *Circuit) func() error {
		return func() error {
			_, err := SimulateCircuit(c, -1)
			return err
		}
	}

	return []benchScenario{
		{fmt.Sprintf("H gate (%d qubits)", n), single(quantum.NewGate(quantum.GateH, 0))},
		{fmt.Sprintf("X gate (%d qubits)", n), single(quantum.NewGate(quantum.GateX, 0))},
		{fmt.Sprintf("CNOT gate (%d qubits)", n), single(quantum.NewCNOT(1, 0))},
		{fmt.Sprintf("Z gate (%d qubits)", n), single(quantum.NewGate(quantum.GateZ, 0))},
		{fmt.Sprintf("GHZ state (%d qubits)", n), circuit(GHZ(n))},
		{"Deutsch-Jozsa (4 qubits)", circuit(DeutschJozsa())},
	}
}

// RunBench times every scenario repeats times. Scenarios run concurrently up
// to parallel at a time; the repeats of one scenario run in sequence.
func RunBench(ctx context.Context, p *Profiler, cfg BenchConfig) error {
	if cfg.Qubits < 2 {
		return fmt.Errorf("bench needs at least 2 qubits for CNOT, got %d", cfg.Qubits)
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Parallel)

	for _, sc := range benchScenarios(cfg.Qubits) {
		g.Go(func() error {
			for range cfg.Repeats {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := p.Time(sc.name, sc.run); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}

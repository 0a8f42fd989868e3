package hostapp

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Profiler is a minimal CPU-side frame profiler for the reference host: a
// set of named scopes (tick, upload, present, ...) and named counters,
// rendered as text by Report. The App records the tick, upload and present
// scopes each frame; it sets no counters and does not print the report.
type Profiler struct {
	scopes     map[string]time.Duration
	startTimes map[string]time.Time
	counts     map[string]int
	order      []string
}

func NewProfiler() *Profiler {
	return &Profiler{
		scopes:     make(map[string]time.Duration),
		startTimes: make(map[string]time.Time),
		counts:     make(map[string]int),
	}
}

// BeginScope marks the start of a named timing scope.
func (p *Profiler) BeginScope(name string) {
	p.startTimes[name] = time.Now()
	for _, n := range p.order {
		if n == name {
			return
		}
	}
	p.order = append(p.order, name)
}

// EndScope records the elapsed time since the matching BeginScope.
func (p *Profiler) EndScope(name string) {
	if start, ok := p.startTimes[name]; ok {
		p.scopes[name] = time.Since(start)
	}
}

// SetCount records the latest value of a named counter.
func (p *Profiler) SetCount(name string, count int) {
	p.counts[name] = count
}

// Reset zeroes every scope's recorded duration, keeping the display order.
func (p *Profiler) Reset() {
	for k := range p.scopes {
		p.scopes[k] = 0
	}
}

// Report renders the current scopes and counters as a human-readable block,
// for a terminal HUD line or a periodic log message.
func (p *Profiler) Report() string {
	var sb strings.Builder

	sb.WriteString("timings:\n")
	for _, name := range p.order {
		ms := float64(p.scopes[name].Microseconds()) / 1000.0
		fmt.Fprintf(&sb, "  %-16s %.2f ms\n", name, ms)
	}

	keys := make([]string, 0, len(p.counts))
	for k := range p.counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	sb.WriteString("counts:\n")
	for _, k := range keys {
		fmt.Fprintf(&sb, "  %-16s %d\n", k, p.counts[k])
	}
	return sb.String()
}

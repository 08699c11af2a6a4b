package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/vrekit/scene"
)

type Report struct {
	// Configuration
	Duration  time.Duration
	Nodes     int
	ChurnRate int
	Lookups   int

	// Results
	TotalTicks     int64
	TotalTime      time.Duration
	TickTime       Stats
	NodesRemoved   int64
	NodesSpawned   int64
	LookupHits     int64
	LookupMisses   int64
	FinalStats     scene.Stats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Scene Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Initial Nodes:** {{.Nodes}}
- **Churn Rate:** {{.ChurnRate}} nodes/tick
- **Lookups:** {{.Lookups}} per tick

## Performance Results
- **Total Ticks:** {{.TotalTicks}}
- **Total Test Time:** {{.TotalTime}}
- **Tick Time (Frame):**
  - **Avg:** {{.TickTime.Avg}}
  - **Min:** {{.TickTime.Min}}
  - **Max:** {{.TickTime.Max}}

## Registry Churn
- **Nodes Removed:** {{.NodesRemoved}}
- **Nodes Spawned:** {{.NodesSpawned}}
- **Lookup Hits:** {{.LookupHits}}
- **Lookup Misses:** {{.LookupMisses}}
- **Final Node Count:** {{.FinalStats.NodeCount}}
- **Final Node Capacity:** {{.FinalStats.NodeCapacity}} ({{pct .FinalStats.NodeLoadFactor}} load)

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Sys Memory:     {{.MemStatsStart.Sys}} (start) -> {{.MemStatsEnd.Sys}} (end) -> delta: {{bsub .MemStatsEnd.Sys .MemStatsStart.Sys}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"pct": func(v float64) string {
			return fmt.Sprintf("%.0f%%", v*100)
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}

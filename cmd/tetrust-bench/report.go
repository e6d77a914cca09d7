package main

import (
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/tetrust/autoplay"
	"github.com/plus3/tetrust/loop"
)

type Report struct {
	// Configuration
	Games      int
	Duration   time.Duration
	MaxPieces  int
	Randomizer string
	Seed       uint64

	// Results
	Completed      int
	Pieces         int
	Lines          int
	Score          ScoreStats
	TotalTime      time.Duration
	Frames         int64
	Systems        []loop.SystemStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type ScoreStats struct {
	Min  int
	Max  int
	Mean float64
}

// Collect fills the result section from finished games and scheduler stats.
func (r *Report) Collect(results []autoplay.GameResult, stats *loop.SchedulerStats, elapsed time.Duration) {
	r.Completed = len(results)
	r.TotalTime = elapsed
	r.Frames = stats.Frames
	r.Systems = stats.Systems
	r.Pieces, r.Lines = 0, 0
	r.Score = ScoreStats{}

	if len(results) == 0 {
		return
	}

	total := 0
	r.Score.Min = results[0].Score
	r.Score.Max = results[0].Score
	for _, result := range results {
		r.Pieces += result.Pieces
		r.Lines += result.Lines
		total += result.Score
		r.Score.Min = min(r.Score.Min, result.Score)
		r.Score.Max = max(r.Score.Max, result.Score)
	}
	r.Score.Mean = float64(total) / float64(len(results))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Autoplay Benchmark Report

## Configuration
- **Games:** {{if .Games}}{{.Games}}{{else}}unlimited{{end}}
- **Run Duration:** {{if .Duration}}{{.Duration}}{{else}}unlimited{{end}}
- **Max Pieces per Game:** {{if .MaxPieces}}{{.MaxPieces}}{{else}}unlimited{{end}}
- **Randomizer:** {{.Randomizer}}{{if .Seed}} (seed {{.Seed}}){{end}}

## Game Results
- **Completed Games:** {{.Completed}}
- **Pieces Placed:** {{.Pieces}}
- **Lines Cleared:** {{.Lines}}
- **Score:**
  - **Mean:** {{printf "%.1f" .Score.Mean}}
  - **Min:** {{.Score.Min}}
  - **Max:** {{.Score.Max}}

## Scheduler
- **Frames:** {{.Frames}}
- **Total Time:** {{.TotalTime}}
{{range .Systems}}- {{.Name}}: {{.ExecutionCount}} runs, avg {{.AvgDuration}}, min {{.MinDuration}}, max {{.MaxDuration}}
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{nsub .MemStatsEnd.PauseTotalNs .MemStatsStart.PauseTotalNs | ns}}
{{end}}`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"nsub": func(a, b uint64) uint64 {
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

// Package model defines shared data structures.
package model

import "time"

// RunConfig defines settings for the prayer loop.
type RunConfig struct {
	UnitMs       int
	WPM          int
	DelaySeconds int
	RestSeconds  int
	Language     string
	Backend      string
	GPIOPin      int
	ToneHz       float64
	Verbose      bool
	Monitor      bool
	Cycles       int
	NoLog        bool
}

// SegmentRecord captures one transmitted prayer segment.
type SegmentRecord struct {
	SentAt     time.Time
	Cycle      int64
	Label      string
	Language   string
	Chars      int
	DurationMs int64
}

// CycleRecord captures one completed pass through the chaplet.
type CycleRecord struct {
	Number     int64
	StartedAt  time.Time
	EndedAt    time.Time
	Language   string
	Segments   int
	DurationMs int64
}

// StatsConfig defines filters for the stats report.
type StatsConfig struct {
	Language string
	Since    *time.Time
	Last     int
}

// CycleAggregate summarizes a logged cycle for reporting.
type CycleAggregate struct {
	ID         int64
	Number     int64
	EndedAt    time.Time
	Language   string
	Segments   int
	DurationMs int64
}

// Totals aggregates the transmission log.
type Totals struct {
	Cycles     int
	Segments   int
	Chars      int64
	DurationMs int64
}

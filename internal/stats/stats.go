// Package stats reports on the transmission log.
package stats

import (
	"context"

	"github.com/quisutdeus/chaplet/internal/model"
	"github.com/quisutdeus/chaplet/internal/store"
)

// Report contains precomputed data for stats rendering.
type Report struct {
	Cycles    []model.CycleAggregate
	Totals    model.Totals
	Languages map[string]int
}

// BuildReport loads and prepares data for stats rendering.
func BuildReport(ctx context.Context, st *store.Store, cfg model.StatsConfig) (Report, error) {
	cycles, err := st.ListCycles(ctx, cfg)
	if err != nil {
		return Report{}, err
	}
	if cfg.Last > 0 && len(cycles) > cfg.Last {
		cycles = cycles[len(cycles)-cfg.Last:]
	}
	totals, err := st.SummarizeSegments(ctx, cfg)
	if err != nil {
		return Report{}, err
	}
	totals.Cycles = len(cycles)
	languages, err := st.CountByLanguage(ctx, cfg)
	if err != nil {
		return Report{}, err
	}
	return Report{Cycles: cycles, Totals: totals, Languages: languages}, nil
}

// CycleDurations extracts per-cycle durations in seconds, oldest first.
func CycleDurations(cycles []model.CycleAggregate) []float64 {
	out := make([]float64, len(cycles))
	for i, c := range cycles {
		out[i] = float64(c.DurationMs) / 1000.0
	}
	return out
}

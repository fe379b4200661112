package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	FitScoreRequests atomic.Int64
	BatchRequests    atomic.Int64
	BatchJobsScored  atomic.Int64
	SkillGapRequests atomic.Int64
	CourseRequests   atomic.Int64
	HistoryRequests  atomic.Int64
	ProfileRequests  atomic.Int64
}

// GetMetrics returns a snapshot of all metrics including cache stats.
func GetMetrics() map[string]int64 {
	hits, misses := CacheStats()
	return map[string]int64{
		"fit_score_requests": metrics.FitScoreRequests.Load(),
		"batch_requests":     metrics.BatchRequests.Load(),
		"batch_jobs_scored":  metrics.BatchJobsScored.Load(),
		"skill_gap_requests": metrics.SkillGapRequests.Load(),
		"course_requests":    metrics.CourseRequests.Load(),
		"history_requests":   metrics.HistoryRequests.Load(),
		"profile_requests":   metrics.ProfileRequests.Load(),
		"cache_hits":         hits,
		"cache_misses":       misses,
	}
}

// FormatMetrics returns metrics as a simple text format for HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"fit_score_requests", "batch_requests", "batch_jobs_scored",
		"skill_gap_requests", "course_requests",
		"history_requests", "profile_requests",
		"cache_hits", "cache_misses",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for fitserver tools.
func IncrFitScoreRequests() { metrics.FitScoreRequests.Add(1) }
func IncrBatchRequests()    { metrics.BatchRequests.Add(1) }
func IncrSkillGapRequests() { metrics.SkillGapRequests.Add(1) }
func IncrCourseRequests()   { metrics.CourseRequests.Add(1) }
func IncrHistoryRequests()  { metrics.HistoryRequests.Add(1) }
func IncrProfileRequests()  { metrics.ProfileRequests.Add(1) }

// AddBatchJobsScored counts jobs scored across batch runs.
func AddBatchJobsScored(n int) { metrics.BatchJobsScored.Add(int64(n)) }

// TrackOperation logs a warning if an operation takes longer than threshold.
func TrackOperation(ctx context.Context, name string, fn func(context.Context) error) error {
	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)
	if elapsed > 5*time.Second {
		slog.Warn("slow operation", slog.String("op", name), slog.Duration("elapsed", elapsed))
	}
	return err
}

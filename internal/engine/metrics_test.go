package engine

import (
	"strings"
	"testing"
)

func TestMetrics(t *testing.T) {
	IncrFitScoreRequests()
	IncrBatchRequests()
	AddBatchJobsScored(7)

	m := GetMetrics()
	if m["fit_score_requests"] < 1 {
		t.Errorf("fit_score_requests = %d, want >= 1", m["fit_score_requests"])
	}
	if m["batch_jobs_scored"] < 7 {
		t.Errorf("batch_jobs_scored = %d, want >= 7", m["batch_jobs_scored"])
	}
}

func TestFormatMetrics(t *testing.T) {
	out := FormatMetrics()
	for _, key := range []string{"fit_score_requests", "batch_requests", "skill_gap_requests", "cache_hits"} {
		if !strings.Contains(out, key) {
			t.Errorf("FormatMetrics missing %q:\n%s", key, out)
		}
	}
}

package fit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchAnalyze_Partition(t *testing.T) {
	resume := Resume{Skills: []string{"python", "django"}}
	jobs := []JobPosting{
		{Title: "Python Developer", Requirements: []string{"python", "django"}},
		{Title: "Haskell Developer", Requirements: []string{"haskell", "prolog"}},
		{Title: "Django Developer", Requirements: []string{"django", "python"}},
	}

	scorer := NewScorer(nil, WeightsKeywordHeavy)
	report, err := scorer.BatchAnalyze(context.Background(), resume, jobs, BatchOptions{
		HighFitThreshold: 50,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, report.ID)
	assert.Equal(t, 3, report.Scored)
	assert.Equal(t, 50.0, report.Threshold)

	require.Len(t, report.HighFit, 2)
	require.Len(t, report.LowFit, 1)

	// Input order survives the parallel fan-out.
	assert.Equal(t, "Python Developer", report.HighFit[0].Job.Title)
	assert.Equal(t, "Django Developer", report.HighFit[1].Job.Title)
	assert.Equal(t, "Haskell Developer", report.LowFit[0].Job.Title)

	assert.ElementsMatch(t, []string{"haskell", "prolog"}, report.SkillGaps)
}

func TestBatchAnalyze_DefaultThreshold(t *testing.T) {
	resume := Resume{Skills: []string{"python"}}
	jobs := []JobPosting{{Title: "Role", Requirements: []string{"python", "rust"}}}

	report, err := NewScorer(nil, WeightsBalanced).BatchAnalyze(context.Background(), resume, jobs, BatchOptions{})
	require.NoError(t, err)
	assert.Equal(t, DefaultHighFitThreshold, report.Threshold)
}

func TestBatchAnalyze_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	jobs := make([]JobPosting, 50)
	for i := range jobs {
		jobs[i] = JobPosting{Title: "Role", Requirements: []string{"python"}}
	}

	_, err := NewScorer(nil, WeightsBalanced).BatchAnalyze(ctx, Resume{Skills: []string{"python"}}, jobs, BatchOptions{Workers: 2})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBatchAnalyze_EmptyJobs(t *testing.T) {
	report, err := NewScorer(nil, WeightsBalanced).BatchAnalyze(context.Background(), Resume{Skills: []string{"python"}}, nil, BatchOptions{})
	require.NoError(t, err)
	assert.Equal(t, 0, report.Scored)
	assert.Empty(t, report.HighFit)
	assert.Empty(t, report.LowFit)
	assert.Empty(t, report.SkillGaps)
}

package fit

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Batch defaults.
const (
	DefaultHighFitThreshold = 90.0
	DefaultBatchWorkers     = 8
)

// BatchOptions tunes one batch run. Zero values select the defaults;
// zero Weights keep the scorer's own weights.
type BatchOptions struct {
	Weights          Weights
	HighFitThreshold float64
	GapTopN          int
	Workers          int
}

// BatchReport is the outcome of scoring many jobs against one resume:
// jobs partitioned at the high-fit threshold plus the pooled skill gaps
// of the low-fit set.
type BatchReport struct {
	ID        string      `json:"id"`
	Scored    int         `json:"scored"`
	Threshold float64     `json:"threshold"`
	HighFit   []ScoredJob `json:"high_fit"`
	LowFit    []ScoredJob `json:"low_fit"`
	SkillGaps []string    `json:"skill_gaps"`
}

// BatchAnalyze scores every job against the resume in parallel. Each scoring
// call is pure and independent, so jobs fan out across workers with no
// synchronization beyond the read-only scorer. Input order is preserved in
// the partitions. Returns an error only on context cancellation; individual
// jobs never fail.
func (s *Scorer) BatchAnalyze(ctx context.Context, resume Resume, jobs []JobPosting, opts BatchOptions) (*BatchReport, error) {
	scorer := s.WithWeights(opts.Weights)
	threshold := opts.HighFitThreshold
	if threshold <= 0 {
		threshold = DefaultHighFitThreshold
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = DefaultBatchWorkers
	}

	// Resume-derived inputs are invariant across the batch; compute once.
	prof := scorer.profile(resume)

	results := make([]MatchResult, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, job := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = scorer.scoreProfile(prof, job)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &BatchReport{
		ID:        uuid.NewString(),
		Scored:    len(jobs),
		Threshold: threshold,
		HighFit:   []ScoredJob{},
		LowFit:    []ScoredJob{},
	}
	for i, job := range jobs {
		sj := ScoredJob{Job: job, Result: results[i]}
		if results[i].OverallScore >= threshold {
			report.HighFit = append(report.HighFit, sj)
		} else {
			report.LowFit = append(report.LowFit, sj)
		}
	}
	report.SkillGaps = AnalyzeGaps(resume.Skills, report.LowFit, opts.GapTopN)
	return report, nil
}

package fitserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/anatolykoptev/go_fit/internal/engine"
	"github.com/anatolykoptev/go_fit/internal/engine/fit"
	"github.com/anatolykoptev/go_fit/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// FitBatchInput is the input for fit_batch.
type FitBatchInput struct {
	Resume    fit.Resume       `json:"resume" jsonschema:"Structured resume to score against" validate:"required"`
	Jobs      []fit.JobPosting `json:"jobs" jsonschema:"Job postings, already deduplicated" validate:"required,min=1"`
	Weights   string           `json:"weights,omitempty" jsonschema:"Weight preset: keyword_heavy (default for batch) or balanced"`
	Threshold float64          `json:"threshold,omitempty" jsonschema:"High-fit partition boundary (default 90)"`
	GapTopN   int              `json:"gap_top_n,omitempty" jsonschema:"Max pooled skill gaps (default 10)"`
}

func registerFitBatch(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "fit_batch",
		Description: "Score many job postings against one resume in parallel. Partitions jobs into high-fit and low-fit at a threshold (default 90), then pools deduplicated skill gaps from the low-fit set for course suggestions. Results are cached: scoring is a pure function of its inputs.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input FitBatchInput) (*mcp.CallToolResult, fit.BatchReport, error) {
		engine.IncrBatchRequests()

		if err := toolutil.Validate(input); err != nil {
			return nil, fit.BatchReport{}, err
		}
		preset := input.Weights
		if preset == "" {
			preset = "keyword_heavy"
		}
		weights, err := fit.ResolveWeights(preset)
		if err != nil {
			return nil, fit.BatchReport{}, fmt.Errorf("fit_batch: %w", err)
		}

		if err := batchLimiter.Wait(ctx); err != nil {
			return nil, fit.BatchReport{}, fmt.Errorf("fit_batch: %w", err)
		}

		for i := range input.Jobs {
			input.Jobs[i].Description = engine.CleanDescription(input.Jobs[i].Description)
		}

		raw, err := json.Marshal(input)
		if err != nil {
			return nil, fit.BatchReport{}, fmt.Errorf("fit_batch: marshal input: %w", err)
		}
		cacheKey := engine.CacheKey("fit_batch", preset, string(raw))
		if out, ok := toolutil.CacheLoadJSON[fit.BatchReport](ctx, cacheKey); ok {
			return nil, out, nil
		}

		threshold := input.Threshold
		if threshold <= 0 {
			threshold = engine.Cfg.HighFitThreshold
		}
		topN := input.GapTopN
		if topN <= 0 {
			topN = engine.Cfg.GapTopN
		}

		var report *fit.BatchReport
		err = engine.TrackOperation(ctx, "fit_batch", func(ctx context.Context) error {
			var berr error
			report, berr = scorer.BatchAnalyze(ctx, input.Resume, input.Jobs, fit.BatchOptions{
				Weights:          weights,
				HighFitThreshold: threshold,
				GapTopN:          topN,
				Workers:          engine.Cfg.BatchWorkers,
			})
			return berr
		})
		if err != nil {
			return nil, fit.BatchReport{}, fmt.Errorf("fit_batch: %w", err)
		}
		engine.AddBatchJobsScored(report.Scored)
		slog.Info("batch scored",
			slog.String("report_id", report.ID),
			slog.Int("jobs", report.Scored),
			slog.Int("high_fit", len(report.HighFit)),
			slog.Int("gaps", len(report.SkillGaps)),
		)

		toolutil.CacheStoreJSON(ctx, cacheKey, *report)
		return nil, *report, nil
	})
}

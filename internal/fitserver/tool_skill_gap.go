package fitserver

import (
	"context"
	"fmt"

	"github.com/anatolykoptev/go_fit/internal/engine"
	"github.com/anatolykoptev/go_fit/internal/engine/fit"
	"github.com/anatolykoptev/go_fit/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// SkillGapInput is the input for skill_gap.
type SkillGapInput struct {
	Resume    fit.Resume       `json:"resume" jsonschema:"Structured resume" validate:"required"`
	Jobs      []fit.JobPosting `json:"jobs" jsonschema:"Target job postings" validate:"required,min=1"`
	Threshold float64          `json:"threshold,omitempty" jsonschema:"Jobs scoring below this feed the gap analysis (default 90)"`
	TopN      int              `json:"top_n,omitempty" jsonschema:"Max pooled gaps (default 10)"`
}

// SkillGapOutput is the structured result of skill gap analysis.
type SkillGapOutput struct {
	SkillGaps   []string                `json:"skill_gaps"`
	LowFitCount int                     `json:"low_fit_count"`
	Scored      int                     `json:"scored"`
	Courses     map[string][]fit.Course `json:"courses,omitempty"`
	Summary     string                  `json:"summary"`
}

func registerSkillGap(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "skill_gap",
		Description: "Analyze skill gaps between a resume and one or more target jobs. Scores each job, pools deduplicated missing skills from the low-fit ones (relaxed substring coverage excludes near-misses), and attaches course suggestions from the offline catalog.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input SkillGapInput) (*mcp.CallToolResult, SkillGapOutput, error) {
		engine.IncrSkillGapRequests()

		if err := toolutil.Validate(input); err != nil {
			return nil, SkillGapOutput{}, err
		}

		for i := range input.Jobs {
			input.Jobs[i].Description = engine.CleanDescription(input.Jobs[i].Description)
		}

		threshold := input.Threshold
		if threshold <= 0 {
			threshold = engine.Cfg.HighFitThreshold
		}
		topN := input.TopN
		if topN <= 0 {
			topN = engine.Cfg.GapTopN
		}

		report, err := scorer.BatchAnalyze(ctx, input.Resume, input.Jobs, fit.BatchOptions{
			HighFitThreshold: threshold,
			GapTopN:          topN,
			Workers:          engine.Cfg.BatchWorkers,
		})
		if err != nil {
			return nil, SkillGapOutput{}, fmt.Errorf("skill_gap: %w", err)
		}

		out := SkillGapOutput{
			SkillGaps:   report.SkillGaps,
			LowFitCount: len(report.LowFit),
			Scored:      report.Scored,
			Courses:     fit.SuggestCourses(report.SkillGaps, 0, 0),
			Summary: fmt.Sprintf("Scored %d jobs; %d below %.0f. Top gaps: %d.",
				report.Scored, len(report.LowFit), report.Threshold, len(report.SkillGaps)),
		}
		return nil, out, nil
	})
}

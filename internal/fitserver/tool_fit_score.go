package fitserver

import (
	"context"
	"fmt"

	"github.com/anatolykoptev/go_fit/internal/engine"
	"github.com/anatolykoptev/go_fit/internal/engine/fit"
	"github.com/anatolykoptev/go_fit/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// FitScoreInput is the input for fit_score.
type FitScoreInput struct {
	Resume  fit.Resume     `json:"resume" jsonschema:"Structured resume: skills, professional_summary, work_experience" validate:"required"`
	Job     fit.JobPosting `json:"job" jsonschema:"Job posting: title, description, requirements, skills"`
	Weights string         `json:"weights,omitempty" jsonschema:"Weight preset: balanced (default) or keyword_heavy"`
}

func registerFitScore(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "fit_score",
		Description: "Score one job posting against a structured resume. Combines keyword skill matching (exact, compound-partial, synonym), TF-IDF cosine text similarity, and experience-duration comparison into a weighted 0-100 fit score with a recommendation tier, matched skills and skill gaps.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input FitScoreInput) (*mcp.CallToolResult, fit.MatchResult, error) {
		engine.IncrFitScoreRequests()

		if err := toolutil.Validate(input); err != nil {
			return nil, fit.MatchResult{}, err
		}
		weights, err := fit.ResolveWeights(input.Weights)
		if err != nil {
			return nil, fit.MatchResult{}, fmt.Errorf("fit_score: %w", err)
		}

		input.Job.Description = engine.CleanDescription(input.Job.Description)
		result := scorer.WithWeights(weights).Score(input.Resume, input.Job)
		return nil, result, nil
	})
}

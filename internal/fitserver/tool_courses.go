package fitserver

import (
	"context"

	"github.com/anatolykoptev/go_fit/internal/engine"
	"github.com/anatolykoptev/go_fit/internal/engine/fit"
	"github.com/anatolykoptev/go_fit/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// CourseSuggestInput is the input for course_suggest.
type CourseSuggestInput struct {
	Skills  []string `json:"skills" jsonschema:"Skill gaps to find courses for" validate:"required,min=1"`
	MaxGaps int      `json:"max_gaps,omitempty" jsonschema:"Max gaps to cover (default 5)"`
	PerGap  int      `json:"per_gap,omitempty" jsonschema:"Courses per gap (default 3)"`
}

// CourseSuggestOutput maps each covered skill to its suggested courses.
type CourseSuggestOutput struct {
	Suggestions map[string][]fit.Course `json:"suggestions"`
	Covered     int                     `json:"covered"`
}

func registerCourseSuggest(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "course_suggest",
		Description: "Suggest learning courses for skill gaps from the built-in offline catalog. Skills without catalog entries are skipped; no network lookups.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input CourseSuggestInput) (*mcp.CallToolResult, CourseSuggestOutput, error) {
		engine.IncrCourseRequests()

		if err := toolutil.Validate(input); err != nil {
			return nil, CourseSuggestOutput{}, err
		}

		suggestions := fit.SuggestCourses(input.Skills, input.MaxGaps, input.PerGap)
		return nil, CourseSuggestOutput{
			Suggestions: suggestions,
			Covered:     len(suggestions),
		}, nil
	})
}

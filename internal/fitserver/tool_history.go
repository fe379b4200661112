package fitserver

import (
	"context"
	"fmt"

	"github.com/anatolykoptev/go_fit/internal/engine"
	"github.com/anatolykoptev/go_fit/internal/engine/fit"
	"github.com/anatolykoptev/go_fit/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerHistory(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "fit_history_add",
		Description: "Record a scored job match in the local history database (SQLite, stored under the history directory). Use after fit_score to keep a trail of evaluated postings.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, input fit.HistoryAddInput) (*mcp.CallToolResult, fit.MatchRecord, error) {
		engine.IncrHistoryRequests()

		if err := toolutil.Validate(input); err != nil {
			return nil, fit.MatchRecord{}, err
		}

		rec, err := fit.SaveMatch(ctx, input)
		if err != nil {
			return nil, fit.MatchRecord{}, err
		}
		return nil, *rec, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "fit_history_list",
		Description: "List recorded job matches from the local history database, newest first. Optional tier filter (excellent, good, moderate, limited) and limit (default 50, max 100).",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input fit.HistoryListInput) (*mcp.CallToolResult, fit.HistoryListResult, error) {
		engine.IncrHistoryRequests()

		res, err := fit.ListMatches(ctx, input)
		if err != nil {
			return nil, fit.HistoryListResult{}, fmt.Errorf("fit_history_list: %w", err)
		}
		return nil, *res, nil
	})
}

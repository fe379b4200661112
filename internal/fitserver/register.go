// Package fitserver exposes the fit scoring engine as MCP tools:
// fit_score, fit_batch, skill_gap, course_suggest, fit_history_add,
// fit_history_list, resume_profile_save, resume_profile_get,
// resume_profile_list.
package fitserver

import (
	"golang.org/x/time/rate"

	"github.com/anatolykoptev/go_fit/internal/engine"
	"github.com/anatolykoptev/go_fit/internal/engine/fit"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// scorer is built once at registration from engine config; it is immutable
// and shared by all tool handlers.
var scorer *fit.Scorer

// batchLimiter throttles the batch tool; batch TF-IDF runs are the only
// CPU-heavy entry point.
var batchLimiter *rate.Limiter

// RegisterTools registers all fit scoring tools on the given MCP server.
func RegisterTools(server *mcp.Server) {
	weights := fit.Weights{
		Keyword:    engine.Cfg.WeightKeyword,
		Similarity: engine.Cfg.WeightSimilarity,
		Experience: engine.Cfg.WeightExperience,
	}
	scorer = fit.NewScorer(fit.DefaultSynonymTable(), weights)

	rps := engine.Cfg.BatchRPS
	if rps <= 0 {
		rps = 1
	}
	batchLimiter = rate.NewLimiter(rate.Limit(rps), 2)

	if engine.Cfg.HistoryDir != "" {
		fit.SetHistoryDir(engine.Cfg.HistoryDir)
	}

	registerFitScore(server)
	registerFitBatch(server)
	registerSkillGap(server)
	registerCourseSuggest(server)
	registerHistory(server)
	registerResumeProfile(server)
}

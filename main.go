// go_fit — Resume-to-Job Fit Scoring MCP server.
//
// Exposes fit_score, fit_batch, skill_gap, course_suggest plus history
// and resume profile tools. Runs as HTTP MCP server or stdio transport.
package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/anatolykoptev/go_fit/internal/engine"
	"github.com/anatolykoptev/go_fit/internal/engine/fit"
	"github.com/anatolykoptev/go_fit/internal/fitserver"
	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var version = "dev"

func main() {
	_ = godotenv.Load()
	mcpPort := env.Str("MCP_PORT", "8892")
	initEngine()

	slog.Info("starting go_fit",
		slog.String("port", mcpPort),
	)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "go_fit",
		Version: version,
	}, nil)

	fitserver.RegisterTools(server)
	slog.Info("tools registered", slog.Int("count", 9))

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "go_fit",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 120 * time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

func initEngine() {
	c := engine.Config{
		WeightKeyword:        env.Float("WEIGHT_KEYWORD", 0.5),
		WeightSimilarity:     env.Float("WEIGHT_SIMILARITY", 0.3),
		WeightExperience:     env.Float("WEIGHT_EXPERIENCE", 0.2),
		HighFitThreshold:     env.Float("HIGH_FIT_THRESHOLD", 90),
		GapTopN:              env.Int("GAP_TOP_N", 10),
		BatchWorkers:         env.Int("BATCH_WORKERS", 8),
		BatchRPS:             env.Float("BATCH_RPS", 1),
		CacheMaxEntries:      env.Int("CACHE_MAX_ENTRIES", 1000),
		CacheCleanupInterval: env.Duration("CACHE_CLEANUP_INTERVAL", 300*time.Second),
		DatabaseURL:          env.Str("DATABASE_URL", ""),
		HistoryDir:           env.Str("HISTORY_DIR", ""),
	}
	engine.Init(c)

	// Resume profile store (PostgreSQL, optional)
	if c.DatabaseURL != "" {
		pdb, err := fit.ConnectProfileDB(context.Background(), c.DatabaseURL)
		if err != nil {
			slog.Warn("profile DB init failed", slog.Any("error", err))
		} else {
			fit.SetProfileDB(pdb)
			slog.Info("profile DB initialized")
		}
	}

	cacheTTL := env.Duration("CACHE_TTL", 15*time.Minute)
	engine.InitCache(env.Str("REDIS_URL", ""), cacheTTL, c.CacheMaxEntries, c.CacheCleanupInterval)
}

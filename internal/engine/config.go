package engine

import (
	"time"
)

// Config holds all engine configuration, injected from main.
type Config struct {
	WeightKeyword    float64 // keyword sub-score weight
	WeightSimilarity float64 // TF-IDF similarity sub-score weight
	WeightExperience float64 // experience sub-score weight

	HighFitThreshold float64 // batch partition boundary (default 90)
	GapTopN          int     // max pooled skill gaps (default 10)
	BatchWorkers     int     // parallel scoring goroutines per batch
	BatchRPS         float64 // batch tool rate limit (requests per second)

	CacheMaxEntries      int
	CacheCleanupInterval time.Duration

	DatabaseURL string // resume profile store; empty = disabled
	HistoryDir  string // match history SQLite dir; empty = $HOME/.go_fit
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages (fit, fitserver).
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	cfg = c
	Cfg = &cfg
}

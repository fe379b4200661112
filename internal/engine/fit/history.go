package fit

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// MatchRecord is one scored (resume, job) outcome kept in the local history
// database. The scoring functions themselves stay stateless; history is an
// opt-in side channel written by the tool layer.
type MatchRecord struct {
	ID              int64    `json:"id"`
	Title           string   `json:"title"`
	Company         string   `json:"company,omitempty"`
	URL             string   `json:"url,omitempty"`
	OverallScore    float64  `json:"overall_score"`
	KeywordScore    float64  `json:"keyword_score"`
	SimilarityScore float64  `json:"similarity_score"`
	ExperienceScore float64  `json:"experience_score"`
	Tier            string   `json:"tier"`
	SkillGaps       []string `json:"skill_gaps,omitempty"`
	CreatedAt       string   `json:"created_at"`
}

// HistoryAddInput is the input for fit_history_add.
type HistoryAddInput struct {
	Title   string      `json:"title" validate:"required"`
	Company string      `json:"company,omitempty"`
	URL     string      `json:"url,omitempty"`
	Result  MatchResult `json:"result"`
}

// HistoryListInput is the input for fit_history_list.
type HistoryListInput struct {
	Tier  string `json:"tier,omitempty"`
	Limit int    `json:"limit,omitempty"`
}

// HistoryListResult is the output for list operations.
type HistoryListResult struct {
	Matches []MatchRecord `json:"matches"`
	Total   int           `json:"total"`
}

var (
	historyDB   *sql.DB
	historyOnce sync.Once
	historyErr  error
	historyDir  string // overrides $HOME/.go_fit when set
)

// SetHistoryDir overrides the history database directory. Call before the
// first history operation.
func SetHistoryDir(dir string) { historyDir = dir }

// openHistoryDB opens (or creates) the SQLite history database.
func openHistoryDB() (*sql.DB, error) {
	historyOnce.Do(func() {
		dir := historyDir
		if dir == "" {
			dir = filepath.Join(os.Getenv("HOME"), ".go_fit")
		}
		if err := os.MkdirAll(dir, 0750); err != nil {
			historyErr = fmt.Errorf("history: mkdir %s: %w", dir, err)
			return
		}
		dbPath := filepath.Join(dir, "history.db")
		db, err := sql.Open("sqlite", dbPath)
		if err != nil {
			historyErr = fmt.Errorf("history: open db: %w", err)
			return
		}
		db.SetMaxOpenConns(1) // SQLite: single writer
		if err := initHistorySchema(db); err != nil {
			historyErr = fmt.Errorf("history: init schema: %w", err)
			return
		}
		historyDB = db
	})
	return historyDB, historyErr
}

// initHistorySchema creates the matches table if it doesn't exist.
func initHistorySchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS matches (
		id               INTEGER PRIMARY KEY AUTOINCREMENT,
		title            TEXT NOT NULL,
		company          TEXT,
		url              TEXT,
		overall_score    REAL NOT NULL,
		keyword_score    REAL NOT NULL,
		similarity_score REAL NOT NULL,
		experience_score REAL NOT NULL,
		tier             TEXT NOT NULL,
		skill_gaps       TEXT,
		created_at       TEXT NOT NULL
	)`)
	return err
}

func validTier(s string) bool {
	switch Tier(s) {
	case TierExcellent, TierGood, TierModerate, TierLimited:
		return true
	}
	return false
}

// SaveMatch records a scored job in the history database.
func SaveMatch(_ context.Context, input HistoryAddInput) (*MatchRecord, error) {
	if input.Title == "" {
		return nil, errors.New("fit_history_add: title is required")
	}
	if !validTier(string(input.Result.Tier)) {
		return nil, fmt.Errorf("fit_history_add: invalid tier %q", input.Result.Tier)
	}

	db, err := openHistoryDB()
	if err != nil {
		return nil, err
	}

	gapsJSON, err := json.Marshal(input.Result.SkillGaps)
	if err != nil {
		return nil, fmt.Errorf("fit_history_add: marshal gaps: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	res, err := db.Exec(
		`INSERT INTO matches (title, company, url, overall_score, keyword_score,
		 similarity_score, experience_score, tier, skill_gaps, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		input.Title, input.Company, input.URL,
		input.Result.OverallScore, input.Result.KeywordScore,
		input.Result.SimilarityScore, input.Result.ExperienceScore,
		string(input.Result.Tier), string(gapsJSON), now,
	)
	if err != nil {
		return nil, fmt.Errorf("fit_history_add: insert: %w", err)
	}

	id, _ := res.LastInsertId()
	return &MatchRecord{
		ID:              id,
		Title:           input.Title,
		Company:         input.Company,
		URL:             input.URL,
		OverallScore:    input.Result.OverallScore,
		KeywordScore:    input.Result.KeywordScore,
		SimilarityScore: input.Result.SimilarityScore,
		ExperienceScore: input.Result.ExperienceScore,
		Tier:            string(input.Result.Tier),
		SkillGaps:       input.Result.SkillGaps,
		CreatedAt:       now,
	}, nil
}

// ListMatches returns recorded matches, optionally filtered by tier.
func ListMatches(_ context.Context, input HistoryListInput) (*HistoryListResult, error) {
	db, err := openHistoryDB()
	if err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	const cols = `id, title, company, url, overall_score, keyword_score,
		similarity_score, experience_score, tier, skill_gaps, created_at`

	var rows *sql.Rows
	if input.Tier != "" {
		tier := strings.ToLower(input.Tier)
		if !validTier(tier) {
			return nil, fmt.Errorf("fit_history_list: invalid tier %q", tier)
		}
		rows, err = db.Query(
			`SELECT `+cols+` FROM matches WHERE tier = ? ORDER BY created_at DESC LIMIT ?`,
			tier, limit,
		)
	} else {
		rows, err = db.Query(
			`SELECT `+cols+` FROM matches ORDER BY created_at DESC LIMIT ?`,
			limit,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("fit_history_list: query: %w", err)
	}
	defer rows.Close()

	var matches []MatchRecord
	for rows.Next() {
		var m MatchRecord
		var company, url, gapsJSON sql.NullString
		if err := rows.Scan(&m.ID, &m.Title, &company, &url,
			&m.OverallScore, &m.KeywordScore, &m.SimilarityScore, &m.ExperienceScore,
			&m.Tier, &gapsJSON, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("fit_history_list: scan: %w", err)
		}
		m.Company = company.String
		m.URL = url.String
		if gapsJSON.Valid && gapsJSON.String != "" {
			if err := json.Unmarshal([]byte(gapsJSON.String), &m.SkillGaps); err != nil {
				m.SkillGaps = nil
			}
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fit_history_list: rows: %w", err)
	}

	return &HistoryListResult{Matches: matches, Total: len(matches)}, nil
}

package fit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Package-level singleton, set from main.go.
var profileDB *ProfileDB

// SetProfileDB sets the package-level profile DB instance.
func SetProfileDB(db *ProfileDB) { profileDB = db }

// GetProfileDB returns the package-level profile DB instance (may be nil).
func GetProfileDB() *ProfileDB { return profileDB }

// ProfileDB stores named master resumes in PostgreSQL, mirroring the
// "load once, score many" batch workflow.
type ProfileDB struct {
	pool *pgxpool.Pool
}

const profileSchema = `CREATE TABLE IF NOT EXISTS resume_profiles (
	name       TEXT PRIMARY KEY,
	data       JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// ConnectProfileDB creates a pgx pool and ensures the schema exists.
func ConnectProfileDB(ctx context.Context, databaseURL string) (*ProfileDB, error) {
	if databaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}

	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse DATABASE_URL: %w", err)
	}
	config.MaxConns = 10
	config.MinConns = 1

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create pgx pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	if _, err := pool.Exec(ctx, profileSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("init profile schema: %w", err)
	}

	slog.Info("profile postgres connected", slog.String("addr", config.ConnConfig.Host))
	return &ProfileDB{pool: pool}, nil
}

// Close releases the connection pool.
func (db *ProfileDB) Close() {
	db.pool.Close()
}

// SaveProfile upserts a named master resume.
func (db *ProfileDB) SaveProfile(ctx context.Context, name string, resume Resume) error {
	if name == "" {
		return errors.New("profile name is required")
	}
	data, err := json.Marshal(resume)
	if err != nil {
		return fmt.Errorf("marshal resume: %w", err)
	}
	_, err = db.pool.Exec(ctx,
		`INSERT INTO resume_profiles (name, data, updated_at) VALUES ($1, $2, now())
		 ON CONFLICT (name) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
		name, data,
	)
	if err != nil {
		return fmt.Errorf("save profile %q: %w", name, err)
	}
	return nil
}

// ErrProfileNotFound is returned when no profile exists under the given name.
var ErrProfileNotFound = errors.New("resume profile not found")

// GetProfile loads a named master resume.
func (db *ProfileDB) GetProfile(ctx context.Context, name string) (Resume, error) {
	var data []byte
	err := db.pool.QueryRow(ctx,
		`SELECT data FROM resume_profiles WHERE name = $1`, name,
	).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return Resume{}, fmt.Errorf("%w: %q", ErrProfileNotFound, name)
	}
	if err != nil {
		return Resume{}, fmt.Errorf("get profile %q: %w", name, err)
	}

	var resume Resume
	if err := json.Unmarshal(data, &resume); err != nil {
		return Resume{}, fmt.Errorf("decode profile %q: %w", name, err)
	}
	return resume, nil
}

// ListProfiles returns all stored profile names, most recently updated first.
func (db *ProfileDB) ListProfiles(ctx context.Context) ([]string, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT name FROM resume_profiles ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan profile name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

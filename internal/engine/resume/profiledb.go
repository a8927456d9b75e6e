package resume

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// Package-level singleton, set from main.go. Nil when persistence is
// disabled; analysis then returns profiles inline only.
var profileDB *ProfileDB

// SetProfileDB sets the package-level profile DB instance.
func SetProfileDB(db *ProfileDB) { profileDB = db }

// GetProfileDB returns the package-level profile DB instance (may be nil).
func GetProfileDB() *ProfileDB { return profileDB }

// ProfileDB holds the pgx connection pool for profile storage.
type ProfileDB struct {
	pool *pgxpool.Pool
}

// ConnectProfileDB creates a pgx pool and runs schema migrations.
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

	db := &ProfileDB{pool: pool}
	if err := db.runMigrations(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	slog.Info("profile postgres connected", slog.String("addr", config.ConnConfig.Host))
	return db, nil
}

// Close releases the connection pool.
func (db *ProfileDB) Close() {
	db.pool.Close()
}

func (db *ProfileDB) runMigrations(ctx context.Context) error {
	entries, err := schemaFS.ReadDir("schema")
	if err != nil {
		return fmt.Errorf("read schema dir: %w", err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	for _, entry := range entries {
		sql, err := schemaFS.ReadFile("schema/" + entry.Name())
		if err != nil {
			return fmt.Errorf("read %s: %w", entry.Name(), err)
		}
		if _, err := db.pool.Exec(ctx, string(sql)); err != nil {
			return fmt.Errorf("apply %s: %w", entry.Name(), err)
		}
	}
	return nil
}

// SaveProfile upserts a profile. An empty id generates a fresh one; the
// caller gets back the stored record with id and last-updated stamp set.
func (db *ProfileDB) SaveProfile(ctx context.Context, p Profile, id string) (*StoredProfile, error) {
	if id == "" {
		id = uuid.NewString()
	} else if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("invalid profile id %q: %w", id, err)
	}

	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal profile: %w", err)
	}

	updated := time.Now().UTC()
	_, err = db.pool.Exec(ctx,
		`INSERT INTO profiles (profile_id, data, last_updated)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (profile_id) DO UPDATE
		 SET data = EXCLUDED.data, last_updated = EXCLUDED.last_updated`,
		id, data, updated)
	if err != nil {
		return nil, fmt.Errorf("save profile %s: %w", id, err)
	}

	return &StoredProfile{
		Profile:     p,
		ProfileID:   id,
		LastUpdated: updated.Format(time.RFC3339),
	}, nil
}

// GetProfile retrieves a profile by id. A missing profile is (nil, nil).
func (db *ProfileDB) GetProfile(ctx context.Context, id string) (*StoredProfile, error) {
	var data []byte
	var updated time.Time
	err := db.pool.QueryRow(ctx,
		`SELECT data, last_updated FROM profiles WHERE profile_id = $1`, id).
		Scan(&data, &updated)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get profile %s: %w", id, err)
	}

	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode profile %s: %w", id, err)
	}

	return &StoredProfile{
		Profile:     p,
		ProfileID:   id,
		LastUpdated: updated.UTC().Format(time.RFC3339),
	}, nil
}

// ListProfiles returns all stored profiles, most recently updated first.
func (db *ProfileDB) ListProfiles(ctx context.Context) ([]StoredProfile, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT profile_id, data, last_updated FROM profiles ORDER BY last_updated DESC`)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []StoredProfile
	for rows.Next() {
		var id string
		var data []byte
		var updated time.Time
		if err := rows.Scan(&id, &data, &updated); err != nil {
			return nil, fmt.Errorf("scan profile row: %w", err)
		}
		var p Profile
		if err := json.Unmarshal(data, &p); err != nil {
			slog.Warn("skipping undecodable profile", slog.String("id", id), slog.Any("error", err))
			continue
		}
		profiles = append(profiles, StoredProfile{
			Profile:     p,
			ProfileID:   id,
			LastUpdated: updated.UTC().Format(time.RFC3339),
		})
	}
	if profiles == nil {
		profiles = []StoredProfile{}
	}
	return profiles, rows.Err()
}

// DeleteProfile removes a profile. Returns whether a row was deleted.
func (db *ProfileDB) DeleteProfile(ctx context.Context, id string) (bool, error) {
	tag, err := db.pool.Exec(ctx, `DELETE FROM profiles WHERE profile_id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete profile %s: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}

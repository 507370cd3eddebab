// Package db persists projects and their resolved material lists.
// This is the boundary the engine itself never crosses: resolution is
// pure, and the surrounding application writes results back here.
package db

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"material-quantity/core/types"
	"material-quantity/core/versioning"
	"material-quantity/internal/config"
	"material-quantity/internal/errors"
	"material-quantity/internal/logging"

	"go.uber.org/zap"
)

// Project is a stored construction project. LogicVersion is derived
// from the immutable creation timestamp at read time, never stored
// authority: the date mapping is the source of truth unless an explicit
// version was pinned.
type Project struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	CreatedAt       time.Time `json:"created_at"`
	ExplicitVersion *int      `json:"explicit_version,omitempty"`
	LogicVersion    int       `json:"quantity_logic_version"`
}

// UsesResolver reports whether the quantity resolver may run for this
// project.
func (p Project) UsesResolver() bool {
	return versioning.ShouldUseResolver(p.CreatedAt, p.ExplicitVersion)
}

// Store wraps a pgxpool connection pool.
type Store struct {
	pool *pgxpool.Pool
	log  *zap.Logger
}

// New creates a project store from database configuration.
func New(ctx context.Context, cfg config.DatabaseConfig) (*Store, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, errors.Storage("failed to parse database URL", err)
	}

	poolConfig.MaxConns = cfg.MaxConnections
	if poolConfig.MaxConns == 0 {
		poolConfig.MaxConns = 10
	}
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, errors.Storage("failed to create connection pool", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.Storage("failed to ping database", err)
	}

	return &Store{pool: pool, log: logging.Named("store")}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	s.pool.Close()
}

// schema is applied idempotently on demand. Kept inline rather than in
// migration files: two tables, no versioned evolution yet.
const schema = `
CREATE TABLE IF NOT EXISTS projects (
	id               UUID PRIMARY KEY,
	name             TEXT NOT NULL,
	created_at       TIMESTAMPTZ NOT NULL,
	explicit_version INT
);

CREATE TABLE IF NOT EXISTS material_items (
	id               UUID PRIMARY KEY,
	project_id       UUID NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
	position         INT NOT NULL,
	name             TEXT NOT NULL,
	material_type    TEXT NOT NULL DEFAULT '',
	base_quantity    DOUBLE PRECISION,
	quantity         DOUBLE PRECISION NOT NULL DEFAULT 0,
	unit             TEXT NOT NULL DEFAULT '',
	resolved         BOOLEAN NOT NULL DEFAULT FALSE,
	resolution_trace TEXT NOT NULL DEFAULT '',
	method           TEXT NOT NULL DEFAULT '',
	confidence       TEXT NOT NULL DEFAULT '',
	override         JSONB,
	UNIQUE (project_id, position)
);
`

// EnsureSchema creates the tables if they do not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return errors.Storage("failed to apply schema", err)
	}
	return nil
}

// CreateProject inserts a project. createdAt is the authoritative
// timestamp for the versioning gate and is stored exactly as given.
func (s *Store) CreateProject(ctx context.Context, name string, createdAt time.Time) (Project, error) {
	p := Project{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: createdAt.UTC(),
	}
	p.LogicVersion = versioning.LogicVersion(p.CreatedAt)

	_, err := s.pool.Exec(ctx,
		`INSERT INTO projects (id, name, created_at) VALUES ($1, $2, $3)`,
		p.ID, p.Name, p.CreatedAt)
	if err != nil {
		return Project{}, errors.Storage("failed to insert project", err)
	}

	s.log.Info("project created",
		zap.String("project_id", p.ID.String()),
		zap.Int("quantity_logic_version", p.LogicVersion))
	return p, nil
}

// GetProject loads a project by ID.
func (s *Store) GetProject(ctx context.Context, id uuid.UUID) (Project, error) {
	var p Project
	err := s.pool.QueryRow(ctx,
		`SELECT id, name, created_at, explicit_version FROM projects WHERE id = $1`,
		id).Scan(&p.ID, &p.Name, &p.CreatedAt, &p.ExplicitVersion)
	if err == pgx.ErrNoRows {
		return Project{}, errors.NotFound("project", id.String())
	}
	if err != nil {
		return Project{}, errors.Storage("failed to load project", err)
	}

	p.LogicVersion = versioning.LogicVersion(p.CreatedAt)
	if p.ExplicitVersion != nil {
		p.LogicVersion = *p.ExplicitVersion
	}
	return p, nil
}

// PinLogicVersion records an explicit logic version for a project,
// overriding the date mapping. Used to opt individual legacy projects
// into the resolver deliberately.
func (s *Store) PinLogicVersion(ctx context.Context, id uuid.UUID, version int) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE projects SET explicit_version = $2 WHERE id = $1`, id, version)
	if err != nil {
		return errors.Storage("failed to pin logic version", err)
	}
	if tag.RowsAffected() == 0 {
		return errors.NotFound("project", id.String())
	}
	return nil
}

// SaveMaterials replaces a project's material list with the given
// items, preserving list order.
func (s *Store) SaveMaterials(ctx context.Context, projectID uuid.UUID, items []*types.MaterialItem) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return errors.Storage("failed to begin transaction", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`DELETE FROM material_items WHERE project_id = $1`, projectID); err != nil {
		return errors.Storage("failed to clear material list", err)
	}

	for i, item := range items {
		var override []byte
		if item.Override != nil {
			override, err = json.Marshal(item.Override)
			if err != nil {
				return errors.Storage("failed to encode override", err)
			}
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO material_items
				(id, project_id, position, name, material_type, base_quantity,
				 quantity, unit, resolved, resolution_trace, method, confidence, override)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
			uuid.New(), projectID, i, item.Name, item.Type, item.BaseQuantity,
			item.Quantity, item.Unit, item.Resolved, item.ResolutionTrace,
			string(item.Method), string(item.Confidence), override)
		if err != nil {
			return errors.Storage("failed to insert material item", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return errors.Storage("failed to commit material list", err)
	}

	s.log.Info("material list saved",
		zap.String("project_id", projectID.String()),
		zap.Int("items", len(items)))
	return nil
}

// ListMaterials loads a project's material list in list order.
func (s *Store) ListMaterials(ctx context.Context, projectID uuid.UUID) ([]*types.MaterialItem, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT name, material_type, base_quantity, quantity, unit,
		       resolved, resolution_trace, method, confidence, override
		FROM material_items
		WHERE project_id = $1
		ORDER BY position`, projectID)
	if err != nil {
		return nil, errors.Storage("failed to query material list", err)
	}
	defer rows.Close()

	var items []*types.MaterialItem
	for rows.Next() {
		var (
			item     types.MaterialItem
			method   string
			conf     string
			override []byte
		)
		if err := rows.Scan(&item.Name, &item.Type, &item.BaseQuantity,
			&item.Quantity, &item.Unit, &item.Resolved, &item.ResolutionTrace,
			&method, &conf, &override); err != nil {
			return nil, errors.Storage("failed to scan material item", err)
		}
		item.Method = types.ResolutionMethod(method)
		item.Confidence = types.ConfidenceLevel(conf)
		if len(override) > 0 {
			var ov types.ManualOverride
			if err := json.Unmarshal(override, &ov); err != nil {
				return nil, errors.Storage("failed to decode override", err)
			}
			item.Override = &ov
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Storage("failed to read material list", err)
	}
	return items, nil
}

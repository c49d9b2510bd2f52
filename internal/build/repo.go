package build

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"growhub/pkg/models"
)

// Repo persists saved build configurations (named snapshots of a
// session's selection plus derived totals).
type Repo struct {
	DB *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db}
}

func (r *Repo) Save(ctx context.Context, cfg *models.BuildConfiguration) error {
	if cfg.ID == "" {
		cfg.ID = uuid.NewString()
	}
	if cfg.CreatedAt == "" {
		cfg.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}

	componentsJSON, err := json.Marshal(cfg.Components)
	if err != nil {
		return fmt.Errorf("marshal components for %s: %w", cfg.ID, err)
	}

	_, err = r.DB.ExecContext(ctx, `
		INSERT INTO build_configurations (id, name, components, total_cost, total_power, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			components = excluded.components,
			total_cost = excluded.total_cost,
			total_power = excluded.total_power
	`, cfg.ID, cfg.Name, string(componentsJSON), cfg.TotalCost, cfg.TotalPower, cfg.CreatedAt)
	if err != nil {
		return fmt.Errorf("save configuration %s: %w", cfg.ID, err)
	}
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id string) (*models.BuildConfiguration, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT id, name, components, total_cost, total_power, created_at
		FROM build_configurations
		WHERE id = ?
	`, id)

	cfg, err := scanConfiguration(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan configuration: %w", err)
	}
	return cfg, nil
}

func (r *Repo) List(ctx context.Context) ([]models.BuildConfiguration, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, components, total_cost, total_power, created_at
		FROM build_configurations
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list configurations: %w", err)
	}
	defer rows.Close()

	var out []models.BuildConfiguration
	for rows.Next() {
		cfg, err := scanConfiguration(rows)
		if err != nil {
			return nil, fmt.Errorf("scan configuration row: %w", err)
		}
		out = append(out, *cfg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}

func (r *Repo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `
		DELETE FROM build_configurations WHERE id = ?
	`, id)
	if err != nil {
		return false, fmt.Errorf("delete configuration %s: %w", id, err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanConfiguration(row rowScanner) (*models.BuildConfiguration, error) {
	var (
		cfg            models.BuildConfiguration
		componentsJSON string
	)
	if err := row.Scan(&cfg.ID, &cfg.Name, &componentsJSON, &cfg.TotalCost, &cfg.TotalPower, &cfg.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(componentsJSON), &cfg.Components); err != nil {
		return nil, fmt.Errorf("decode components for %s: %w", cfg.ID, err)
	}
	return &cfg, nil
}

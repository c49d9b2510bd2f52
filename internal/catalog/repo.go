package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"growhub/pkg/models"
)

type Repo struct {
	DB *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db}
}

type ListQuery struct {
	Q        string // keyword search in name/brand
	Category string
	Limit    int
	Offset   int
}

const componentColumns = `
	id, name, brand, category, price, power_consumption, description,
	image_url, affiliate_url, specifications, compatibility, dimensions,
	weight, rating, review_count, is_custom
`

// Create inserts a component. An empty ID gets a generated UUID; callers
// that need the custom-<millis> convention for user-authored entries set
// the ID themselves.
func (r *Repo) Create(ctx context.Context, comp *models.BuildComponent) error {
	if comp.ID == "" {
		comp.ID = uuid.NewString()
	}

	specsJSON, compatJSON, dimsJSON, err := encodeJSONFields(comp)
	if err != nil {
		return err
	}

	_, err = r.DB.ExecContext(ctx, `
		INSERT INTO build_components (`+componentColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		comp.ID, comp.Name, comp.Brand, comp.Category, comp.Price,
		comp.PowerConsumption, nullString(comp.Description),
		nullString(comp.ImageURL), nullString(comp.AffiliateURL),
		specsJSON, compatJSON, dimsJSON,
		comp.Weight, comp.Rating, comp.ReviewCount, comp.IsCustom,
	)
	if err != nil {
		return fmt.Errorf("insert component %s: %w", comp.ID, err)
	}
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id string) (*models.BuildComponent, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT `+componentColumns+`
		FROM build_components
		WHERE id = ?
	`, id)

	comp, err := scanComponent(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan getByID: %w", err)
	}
	return comp, nil
}

func (r *Repo) Count(ctx context.Context, q ListQuery) (int, error) {
	sqlStr, args := buildListSQL(q, true)
	var total int
	if err := r.DB.QueryRowContext(ctx, sqlStr, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count scan: %w", err)
	}
	return total, nil
}

func (r *Repo) List(ctx context.Context, q ListQuery) ([]models.BuildComponent, error) {
	sqlStr, args := buildListSQL(q, false)

	rows, err := r.DB.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("list query: %w", err)
	}
	defer rows.Close()

	out := make([]models.BuildComponent, 0, q.Limit)
	for rows.Next() {
		comp, err := scanComponent(rows)
		if err != nil {
			return nil, fmt.Errorf("list scan: %w", err)
		}
		out = append(out, *comp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}

func (r *Repo) Update(ctx context.Context, comp *models.BuildComponent) (bool, error) {
	specsJSON, compatJSON, dimsJSON, err := encodeJSONFields(comp)
	if err != nil {
		return false, err
	}

	res, err := r.DB.ExecContext(ctx, `
		UPDATE build_components SET
			name = ?, brand = ?, category = ?, price = ?,
			power_consumption = ?, description = ?, image_url = ?,
			affiliate_url = ?, specifications = ?, compatibility = ?,
			dimensions = ?, weight = ?, rating = ?, review_count = ?,
			is_custom = ?
		WHERE id = ?
	`,
		comp.Name, comp.Brand, comp.Category, comp.Price,
		comp.PowerConsumption, nullString(comp.Description),
		nullString(comp.ImageURL), nullString(comp.AffiliateURL),
		specsJSON, compatJSON, dimsJSON,
		comp.Weight, comp.Rating, comp.ReviewCount, comp.IsCustom,
		comp.ID,
	)
	if err != nil {
		return false, fmt.Errorf("update component %s: %w", comp.ID, err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *Repo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `
		DELETE FROM build_components WHERE id = ?
	`, id)
	if err != nil {
		return false, fmt.Errorf("delete component %s: %w", id, err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// CategoryCounts returns the number of catalog entries per category,
// computed over the whole catalog. Drives the category navigation badges.
func (r *Repo) CategoryCounts(ctx context.Context) (map[string]int, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT category, COUNT(*) FROM build_components GROUP BY category
	`)
	if err != nil {
		return nil, fmt.Errorf("category counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var cat string
		var n int
		if err := rows.Scan(&cat, &n); err != nil {
			return nil, fmt.Errorf("category counts scan: %w", err)
		}
		counts[cat] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return counts, nil
}

// buildListSQL builds either COUNT(*) or the SELECT list.
func buildListSQL(q ListQuery, countOnly bool) (string, []any) {
	baseSelect := `SELECT ` + componentColumns + ` FROM build_components`
	if countOnly {
		baseSelect = `SELECT COUNT(*) FROM build_components`
	}

	var where []string
	var args []any

	if strings.TrimSpace(q.Q) != "" {
		where = append(where, "(LOWER(name) LIKE ? OR LOWER(brand) LIKE ?)")
		kw := "%" + strings.ToLower(strings.TrimSpace(q.Q)) + "%"
		args = append(args, kw, kw)
	}

	if strings.TrimSpace(q.Category) != "" {
		where = append(where, "category = ?")
		args = append(args, strings.TrimSpace(q.Category))
	}

	sqlStr := baseSelect
	if len(where) > 0 {
		sqlStr += " WHERE " + strings.Join(where, " AND ")
	}

	if !countOnly {
		sqlStr += " ORDER BY name ASC LIMIT ? OFFSET ?"
		limit := q.Limit
		if limit <= 0 || limit > 100 {
			limit = 20
		}
		offset := q.Offset
		if offset < 0 {
			offset = 0
		}
		args = append(args, limit, offset)
	}

	return sqlStr, args
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanComponent(row rowScanner) (*models.BuildComponent, error) {
	var (
		comp        models.BuildComponent
		description sql.NullString
		imageURL    sql.NullString
		affiliate   sql.NullString
		specsJSON   sql.NullString
		compatJSON  sql.NullString
		dimsJSON    sql.NullString
	)

	if err := row.Scan(
		&comp.ID, &comp.Name, &comp.Brand, &comp.Category, &comp.Price,
		&comp.PowerConsumption, &description, &imageURL, &affiliate,
		&specsJSON, &compatJSON, &dimsJSON,
		&comp.Weight, &comp.Rating, &comp.ReviewCount, &comp.IsCustom,
	); err != nil {
		return nil, err
	}

	comp.Description = description.String
	comp.ImageURL = imageURL.String
	comp.AffiliateURL = affiliate.String

	if specsJSON.Valid && specsJSON.String != "" {
		if err := json.Unmarshal([]byte(specsJSON.String), &comp.Specifications); err != nil {
			return nil, fmt.Errorf("decode specifications for %s: %w", comp.ID, err)
		}
	}
	if compatJSON.Valid && compatJSON.String != "" {
		if err := json.Unmarshal([]byte(compatJSON.String), &comp.Compatibility); err != nil {
			return nil, fmt.Errorf("decode compatibility for %s: %w", comp.ID, err)
		}
	}
	if dimsJSON.Valid && dimsJSON.String != "" {
		if err := json.Unmarshal([]byte(dimsJSON.String), &comp.Dimensions); err != nil {
			return nil, fmt.Errorf("decode dimensions for %s: %w", comp.ID, err)
		}
	}

	return &comp, nil
}

func encodeJSONFields(comp *models.BuildComponent) (specs, compat, dims string, err error) {
	specsB, err := json.Marshal(comp.Specifications)
	if err != nil {
		return "", "", "", fmt.Errorf("marshal specifications for %s: %w", comp.ID, err)
	}
	compatB, err := json.Marshal(comp.Compatibility)
	if err != nil {
		return "", "", "", fmt.Errorf("marshal compatibility for %s: %w", comp.ID, err)
	}
	dimsB, err := json.Marshal(comp.Dimensions)
	if err != nil {
		return "", "", "", fmt.Errorf("marshal dimensions for %s: %w", comp.ID, err)
	}
	return string(specsB), string(compatB), string(dimsB), nil
}

func nullString(raw string) sql.NullString {
	if raw == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: raw, Valid: true}
}

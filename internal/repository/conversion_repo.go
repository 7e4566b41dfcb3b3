package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/puchie21/curren/internal/models"
)

type ConversionRepository struct {
	db *sql.DB
}

func NewConversionRepository(db *sql.DB) *ConversionRepository {
	return &ConversionRepository{db: db}
}

var _ Conversions = (*ConversionRepository)(nil)

const (
	insertConversionSQL = `INSERT INTO conversions (user_id, from_code, to_code, amount, result, created_at) VALUES (?, ?, ?, ?, ?, ?)`

	selectConversionsByUserSQL = `SELECT id, user_id, from_code, to_code, amount, result, created_at FROM conversions WHERE user_id = ? ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`

	countConversionsByUserSQL = `SELECT COUNT(*) FROM conversions WHERE user_id = ?`
)

// Save inserts a conversion and returns it with the assigned ID.
// CreatedAt is set to now (UTC) when zero.
func (r *ConversionRepository) Save(ctx context.Context, c models.Conversion) (models.Conversion, error) {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	} else {
		c.CreatedAt = c.CreatedAt.UTC()
	}

	res, err := r.db.ExecContext(ctx, insertConversionSQL,
		c.UserID, c.FromCode, c.ToCode, c.Amount, c.Result,
		c.CreatedAt.Format("2006-01-02 15:04:05"))
	if err != nil {
		return models.Conversion{}, fmt.Errorf("insert conversion for user %d: %w", c.UserID, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return models.Conversion{}, fmt.Errorf("get last insert id for conversion: %w", err)
	}
	c.ID = int(lastID)
	return c, nil
}

// ListByUser returns the user's conversions, newest first.
func (r *ConversionRepository) ListByUser(ctx context.Context, userID, limit, offset int) ([]models.Conversion, error) {
	rows, err := r.db.QueryContext(ctx, selectConversionsByUserSQL, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("select conversions for user %d: %w", userID, err)
	}
	defer rows.Close()

	out := make([]models.Conversion, 0, limit)
	for rows.Next() {
		var c models.Conversion
		if err := rows.Scan(&c.ID, &c.UserID, &c.FromCode, &c.ToCode, &c.Amount, &c.Result, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan conversion row: %w", err)
		}
		c.CreatedAt = c.CreatedAt.UTC()
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate conversion rows: %w", err)
	}
	return out, nil
}

// CountByUser returns the total number of conversions stored for the user.
func (r *ConversionRepository) CountByUser(ctx context.Context, userID int) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, countConversionsByUserSQL, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count conversions for user %d: %w", userID, err)
	}
	return n, nil
}

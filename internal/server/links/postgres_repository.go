package links

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/linkhub/internal/common"
	"github.com/dmitrijs2005/linkhub/internal/dbx"
	"github.com/google/uuid"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) Create(ctx context.Context, link *Link) (*Link, error) {

	if link.ID == "" {
		link.ID = uuid.NewString()
	}

	query :=
		`INSERT INTO links (id, user_id, title, url, sort_order, visible)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		link.ID, link.UserID, link.Title, link.URL, link.SortOrder, link.Visible).
		Scan(&link.CreatedAt, &link.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return link, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Link, error) {
	query :=
		`SELECT id, user_id, title, url, sort_order, visible, created_at, updated_at FROM links
		 WHERE id = $1
		 `

	link := &Link{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&link.ID, &link.UserID, &link.Title, &link.URL, &link.SortOrder,
		&link.Visible, &link.CreatedAt, &link.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return link, nil
}

func (r *PostgresRepository) list(ctx context.Context, query string, userID string) ([]*Link, error) {
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	result := make([]*Link, 0)
	for rows.Next() {
		link := &Link{}
		if err := rows.Scan(
			&link.ID, &link.UserID, &link.Title, &link.URL, &link.SortOrder,
			&link.Visible, &link.CreatedAt, &link.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		result = append(result, link)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*Link, error) {
	query :=
		`SELECT id, user_id, title, url, sort_order, visible, created_at, updated_at FROM links
		 WHERE user_id = $1
		 ORDER BY sort_order, created_at
		 `
	return r.list(ctx, query, userID)
}

func (r *PostgresRepository) ListVisibleByUser(ctx context.Context, userID string) ([]*Link, error) {
	query :=
		`SELECT id, user_id, title, url, sort_order, visible, created_at, updated_at FROM links
		 WHERE user_id = $1 AND visible
		 ORDER BY sort_order, created_at
		 `
	return r.list(ctx, query, userID)
}

func (r *PostgresRepository) MaxOrder(ctx context.Context, userID string) (int, error) {
	query :=
		`SELECT COALESCE(MAX(sort_order), -1) FROM links
		 WHERE user_id = $1
		 `

	var max int
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&max); err != nil {
		return 0, fmt.Errorf("error performing sql request: %w", err)
	}

	return max, nil
}

func (r *PostgresRepository) Update(ctx context.Context, link *Link) error {
	query :=
		`UPDATE links SET title = $1, url = $2, sort_order = $3, visible = $4, updated_at = $5
		 WHERE id = $6
		 `

	res, err := r.db.ExecContext(ctx, query,
		link.Title, link.URL, link.SortOrder, link.Visible, link.UpdatedAt, link.ID)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading affected rows: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}

// ReplaceOrders runs all order updates inside one transaction so a concurrent
// reader never observes a half-applied sequence and a stray id aborts the
// whole batch.
func (r *PostgresRepository) ReplaceOrders(ctx context.Context, userID string, ids []string, updatedAt time.Time) error {
	query :=
		`UPDATE links SET sort_order = $1, updated_at = $2
		 WHERE id = $3 AND user_id = $4
		 `

	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for i, id := range ids {
			res, err := tx.ExecContext(ctx, query, i, updatedAt, id, userID)
			if err != nil {
				return fmt.Errorf("error performing sql request: %w", err)
			}
			affected, err := res.RowsAffected()
			if err != nil {
				return fmt.Errorf("error reading affected rows: %w", err)
			}
			if affected == 0 {
				return common.ErrorForbidden
			}
		}
		return nil
	})
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query :=
		`DELETE FROM links
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading affected rows: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}

package audit

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository implements Repository using pgxpool.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new Repository backed by the given connection pool.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &PostgresRepository{pool: pool}
}

// Record inserts a submission event.
func (r *PostgresRepository) Record(ctx context.Context, e *Event) error {
	query := `
		INSERT INTO submission_events (request_id, form_type, collection, outcome, http_status, cms_id, client_ip)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query,
		e.RequestID,
		e.FormType,
		e.Collection,
		e.Outcome,
		e.HTTPStatus,
		e.CMSID,
		e.ClientIP,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting submission event: %w", err)
	}

	return nil
}

// ListRecent returns the newest events first.
func (r *PostgresRepository) ListRecent(ctx context.Context, limit int) ([]Event, error) {
	query := `
		SELECT id, request_id, form_type, collection, outcome, http_status, cms_id, client_ip, created_at
		FROM submission_events
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.pool.Query(ctx, query, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("listing submission events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		err := rows.Scan(&e.ID, &e.RequestID, &e.FormType, &e.Collection, &e.Outcome,
			&e.HTTPStatus, &e.CMSID, &e.ClientIP, &e.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scanning submission event row: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating submission event rows: %w", err)
	}

	if events == nil {
		events = []Event{}
	}

	return events, nil
}

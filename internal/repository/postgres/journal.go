package postgres

import (
	"context"
	"errors"
	"fmt"

	"productboard-gitlab-relay/internal/entities"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	insertDeliveryQuery = `INSERT INTO deliveries (kind, feature_id, issue_id, issue_state, outcome, error)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, created_at`
	recentDeliveriesQuery = `SELECT id, kind, feature_id, issue_id, issue_state, outcome, error, created_at
FROM deliveries
ORDER BY created_at DESC, id DESC
LIMIT $1`
)

// RecordDelivery appends a relay attempt to the journal.
func (p *Postgres) RecordDelivery(ctx context.Context, d entities.Delivery) error {
	db, err := p.pool()
	if err != nil {
		return fmt.Errorf("record delivery: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.cfg.QueryTimeout)
	defer cancel()

	err = db.QueryRow(ctx, insertDeliveryQuery,
		d.Kind, d.FeatureID, d.IssueID, d.IssueState, d.Outcome, d.Error,
	).Scan(&d.ID, &d.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			p.log.Errorw("failed to record delivery", "error", err, "code", pgErr.Code, "kind", d.Kind)
		}
		return fmt.Errorf("record delivery: %w", err)
	}

	p.log.Debugw("delivery recorded", "id", d.ID, "kind", d.Kind, "outcome", d.Outcome)
	return nil
}

// RecentDeliveries returns the newest deliveries first.
func (p *Postgres) RecentDeliveries(ctx context.Context, limit int) ([]entities.Delivery, error) {
	db, err := p.pool()
	if err != nil {
		return nil, fmt.Errorf("recent deliveries: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.cfg.QueryTimeout)
	defer cancel()

	rows, err := db.Query(ctx, recentDeliveriesQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("recent deliveries: %w", err)
	}
	defer rows.Close()

	res := make([]entities.Delivery, 0)
	for rows.Next() {
		var d entities.Delivery
		if err := rows.Scan(&d.ID, &d.Kind, &d.FeatureID, &d.IssueID, &d.IssueState, &d.Outcome, &d.Error, &d.CreatedAt); err != nil {
			p.log.Errorw("failed to scan delivery", "error", err)
			return nil, fmt.Errorf("scan delivery: %w", err)
		}
		res = append(res, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate deliveries: %w", err)
	}
	return res, nil
}

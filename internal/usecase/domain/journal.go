package domain

import (
	"context"

	"productboard-gitlab-relay/internal/entities"
)

const (
	defaultDeliveriesLimit = 20
	maxDeliveriesLimit     = 200
)

// Deliveries returns recent journal entries, newest first.
func (u *Usecase) Deliveries(ctx context.Context, limit int) ([]entities.Delivery, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	switch {
	case limit <= 0:
		limit = defaultDeliveriesLimit
	case limit > maxDeliveriesLimit:
		limit = maxDeliveriesLimit
	}
	return u.repo.RecentDeliveries(ctx, limit)
}

// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"productboard-gitlab-relay/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// JournalInterface records relay attempts. It is an audit trail only and is
// never read back to match issues or deduplicate webhooks.
type JournalInterface interface {
	RecordDelivery(ctx context.Context, d entities.Delivery) error
	RecentDeliveries(ctx context.Context, limit int) ([]entities.Delivery, error)
}

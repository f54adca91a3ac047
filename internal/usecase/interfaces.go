package usecase

import (
	"context"

	"productboard-gitlab-relay/internal/entities"
)

// FeaturePushUsecaseInterface handles Productboard plugin button events.
type FeaturePushUsecaseInterface interface {
	// HandlePluginEvent returns the connection to acknowledge with. Push
	// events start the issue creation chain in the background.
	HandlePluginEvent(ctx context.Context, ev entities.PluginEvent) (entities.Connection, error)
}

// StatusSyncUsecaseInterface handles GitLab issue webhooks.
type StatusSyncUsecaseInterface interface {
	SyncIssueStatus(ctx context.Context, ev entities.IssueEvent) error
}

// JournalUsecaseInterface exposes the delivery journal.
type JournalUsecaseInterface interface {
	Deliveries(ctx context.Context, limit int) ([]entities.Delivery, error)
}

// LifecycleUsecaseInterface lets the process drain background work on shutdown.
type LifecycleUsecaseInterface interface {
	Wait(ctx context.Context) error
}

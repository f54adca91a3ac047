// Package repository provides factory for repositories.
package repository

import (
	"context"
	"fmt"

	"productboard-gitlab-relay/config"
	"productboard-gitlab-relay/internal/repository/nop"
	"productboard-gitlab-relay/internal/repository/postgres"

	"go.uber.org/zap"
)

// Repository aggregates all persistence interfaces.
type Repository interface {
	LifecycleInterface
	JournalInterface
}

// New constructs repository backend by name.
func New(ctx context.Context, name string, log *zap.SugaredLogger, cfg *config.Config) (Repository, error) {
	switch name {
	case config.JournalPostgres:
		return postgres.New(ctx, log, cfg), nil
	case config.JournalNone, "":
		return nop.New(), nil
	default:
		return nil, fmt.Errorf("unknown repo backend: %s", name)
	}
}

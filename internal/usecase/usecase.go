package usecase

import (
	"context"
	"time"

	"productboard-gitlab-relay/internal/gateway"
	"productboard-gitlab-relay/internal/repository"
	"productboard-gitlab-relay/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	FeaturePushUsecaseInterface
	StatusSyncUsecaseInterface
	JournalUsecaseInterface
	LifecycleUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	gw gateway.Gateway,
	repo repository.Repository,
	timeout time.Duration,
) InterfaceUsecase {
	return domain.New(log, ctx, gw, repo, timeout)
}

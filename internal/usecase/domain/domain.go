// Package domain contains the relay between Productboard and GitLab.
package domain

import (
	"context"
	"sync"
	"time"

	"productboard-gitlab-relay/internal/entities"
	"productboard-gitlab-relay/internal/gateway"
	"productboard-gitlab-relay/internal/repository"

	"go.uber.org/zap"
)

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx     context.Context
	log     *zap.SugaredLogger
	gw      gateway.Gateway
	repo    repository.Repository
	timeout time.Duration

	mu       sync.Mutex
	draining bool
	inflight sync.WaitGroup
}

// New constructs a new usecase layer with its dependencies. ctx is the
// process context; background chains inherit its values but not its
// cancellation.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	gw gateway.Gateway,
	repo repository.Repository,
	timeout time.Duration,
) *Usecase {
	return &Usecase{
		ctx:     ctx,
		log:     log.Named("relay"),
		gw:      gw,
		repo:    repo,
		timeout: timeout,
	}
}

// withTimeout bounds ctx when timeout is positive.
func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

// detached returns a context that outlives the inbound request and process shutdown signal.
func (u *Usecase) detached() context.Context {
	return context.WithoutCancel(u.ctx)
}

// dispatch runs task in the background. Its outcome cannot reach the
// caller that triggered it; tasks report through logs and the journal.
// Once Wait has been called new tasks are dropped.
func (u *Usecase) dispatch(name string, task func(ctx context.Context)) {
	u.mu.Lock()
	if u.draining {
		u.mu.Unlock()
		u.log.Warnw("shutting down, background task dropped", "task", name)
		return
	}
	u.inflight.Add(1)
	u.mu.Unlock()

	go func() {
		defer u.inflight.Done()
		defer func() {
			if r := recover(); r != nil {
				u.log.Errorw("background task panicked", "task", name, "panic", r)
			}
		}()
		task(u.detached())
	}()
}

// Wait stops accepting background chains and blocks until the running ones
// finish or ctx is done.
func (u *Usecase) Wait(ctx context.Context) error {
	u.mu.Lock()
	u.draining = true
	u.mu.Unlock()

	done := make(chan struct{})
	go func() {
		u.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// record journals a delivery. Failures are logged and otherwise ignored.
func (u *Usecase) record(d entities.Delivery) {
	ctx, cancel := withTimeout(u.detached(), u.timeout)
	defer cancel()

	if err := u.repo.RecordDelivery(ctx, d); err != nil {
		u.log.Warnw("failed to record delivery", "error", err, "kind", d.Kind, "outcome", d.Outcome)
	}
}

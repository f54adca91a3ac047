package postgres

import (
	"context"
	"testing"

	"productboard-gitlab-relay/config"
	"productboard-gitlab-relay/internal/entities"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestJournalCallsBeforeStartOrAfterStop(t *testing.T) {
	ctx := context.Background()
	repo := New(ctx, zap.NewNop().Sugar(), &config.Config{})

	err := repo.RecordDelivery(ctx, entities.Delivery{Kind: entities.KindFeaturePush})
	require.ErrorIs(t, err, ErrNotStarted)

	_, err = repo.RecentDeliveries(ctx, 10)
	require.ErrorIs(t, err, ErrNotStarted)

	require.NoError(t, repo.OnStop(ctx))
	require.ErrorIs(t, repo.RecordDelivery(ctx, entities.Delivery{}), ErrNotStarted)
}

package gateway

import (
	"context"

	"productboard-gitlab-relay/config"
	"productboard-gitlab-relay/internal/entities"
	"productboard-gitlab-relay/internal/gateway/gitlab"
	"productboard-gitlab-relay/internal/gateway/productboard"

	"go.uber.org/zap"
)

// Gateway aggregates all outbound interfaces.
type Gateway interface {
	ProductboardInterface
	GitLabInterface
}

// Clients joins the Productboard and GitLab clients behind Gateway.
type Clients struct {
	PB     ProductboardInterface
	GitLab GitLabInterface
}

var _ Gateway = Clients{}

// New builds both API clients from the read-only configuration.
func New(log *zap.SugaredLogger, cfg *config.Config) Gateway {
	return Clients{
		PB:     productboard.New(log, cfg),
		GitLab: gitlab.New(log, cfg),
	}
}

// FetchFeature delegates to Productboard.
func (c Clients) FetchFeature(ctx context.Context, featureID string) (*entities.Feature, error) {
	return c.PB.FetchFeature(ctx, featureID)
}

// WriteConnection delegates to Productboard.
func (c Clients) WriteConnection(ctx context.Context, featureID string, conn entities.Connection) error {
	return c.PB.WriteConnection(ctx, featureID, conn)
}

// ListConnections delegates to Productboard.
func (c Clients) ListConnections(ctx context.Context) ([]entities.FeatureConnection, error) {
	return c.PB.ListConnections(ctx)
}

// CreateIssue delegates to GitLab.
func (c Clients) CreateIssue(ctx context.Context, title, description string) (*entities.Issue, error) {
	return c.GitLab.CreateIssue(ctx, title, description)
}

// Package gateway contains the outbound clients for Productboard and GitLab.
package gateway

import (
	"context"

	"productboard-gitlab-relay/internal/entities"
)

// ProductboardInterface exposes the Productboard calls the relay makes.
type ProductboardInterface interface {
	FetchFeature(ctx context.Context, featureID string) (*entities.Feature, error)
	WriteConnection(ctx context.Context, featureID string, conn entities.Connection) error
	ListConnections(ctx context.Context) ([]entities.FeatureConnection, error)
}

// GitLabInterface exposes the GitLab calls the relay makes.
type GitLabInterface interface {
	CreateIssue(ctx context.Context, title, description string) (*entities.Issue, error)
}

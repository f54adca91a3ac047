// Package productboard talks to the Productboard features and plugin integration APIs.
package productboard

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"productboard-gitlab-relay/config"
	"productboard-gitlab-relay/internal/dto"
	"productboard-gitlab-relay/internal/entities"
	"productboard-gitlab-relay/internal/gateway/upstream"
	"productboard-gitlab-relay/internal/mapper"

	"go.uber.org/zap"
)

// Client is a Productboard API client bound to one plugin integration.
type Client struct {
	log           *zap.SugaredLogger
	up            *upstream.Client
	baseURL       string
	integrationID string
	authorization string
	version       string
	maxPages      int
}

// New creates a Productboard client from configuration.
func New(log *zap.SugaredLogger, cfg *config.Config) *Client {
	maxPages := cfg.PB.MaxPages
	if maxPages <= 0 {
		maxPages = 1
	}
	return &Client{
		log:           log.Named("gateway.productboard"),
		up:            upstream.New("productboard", cfg.Upstream.Timeout),
		baseURL:       cfg.PB.BaseURL,
		integrationID: cfg.PB.IntegrationID,
		authorization: cfg.PB.Authorization(),
		version:       cfg.PB.APIVersion,
		maxPages:      maxPages,
	}
}

func (c *Client) headers() map[string]string {
	return map[string]string{
		"X-Version":     c.version,
		"Authorization": c.authorization,
	}
}

func (c *Client) connectionsURL() string {
	return fmt.Sprintf("%s/plugin-integrations/%s/connections", c.baseURL, url.PathEscape(c.integrationID))
}

// FetchFeature reads a feature by id.
func (c *Client) FetchFeature(ctx context.Context, featureID string) (*entities.Feature, error) {
	var resp dto.FeatureEnvelope
	err := c.up.Do(ctx, "get feature", upstream.Request{
		Method:  http.MethodGet,
		URL:     fmt.Sprintf("%s/features/%s", c.baseURL, url.PathEscape(featureID)),
		Headers: c.headers(),
	}, &resp)
	if err != nil {
		return nil, err
	}

	feature := mapper.FromFeature(resp.Data)
	if feature.ID == "" {
		feature.ID = featureID
	}
	c.log.Debugw("feature fetched", "feature_id", featureID, "name", feature.Name)
	return &feature, nil
}

// WriteConnection replaces the whole connection of a feature.
func (c *Client) WriteConnection(ctx context.Context, featureID string, conn entities.Connection) error {
	err := c.up.Do(ctx, "put connection", upstream.Request{
		Method:  http.MethodPut,
		URL:     c.connectionsURL() + "/" + url.PathEscape(featureID),
		Headers: c.headers(),
		Body:    mapper.ToConnectionEnvelope(conn),
	}, nil)
	if err != nil {
		return err
	}
	c.log.Debugw("connection written", "feature_id", featureID, "state", conn.State, "label", conn.Label)
	return nil
}

// ListConnections returns every connection of the integration, following
// links.next until the last page or the configured page cap.
func (c *Client) ListConnections(ctx context.Context) ([]entities.FeatureConnection, error) {
	res := make([]entities.FeatureConnection, 0)
	next := c.connectionsURL()

	for page := 0; next != "" && page < c.maxPages; page++ {
		var resp dto.ConnectionList
		err := c.up.Do(ctx, "list connections", upstream.Request{
			Method:  http.MethodGet,
			URL:     next,
			Headers: c.headers(),
		}, &resp)
		if err != nil {
			return nil, err
		}
		res = append(res, mapper.FromConnectionList(resp)...)
		next = c.absolute(resp.Links.Next)
	}

	if next != "" {
		c.log.Warnw("connection listing truncated", "max_pages", c.maxPages, "listed", len(res))
	}
	return res, nil
}

func (c *Client) absolute(link string) string {
	if link == "" || strings.HasPrefix(link, "http://") || strings.HasPrefix(link, "https://") {
		return link
	}
	return c.baseURL + "/" + strings.TrimLeft(link, "/")
}

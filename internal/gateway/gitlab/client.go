// Package gitlab creates issues in a GitLab project.
package gitlab

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"productboard-gitlab-relay/config"
	"productboard-gitlab-relay/internal/dto"
	"productboard-gitlab-relay/internal/entities"
	"productboard-gitlab-relay/internal/gateway/upstream"
	"productboard-gitlab-relay/internal/mapper"

	"go.uber.org/zap"
)

// Client is a GitLab API client bound to one project.
type Client struct {
	log       *zap.SugaredLogger
	up        *upstream.Client
	issuesURL string
	token     string
}

// New creates a GitLab client from configuration. The project id may be
// numeric or a namespaced path.
func New(log *zap.SugaredLogger, cfg *config.Config) *Client {
	return &Client{
		log:       log.Named("gateway.gitlab"),
		up:        upstream.New("gitlab", cfg.Upstream.Timeout),
		issuesURL: fmt.Sprintf("%s/projects/%s/issues", cfg.GitLab.BaseURL, url.PathEscape(cfg.GitLab.ProjectID)),
		token:     cfg.GitLab.Token,
	}
}

// CreateIssue opens a new issue.
func (c *Client) CreateIssue(ctx context.Context, title, description string) (*entities.Issue, error) {
	var resp dto.Issue
	err := c.up.Do(ctx, "create issue", upstream.Request{
		Method:  http.MethodPost,
		URL:     c.issuesURL,
		Headers: map[string]string{"PRIVATE-TOKEN": c.token},
		Body:    dto.CreateIssueRequest{Title: title, Description: description},
	}, &resp)
	if err != nil {
		return nil, err
	}

	issue := mapper.FromIssue(resp)
	c.log.Debugw("issue created", "issue_id", issue.ID, "url", issue.URL)
	return &issue, nil
}
